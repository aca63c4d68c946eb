package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret    = "secret"
	testTokenName = "app_token"
)

func signToken(t *testing.T, claims *auth.SessionClaims) string {
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tokenStr
}

func testJWTUtil() *auth.JWTUtil {
	return auth.NewJWTUtil("HS256", testSecret, testTokenName)
}

func doRequest(handler echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	app := echo.New()
	rec := httptest.NewRecorder()
	c := app.NewContext(req, rec)
	if err := handler(c); err != nil {
		app.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestHandleGetIdentity_AnonymousWithoutCookie(t *testing.T) {
	ju := testJWTUtil()
	sh := NewSessionHandler(identity.NewResolver(ju, zap.NewNop()), ju, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/identity", nil)
	rec := doRequest(sh.HandleGetIdentity, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var viewer domain.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &viewer))
	assert.False(t, viewer.Authenticated)
	assert.Equal(t, domain.RoleNone, viewer.Role)
}

func TestHandleGetIdentity_LegacyAdminFlag(t *testing.T) {
	ju := testJWTUtil()
	sh := NewSessionHandler(identity.NewResolver(ju, zap.NewNop()), ju, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/identity", nil)
	req.AddCookie(&http.Cookie{
		Name:  testTokenName,
		Value: signToken(t, &auth.SessionClaims{UID: "u1", Admin: true}),
	})
	rec := doRequest(sh.HandleGetIdentity, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var viewer domain.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &viewer))
	assert.True(t, viewer.Authenticated)
	assert.Equal(t, domain.RoleAdmin, viewer.Role)
}

func TestHandleDecide(t *testing.T) {
	ju := testJWTUtil()
	gh := NewGateHandler(identity.NewResolver(ju, zap.NewNop()), ju, validate.NewValidator())

	tests := []struct {
		name     string
		body     string
		claims   *auth.SessionClaims
		outcome  domain.GateOutcome
		redirect domain.RedirectTarget
	}{
		{
			name:     "protected route anonymous",
			body:     `{"route_class": "protected"}`,
			outcome:  domain.OutcomeRedirect,
			redirect: domain.RedirectSignIn,
		},
		{
			name:    "protected route learner",
			body:    `{"route_class": "protected"}`,
			claims:  &auth.SessionClaims{UID: "u1"},
			outcome: domain.OutcomeRender,
		},
		{
			name:     "public-only route admin",
			body:     `{"route_class": "public_only"}`,
			claims:   &auth.SessionClaims{UID: "u1", Role: "admin"},
			outcome:  domain.OutcomeRedirect,
			redirect: domain.RedirectAdminHome,
		},
		{
			name:     "unmatched class falls back to root",
			body:     `{"route_class": "mystery"}`,
			claims:   &auth.SessionClaims{UID: "u1"},
			outcome:  domain.OutcomeRedirect,
			redirect: domain.RedirectRoot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/gate/decision", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.claims != nil {
				req.AddCookie(&http.Cookie{Name: testTokenName, Value: signToken(t, tt.claims)})
			}
			rec := doRequest(gh.HandleDecide, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var decision domain.GateDecision
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
			assert.Equal(t, tt.outcome, decision.Outcome)
			assert.Equal(t, tt.redirect, decision.Redirect)
		})
	}
}

func TestHandleDecide_MissingRouteClass(t *testing.T) {
	ju := testJWTUtil()
	gh := NewGateHandler(identity.NewResolver(ju, zap.NewNop()), ju, validate.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gate/decision", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(gh.HandleDecide, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
