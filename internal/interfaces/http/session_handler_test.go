package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKVStore struct {
	setKey string
	setTTL time.Duration
}

func (f *fakeKVStore) SetEX(key string, value string, expiration time.Duration) error {
	f.setKey = key
	f.setTTL = expiration
	return nil
}

func (f *fakeKVStore) Get(key string) (string, error)  { return "", nil }
func (f *fakeKVStore) Exists(key string) (bool, error) { return false, nil }
func (f *fakeKVStore) Ping() error                     { return nil }

func TestHandleSignOut_RevokesTokenForItsRemainingLifetime(t *testing.T) {
	ju := testJWTUtil()
	kv := &fakeKVStore{}
	sh := NewSessionHandler(identity.NewResolver(ju, zap.NewNop()), ju, kv)

	tokenStr := signToken(t, &auth.SessionClaims{
		UID: "u1",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/sign-out", nil)
	req.AddCookie(&http.Cookie{Name: testTokenName, Value: tokenStr})
	rec := doRequest(sh.HandleSignOut, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, tokenStr, kv.setKey)
	assert.Greater(t, int64(kv.setTTL), int64(0))
	assert.LessOrEqual(t, int64(kv.setTTL), int64(time.Hour))

	// cookie cleared on the client
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testTokenName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestHandleSignOut_ExpiredTokenSkipsBlacklist(t *testing.T) {
	ju := testJWTUtil()
	kv := &fakeKVStore{}
	sh := NewSessionHandler(identity.NewResolver(ju, zap.NewNop()), ju, kv)

	// claims already validated by the verify middleware; an expired token
	// has nothing left to revoke
	claims := &auth.SessionClaims{UID: "u1"}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/sign-out", nil)
	req.AddCookie(&http.Cookie{Name: testTokenName, Value: signToken(t, claims)})

	app := echo.New()
	rec := httptest.NewRecorder()
	c := app.NewContext(req, rec)
	ju.SetContextToken(c, claims)
	require.NoError(t, sh.HandleSignOut(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, kv.setKey)
}

func TestHandleSignOut_WithoutCookie(t *testing.T) {
	ju := testJWTUtil()
	sh := NewSessionHandler(identity.NewResolver(ju, zap.NewNop()), ju, &fakeKVStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/sign-out", nil)
	rec := doRequest(sh.HandleSignOut, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
