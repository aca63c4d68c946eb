package identity

import (
	"errors"
	"testing"

	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubValidator struct {
	claims *auth.SessionClaims
	err    error
	calls  int
}

func (s *stubValidator) Validate(tokenStr string) (*auth.SessionClaims, error) {
	s.calls++
	return s.claims, s.err
}

func TestResolve_AbsentTokenIsAnonymous(t *testing.T) {
	// a cached payload behind an absent token must not be trusted
	tokens := &stubValidator{claims: &auth.SessionClaims{UID: "u1", Role: "admin"}}
	r := NewResolver(tokens, zap.NewNop())

	viewer := r.Resolve("")

	assert.Equal(t, domain.Anonymous, viewer)
	assert.False(t, viewer.Authenticated)
	assert.Equal(t, domain.RoleNone, viewer.Role)
	assert.Zero(t, tokens.calls)
}

func TestResolve_MalformedTokenIsAnonymous(t *testing.T) {
	tokens := &stubValidator{err: errors.New("signature is invalid")}
	r := NewResolver(tokens, zap.NewNop())

	viewer := r.Resolve("not-a-jwt")

	assert.Equal(t, domain.Anonymous, viewer)
}

func TestResolve_RoleNormalization(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.SessionClaims
		want   domain.Role
	}{
		{name: "role tag", claims: &auth.SessionClaims{UID: "u1", Role: "admin"}, want: domain.RoleAdmin},
		{name: "legacy admin flag", claims: &auth.SessionClaims{UID: "u1", Admin: true}, want: domain.RoleAdmin},
		{name: "both representations", claims: &auth.SessionClaims{UID: "u1", Role: "admin", Admin: true}, want: domain.RoleAdmin},
		{name: "plain learner", claims: &auth.SessionClaims{UID: "u1"}, want: domain.RoleLearner},
		{name: "unknown role tag", claims: &auth.SessionClaims{UID: "u1", Role: "moderator"}, want: domain.RoleLearner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(&stubValidator{claims: tt.claims}, zap.NewNop())

			viewer := r.Resolve("token")

			assert.True(t, viewer.Authenticated)
			assert.Equal(t, tt.want, viewer.Role)
		})
	}
}
