package identity

import (
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// TokenValidator validates a raw session token into claims
type TokenValidator interface {
	Validate(tokenStr string) (*auth.SessionClaims, error)
}

// Resolver resolves the viewer identity from the persisted session token.
// The token is always taken as an explicit argument, never read from
// ambient state.
type Resolver struct {
	tokens TokenValidator
	logger *zap.Logger
}

// NewResolver ...
func NewResolver(tokens TokenValidator, logger *zap.Logger) *Resolver {
	return &Resolver{tokens: tokens, logger: logger}
}

// Resolve map a session token to the viewer identity. A missing or
// malformed token yields the anonymous identity: a corrupt session must
// never crash navigation. Cached user payloads are trusted only when the
// token itself validates.
func (r *Resolver) Resolve(tokenStr string) domain.Identity {
	if tokenStr == "" {
		return domain.Anonymous
	}
	claims, err := r.tokens.Validate(tokenStr)
	if err != nil {
		r.logger.Debug("Session token rejected, treating viewer as anonymous", zap.Error(err))
		return domain.Anonymous
	}
	return domain.Identity{
		UID:           claims.UID,
		Name:          claims.Name,
		Authenticated: true,
		Role:          normalizeRole(claims),
	}
}

// normalizeRole collapse the two legacy role representations into one
// canonical variant. This is the only place both fields are consulted.
func normalizeRole(claims *auth.SessionClaims) domain.Role {
	if claims.Role == string(domain.RoleAdmin) || claims.Admin {
		return domain.RoleAdmin
	}
	return domain.RoleLearner
}
