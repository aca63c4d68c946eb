package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/driver"
)

// SessionHandler viewer identity operations
type SessionHandler struct {
	identityResolver *identity.Resolver
	jwtUtil          *auth.JWTUtil
	kvStore          driver.KeyValueDB
}

// NewSessionHandler create a session controller instance
func NewSessionHandler(IdentityResolver *identity.Resolver, JWTUtil *auth.JWTUtil, KVStore driver.KeyValueDB) *SessionHandler {
	return &SessionHandler{IdentityResolver, JWTUtil, KVStore}
}

// HandleGetIdentity resolve the current viewer. This endpoint never fails:
// a corrupt or absent session resolves to the anonymous identity.
func (sh *SessionHandler) HandleGetIdentity(c echo.Context) error {
	viewer := resolveViewer(sh.jwtUtil, sh.identityResolver, c)
	return c.JSON(http.StatusOK, viewer)
}

// HandleSignOut revoke the session token for the rest of its lifetime and
// clear the client cookie. The verify middleware already stashed the claims
// in context.
func (sh *SessionHandler) HandleSignOut(c echo.Context) error {
	ju := sh.jwtUtil
	tokenStr, err := ju.ExtractToken(c)
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}
	claims := ju.GetContextToken(c)
	if claims == nil {
		if claims, err = ju.Validate(tokenStr); err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}
	}

	ju.ClearClientToken(c)
	if remaining := claims.TimeRemaining(); remaining > 0 {
		if err := sh.kvStore.SetEX(tokenStr, "", remaining); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}
