package http

import (
	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/identity"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
)

// resolveViewer resolve the viewer identity from the request's session
// cookie. The identity is then passed explicitly into every usecase call;
// nothing below this boundary reads ambient session state.
func resolveViewer(ju *auth.JWTUtil, resolver *identity.Resolver, c echo.Context) domain.Identity {
	tokenStr, err := ju.ExtractToken(c)
	if err != nil {
		return domain.Anonymous
	}
	return resolver.Resolve(tokenStr)
}
