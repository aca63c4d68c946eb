package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
)

// ValidateTokenOption ...
type ValidateTokenOption struct {
	InBlackList func(token string) (bool, error)
}

// VerifyToken validate the session token and stash the claims in context.
// The external auth flow owns token issuance; this side only checks the
// signature and the revocation set.
func VerifyToken(ju *auth.JWTUtil, options ...*ValidateTokenOption) echo.MiddlewareFunc {
	inBlacklist := func(string) (bool, error) { return false, nil }
	if len(options) > 0 && options[0].InBlackList != nil {
		inBlacklist = options[0].InBlackList
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := ju.ExtractToken(c)
			if err != nil {
				return c.NoContent(http.StatusUnauthorized)
			}

			if ok, err := inBlacklist(tokenStr); err != nil {
				return err
			} else if ok {
				return c.NoContent(http.StatusUnauthorized)
			}

			token, err := ju.Validate(tokenStr)
			if err == nil {
				ju.SetContextToken(c, token)
				return next(c)
			}
			return c.NoContent(http.StatusUnauthorized)
		}
	}
}
