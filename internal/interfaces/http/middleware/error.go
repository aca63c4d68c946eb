package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandlingOption options for error handling
type ErrorHandlingOption struct {
	Handler func(c echo.Context, err error)
	Logger  *zap.Logger
}

// ErrorHandling recover panics from handlers and funnel handler errors into
// one place
func ErrorHandling(options ...*ErrorHandlingOption) echo.MiddlewareFunc {
	custom := &ErrorHandlingOption{}
	if len(options) > 0 {
		option := options[0]
		if option.Handler != nil {
			custom.Handler = option.Handler
		}
		if option.Logger != nil {
			custom.Logger = option.Logger
		}
	}
	handler := custom.Handler
	logger := custom.Logger
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if any := recover(); any != nil {
					err, ok := any.(error)
					if !ok {
						err = fmt.Errorf("%v", any)
					}
					if logger != nil {
						logger.Error(err.Error(),
							zap.String("url.path", c.Request().RequestURI),
							zap.String("client.address", c.Request().RemoteAddr),
							zap.String("http.request.method", c.Request().Method),
						)
					}
					if handler != nil {
						handler(c, err)
					}
				}
			}()
			if err := next(c); err != nil && handler != nil {
				handler(c, err)
			}
			return nil
		}
	}
}
