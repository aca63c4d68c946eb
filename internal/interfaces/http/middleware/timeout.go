package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// AbortRequestOption options for request timeout
type AbortRequestOption struct {
	Timeout time.Duration
}

// AbortRequest bound request handling with a deadline so a stuck authority
// call cannot pin the handler goroutine forever
func AbortRequest(option *AbortRequestOption) echo.MiddlewareFunc {
	timeout := option.Timeout
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			c.SetRequest(r.WithContext(ctx))
			return next(c)
		}
	}
}
