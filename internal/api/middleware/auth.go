package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/api/metrics"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// Context keys set by the guards.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

var unauthorized = map[string]string{"message": "Unauthorized"}

// Authenticated admits any request whose Authorization header holds a valid
// session token. The header value is verified as-is; a "Bearer " prefix is
// not stripped and therefore fails verification.
func Authenticated(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := tokens.Verify(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.RejectAuth(metrics.GuardAuthenticated)
				return c.JSON(http.StatusUnauthorized, unauthorized)
			}

			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}
