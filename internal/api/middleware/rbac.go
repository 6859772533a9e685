package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/api/metrics"
	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// RequireRole verifies the token like Authenticated but also requires one of
// allowedRoles. Both a bad token and a wrong role answer 403.
func RequireRole(tokens ports.TokenService, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := tokens.Verify(c.Request().Header.Get(echo.HeaderAuthorization))
			if ok {
				_, ok = allowed[claims.Role]
			}
			if !ok {
				metrics.RejectAuth(metrics.GuardAdmin)
				return c.JSON(http.StatusForbidden, unauthorized)
			}

			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

func AdminOnly(tokens ports.TokenService) echo.MiddlewareFunc {
	return RequireRole(tokens, domain.RoleAdmin)
}
