package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/api/middleware"
)

// ctxUsername returns the token holder set by the auth guards, or "" on
// public routes.
func ctxUsername(c echo.Context) string {
	username, _ := c.Get(middleware.CtxUsername).(string)
	return username
}
