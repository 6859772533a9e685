package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IndexHandler serves the landing page at GET /.
type IndexHandler struct {
	page []byte
}

func NewIndexHandler(page []byte) *IndexHandler {
	return &IndexHandler{page: page}
}

func (h *IndexHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, h.page)
}
