package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness and the size of the loaded record set.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"races":  h.catalog.Len(),
	})
}
