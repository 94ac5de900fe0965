// Package api provides HTTP handlers for the content service.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scribelabs/marketscribe/service"
)

// Handler handles HTTP requests.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/process", h.Process)
	e.POST("/continue_chat", h.ContinueChat)
	e.GET("/location_suggest", h.LocationSuggest)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
