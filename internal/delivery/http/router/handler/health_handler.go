package handler

import (
	"net/http"

	"mdesk/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the liveness probe.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports that the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
