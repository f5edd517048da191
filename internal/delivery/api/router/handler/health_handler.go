package handler

import (
	"net/http"

	"morrison/config"
	"morrison/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	service string
	env     string
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{service: cfg.Env.ServiceName, env: cfg.Env.Env}
}

// Check handles GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.service,
		"env":     h.env,
	})
}
