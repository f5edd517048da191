// Package router contains route registration for the HTTP API.
package router

import (
	"log/slog"

	"morrison/config"
	"morrison/internal/delivery/api/middleware"
	"morrison/internal/delivery/api/router/handler"
	"morrison/internal/domain/entity"
	"morrison/internal/infra/metrics"
	"morrison/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	SessionHandler *handler.SessionHandler
	AdminHandler   *handler.AdminHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
	Config         *config.Config
	Logger         *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	sessionHandler *handler.SessionHandler
	adminHandler   *handler.AdminHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
	logger         *slog.Logger
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		sessionHandler: params.SessionHandler,
		adminHandler:   params.AdminHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))
	}

	e.POST("/accounts", r.accountHandler.Register)
	e.PATCH("/accounts/self", r.accountHandler.UpdateSelf, r.authMiddleware.Authenticate, r.authMiddleware.RequireEligible)

	sessions := e.Group("/sessions")
	{
		sessions.POST("", r.sessionHandler.Login)
		sessions.GET("/current", r.sessionHandler.Current, r.authMiddleware.Authenticate)
	}

	// /admin/verify only checks the key; everything else needs a token and the key.
	e.POST("/admin/verify", r.adminHandler.VerifyKey)

	admin := e.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdminKey, r.authMiddleware.RequireEligible)
	{
		admin.POST("/flags", r.adminHandler.SetFlag)
		admin.GET("/accounts", r.adminHandler.ListAccounts)
		admin.POST("/accounts/:username/ban", r.adminHandler.FlagAction(entity.FlagBanned, true))
		admin.POST("/accounts/:username/unban", r.adminHandler.FlagAction(entity.FlagBanned, false))
		admin.POST("/accounts/:username/disable", r.adminHandler.FlagAction(entity.FlagDisabled, true))
		admin.POST("/accounts/:username/enable", r.adminHandler.FlagAction(entity.FlagDisabled, false))
	}

	r.registerUploads(e)
}

// registerUploads serves avatars straight from a file:// bucket when enabled.
func (r *router) registerUploads(e *echo.Echo) {
	cfg := r.config.Storage
	if cfg == nil || !cfg.ServeLocal {
		return
	}

	dir, ok := storage.LocalDir(cfg.BucketURL)
	if !ok {
		r.logger.Warn("storage.serveLocal is set but the bucket is not a file:// bucket, uploads are not served")

		return
	}

	e.Static(cfg.PublicPath, dir)
	r.logger.Info("Serving uploads", slog.String("path", cfg.PublicPath), slog.String("dir", dir))
}
