// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"panaderia/internal/delivery/http/middleware"
	"panaderia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SettingsHandler *handler.SettingsHandler
	AuthHandler     *handler.AuthHandler
	LogsHandler     *handler.LogsHandler
	UploadHandler   *handler.UploadHandler
	VisitHandler    *handler.VisitHandler
	SiteHandler     *handler.SiteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	settingsHandler *handler.SettingsHandler
	authHandler     *handler.AuthHandler
	logsHandler     *handler.LogsHandler
	uploadHandler   *handler.UploadHandler
	visitHandler    *handler.VisitHandler
	siteHandler     *handler.SiteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		settingsHandler: params.SettingsHandler,
		authHandler:     params.AuthHandler,
		logsHandler:     params.LogsHandler,
		uploadHandler:   params.UploadHandler,
		visitHandler:    params.VisitHandler,
		siteHandler:     params.SiteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Public storefront surface
		api.GET("/settings", r.settingsHandler.GetSettings)
		api.GET("/settings/resolved", r.settingsHandler.GetResolvedSettings)
		api.POST("/login", r.authHandler.Login)
		api.POST("/visit", r.visitHandler.RecordVisit)
		api.GET("/stats", r.visitHandler.GetStats)
		api.GET("/qr", r.siteHandler.SiteQR)

		// Admin surface behind the session token
		api.POST("/settings", r.settingsHandler.SaveSettings, r.authMiddleware.Authenticate)
		api.GET("/logs", r.logsHandler.GetLogs, r.authMiddleware.Authenticate)
		api.POST("/upload", r.uploadHandler.Upload, r.authMiddleware.Authenticate)
		api.GET("/menu/export", r.siteHandler.ExportMenu, r.authMiddleware.Authenticate)
	}
}
