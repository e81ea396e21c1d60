// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"menuqr/internal/delivery/http/middleware"
	"menuqr/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler      *handler.MenuHandler
	AnalyticsHandler *handler.AnalyticsHandler
	PublicHandler    *handler.PublicHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler      *handler.MenuHandler
	analyticsHandler *handler.AnalyticsHandler
	publicHandler    *handler.PublicHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:      params.MenuHandler,
		analyticsHandler: params.AnalyticsHandler,
		publicHandler:    params.PublicHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public diner-facing routes. The QR target URL path shape is fixed;
	// printed codes depend on it.
	e.GET("/menu/:id", r.publicHandler.GetMenu)
	e.POST("/analytics/scan", r.analyticsHandler.RecordScan)

	// Owner routes that require authentication
	menuGroup := e.Group("/menus")
	menuGroup.Use(r.authMiddleware.Authenticate)
	{
		menuGroup.POST("", r.menuHandler.CreateMenu)
		menuGroup.GET("", r.menuHandler.ListMenus)
		menuGroup.GET("/:id", r.menuHandler.GetMenu)
		menuGroup.PUT("/:id", r.menuHandler.UpdateMenu)
		menuGroup.DELETE("/:id", r.menuHandler.DeleteMenu)
		menuGroup.POST("/:id/qrcode", r.menuHandler.RegenerateQR)
	}

	analyticsGroup := e.Group("/analytics")
	analyticsGroup.Use(r.authMiddleware.Authenticate)
	{
		analyticsGroup.GET("/summary", r.analyticsHandler.GetOwnerSummary)
	}
}
