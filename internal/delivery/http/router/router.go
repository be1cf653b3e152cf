// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	PreferenceHandler *handler.PreferenceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	preferenceHandler *handler.PreferenceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		preferenceHandler: params.PreferenceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential exchange stays outside the authenticated group
	e.POST("/login", r.accountHandler.Login)

	userGroup := e.Group("/user")
	{
		userGroup.POST("/register", r.accountHandler.Register)
	}

	// Routes below require a valid session token
	authedUserGroup := e.Group("/user")
	authedUserGroup.Use(r.authMiddleware.Authenticate)
	{
		authedUserGroup.GET("/profile", r.accountHandler.GetProfile)
		authedUserGroup.POST("/category", r.preferenceHandler.ReplaceCategories)
	}

	categoryGroup := e.Group("/category")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.GET("", r.preferenceHandler.ListCategories)
	}
}
