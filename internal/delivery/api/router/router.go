// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	apimiddleware "authgate/internal/delivery/api/middleware"
	"authgate/internal/delivery/api/router/handler"
	"authgate/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SessionMiddleware *apimiddleware.SessionMiddleware
	RateLimiter       *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	sessionMiddleware *apimiddleware.SessionMiddleware
	rateLimiter       *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		sessionMiddleware: params.SessionMiddleware,
		rateLimiter:       params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/providers", r.authHandler.Providers)

		// Credentials must be registered before the :provider wildcard takes over
		authGroup.POST("/signin/credentials", r.authHandler.SignInWithCredentials, r.rateLimiter.Handle)
		authGroup.POST("/signin/:provider", r.authHandler.SignInWithOAuth)

		authGroup.GET("/session", r.authHandler.Session, r.sessionMiddleware.Extract)
		authGroup.POST("/session/refresh", r.authHandler.RefreshSession, r.sessionMiddleware.Require)
		authGroup.POST("/signout", r.authHandler.SignOut, r.sessionMiddleware.Require)
	}
}
