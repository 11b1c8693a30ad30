package main

import (
	"time"

	"leadharvest/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// configure all middleware for the router
func (a *App) setupMiddleware() {
	a.Router.Use(setupCORS())
	a.Router.Use(middleware.RequestID())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(middleware.SecureHeaders())
	a.Router.Use(middleware.ErrorHandler())
	a.Router.Use(gin.Recovery())
}

// configure CORS middleware
func setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Disposition", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
