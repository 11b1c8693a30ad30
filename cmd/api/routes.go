package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupObservability()
	a.setupAPIRoutes()
}

// setupHealthCheck configures the liveness endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupObservability exposes metrics and (outside production) pprof
func (a *App) setupObservability() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}
}

// setupAPIRoutes configures the scrape endpoints
func (a *App) setupAPIRoutes() {
	a.Router.POST("/scrape", a.ScrapeHandler.Scrape)
	a.Router.POST("/scrape/export", a.ScrapeHandler.Export)
}
