package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"leadharvest/internal/handlers"
	"leadharvest/internal/middleware"
	"leadharvest/internal/services"
	"leadharvest/internal/transformers"
	"leadharvest/internal/validators"
	"leadharvest/pkg/config"
	"leadharvest/pkg/metrics"
	"leadharvest/pkg/places"
)

// App represents the application structure
type App struct {
	Config        *config.Config
	Router        *gin.Engine
	ScrapeHandler *handlers.ScrapeHandler
	RateLimiter   *middleware.RateLimiter
	Pool          *services.ScrapePool
	Server        *http.Server
}

// Create and initialize a new App instance. A missing API key on the
// new-API variant fails here, before the server ever binds a port.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.initializeMetrics()
	app.initializeRateLimiter()

	if err := app.initializeDependencies(); err != nil {
		return nil, err
	}

	app.initializeRouter()

	return app, nil
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the inbound rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup(time.Hour)
}

// initialize all dependencies
func (a *App) initializeDependencies() error {
	client, err := places.NewClient(a.Config)
	if err != nil {
		return err
	}

	var transformer transformers.LeadTransformer
	if client.Variant() == places.VariantLegacy {
		transformer = transformers.NewLegacyLeadTransformer()
	} else {
		transformer = transformers.NewPlacesLeadTransformer()
	}

	validator := validators.NewScrapeValidator()

	pace := time.Duration(a.Config.Scraper.PaceMs) * time.Millisecond
	pacer := rate.NewLimiter(rate.Every(pace), 1)

	service := services.NewScrapeService(client, transformer, validator, pacer, a.Config.Scraper.MaxResults)
	a.Pool = services.NewScrapePool(service, a.Config.Scraper.Workers)
	a.ScrapeHandler = handlers.NewScrapeHandler(a.Pool)

	return nil
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.Pool != nil {
		a.Pool.Close()
	}
	if a.RateLimiter != nil {
		a.RateLimiter.Stop()
	}
}
