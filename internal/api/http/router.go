package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/adoptafacil/internal/api/http/handlers"
	"github.com/spec-kit/adoptafacil/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Adopters  *handlers.AdoptersHandler
	Donations *handlers.DonationsHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	users := app.Group("/User")
	users.Post("/save", cfg.Users.Save)
	users.Get("/query", cfg.Users.Query)
	users.Get("/:id", cfg.Users.Get)

	adopters := app.Group("/Adopter")
	adopters.Post("/save", cfg.Adopters.Save)
	adopters.Get("/query", cfg.Adopters.Query)
	adopters.Get("/:id", cfg.Adopters.Get)

	donations := app.Group("/Donation")
	donations.Post("/save", cfg.Donations.Save)
	donations.Get("/query", cfg.Donations.Query)
	donations.Get("/stats", cfg.Donations.Stats)
	donations.Get("/:id", cfg.Donations.Get)
}
