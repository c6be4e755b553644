package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coworker-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Coworkers *handlers.CoworkersHandler
	Metrics   fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	app.Get("/coworkers", cfg.Coworkers.ListCoworkers)
	app.Post("/coworkers", cfg.Coworkers.CreateCoworker)
	app.Get("/coworkers/:id", cfg.Coworkers.GetCoworker)
	app.Get("/departments", cfg.Coworkers.ListDepartments)
}
