// Package main provides the Stepflow API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/stepflow-io/stepflow/pkg/automation"
	"github.com/stepflow-io/stepflow/pkg/eventbus"
	"github.com/stepflow-io/stepflow/pkg/services"
	"github.com/stepflow-io/stepflow/pkg/web"
	"go.opentelemetry.io/otel/trace"
)

type API struct {
	logger   *slog.Logger
	registry *automation.Registry
	eventBus eventbus.EventBus
	tracer   trace.Tracer
	validate *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	registry *automation.Registry,
	eventBus eventbus.EventBus,
	tracer trace.Tracer,
) *API {
	return &API{
		logger:   logger,
		registry: registry,
		eventBus: eventBus,
		tracer:   tracer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	simulationService := services.NewSimulation(a.registry, a.eventBus, a.tracer, a.logger)
	reviewService := services.NewReview(simulationService, a.logger)

	handlers := web.NewAPIHandlers(simulationService, reviewService, a.registry, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Stepflow API")
	})

	app.Get("/automations", handlers.GetAutomations)
	app.Post("/simulate", handlers.Simulate)
	app.Post("/simulate/review", handlers.ResolveReview)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
