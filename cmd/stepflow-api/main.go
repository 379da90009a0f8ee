package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"
	"github.com/stepflow-io/stepflow/pkg/automation"
	pkgcmd "github.com/stepflow-io/stepflow/pkg/cmd"
	"github.com/stepflow-io/stepflow/pkg/log"
	"github.com/stepflow-io/stepflow/pkg/otelhelper"
	"go.opentelemetry.io/otel/trace"
)

const defaultPort = 9092

func main() {
	logger := log.WithModule("api")

	cmd := &cli.Command{
		Name:                  "stepflow-api",
		Usage:                 "Validate and simulate workflow graphs",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus provider (memory)",
				Value:   "memory",
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export traces over OTLP",
				Sources: cli.EnvVars("TRACING_ENABLED"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Stepflow API")

			registry := automation.NewRegistry(logger)

			eventBus := pkgcmd.NewEventBus(command.String("event-bus"), logger)
			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			var tracer trace.Tracer

			if command.Bool("tracing") {
				var err error

				tracer, err = otelhelper.NewTracer(ctx, "stepflow-api")
				if err != nil {
					logger.WarnContext(ctx, "Failed to initialize tracer, continuing without tracing", "error", err)
				}
			}

			api := NewAPI(
				logger,
				registry,
				eventBus,
				tracer,
			)

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
