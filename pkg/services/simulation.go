package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stepflow-io/stepflow/pkg/eventbus"
	"github.com/stepflow-io/stepflow/pkg/events"
	"github.com/stepflow-io/stepflow/pkg/models"
	"github.com/stepflow-io/stepflow/pkg/otelhelper"
	"github.com/stepflow-io/stepflow/pkg/workflow"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Simulation runs the full validate → order → execute cycle for one graph
// snapshot and publishes lifecycle events along the way. Each call is
// independent; nothing is shared across runs.
type Simulation struct {
	executor *workflow.Executor
	eventBus eventbus.EventPublisher
	tracer   trace.Tracer
	logger   *slog.Logger
}

func NewSimulation(
	dispatcher workflow.Dispatcher,
	eventBus eventbus.EventPublisher,
	tracer trace.Tracer,
	logger *slog.Logger,
) *Simulation {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("stepflow")
	}

	return &Simulation{
		executor: workflow.NewExecutor(dispatcher, logger),
		eventBus: eventBus,
		tracer:   tracer,
		logger:   logger,
	}
}

// Run simulates one graph snapshot. Engine-level failure is data, not an
// error: structural problems, suspensions and automation failures are all
// reported inside the returned trace.
func (s *Simulation) Run(ctx context.Context, graph *models.WorkflowGraph, opts workflow.Options) *models.SimulationTrace {
	simulationID := generateSimulationID()
	started := time.Now()

	ctx, span := otelhelper.StartSpan(ctx, s.tracer, "simulation.run",
		attribute.String(otelhelper.SimulationIDKey, simulationID),
	)
	defer span.End()

	logger := s.logger.With("simulation_id", simulationID)
	logger.InfoContext(ctx, "Starting simulation")

	nodeCount, edgeCount := 0, 0
	if graph != nil {
		nodeCount, edgeCount = len(graph.Nodes), len(graph.Edges)
	}

	s.publish(ctx, simulationID, events.SimulationStarted{
		BaseEvent: s.baseEvent(simulationID, events.SimulationStartedEvent),
		NodeCount: nodeCount,
		EdgeCount: edgeCount,
	})

	if structuralErrors := workflow.Validate(graph); len(structuralErrors) > 0 {
		logger.InfoContext(ctx, "Graph failed structural validation", "errors", len(structuralErrors))
		otelhelper.SetError(span, ErrGraphNotExecutable)

		s.publish(ctx, simulationID, events.SimulationFailed{
			BaseEvent: s.baseEvent(simulationID, events.SimulationFailedEvent),
			Errors:    structuralErrors,
		})

		return &models.SimulationTrace{
			OK:     false,
			Steps:  []models.StepResult{},
			Errors: structuralErrors,
		}
	}

	ordered := workflow.Order(graph)
	result := s.executor.Execute(ctx, ordered, opts)

	switch {
	case result.PendingTask != nil:
		logger.InfoContext(ctx, "Simulation suspended on pending task", "node_id", result.PendingTask.NodeID)
		s.publish(ctx, simulationID, events.SimulationSuspended{
			BaseEvent: s.baseEvent(simulationID, events.SimulationSuspendedEvent),
			Reason:    events.SuspensionTaskPending,
			NodeID:    result.PendingTask.NodeID,
		})
	case result.ApprovalReview != nil:
		logger.InfoContext(ctx, "Simulation suspended on approval review", "node_id", result.ApprovalReview.NodeID)
		s.publish(ctx, simulationID, events.SimulationSuspended{
			BaseEvent: s.baseEvent(simulationID, events.SimulationSuspendedEvent),
			Reason:    events.SuspensionApprovalRequired,
			NodeID:    result.ApprovalReview.NodeID,
		})
	case !result.OK:
		logger.WarnContext(ctx, "Simulation failed", "errors", result.Errors)
		otelhelper.SetError(span, fmt.Errorf("simulation failed: %v", result.Errors))
		s.publish(ctx, simulationID, events.SimulationFailed{
			BaseEvent: s.baseEvent(simulationID, events.SimulationFailedEvent),
			Errors:    result.Errors,
		})
	default:
		logger.InfoContext(ctx, "Simulation completed", "steps", len(result.Steps))
		s.publish(ctx, simulationID, events.SimulationCompleted{
			BaseEvent: s.baseEvent(simulationID, events.SimulationCompletedEvent),
			Steps:     len(result.Steps),
			Duration:  time.Since(started),
		})
	}

	return result
}

func (s *Simulation) baseEvent(simulationID string, eventType events.EventType) events.BaseEvent {
	return events.BaseEvent{
		ID:           uuid.New().String(),
		Type:         eventType,
		Timestamp:    time.Now().UTC(),
		SimulationID: simulationID,
	}
}

func (s *Simulation) publish(ctx context.Context, key string, event eventbus.Event) {
	if s.eventBus == nil {
		return
	}

	if err := s.eventBus.Publish(ctx, key, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish simulation event",
			"event_type", event.GetType(), "error", err)
	}
}

func generateSimulationID() string {
	return "sim-" + uuid.New().String()[:8]
}
