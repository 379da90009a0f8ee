package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stepflow-io/stepflow/pkg/models"
	"github.com/stepflow-io/stepflow/pkg/workflow"
)

// RejectionMessage is recorded on the synthetic trace entry when a manager
// rejects a submission.
const RejectionMessage = "Approval rejected. Employee must resubmit."

// ReviewOutcome is the result of resolving an approval review: the trace to
// show the caller and the resulting state of the reviewed submission.
type ReviewOutcome struct {
	Trace     *models.SimulationTrace `json:"trace"`
	TaskState models.TaskState        `json:"taskState"`
}

// Review resolves manager decisions on approval review payloads. Approvals
// re-run the simulation; rejections never re-enter the engine — they are a
// caller-level state transition recorded as a synthetic trace entry.
type Review struct {
	simulation *Simulation
	logger     *slog.Logger
}

func NewReview(simulation *Simulation, logger *slog.Logger) *Review {
	return &Review{
		simulation: simulation,
		logger:     logger,
	}
}

// Resolve applies a review decision. prior is the trace of the suspended run
// and may be nil; it seeds the step list of a rejection trace.
func (r *Review) Resolve(ctx context.Context, graph *models.WorkflowGraph, decision models.ReviewDecision, prior *models.SimulationTrace) (*ReviewOutcome, error) {
	node, found := findNode(graph, decision.NodeID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrReviewNodeNotFound, decision.NodeID)
	}

	r.logger.InfoContext(ctx, "Resolving approval review",
		"node_id", decision.NodeID, "resolution", decision.Resolution)

	switch decision.Resolution {
	case models.ResolutionApprovePassed:
		state, err := models.TaskStateUnderReview.Transition(models.TaskStateApproved)
		if err != nil {
			return nil, err
		}

		return &ReviewOutcome{
			Trace:     r.simulation.Run(ctx, graph, workflow.Options{}),
			TaskState: state,
		}, nil

	case models.ResolutionApproveForced:
		state, err := models.TaskStateUnderReview.Transition(models.TaskStateApproved)
		if err != nil {
			return nil, err
		}

		return &ReviewOutcome{
			Trace:     r.simulation.Run(ctx, graph, workflow.Options{AutoApproveNodeID: decision.NodeID}),
			TaskState: state,
		}, nil

	case models.ResolutionReject:
		state, err := models.TaskStateUnderReview.Transition(models.TaskStateRejected)
		if err != nil {
			return nil, err
		}

		return &ReviewOutcome{
			Trace:     rejectionTrace(node, prior),
			TaskState: state,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownResolution, decision.Resolution)
}

// rejectionTrace extends the suspended run's trace with one synthetic error
// step on the rejected approval node.
func rejectionTrace(node models.NodeRecord, prior *models.SimulationTrace) *models.SimulationTrace {
	var steps []models.StepResult
	if prior != nil {
		steps = append(steps, prior.Steps...)
	}

	steps = append(steps, models.StepResult{
		NodeID:    node.ID,
		NodeLabel: nodeLabel(node),
		Order:     len(steps) + 1,
		Status:    models.NodeStatusError,
		Message:   RejectionMessage,
	})

	return &models.SimulationTrace{
		OK:     false,
		Steps:  steps,
		Errors: []string{RejectionMessage},
	}
}

func findNode(graph *models.WorkflowGraph, id string) (models.NodeRecord, bool) {
	if graph == nil {
		return models.NodeRecord{}, false
	}

	return graph.FindNode(id)
}

func nodeLabel(node models.NodeRecord) string {
	if cfg, ok := node.Config.(*models.ApprovalConfig); ok && cfg.Title != "" {
		return cfg.Title
	}

	return node.Label
}
