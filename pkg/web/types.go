// Package web provides the HTTP surface of the simulation engine.
package web

import "github.com/stepflow-io/stepflow/pkg/models"

// SimulateOptions tunes a single simulation pass.
type SimulateOptions struct {
	AutoApproveNodeID string `json:"autoApproveNodeId,omitempty"`
}

// SimulateRequest is the request body for running a simulation.
type SimulateRequest struct {
	Workflow models.WorkflowGraph `json:"workflow"`
	Options  *SimulateOptions     `json:"options,omitempty"`
}

// ReviewRequest is the request body for resolving an approval review. Prior
// carries the suspended run's trace so a rejection can extend its step list.
type ReviewRequest struct {
	Workflow models.WorkflowGraph    `json:"workflow"`
	Review   models.ReviewDecision   `json:"review"          validate:"required"`
	Prior    *models.SimulationTrace `json:"prior,omitempty"`
}
