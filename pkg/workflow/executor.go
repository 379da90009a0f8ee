package workflow

import (
	"context"
	"log/slog"

	"github.com/stepflow-io/stepflow/pkg/automation"
	"github.com/stepflow-io/stepflow/pkg/models"
)

// Dispatcher is the side-effect boundary for automated nodes. The default
// implementation is the mocked registry in pkg/automation; a real deployment
// plugs in handlers with real side effects behind the same contract.
type Dispatcher interface {
	Dispatch(ctx context.Context, actionID string, params map[string]string) automation.Result
}

// Options tunes a single execution pass.
type Options struct {
	// AutoApproveNodeID names one approval node to force through on this
	// pass, bypassing its rule checks. Used to resume after a manager
	// decision.
	AutoApproveNodeID string
}

// Executor interprets an ordered node list, applying per-kind semantics and
// halting at the first suspension or failure point. Each call is a fresh full
// run; suspensions are resumed by re-running against the updated graph.
type Executor struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewExecutor(dispatcher Dispatcher, logger *slog.Logger) *Executor {
	return &Executor{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute walks the ordered nodes and produces the run's trace. It returns
// ok:true with pendingTask set when a task awaits submission, ok:false with
// approvalReview set when an approval needs a manager decision, and ok:false
// with a single error when an automated action fails. Only the automated
// failure is an error; the suspensions are not.
func (e *Executor) Execute(ctx context.Context, ordered []models.NodeRecord, opts Options) *models.SimulationTrace {
	steps := make([]models.StepResult, 0, len(ordered))

	var sub Submission

	for i, node := range ordered {
		logger := e.logger.With("node_id", node.ID, "node_kind", node.Kind)

		status := models.NodeStatusCompleted
		message := ""

		switch node.Kind {
		case models.KindStart:
			message = "Workflow started."

		case models.KindTask:
			cfg := taskConfig(node)

			if !cfg.Submitted() {
				logger.InfoContext(ctx, "Suspending run, task awaiting submission")

				steps = append(steps, stepResult(node, i+1, models.NodeStatusInProgress, "Waiting for employee to complete the task."))

				return &models.SimulationTrace{
					OK:    true,
					Steps: steps,
					PendingTask: &models.PendingTask{
						NodeID:    node.ID,
						NodeLabel: stepLabel(node),
					},
				}
			}

			sub = submissionFrom(cfg)
			message = "Task completed by employee."

		case models.KindApproval:
			if opts.AutoApproveNodeID == node.ID {
				logger.InfoContext(ctx, "Approval forced by manager decision")

				message = "Manually approved by manager."

				break
			}

			result := CheckApproval(approvalConfig(node), sub)
			if !result.OK {
				logger.InfoContext(ctx, "Suspending run, approval requires manager review", "issues", len(result.Issues))

				steps = append(steps, stepResult(node, i+1, models.NodeStatusInProgress, "Approval required."))

				return &models.SimulationTrace{
					OK:             false,
					Steps:          steps,
					Errors:         result.Issues,
					ApprovalReview: reviewPayload(node, result.Issues, sub),
				}
			}

			message = "Approval validation passed."

		case models.KindAutomated:
			cfg := automatedConfig(node)
			result := e.dispatcher.Dispatch(ctx, cfg.ActionID, cfg.Params)

			message = result.Message
			if !result.OK {
				status = models.NodeStatusError
			}

		case models.KindEnd:
			message = "Workflow completed."
		}

		steps = append(steps, stepResult(node, i+1, status, message))

		if status == models.NodeStatusError {
			logger.WarnContext(ctx, "Run failed on automated action", "message", message)

			return &models.SimulationTrace{
				OK:     false,
				Steps:  steps,
				Errors: []string{message},
			}
		}
	}

	return &models.SimulationTrace{OK: true, Steps: steps}
}

func stepResult(node models.NodeRecord, order int, status models.NodeStatus, message string) models.StepResult {
	return models.StepResult{
		NodeID:    node.ID,
		NodeLabel: stepLabel(node),
		Order:     order,
		Status:    status,
		Message:   message,
	}
}

// stepLabel prefers the config title and falls back to the node label, which
// is all an end node has.
func stepLabel(node models.NodeRecord) string {
	title := ""

	switch cfg := node.Config.(type) {
	case *models.StartConfig:
		title = cfg.Title
	case *models.TaskConfig:
		title = cfg.Title
	case *models.ApprovalConfig:
		title = cfg.Title
	case *models.AutomatedConfig:
		title = cfg.Title
	}

	if title == "" {
		return node.Label
	}

	return title
}

func reviewPayload(node models.NodeRecord, issues []string, sub Submission) *models.ApprovalReviewPayload {
	docs := make([]models.ReviewDocument, 0, len(sub.Documents))
	for _, d := range sub.Documents {
		docs = append(docs, models.ReviewDocument{
			ID:       d.ID,
			Name:     d.Name,
			Required: d.Required,
			FileName: d.FileName,
		})
	}

	return &models.ApprovalReviewPayload{
		NodeID:    node.ID,
		NodeLabel: stepLabel(node),
		Issues:    issues,
		Payload: models.ReviewPayload{
			Form: models.ReviewForm{
				FullName:   sub.Form.FullName,
				Email:      sub.Form.Email,
				Project:    sub.Form.Project,
				EmployeeID: sub.Form.EmployeeID,
			},
			Documents: docs,
		},
	}
}

// Config accessors substitute the kind's default when the payload is missing
// or mistyped; configuration gaps are benign by design.

func taskConfig(node models.NodeRecord) *models.TaskConfig {
	if cfg, ok := node.Config.(*models.TaskConfig); ok {
		return cfg
	}

	return &models.TaskConfig{}
}

func approvalConfig(node models.NodeRecord) *models.ApprovalConfig {
	if cfg, ok := node.Config.(*models.ApprovalConfig); ok {
		return cfg
	}

	return &models.ApprovalConfig{}
}

func automatedConfig(node models.NodeRecord) *models.AutomatedConfig {
	if cfg, ok := node.Config.(*models.AutomatedConfig); ok {
		return cfg
	}

	return &models.AutomatedConfig{}
}
