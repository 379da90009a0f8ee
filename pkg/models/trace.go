package models

// StepResult is one entry of an execution trace.
type StepResult struct {
	NodeID    string     `json:"nodeId"`
	NodeLabel string     `json:"nodeLabel"`
	Order     int        `json:"order"`
	Status    NodeStatus `json:"status"`
	Message   string     `json:"message"`
}

// PendingTask names the task node a run suspended on while waiting for the
// employee's submission.
type PendingTask struct {
	NodeID    string `json:"nodeId"`
	NodeLabel string `json:"nodeLabel"`
}

// SimulationTrace is the full result of one simulation run: the step list up
// to completion or the first suspension/failure point, plus whichever
// suspension payload applies. It is regenerated from scratch on every run.
type SimulationTrace struct {
	OK             bool                   `json:"ok"`
	Steps          []StepResult           `json:"steps"`
	Errors         []string               `json:"errors,omitempty"`
	PendingTask    *PendingTask           `json:"pendingTask,omitempty"`
	ApprovalReview *ApprovalReviewPayload `json:"approvalReview,omitempty"`
}

// Suspended reports whether the run halted awaiting external input rather
// than completing or failing.
func (t *SimulationTrace) Suspended() bool {
	return t.PendingTask != nil || t.ApprovalReview != nil
}
