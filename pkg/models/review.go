package models

// ReviewForm is the snapshot of the four standard form fields handed to the
// approver.
type ReviewForm struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Project    string `json:"project"`
	EmployeeID string `json:"employeeId"`
}

// ReviewDocument is the snapshot of one document slot handed to the approver.
type ReviewDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
	FileName string `json:"fileName"`
}

// ReviewPayload is the submitted data under review.
type ReviewPayload struct {
	Form      ReviewForm       `json:"form"`
	Documents []ReviewDocument `json:"documents"`
}

// ApprovalReviewPayload is the contract exchanged with the human decision
// point: the upstream task's submission plus the reasons it failed automatic
// approval. Transient; regenerated on every run.
type ApprovalReviewPayload struct {
	NodeID    string        `json:"nodeId"`
	NodeLabel string        `json:"nodeLabel"`
	Issues    []string      `json:"issues"`
	Payload   ReviewPayload `json:"payload"`
}

// ReviewResolution is the approver's answer to a review payload.
type ReviewResolution string

const (
	// ResolutionApprovePassed re-runs the workflow with no override, for use
	// after the underlying submission has been corrected.
	ResolutionApprovePassed ReviewResolution = "approve-passed"
	// ResolutionApproveForced re-runs the workflow forcing the reviewed
	// approval node through, bypassing its rule checks.
	ResolutionApproveForced ReviewResolution = "approve-forced"
	// ResolutionReject returns the submission to the employee.
	ResolutionReject ReviewResolution = "reject"
)

// ReviewDecision carries the approver's resolution for one approval node.
type ReviewDecision struct {
	NodeID     string           `json:"nodeId"     validate:"required"`
	Resolution ReviewResolution `json:"resolution" validate:"required,oneof=approve-passed approve-forced reject"`
}
