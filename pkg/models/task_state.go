package models

import "fmt"

// TaskState is the caller-maintained lifecycle of a task node's submission.
// The engine never stores it; the review service drives the transitions.
type TaskState string

const (
	TaskStateUnsubmitted TaskState = "unsubmitted"
	TaskStateSubmitted   TaskState = "submitted"
	TaskStateUnderReview TaskState = "under-review"
	TaskStateRejected    TaskState = "rejected"
	TaskStateApproved    TaskState = "approved"
)

// taskTransitions is the allowed state machine. A rejected submission goes
// back to the employee, so rejected permits re-submission; approved is final.
var taskTransitions = map[TaskState][]TaskState{
	TaskStateUnsubmitted: {TaskStateSubmitted},
	TaskStateSubmitted:   {TaskStateUnderReview, TaskStateUnsubmitted},
	TaskStateUnderReview: {TaskStateApproved, TaskStateRejected},
	TaskStateRejected:    {TaskStateSubmitted},
	TaskStateApproved:    {},
}

// CanTransition reports whether the state machine permits moving to the
// target state.
func (s TaskState) CanTransition(to TaskState) bool {
	for _, next := range taskTransitions[s] {
		if next == to {
			return true
		}
	}

	return false
}

// Transition moves to the target state, or fails if the move is not allowed.
func (s TaskState) Transition(to TaskState) (TaskState, error) {
	if !s.CanTransition(to) {
		return s, fmt.Errorf("task state %q cannot transition to %q", s, to)
	}

	return to, nil
}

// TaskStateOf derives the initial state of a task node from its config:
// submitted once any form field or document is filled in, else unsubmitted.
func TaskStateOf(cfg *TaskConfig) TaskState {
	if cfg != nil && cfg.Submitted() {
		return TaskStateSubmitted
	}

	return TaskStateUnsubmitted
}
