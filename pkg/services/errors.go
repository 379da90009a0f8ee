// Package services orchestrates simulation runs and review resolutions on
// top of the engine.
package services

import "errors"

var (
	// ErrGraphNotExecutable marks a run that never started because the graph
	// failed structural validation.
	ErrGraphNotExecutable = errors.New("workflow graph is not executable")

	// ErrUnknownResolution is returned for a review decision whose resolution
	// is not one of approve-passed, approve-forced, reject.
	ErrUnknownResolution = errors.New("unknown review resolution")

	// ErrReviewNodeNotFound is returned when a review decision names a node
	// that does not exist in the submitted graph.
	ErrReviewNodeNotFound = errors.New("reviewed node not found in workflow")
)

// IsValidationError checks if an error is a client error that should map to
// HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownResolution)
}

// IsNotFoundError checks if an error should map to HTTP 404.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrReviewNodeNotFound)
}
