package workflow

import "github.com/stepflow-io/stepflow/pkg/models"

// Submission is the carried-forward record of the most recent task's
// submitted data, consumed by the next approval node. It is reset at the
// start of each run and replaced wholesale whenever a task completes.
type Submission struct {
	Form      models.TaskFormData
	Documents []models.TaskDocument
}

// HasFormData reports whether any of the four form fields carries a
// non-blank value.
func (s Submission) HasFormData() bool {
	return !s.Form.Empty()
}

// HasDocuments reports whether any document has a file attached.
func (s Submission) HasDocuments() bool {
	for _, d := range s.Documents {
		if d.Attached() {
			return true
		}
	}

	return false
}

func submissionFrom(cfg *models.TaskConfig) Submission {
	docs := make([]models.TaskDocument, len(cfg.Documents))
	copy(docs, cfg.Documents)

	return Submission{
		Form:      cfg.Form,
		Documents: docs,
	}
}
