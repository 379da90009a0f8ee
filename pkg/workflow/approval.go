package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stepflow-io/stepflow/pkg/models"
)

// emailPattern matches the local@domain.tld shape: no whitespace, no extra
// "@", at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultRequiredFields are checked when an approval node does not list its
// own required field names.
var DefaultRequiredFields = []string{"fullName", "email", "project", "employeeId"}

// ApprovalResult is the outcome of the approval rule set. OK holds iff the
// issue list is empty.
type ApprovalResult struct {
	OK     bool
	Issues []string
}

// CheckApproval runs the approval rule set against the carried submission.
// All rules are evaluated and their issues accumulated, except the
// nothing-submitted case which fails alone.
func CheckApproval(cfg *models.ApprovalConfig, sub Submission) ApprovalResult {
	if !sub.HasFormData() && !sub.HasDocuments() {
		return ApprovalResult{
			Issues: []string{"Employee must provide either form data or upload documents"},
		}
	}

	var issues []string

	if sub.HasFormData() {
		required := cfg.RequiredFields
		if len(required) == 0 {
			required = DefaultRequiredFields
		}

		for _, field := range required {
			if strings.TrimSpace(sub.Form.Field(field)) == "" {
				issues = append(issues, fmt.Sprintf("Missing required field: %s", field))
			}
		}

		if sub.Form.Email != "" && !emailPattern.MatchString(sub.Form.Email) {
			issues = append(issues, "Email format is invalid")
		}
	}

	if sub.HasDocuments() {
		for _, doc := range sub.Documents {
			if doc.Required && !doc.Attached() {
				issues = append(issues, fmt.Sprintf("Missing required document: %s", doc.Name))
			}

			if doc.Attached() && !isPDF(doc.FileName) {
				issues = append(issues, fmt.Sprintf("%q must be a PDF file", doc.FileName))
			}
		}
	}

	return ApprovalResult{OK: len(issues) == 0, Issues: issues}
}

func isPDF(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}
