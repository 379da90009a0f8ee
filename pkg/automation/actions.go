package automation

import (
	"context"
	"fmt"
)

func sendEmail(_ context.Context, params map[string]string) Result {
	if params["to"] == "" || params["subject"] == "" {
		return Result{OK: false, Message: "Missing email 'to' or 'subject'."}
	}

	return Result{OK: true, Message: fmt.Sprintf("Email sent to %s (mocked)", params["to"])}
}

func generateDoc(_ context.Context, params map[string]string) Result {
	if params["template"] == "" || params["recipient"] == "" {
		return Result{OK: false, Message: "Missing template or recipient."}
	}

	return Result{OK: true, Message: "Document generated (mocked)"}
}
