// Package automation provides the registry of automated actions available to
// workflow nodes. All bundled handlers are mocks: they validate their
// parameters and return confirmation messages without side effects. The
// request/response contract is the pluggable boundary a real deployment
// replaces with side-effecting handlers.
package automation

import (
	"context"
	"fmt"
	"log/slog"
)

// Action is the metadata exposed for one registered automation.
type Action struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Params []string `json:"params"`
}

// Result is the outcome of dispatching one action.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Handler executes one action against its parameter map.
type Handler func(ctx context.Context, params map[string]string) Result

// Registry holds the available actions keyed by id, in registration order.
type Registry struct {
	logger   *slog.Logger
	actions  []Action
	handlers map[string]Handler
}

// NewRegistry creates a registry pre-loaded with the bundled mock actions.
func NewRegistry(logger *slog.Logger) *Registry {
	r := &Registry{
		logger:   logger,
		handlers: make(map[string]Handler),
	}

	r.Register(Action{ID: "send_email", Label: "Send Email", Params: []string{"to", "subject"}}, sendEmail)
	r.Register(Action{ID: "generate_doc", Label: "Generate Document", Params: []string{"template", "recipient"}}, generateDoc)

	return r
}

// Register adds an action and its handler. Registering an existing id
// replaces its handler but keeps its listing position.
func (r *Registry) Register(action Action, handler Handler) {
	if _, exists := r.handlers[action.ID]; !exists {
		r.actions = append(r.actions, action)
	}

	r.handlers[action.ID] = handler
}

// Actions lists the registered actions in registration order.
func (r *Registry) Actions() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)

	return out
}

// Dispatch runs the action registered under actionID. Unknown ids succeed
// generically; an unregistered action is not an error.
func (r *Registry) Dispatch(ctx context.Context, actionID string, params map[string]string) Result {
	handler, ok := r.handlers[actionID]
	if !ok {
		r.logger.DebugContext(ctx, "No handler registered, executing generically", "action_id", actionID)

		return Result{OK: true, Message: "Automation executed."}
	}

	result := handler(ctx, params)

	r.logger.InfoContext(ctx, "Dispatched automation",
		"action_id", actionID,
		"ok", result.OK,
	)

	return result
}

// HealthCheck reports whether the registry is usable.
func (r *Registry) HealthCheck() (string, bool) {
	if len(r.handlers) == 0 {
		return "No automations registered", false
	}

	return fmt.Sprintf("%d automations registered", len(r.handlers)), true
}
