package automation

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.DiscardHandler))
}

func TestNewRegistry_BundledActions(t *testing.T) {
	registry := newTestRegistry()

	actions := registry.Actions()
	require.Len(t, actions, 2)

	assert.Equal(t, "send_email", actions[0].ID)
	assert.Equal(t, []string{"to", "subject"}, actions[0].Params)
	assert.Equal(t, "generate_doc", actions[1].ID)
	assert.Equal(t, []string{"template", "recipient"}, actions[1].Params)
}

func TestDispatch_SendEmail(t *testing.T) {
	registry := newTestRegistry()

	result := registry.Dispatch(context.Background(), "send_email", map[string]string{
		"to":      "ada@example.com",
		"subject": "Welcome",
	})

	assert.True(t, result.OK)
	assert.Equal(t, "Email sent to ada@example.com (mocked)", result.Message)

	result = registry.Dispatch(context.Background(), "send_email", map[string]string{"to": "ada@example.com"})

	assert.False(t, result.OK)
	assert.Equal(t, "Missing email 'to' or 'subject'.", result.Message)
}

func TestDispatch_GenerateDoc(t *testing.T) {
	registry := newTestRegistry()

	result := registry.Dispatch(context.Background(), "generate_doc", map[string]string{
		"template":  "offer-letter",
		"recipient": "Ada Lovelace",
	})

	assert.True(t, result.OK)
	assert.Equal(t, "Document generated (mocked)", result.Message)

	result = registry.Dispatch(context.Background(), "generate_doc", nil)

	assert.False(t, result.OK)
	assert.Equal(t, "Missing template or recipient.", result.Message)
}

func TestDispatch_UnknownActionSucceedsGenerically(t *testing.T) {
	registry := newTestRegistry()

	result := registry.Dispatch(context.Background(), "launch_rocket", nil)

	assert.True(t, result.OK)
	assert.Equal(t, "Automation executed.", result.Message)
}

func TestRegister_ReplacesHandlerKeepsPosition(t *testing.T) {
	registry := newTestRegistry()

	registry.Register(Action{ID: "send_email", Label: "Send Email v2"}, func(_ context.Context, _ map[string]string) Result {
		return Result{OK: true, Message: "replaced"}
	})

	actions := registry.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, "send_email", actions[0].ID)

	result := registry.Dispatch(context.Background(), "send_email", nil)
	assert.Equal(t, "replaced", result.Message)
}

func TestHealthCheck(t *testing.T) {
	registry := newTestRegistry()

	message, ok := registry.HealthCheck()
	assert.True(t, ok)
	assert.Equal(t, "2 automations registered", message)

	empty := &Registry{handlers: map[string]Handler{}, logger: slog.New(slog.DiscardHandler)}

	message, ok = empty.HealthCheck()
	assert.False(t, ok)
	assert.Equal(t, "No automations registered", message)
}
