package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeRecord_UnmarshalJSON_DispatchesOnKind(t *testing.T) {
	data := []byte(`{
		"id": "node-1",
		"kind": "task",
		"label": "Collect details",
		"config": {
			"title": "Collect details",
			"form": {"fullName": "Ada Lovelace", "email": "ada@example.com"},
			"documents": [{"id": "d1", "name": "Contract", "required": true, "fileName": "contract.pdf"}]
		}
	}`)

	var node NodeRecord
	require.NoError(t, json.Unmarshal(data, &node))

	assert.Equal(t, "node-1", node.ID)
	assert.Equal(t, KindTask, node.Kind)

	cfg, ok := node.Config.(*TaskConfig)
	require.True(t, ok, "expected *TaskConfig, got %T", node.Config)
	assert.Equal(t, "Ada Lovelace", cfg.Form.FullName)
	require.Len(t, cfg.Documents, 1)
	assert.True(t, cfg.Documents[0].Attached())
}

func TestNodeRecord_UnmarshalJSON_MissingConfigDefaults(t *testing.T) {
	for _, kind := range []NodeKind{KindStart, KindTask, KindApproval, KindAutomated, KindEnd} {
		var node NodeRecord

		err := json.Unmarshal([]byte(`{"id": "n", "kind": "`+string(kind)+`", "label": "x"}`), &node)
		require.NoError(t, err, "kind %s", kind)
		require.NotNil(t, node.Config, "kind %s", kind)
		assert.Equal(t, kind, node.Config.Kind())
	}
}

func TestNodeRecord_UnmarshalJSON_NullConfig(t *testing.T) {
	var node NodeRecord

	require.NoError(t, json.Unmarshal([]byte(`{"id": "n", "kind": "end", "config": null}`), &node))
	assert.Equal(t, &EndConfig{}, node.Config)
}

func TestDecodeConfig_UnknownKind(t *testing.T) {
	_, err := DecodeConfig("gateway", nil)
	assert.Error(t, err)
}

func TestTaskConfig_Submitted(t *testing.T) {
	tests := []struct {
		name      string
		config    TaskConfig
		submitted bool
	}{
		{
			name:      "completely empty",
			config:    TaskConfig{},
			submitted: false,
		},
		{
			name: "whitespace only form",
			config: TaskConfig{
				Form: TaskFormData{FullName: "   ", Email: "\t"},
			},
			submitted: false,
		},
		{
			name: "single form field",
			config: TaskConfig{
				Form: TaskFormData{EmployeeID: "E-42"},
			},
			submitted: true,
		},
		{
			name: "document without file",
			config: TaskConfig{
				Documents: []TaskDocument{{ID: "d1", Name: "Contract", Required: true}},
			},
			submitted: false,
		},
		{
			name: "document with file",
			config: TaskConfig{
				Documents: []TaskDocument{{ID: "d1", Name: "Contract", FileName: "contract.pdf"}},
			},
			submitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.submitted, tt.config.Submitted())
		})
	}
}

func TestTaskFormData_Field(t *testing.T) {
	form := TaskFormData{FullName: "Ada", Email: "ada@example.com", Project: "Engine", EmployeeID: "E-1"}

	assert.Equal(t, "Ada", form.Field("fullName"))
	assert.Equal(t, "ada@example.com", form.Field("email"))
	assert.Equal(t, "Engine", form.Field("project"))
	assert.Equal(t, "E-1", form.Field("employeeId"))
	assert.Empty(t, form.Field("managerName"))
}

func TestWorkflowGraph_SerializationRoundTrip(t *testing.T) {
	graph := WorkflowGraph{
		Nodes: []NodeRecord{
			{ID: "s", Kind: KindStart, Label: "Start", Config: &StartConfig{Title: "Start"}},
			{ID: "t", Kind: KindTask, Label: "Task", Config: &TaskConfig{
				Title: "Task",
				Form:  TaskFormData{FullName: "Ada"},
			}},
			{ID: "e", Kind: KindEnd, Label: "End", Config: &EndConfig{EndMessage: "Done", SummaryFlag: true}},
		},
		Edges: []EdgeRecord{
			{ID: "e1", Source: "s", Target: "t"},
			{ID: "e2", Source: "t", Target: "e"},
		},
	}

	first, err := json.Marshal(graph)
	require.NoError(t, err)

	var decoded WorkflowGraph
	require.NoError(t, json.Unmarshal(first, &decoded))

	second, err := json.Marshal(decoded)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestTaskState_Transitions(t *testing.T) {
	assert.True(t, TaskStateUnsubmitted.CanTransition(TaskStateSubmitted))
	assert.True(t, TaskStateSubmitted.CanTransition(TaskStateUnderReview))
	assert.True(t, TaskStateUnderReview.CanTransition(TaskStateApproved))
	assert.True(t, TaskStateUnderReview.CanTransition(TaskStateRejected))
	assert.True(t, TaskStateRejected.CanTransition(TaskStateSubmitted))

	assert.False(t, TaskStateUnsubmitted.CanTransition(TaskStateApproved))
	assert.False(t, TaskStateApproved.CanTransition(TaskStateRejected))

	state, err := TaskStateUnderReview.Transition(TaskStateRejected)
	require.NoError(t, err)
	assert.Equal(t, TaskStateRejected, state)

	_, err = TaskStateApproved.Transition(TaskStateUnderReview)
	assert.Error(t, err)
}

func TestTaskStateOf(t *testing.T) {
	assert.Equal(t, TaskStateUnsubmitted, TaskStateOf(nil))
	assert.Equal(t, TaskStateUnsubmitted, TaskStateOf(&TaskConfig{}))
	assert.Equal(t, TaskStateSubmitted, TaskStateOf(&TaskConfig{
		Form: TaskFormData{Email: "ada@example.com"},
	}))
}
