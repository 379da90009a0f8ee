// Package testutil provides test data builders for workflow graphs.
package testutil

import (
	"github.com/google/uuid"
	"github.com/stepflow-io/stepflow/pkg/models"
)

// CreateTestNode creates a node of the given kind with its default config.
// Overrides mutate the node after construction.
func CreateTestNode(kind models.NodeKind, overrides ...func(*models.NodeRecord)) models.NodeRecord {
	cfg, _ := models.DefaultConfig(kind)

	node := models.NodeRecord{
		ID:     uuid.New().String(),
		Kind:   kind,
		Label:  defaultLabel(kind),
		Config: cfg,
	}

	for _, override := range overrides {
		override(&node)
	}

	return node
}

// WithID sets the node id.
func WithID(id string) func(*models.NodeRecord) {
	return func(n *models.NodeRecord) {
		n.ID = id
	}
}

// WithLabel sets the node label.
func WithLabel(label string) func(*models.NodeRecord) {
	return func(n *models.NodeRecord) {
		n.Label = label
	}
}

// WithConfig sets the node configuration.
func WithConfig(cfg models.NodeConfig) func(*models.NodeRecord) {
	return func(n *models.NodeRecord) {
		n.Config = cfg
	}
}

// Chain builds a graph connecting the given nodes in sequence with one edge
// between each consecutive pair.
func Chain(nodes ...models.NodeRecord) *models.WorkflowGraph {
	graph := &models.WorkflowGraph{
		Nodes: nodes,
		Edges: make([]models.EdgeRecord, 0, len(nodes)),
	}

	for i := 0; i+1 < len(nodes); i++ {
		graph.Edges = append(graph.Edges, models.EdgeRecord{
			ID:     uuid.New().String(),
			Source: nodes[i].ID,
			Target: nodes[i+1].ID,
		})
	}

	return graph
}

// SubmittedTaskConfig returns a task config with a complete, valid form.
func SubmittedTaskConfig() *models.TaskConfig {
	return &models.TaskConfig{
		Title: "Task",
		Form: models.TaskFormData{
			FullName:   "Ada Lovelace",
			Email:      "ada@example.com",
			Project:    "Analytical Engine",
			EmployeeID: "E-1815",
		},
	}
}

func defaultLabel(kind models.NodeKind) string {
	switch kind {
	case models.KindStart:
		return "Start"
	case models.KindTask:
		return "Task"
	case models.KindApproval:
		return "Approval"
	case models.KindAutomated:
		return "Automated Step"
	case models.KindEnd:
		return "End"
	}

	return string(kind)
}
