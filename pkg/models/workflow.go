// Package models defines the core domain models for workflow graph simulation.
package models

// NodeKind determines a node's config shape and execution semantics.
type NodeKind string

const (
	KindStart     NodeKind = "start"
	KindTask      NodeKind = "task"
	KindApproval  NodeKind = "approval"
	KindAutomated NodeKind = "automated"
	KindEnd       NodeKind = "end"
)

// NodeStatus is the presentation state painted back onto a node from a trace.
type NodeStatus string

const (
	NodeStatusIdle       NodeStatus = "idle"
	NodeStatusInProgress NodeStatus = "in-progress"
	NodeStatusCompleted  NodeStatus = "completed"
	NodeStatusError      NodeStatus = "error"
)

// WorkflowGraph is the wire shape exchanged with the graph-editing collaborator:
// node and edge lists with all transient UI fields already stripped. The engine
// never mutates it.
type WorkflowGraph struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// NodeRecord is one typed step in a workflow graph.
type NodeRecord struct {
	ID     string     `json:"id"     validate:"required"`
	Kind   NodeKind   `json:"kind"   validate:"required"`
	Label  string     `json:"label"`
	Config NodeConfig `json:"config"`
}

// EdgeRecord is a directed, unweighted connection between two nodes.
// Duplicate edges between the same pair are tolerated.
type EdgeRecord struct {
	ID     string `json:"id"     validate:"required"`
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// FindNode returns the node with the given id, if present.
func (g *WorkflowGraph) FindNode(id string) (NodeRecord, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return NodeRecord{}, false
}
