package workflow

import "github.com/stepflow-io/stepflow/pkg/models"

// Order linearizes a validated graph into its execution order: a depth-first
// preorder walk from the start node, descending into outgoing edges in
// edge-list order. Each node appears once, at its first discovery, so
// diamonds and fan-in do not duplicate entries and cycles terminate. The
// result is deterministic for a given graph.
//
// If no start node exists the node list is returned unchanged; validation
// rejects such graphs before execution.
func Order(graph *models.WorkflowGraph) []models.NodeRecord {
	if graph == nil {
		return nil
	}

	byID := make(map[string]models.NodeRecord, len(graph.Nodes))
	for _, n := range graph.Nodes {
		byID[n.ID] = n
	}

	var start *models.NodeRecord

	for i := range graph.Nodes {
		if graph.Nodes[i].Kind == models.KindStart {
			start = &graph.Nodes[i]

			break
		}
	}

	if start == nil {
		return graph.Nodes
	}

	adjacency := forwardAdjacency(graph)
	visited := make(map[string]bool, len(graph.Nodes))
	ordered := make([]models.NodeRecord, 0, len(graph.Nodes))

	var walk func(id string)
	walk = func(id string) {
		if visited[id] {
			return
		}

		visited[id] = true

		node, ok := byID[id]
		if !ok {
			// Dangling edge target; skip silently.
			return
		}

		ordered = append(ordered, node)

		for _, next := range adjacency[id] {
			walk(next)
		}
	}

	walk(start.ID)

	return ordered
}
