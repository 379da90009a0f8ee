// Package workflow implements the simulation engine: structural validation,
// execution ordering and the stepwise interpreter with its suspension
// protocol. The engine is pure — graph in, trace out — and never mutates its
// input.
package workflow

import (
	"fmt"

	"github.com/stepflow-io/stepflow/pkg/models"
)

// Validate checks that a graph is well formed enough to execute. It returns
// an accumulated list of descriptive errors; an empty list means valid. It
// never fails on malformed input — absent fields count as empty defaults.
func Validate(graph *models.WorkflowGraph) []string {
	if graph == nil || len(graph.Nodes) == 0 {
		return []string{"Workflow is empty. Add at least Start and End nodes."}
	}

	var errs []string

	var startNodes []models.NodeRecord

	startCount := 0
	endCount := 0

	for _, n := range graph.Nodes {
		switch n.Kind {
		case models.KindStart:
			startCount++

			startNodes = append(startNodes, n)
		case models.KindEnd:
			endCount++
		}
	}

	if startCount != 1 {
		errs = append(errs, fmt.Sprintf("Workflow must contain exactly one Start node, but found %d.", startCount))
	}

	if endCount != 1 {
		errs = append(errs, fmt.Sprintf("Workflow must contain exactly one End node, but found %d.", endCount))
	}

	incoming := make(map[string]int)
	outgoing := make(map[string]int)

	for _, e := range graph.Edges {
		incoming[e.Target]++
		outgoing[e.Source]++
	}

	for _, n := range graph.Nodes {
		if n.Kind != models.KindStart && incoming[n.ID] == 0 {
			errs = append(errs, fmt.Sprintf("Node %q has no incoming connection.", n.Label))
		}

		if n.Kind != models.KindEnd && outgoing[n.ID] == 0 {
			errs = append(errs, fmt.Sprintf("Node %q has no outgoing connection.", n.Label))
		}
	}

	// Reachability only makes sense with a unique origin.
	if startCount == 1 {
		visited := reachableFrom(graph, startNodes[0].ID)

		for _, n := range graph.Nodes {
			if !visited[n.ID] {
				errs = append(errs, fmt.Sprintf("Node %q is not reachable from Start.", n.Label))
			}
		}
	}

	return errs
}

// reachableFrom performs a stack-based sweep over the forward adjacency,
// guarded against revisits so cycles terminate.
func reachableFrom(graph *models.WorkflowGraph, startID string) map[string]bool {
	adjacency := forwardAdjacency(graph)
	visited := make(map[string]bool, len(graph.Nodes))
	stack := []string{startID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] {
			continue
		}

		visited[id] = true
		stack = append(stack, adjacency[id]...)
	}

	return visited
}

// forwardAdjacency maps each node id to its edge targets in edge-list order.
func forwardAdjacency(graph *models.WorkflowGraph) map[string][]string {
	adjacency := make(map[string][]string, len(graph.Nodes))
	for _, e := range graph.Edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
	}

	return adjacency
}
