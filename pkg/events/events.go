// Package events defines the simulation lifecycle events published on the
// event bus.
package events

import "time"

type EventType string

const Topic = "stepflow.simulations"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	SimulationStartedEvent   EventType = "simulation.started"
	SimulationCompletedEvent EventType = "simulation.completed"
	SimulationSuspendedEvent EventType = "simulation.suspended"
	SimulationFailedEvent    EventType = "simulation.failed"
)

// Suspension reasons carried by SimulationSuspended.
const (
	SuspensionTaskPending      = "task-pending"
	SuspensionApprovalRequired = "approval-required"
)

type BaseEvent struct {
	ID           string         `json:"id"`
	Type         EventType      `json:"type"`
	Timestamp    time.Time      `json:"timestamp"`
	SimulationID string         `json:"simulation_id"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type SimulationStarted struct {
	BaseEvent

	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

func (e SimulationStarted) GetType() EventType {
	return SimulationStartedEvent
}

type SimulationCompleted struct {
	BaseEvent

	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration"`
}

func (e SimulationCompleted) GetType() EventType {
	return SimulationCompletedEvent
}

type SimulationSuspended struct {
	BaseEvent

	Reason string `json:"reason"`
	NodeID string `json:"node_id"`
}

func (e SimulationSuspended) GetType() EventType {
	return SimulationSuspendedEvent
}

type SimulationFailed struct {
	BaseEvent

	Errors []string `json:"errors"`
}

func (e SimulationFailed) GetType() EventType {
	return SimulationFailedEvent
}
