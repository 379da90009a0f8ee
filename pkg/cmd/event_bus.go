// Package cmd provides common initialization helpers for command-line
// binaries.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stepflow-io/stepflow/pkg/channels/gochannel"
	"github.com/stepflow-io/stepflow/pkg/eventbus"
)

// NewEventBus creates an event bus for the given provider. Simulations run in
// a single process, so the in-memory channel is the only provider; the switch
// stays so a brokered channel can be added without touching callers.
func NewEventBus(provider string, logger *slog.Logger) eventbus.EventBus {
	switch provider {
	case "memory", "":
		pub, sub, err := gochannel.CreateChannel(watermill.NewSlogLogger(logger))
		if err != nil {
			panic(fmt.Errorf("failed to create in-memory pub/sub: %w", err))
		}

		return eventbus.NewWatermillEventBus(pub, sub)
	default:
		panic("Unsupported event bus provider: " + provider)
	}
}
