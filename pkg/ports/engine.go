package ports

import (
	"context"

	"github.com/aretw0/countdown/pkg/domain"
)

// Engine is the surface adapters (HTTP, MCP) use to drive a running machine.
type Engine interface {
	// Receive validates a raw value as an Input and dispatches it.
	// Returns domain.ErrInvalidInput (wrapped) for malformed values.
	Receive(ctx context.Context, raw any) error

	// SelectDate parses a yyyy-mm-dd literal and dispatches the resulting input.
	SelectDate(ctx context.Context, text string) error

	// Snapshot returns the current state of the machine.
	Snapshot() domain.Snapshot
}
