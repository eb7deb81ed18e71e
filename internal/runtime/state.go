package runtime

import (
	"context"

	"github.com/aretw0/countdown/pkg/domain"
)

// HandlerFunc handles one input for a state. Returning a nil State keeps the
// current state; returning a new State transitions to it, after which the
// same input is replayed against the new state.
type HandlerFunc func(ctx context.Context, m *Machine, params map[string]any) (State, error)

// State is one mode of the machine. A state owns the resources it acquires in
// Load and must release all of them (including scheduled work) in Unload.
type State interface {
	// Name identifies the variant.
	Name() domain.StateName

	// Load acquires the state's resources. It runs before the state becomes current.
	Load(ctx context.Context, m *Machine)

	// Unload releases everything Load acquired. It runs to completion before the
	// next state's Load.
	Unload(ctx context.Context, m *Machine)

	// Handler returns the handler for an input id, or false if the state does not
	// understand it.
	Handler(id domain.InputID) (HandlerFunc, bool)
}
