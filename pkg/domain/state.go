package domain

import "time"

// StateName identifies a state variant.
type StateName string

const (
	StatePending    StateName = "pending"
	StateSelectDate StateName = "selectDate"
	StateCountdown  StateName = "countdown"
	StateArrived    StateName = "arrived"
)

// Snapshot is a read-only view of the machine, used by adapters.
type Snapshot struct {
	// State is the current state variant.
	State StateName `json:"state"`

	// Target is the date being counted down to (zero unless counting down).
	Target time.Time `json:"target,omitempty"`

	// Remaining is the last rendered decomposition, if any.
	Remaining Parts `json:"remaining,omitempty"`
}

// EdgeKind classifies how a state reacts to an input.
type EdgeKind string

const (
	// EdgeTransition replaces the current state and replays the input.
	EdgeTransition EdgeKind = "transition"
	// EdgeStay keeps the current state.
	EdgeStay EdgeKind = "stay"
	// EdgeEmit keeps the current state and dispatches a follow-up input.
	EdgeEmit EdgeKind = "emit"
)

// Edge documents one (state, input) pair of the transition table.
// For EdgeEmit, Emits lists the inputs that may be raised.
type Edge struct {
	From  StateName `json:"from"`
	Input InputID   `json:"input"`
	Kind  EdgeKind  `json:"kind"`
	To    StateName `json:"to,omitempty"`
	Emits []InputID `json:"emits,omitempty"`
}
