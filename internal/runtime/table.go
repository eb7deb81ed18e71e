package runtime

import "github.com/aretw0/countdown/pkg/domain"

// transitionTable mirrors the Handler switches of the four states.
// TestTransitionTable_MatchesHandlers keeps them in sync.
var transitionTable = []domain.Edge{
	{From: domain.StatePending, Input: domain.InputLoaded, Kind: domain.EdgeEmit, Emits: []domain.InputID{domain.InputDateSelected, domain.InputSelectDate}},
	{From: domain.StatePending, Input: domain.InputDateSelected, Kind: domain.EdgeTransition, To: domain.StateCountdown},
	{From: domain.StatePending, Input: domain.InputSelectDate, Kind: domain.EdgeTransition, To: domain.StateSelectDate},

	{From: domain.StateSelectDate, Input: domain.InputSelectDate, Kind: domain.EdgeStay},
	{From: domain.StateSelectDate, Input: domain.InputError, Kind: domain.EdgeStay},
	{From: domain.StateSelectDate, Input: domain.InputDateSelected, Kind: domain.EdgeTransition, To: domain.StateCountdown},

	{From: domain.StateCountdown, Input: domain.InputDateSelected, Kind: domain.EdgeEmit, Emits: []domain.InputID{domain.InputError, domain.InputUpdateRemaining}},
	{From: domain.StateCountdown, Input: domain.InputUpdateRemaining, Kind: domain.EdgeEmit, Emits: []domain.InputID{domain.InputArrived, domain.InputUpdateRemaining}},
	{From: domain.StateCountdown, Input: domain.InputFinishCountdown, Kind: domain.EdgeEmit, Emits: []domain.InputID{domain.InputDateSelected}},
	{From: domain.StateCountdown, Input: domain.InputSelectDate, Kind: domain.EdgeTransition, To: domain.StateSelectDate},
	{From: domain.StateCountdown, Input: domain.InputArrived, Kind: domain.EdgeTransition, To: domain.StateArrived},
	{From: domain.StateCountdown, Input: domain.InputError, Kind: domain.EdgeTransition, To: domain.StateSelectDate},

	{From: domain.StateArrived, Input: domain.InputArrived, Kind: domain.EdgeStay},
}

// TransitionTable returns a copy of the (state, input) table.
func TransitionTable() []domain.Edge {
	out := make([]domain.Edge, len(transitionTable))
	copy(out, transitionTable)
	return out
}

// NewState creates a fresh instance of the named variant.
func NewState(name domain.StateName) (State, bool) {
	switch name {
	case domain.StatePending:
		return NewPending(), true
	case domain.StateSelectDate:
		return NewSelectDate(), true
	case domain.StateCountdown:
		return NewCountdown(), true
	case domain.StateArrived:
		return NewArrived(), true
	}
	return nil, false
}
