package runtime_test

import (
	"testing"

	"github.com/aretw0/countdown/internal/runtime"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	allStates = []domain.StateName{domain.StatePending, domain.StateSelectDate, domain.StateCountdown, domain.StateArrived}
	allInputs = []domain.InputID{
		domain.InputLoaded, domain.InputSelectDate, domain.InputDateSelected, domain.InputError,
		domain.InputUpdateRemaining, domain.InputFinishCountdown, domain.InputArrived,
	}
)

func TestTransitionTable_MatchesHandlers(t *testing.T) {
	declared := make(map[domain.StateName]map[domain.InputID]bool)
	for _, e := range runtime.TransitionTable() {
		if declared[e.From] == nil {
			declared[e.From] = make(map[domain.InputID]bool)
		}
		assert.False(t, declared[e.From][e.Input], "duplicate edge %s/%s", e.From, e.Input)
		declared[e.From][e.Input] = true

		if e.Kind == domain.EdgeTransition {
			_, ok := runtime.NewState(e.To)
			assert.True(t, ok, "edge %s/%s targets unknown state %s", e.From, e.Input, e.To)
		}
	}

	for _, name := range allStates {
		state, ok := runtime.NewState(name)
		require.True(t, ok)
		assert.Equal(t, name, state.Name())

		for _, id := range allInputs {
			_, handled := state.Handler(id)
			assert.Equal(t, declared[name][id], handled, "state %s input %s", name, id)
		}
	}
}

func TestNewState_Unknown(t *testing.T) {
	_, ok := runtime.NewState("nope")
	assert.False(t, ok)
}
