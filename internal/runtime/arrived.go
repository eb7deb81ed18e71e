package runtime

import (
	"context"

	"github.com/aretw0/countdown/pkg/domain"
)

// Arrived is the terminal state shown once the target is reached.
type Arrived struct{}

// NewArrived creates the arrival state.
func NewArrived() *Arrived { return &Arrived{} }

func (a *Arrived) Name() domain.StateName { return domain.StateArrived }

func (a *Arrived) Load(ctx context.Context, m *Machine) {
	m.presenter.Show(domain.StateArrived)
	m.presenter.Celebrate()
}

func (a *Arrived) Unload(ctx context.Context, m *Machine) {
	m.presenter.Hide(domain.StateArrived)
}

func (a *Arrived) Handler(id domain.InputID) (HandlerFunc, bool) {
	if id == domain.InputArrived {
		return a.arrived, true
	}
	return nil, false
}

// arrived absorbs the replayed arrival input.
func (a *Arrived) arrived(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return nil, nil
}
