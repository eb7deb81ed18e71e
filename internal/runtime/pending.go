package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/countdown/pkg/domain"
)

// Pending is the initial state: it waits for the bootstrap input and routes to
// either the countdown (persisted date) or the date selection.
type Pending struct{}

// NewPending creates the initial state.
func NewPending() *Pending { return &Pending{} }

func (p *Pending) Name() domain.StateName { return domain.StatePending }

func (p *Pending) Load(ctx context.Context, m *Machine) {
	m.presenter.Show(domain.StatePending)
}

func (p *Pending) Unload(ctx context.Context, m *Machine) {
	m.presenter.Hide(domain.StatePending)
}

func (p *Pending) Handler(id domain.InputID) (HandlerFunc, bool) {
	switch id {
	case domain.InputLoaded:
		return p.loaded, true
	case domain.InputDateSelected:
		return p.dateSelected, true
	case domain.InputSelectDate:
		return p.selectDate, true
	}
	return nil, false
}

func (p *Pending) loaded(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	date, err := m.store.Get(ctx)
	if errors.Is(err, domain.ErrDateNotFound) {
		return nil, m.Emit(ctx, domain.NewInput(domain.InputSelectDate, nil))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted date: %w", err)
	}
	return nil, m.Emit(ctx, domain.DateSelected(date))
}

func (p *Pending) dateSelected(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return NewCountdown(), nil
}

func (p *Pending) selectDate(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return NewSelectDate(), nil
}
