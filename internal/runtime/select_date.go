package runtime

import (
	"context"

	"github.com/aretw0/countdown/pkg/domain"
)

// SelectDate shows the date entry view and surfaces validation errors.
type SelectDate struct{}

// NewSelectDate creates the date selection state.
func NewSelectDate() *SelectDate { return &SelectDate{} }

func (s *SelectDate) Name() domain.StateName { return domain.StateSelectDate }

func (s *SelectDate) Load(ctx context.Context, m *Machine) {
	m.presenter.Show(domain.StateSelectDate)
}

func (s *SelectDate) Unload(ctx context.Context, m *Machine) {
	m.presenter.Hide(domain.StateSelectDate)
}

func (s *SelectDate) Handler(id domain.InputID) (HandlerFunc, bool) {
	switch id {
	case domain.InputSelectDate:
		return s.selectDate, true
	case domain.InputError:
		return s.showError, true
	case domain.InputDateSelected:
		return s.dateSelected, true
	}
	return nil, false
}

// selectDate is idempotent: the view is already shown.
func (s *SelectDate) selectDate(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return nil, nil
}

func (s *SelectDate) showError(ctx context.Context, m *Machine, params map[string]any) (State, error) {
	var p domain.ErrorParams
	if err := domain.DecodeParams(params, &p); err != nil {
		m.logger.Warn("malformed error input", "error", err)
	}
	m.presenter.ShowError(p.Message)
	return nil, nil
}

func (s *SelectDate) dateSelected(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return NewCountdown(), nil
}
