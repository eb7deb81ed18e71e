package runtime

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
)

// Messages carried by error inputs raised during date validation.
const (
	MsgInvalidDate = "The selected date is invalid."
	MsgPastDate    = "The selected date is in the past."
)

const (
	// TickInterval is the delay between two updateRemaining inputs.
	TickInterval = time.Second

	// FinishDelay is how far ahead finishCountdown moves the target.
	FinishDelay = 5 * time.Second
)

// Countdown validates and persists the target, then renders the remaining
// time once per TickInterval until it arrives.
type Countdown struct {
	target    time.Time
	remaining domain.Parts
	stopTick  ports.CancelFunc
}

// NewCountdown creates a countdown with no target yet; the target is set by
// the dateSelected input replayed after the transition.
func NewCountdown() *Countdown { return &Countdown{} }

func (c *Countdown) Name() domain.StateName { return domain.StateCountdown }

// Target returns the date being counted down to.
func (c *Countdown) Target() time.Time { return c.target }

func (c *Countdown) Load(ctx context.Context, m *Machine) {
	m.presenter.Show(domain.StateCountdown)
}

func (c *Countdown) Unload(ctx context.Context, m *Machine) {
	c.cancelTick()
	m.presenter.Hide(domain.StateCountdown)
}

func (c *Countdown) cancelTick() {
	if c.stopTick != nil {
		c.stopTick()
		c.stopTick = nil
	}
}

func (c *Countdown) Handler(id domain.InputID) (HandlerFunc, bool) {
	switch id {
	case domain.InputDateSelected:
		return c.dateSelected, true
	case domain.InputUpdateRemaining:
		return c.updateRemaining, true
	case domain.InputFinishCountdown:
		return c.finishCountdown, true
	case domain.InputSelectDate:
		return c.selectDate, true
	case domain.InputArrived:
		return c.arrived, true
	case domain.InputError:
		return c.failed, true
	}
	return nil, false
}

func (c *Countdown) dateSelected(ctx context.Context, m *Machine, params map[string]any) (State, error) {
	var p domain.DateSelectedParams
	if err := domain.DecodeParams(params, &p); err != nil || p.Date.IsZero() {
		m.logger.Debug("rejecting invalid date", "error", err)
		return nil, m.Emit(ctx, domain.ErrorInput(MsgInvalidDate))
	}
	if !p.Date.After(m.Now()) {
		return nil, m.Emit(ctx, domain.ErrorInput(MsgPastDate))
	}

	if err := m.store.Set(ctx, p.Date); err != nil {
		return nil, fmt.Errorf("failed to persist date: %w", err)
	}
	c.target = p.Date

	return nil, m.Emit(ctx, domain.NewInput(domain.InputUpdateRemaining, nil))
}

func (c *Countdown) updateRemaining(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	if c.target.IsZero() {
		m.logger.Warn("countdown has no target, ignoring tick")
		return nil, nil
	}

	diff := int64(math.Round(float64(c.target.Sub(m.Now()).Milliseconds()) / 1000))
	if diff <= 0 {
		c.cancelTick()
		return nil, m.Emit(ctx, domain.NewInput(domain.InputArrived, nil))
	}

	c.remaining = domain.RemainingParts(diff)
	m.presenter.RenderRemaining(c.remaining)

	c.cancelTick()
	c.stopTick = m.Schedule(c, TickInterval, domain.NewInput(domain.InputUpdateRemaining, nil))
	return nil, nil
}

// finishCountdown is a shortcut for demos and tests: it restarts the state and
// moves the target a few seconds ahead.
func (c *Countdown) finishCountdown(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	c.Unload(ctx, m)
	c.Load(ctx, m)
	return nil, m.Emit(ctx, domain.DateSelected(m.Now().Add(FinishDelay)))
}

func (c *Countdown) selectDate(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return NewSelectDate(), nil
}

func (c *Countdown) arrived(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	if err := m.store.Remove(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear persisted date: %w", err)
	}
	return NewArrived(), nil
}

func (c *Countdown) failed(ctx context.Context, m *Machine, _ map[string]any) (State, error) {
	return NewSelectDate(), nil
}
