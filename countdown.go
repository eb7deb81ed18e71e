package countdown

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/countdown/internal/dateinput"
	"github.com/aretw0/countdown/internal/runtime"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
)

// Widget is the high-level entry point: a countdown machine bound to a date
// store and a presenter. It implements ports.Engine.
type Widget struct {
	machine  *runtime.Machine
	location *time.Location
	logger   *slog.Logger
}

var _ ports.Engine = (*Widget)(nil)

type settings struct {
	runtimeOpts []runtime.Option
	hooks       []domain.LifecycleHooks
	location    *time.Location
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Widget.
type Option func(*settings)

// WithLifecycleHooks registers observability hooks. Repeated calls accumulate.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = append(s.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLocation sets the zone date literals are interpreted in (default: local).
func WithLocation(loc *time.Location) Option {
	return func(s *settings) {
		s.location = loc
	}
}

// WithClock replaces the wall clock.
func WithClock(clock ports.Clock) Option {
	return func(s *settings) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithClock(clock))
	}
}

// WithScheduler replaces the timer implementation.
func WithScheduler(sched ports.Scheduler) Option {
	return func(s *settings) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithScheduler(sched))
	}
}

// WithMaxTransitions bounds transitions per dispatch.
func WithMaxTransitions(n int) Option {
	return func(s *settings) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithMaxTransitions(n))
	}
}

// New creates an unbooted widget. A nil presenter discards all output.
func New(store ports.DateStore, presenter ports.Presenter, opts ...Option) *Widget {
	s := &settings{location: time.Local}
	for _, opt := range opts {
		opt(s)
	}

	runtimeOpts := append([]runtime.Option{}, s.runtimeOpts...)
	if s.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(s.logger))
	}
	if len(s.hooks) > 0 {
		runtimeOpts = append(runtimeOpts, runtime.WithLifecycleHooks(domain.MergeHooks(s.hooks...)))
	}

	m := runtime.NewMachine(store, presenter, runtimeOpts...)
	loc := s.location
	if loc == nil {
		loc = time.Local
	}
	return &Widget{machine: m, location: loc, logger: m.Logger()}
}

// Boot enters the initial state and settles it, reading the persisted date.
// ctx bounds the widget's scheduled work.
func (w *Widget) Boot(ctx context.Context) error {
	return w.machine.Boot(ctx)
}

// Receive validates raw as an Input and dispatches it. Values that are not
// Inputs abort with an error matching domain.ErrInvalidInput.
func (w *Widget) Receive(ctx context.Context, raw any) error {
	in, err := domain.ParseInput(raw)
	if err != nil {
		w.logger.Error("rejected input", "error", err)
		return err
	}
	return w.machine.Dispatch(ctx, in)
}

// Send dispatches an already typed input.
func (w *Widget) Send(ctx context.Context, in domain.Input) error {
	return w.machine.Dispatch(ctx, in)
}

// SelectDate parses a yyyy-mm-dd literal and dispatches dateSelected, or an
// error input carrying dateinput.MsgMalformed.
func (w *Widget) SelectDate(ctx context.Context, text string) error {
	return w.machine.Dispatch(ctx, dateinput.ToInput(text, w.location))
}

// Snapshot returns the current state.
func (w *Widget) Snapshot() domain.Snapshot {
	return w.machine.Snapshot()
}

// Close unloads the current state and stops its timers.
func (w *Widget) Close() error {
	return w.machine.Close()
}
