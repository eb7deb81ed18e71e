package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/countdown/internal/logging"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
)

// DefaultMaxTransitions bounds transitions per dispatch and nested dispatch depth.
const DefaultMaxTransitions = 32

// Machine owns the current state and the collaborators states talk to.
// Dispatch is serialized: at most one input is processed at a time, and
// scheduled callbacks re-enter through the same lock.
type Machine struct {
	mu      sync.Mutex
	ctx     context.Context
	current State
	closed  bool
	depth   atomic.Int32

	store     ports.DateStore
	presenter ports.Presenter
	clock     ports.Clock
	scheduler ports.Scheduler

	hooks          domain.LifecycleHooks
	logger         *slog.Logger
	maxTransitions int
}

// Option configures the Machine.
type Option func(*Machine)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithClock replaces the wall clock.
func WithClock(clock ports.Clock) Option {
	return func(m *Machine) {
		m.clock = clock
	}
}

// WithScheduler replaces the timer implementation.
func WithScheduler(s ports.Scheduler) Option {
	return func(m *Machine) {
		m.scheduler = s
	}
}

// WithMaxTransitions sets the transition/nesting bound. Values below 1 are ignored.
func WithMaxTransitions(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.maxTransitions = n
		}
	}
}

// NewMachine creates an unbooted machine. A nil presenter discards all output.
func NewMachine(store ports.DateStore, presenter ports.Presenter, opts ...Option) *Machine {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	m := &Machine{
		store:          store,
		presenter:      presenter,
		clock:          systemClock{},
		scheduler:      timerScheduler{},
		logger:         logging.NewNop(),
		maxTransitions: DefaultMaxTransitions,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Boot installs the initial Pending state and sends it the loaded input.
// ctx bounds the machine's lifetime: scheduled inputs are dropped once it is done.
func (m *Machine) Boot(ctx context.Context) error {
	return m.BootWith(ctx, NewPending())
}

// BootWith is Boot with a caller-provided initial state.
func (m *Machine) BootWith(ctx context.Context, initial State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.current != nil {
		return ErrAlreadyBooted
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m.ctx = ctx
	// Once started, the chain settles even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	initial.Load(ctx, m)
	m.emitLoad(ctx, initial)
	m.current = initial
	m.logger.Debug("machine booted", "state", initial.Name())

	return m.dispatch(ctx, domain.NewInput(domain.InputLoaded, map[string]any{domain.ParamEvent: "ready"}))
}

// Dispatch delivers an input to the current state and settles all resulting
// transitions before returning.
func (m *Machine) Dispatch(ctx context.Context, in domain.Input) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.current == nil {
		return ErrNotBooted
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dispatch(context.WithoutCancel(ctx), in)
}

// Emit dispatches a follow-up input from inside a handler, on the same call
// stack. Outside a handler it returns ErrOutsideHandler; use Dispatch instead.
func (m *Machine) Emit(ctx context.Context, in domain.Input) error {
	if m.depth.Load() == 0 {
		return ErrOutsideHandler
	}
	return m.dispatch(ctx, in)
}

// dispatch runs with m.mu held. Cancellation is checked by the callers that
// start a chain, never inside one.
func (m *Machine) dispatch(ctx context.Context, in domain.Input) error {
	depth := m.depth.Add(1)
	defer m.depth.Add(-1)
	if int(depth) > m.maxTransitions {
		return &domain.TransitionLimitError{Input: in.ID, State: m.current.Name(), Limit: m.maxTransitions}
	}

	for hops := 0; ; hops++ {
		state := m.current
		handle, ok := state.Handler(in.ID)
		if !ok {
			m.logger.Warn("unhandled input", "state", state.Name(), "input", in.ID)
			m.emitUnhandled(ctx, state, in.ID)
			return nil
		}

		next, err := handle(ctx, m, in.Parameters)
		if err != nil {
			return fmt.Errorf("state '%s' failed to handle '%s': %w", state.Name(), in.ID, err)
		}
		if next == nil {
			return nil
		}

		if hops >= m.maxTransitions {
			return &domain.TransitionLimitError{Input: in.ID, State: m.current.Name(), Limit: m.maxTransitions}
		}
		m.transition(ctx, next, in.ID)
		// Replay the same input against the state we just entered.
	}
}

func (m *Machine) transition(ctx context.Context, next State, cause domain.InputID) {
	prev := m.current

	prev.Unload(ctx, m)
	m.emitUnload(ctx, prev)

	next.Load(ctx, m)
	m.emitLoad(ctx, next)

	m.current = next
	m.logger.Debug("transition", "from", prev.Name(), "to", next.Name(), "input", cause)
	m.emitTransition(ctx, prev, next, cause)
}

// Schedule delivers in to the machine after delay, but only if owner is still
// the current state and the returned cancel function has not been called.
// Cancel must be called from a handler or lifecycle method.
func (m *Machine) Schedule(owner State, delay time.Duration, in domain.Input) ports.CancelFunc {
	cancelled := false

	stop := m.scheduler.AfterFunc(delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if cancelled || m.closed || m.current != owner {
			m.logger.Debug("dropping stale scheduled input", "input", in.ID, "owner", owner.Name())
			return
		}
		ctx := m.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		if ctx.Err() != nil {
			return
		}
		if err := m.dispatch(context.WithoutCancel(ctx), in); err != nil {
			m.logger.Error("scheduled dispatch failed", "input", in.ID, "error", err)
		}
	})

	return func() bool {
		cancelled = true
		return stop()
	}
}

// Close unloads the current state, cancelling its scheduled work.
// Further dispatches return ErrClosed.
func (m *Machine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	if m.current != nil {
		ctx := m.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		m.current.Unload(ctx, m)
		m.emitUnload(ctx, m.current)
	}
	return nil
}

// Current returns the name of the current state, or "" before Boot.
func (m *Machine) Current() domain.StateName {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Snapshot returns a read-only view of the machine.
func (m *Machine) Snapshot() domain.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.Snapshot{}
	}
	snap := domain.Snapshot{State: m.current.Name()}
	if c, ok := m.current.(*Countdown); ok {
		snap.Target = c.target
		if c.remaining != nil {
			snap.Remaining = make(domain.Parts, len(c.remaining))
			for k, v := range c.remaining {
				snap.Remaining[k] = v
			}
		}
	}
	return snap
}

// Store returns the date store.
func (m *Machine) Store() ports.DateStore { return m.store }

// Presenter returns the presentation surface.
func (m *Machine) Presenter() ports.Presenter { return m.presenter }

// Now returns the machine's current time.
func (m *Machine) Now() time.Time { return m.clock.Now() }

// Logger returns the machine's logger.
func (m *Machine) Logger() *slog.Logger { return m.logger }

type nopPresenter struct{}

func (nopPresenter) Show(domain.StateName)        {}
func (nopPresenter) Hide(domain.StateName)        {}
func (nopPresenter) RenderRemaining(domain.Parts) {}
func (nopPresenter) ShowError(string)             {}
func (nopPresenter) Celebrate()                   {}
