package runtime

import (
	"context"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
)

func (m *Machine) emitLoad(ctx context.Context, s State) {
	if m.hooks.OnLoad == nil {
		return
	}
	m.hooks.OnLoad(ctx, &domain.StateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStateLoad},
		State:     s.Name(),
	})
}

func (m *Machine) emitUnload(ctx context.Context, s State) {
	if m.hooks.OnUnload == nil {
		return
	}
	m.hooks.OnUnload(ctx, &domain.StateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStateUnload},
		State:     s.Name(),
	})
}

func (m *Machine) emitTransition(ctx context.Context, from, to State, input domain.InputID) {
	if m.hooks.OnTransition == nil {
		return
	}
	m.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
		From:      from.Name(),
		To:        to.Name(),
		Input:     input,
	})
}

func (m *Machine) emitUnhandled(ctx context.Context, s State, input domain.InputID) {
	if m.hooks.OnUnhandled == nil {
		return
	}
	m.hooks.OnUnhandled(ctx, &domain.UnhandledEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventUnhandled},
		State:     s.Name(),
		Input:     input,
	})
}
