package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateLoad   EventType = "state_load"
	EventStateUnload EventType = "state_unload"
	EventTransition  EventType = "transition"
	EventUnhandled   EventType = "unhandled_input"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StateEvent represents a state being loaded or unloaded.
type StateEvent struct {
	EventBase
	State StateName `json:"state"`
}

// TransitionEvent represents the replacement of the current state.
type TransitionEvent struct {
	EventBase
	From  StateName `json:"from"`
	To    StateName `json:"to"`
	Input InputID   `json:"input"`
}

// UnhandledEvent represents an input the current state has no handler for.
type UnhandledEvent struct {
	EventBase
	State StateName `json:"state"`
	Input InputID   `json:"input"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run while the machine lock is held and must not dispatch.
type LifecycleHooks struct {
	OnLoad       func(context.Context, *StateEvent)
	OnUnload     func(context.Context, *StateEvent)
	OnTransition func(context.Context, *TransitionEvent)
	OnUnhandled  func(context.Context, *UnhandledEvent)
}

// MergeHooks returns hooks that call every non-nil callback of each set, in order.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnLoad: func(ctx context.Context, e *StateEvent) {
			for _, h := range sets {
				if h.OnLoad != nil {
					h.OnLoad(ctx, e)
				}
			}
		},
		OnUnload: func(ctx context.Context, e *StateEvent) {
			for _, h := range sets {
				if h.OnUnload != nil {
					h.OnUnload(ctx, e)
				}
			}
		},
		OnTransition: func(ctx context.Context, e *TransitionEvent) {
			for _, h := range sets {
				if h.OnTransition != nil {
					h.OnTransition(ctx, e)
				}
			}
		},
		OnUnhandled: func(ctx context.Context, e *UnhandledEvent) {
			for _, h := range sets {
				if h.OnUnhandled != nil {
					h.OnUnhandled(ctx, e)
				}
			}
		},
	}
}
