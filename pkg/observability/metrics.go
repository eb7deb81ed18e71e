package observability

import (
	"context"
	"errors"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "countdown"

// Metrics counts transitions and unhandled inputs and tracks the active state.
type Metrics struct {
	transitions *prometheus.CounterVec
	unhandled   *prometheus.CounterVec
	active      *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by a previous call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Total number of state transitions",
			},
			[]string{"from", "to"},
		),
		unhandled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unhandled_inputs_total",
				Help:      "Inputs the current state had no handler for",
			},
			[]string{"state", "input"},
		),
		active: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "state_active",
				Help:      "1 for the currently loaded state, 0 otherwise",
			},
			[]string{"state"},
		),
	}

	var err error
	if m.transitions, err = register(reg, m.transitions); err != nil {
		return nil, err
	}
	if m.unhandled, err = register(reg, m.unhandled); err != nil {
		return nil, err
	}
	if m.active, err = register(reg, m.active); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.StateEvent) {
			m.active.WithLabelValues(string(e.State)).Set(1)
		},
		OnUnload: func(ctx context.Context, e *domain.StateEvent) {
			m.active.WithLabelValues(string(e.State)).Set(0)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.From), string(e.To)).Inc()
		},
		OnUnhandled: func(ctx context.Context, e *domain.UnhandledEvent) {
			m.unhandled.WithLabelValues(string(e.State), string(e.Input)).Inc()
		},
	}
}
