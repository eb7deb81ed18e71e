package ports

import (
	"context"
	"time"
)

// DateStore defines the interface for persisting the countdown target.
// It is a single-key store: there is at most one persisted date.
type DateStore interface {
	// Get returns the persisted target date.
	// Returns domain.ErrDateNotFound if nothing is persisted.
	Get(ctx context.Context) (time.Time, error)

	// Set persists the target date, replacing any previous one.
	Set(ctx context.Context, date time.Time) error

	// Remove deletes the persisted date. Removing a missing date is not an error.
	Remove(ctx context.Context) error
}
