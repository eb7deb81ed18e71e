package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.DateStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation at debug level and failures
// at error level. A missing date is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.DateStore) ports.DateStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Get(ctx context.Context) (time.Time, error) {
	start := time.Now()
	date, err := m.next.Get(ctx)
	switch {
	case errors.Is(err, domain.ErrDateNotFound):
		m.logger.Debug("store get", "found", false, "duration", time.Since(start))
	case err != nil:
		m.logger.Error("store get failed", "error", err)
	default:
		m.logger.Debug("store get", "found", true, "date", date.UnixMilli(), "duration", time.Since(start))
	}
	return date, err
}

func (m *loggingMiddleware) Set(ctx context.Context, date time.Time) error {
	start := time.Now()
	if err := m.next.Set(ctx, date); err != nil {
		m.logger.Error("store set failed", "date", date.UnixMilli(), "error", err)
		return err
	}
	m.logger.Debug("store set", "date", date.UnixMilli(), "duration", time.Since(start))
	return nil
}

func (m *loggingMiddleware) Remove(ctx context.Context) error {
	start := time.Now()
	if err := m.next.Remove(ctx); err != nil {
		m.logger.Error("store remove failed", "error", err)
		return err
	}
	m.logger.Debug("store remove", "duration", time.Since(start))
	return nil
}
