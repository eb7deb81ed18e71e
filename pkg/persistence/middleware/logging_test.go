package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/countdown/internal/logging"
	"github.com/aretw0/countdown/pkg/adapters/memory"
	"github.com/aretw0/countdown/pkg/persistence/middleware"
	"github.com/aretw0/countdown/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_Contract(t *testing.T) {
	ports.RunDateStoreContract(t, middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logging.NewNop())))
}

func TestLoggingMiddleware_Logs(t *testing.T) {
	var buf bytes.Buffer
	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logging.NewWithWriter(&buf, slog.LevelDebug)))
	ctx := context.Background()

	_, _ = store.Get(ctx)
	assert.Contains(t, buf.String(), "found=false")
	assert.NotContains(t, buf.String(), "level=ERROR")

	require.NoError(t, store.Set(ctx, time.UnixMilli(42)))
	assert.Contains(t, buf.String(), `msg="store set" date=42`)
}

type brokenStore struct{}

func (brokenStore) Get(context.Context) (time.Time, error) { return time.Time{}, errors.New("down") }
func (brokenStore) Set(context.Context, time.Time) error   { return errors.New("down") }
func (brokenStore) Remove(context.Context) error           { return errors.New("down") }

func TestLoggingMiddleware_Failures(t *testing.T) {
	var buf bytes.Buffer
	store := middleware.NewLoggingMiddleware(logging.NewWithWriter(&buf, slog.LevelInfo))(brokenStore{})
	ctx := context.Background()

	_, err := store.Get(ctx)
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, time.Now()))
	assert.Error(t, store.Remove(ctx))

	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("level=ERROR")))
	assert.Contains(t, buf.String(), `err=down`)
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.DateStore) ports.DateStore {
			order = append(order, name)
			return next
		}
	}

	middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))

	assert.Equal(t, []string{"inner", "outer"}, order, "inner wraps the store first")
}
