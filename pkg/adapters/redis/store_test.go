package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/countdown/pkg/adapters/redis"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := setup(t)

	store := redis.NewFromClient(client)
	ports.RunDateStoreContract(t, store)
}

func TestRedisStore_KeyLayout(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client, redis.WithPrefix("widget:"))

	require.NoError(t, store.Set(context.Background(), time.UnixMilli(1900000000000)))

	val, err := mr.Get("widget:date")
	require.NoError(t, err)
	assert.Equal(t, "1900000000000", val)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := setup(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, time.UnixMilli(1900000000000)))

	_, err := store.Get(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrDateNotFound)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client)

	require.NoError(t, mr.Set("countdown:date", "tomorrow"))

	_, err := store.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDateNotFound)
}
