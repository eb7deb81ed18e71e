package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDateStoreContract runs a suite of tests to verify that a DateStore implementation
// adheres to the defined interface contract. The store must start empty.
func RunDateStoreContract(t *testing.T, store DateStore) {
	ctx := context.Background()

	t.Run("Get Empty", func(t *testing.T) {
		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrDateNotFound)
	})

	t.Run("Set and Get", func(t *testing.T) {
		date := time.Date(2031, time.March, 4, 5, 6, 7, 0, time.Local)

		err := store.Set(ctx, date)
		require.NoError(t, err, "Set should not return error")

		loaded, err := store.Get(ctx)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, date.UnixMilli(), loaded.UnixMilli())
	})

	t.Run("Millisecond Precision", func(t *testing.T) {
		date := time.UnixMilli(1900000000123).Add(456 * time.Microsecond)

		require.NoError(t, store.Set(ctx, date))
		loaded, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1900000000123), loaded.UnixMilli())
	})

	t.Run("Overwrite", func(t *testing.T) {
		first := time.UnixMilli(1900000000000)
		second := time.UnixMilli(1900000999000)

		require.NoError(t, store.Set(ctx, first))
		require.NoError(t, store.Set(ctx, second))

		loaded, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.UnixMilli(), loaded.UnixMilli())
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, time.UnixMilli(1900000000000)))

		err := store.Remove(ctx)
		require.NoError(t, err, "Remove should not return error")

		_, err = store.Get(ctx)
		assert.ErrorIs(t, err, domain.ErrDateNotFound, "Get after Remove should return ErrDateNotFound")
	})

	t.Run("Remove Missing", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx))
	})
}
