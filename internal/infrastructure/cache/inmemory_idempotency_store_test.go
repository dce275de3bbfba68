package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins, second is rejected", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		first, err := store.MarkProcessed(ctx, "delivery-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, first)

		second, err := store.MarkProcessed(ctx, "delivery-1", time.Minute)
		require.NoError(t, err)
		assert.False(t, second)
	})

	t.Run("distinct deliveries are independent", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		a, err := store.MarkProcessed(ctx, "delivery-a", time.Minute)
		require.NoError(t, err)
		b, err := store.MarkProcessed(ctx, "delivery-b", time.Minute)
		require.NoError(t, err)
		assert.True(t, a)
		assert.True(t, b)
	})

	t.Run("IsProcessed reflects marks", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		processed, err := store.IsProcessed(ctx, "delivery-x")
		require.NoError(t, err)
		assert.False(t, processed)

		_, err = store.MarkProcessed(ctx, "delivery-x", time.Minute)
		require.NoError(t, err)

		processed, err = store.IsProcessed(ctx, "delivery-x")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("expired entries can be marked again", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "delivery-ttl", time.Millisecond)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		again, err := store.MarkProcessed(ctx, "delivery-ttl", time.Minute)
		require.NoError(t, err)
		assert.True(t, again)
	})
}
