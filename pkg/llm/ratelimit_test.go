package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketStartsFull(t *testing.T) {
	b := newTokenBucket(3)
	for i := 0; i < 3; i++ {
		assert.True(t, b.tryTake(), "token %d should be available", i)
	}
	assert.False(t, b.tryTake(), "bucket should be empty")
}

func TestTokenBucketRefills(t *testing.T) {
	b := newTokenBucket(60) // 1 token/second
	for i := 0; i < 60; i++ {
		require.True(t, b.tryTake())
	}
	require.False(t, b.tryTake())

	// Backdate the last refill instead of sleeping.
	b.mu.Lock()
	b.lastRefill = b.lastRefill.Add(-2 * time.Second)
	b.mu.Unlock()

	assert.True(t, b.tryTake())
	assert.True(t, b.tryTake())
	assert.False(t, b.tryTake())
}

func TestTokenBucketCapped(t *testing.T) {
	b := newTokenBucket(5)
	b.mu.Lock()
	b.lastRefill = b.lastRefill.Add(-time.Hour)
	b.mu.Unlock()

	for i := 0; i < 5; i++ {
		require.True(t, b.tryTake())
	}
	assert.False(t, b.tryTake(), "refill never exceeds capacity")
}

func TestTokenBucketUnlimited(t *testing.T) {
	b := newTokenBucket(0)
	for i := 0; i < 1000; i++ {
		require.True(t, b.tryTake())
	}
}

func TestTokenBucketTakeHonorsContext(t *testing.T) {
	b := newTokenBucket(1)
	require.True(t, b.tryTake()) // drain

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := b.take(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
