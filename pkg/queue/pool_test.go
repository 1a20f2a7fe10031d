package queue

import (
	"context"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelEngagement(t *testing.T) {
	pool := &WorkerPool{
		activeEngagements: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterEngagement("eng-1", cancel)

	// Cancel should succeed for a registered engagement
	assert.True(t, pool.CancelEngagement("eng-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown engagement
	assert.False(t, pool.CancelEngagement("unknown"))
}

func TestPoolUnregisterEngagement(t *testing.T) {
	pool := &WorkerPool{
		activeEngagements: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterEngagement("eng-1", cancel)

	// Should find it
	assert.True(t, pool.CancelEngagement("eng-1"))

	// Unregister
	pool.UnregisterEngagement("eng-1")

	// Should not find it anymore
	assert.False(t, pool.CancelEngagement("eng-1"))
}

func TestPoolGetActiveEngagementIDs(t *testing.T) {
	pool := &WorkerPool{
		activeEngagements: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveEngagementIDs()
	assert.Empty(t, ids)

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterEngagement("eng-a", cancel1)
	pool.RegisterEngagement("eng-b", cancel2)

	ids = pool.getActiveEngagementIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "eng-a")
	assert.Contains(t, ids, "eng-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:            make(chan struct{}),
		activeEngagements: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestStubExecutor(t *testing.T) {
	executor := NewStubExecutor()

	result := executor.Execute(context.Background(), nil)
	assert.Equal(t, engagement.StatusCompleted, result.Status)
	assert.NotEmpty(t, result.FinalReport)
	assert.NotEmpty(t, result.ExecutiveSummary)
	assert.Nil(t, result.Error)
}

func TestStubExecutorCancelled(t *testing.T) {
	executor := NewStubExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := executor.Execute(ctx, nil)
	assert.Equal(t, engagement.StatusCancelled, result.Status)
	assert.Error(t, result.Error)
}
