package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createPendingEngagement creates an engagement in pending status.
func createPendingEngagement(ctx context.Context, t *testing.T, client *ent.Client) *ent.Engagement {
	t.Helper()
	eng, err := client.Engagement.Create().
		SetID(uuid.New().String()).
		SetObjective("assess host 10.0.0.5 for exposed services").
		SetObjectiveType("network").
		SetStatus(engagement.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return eng
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:              2,
		MaxConcurrentEngagements: 10,
		PollInterval:             100 * time.Millisecond,
		PollIntervalJitter:       0,
		EngagementTimeout:        30 * time.Second,
		GracefulShutdownTimeout:  10 * time.Second,
		OrphanDetectionInterval:  1 * time.Second,
		OrphanThreshold:          2 * time.Second,
		HeartbeatInterval:        30 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a
// pending engagement.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextEngagement(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending engagement")
	assert.Equal(t, eng.ID, claimed.ID)
	assert.Equal(t, engagement.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)

	// Second claim should return ErrNoEngagementsAvailable
	claimed2, err := w.claimNextEngagement(ctx)
	assert.ErrorIs(t, err, ErrNoEngagementsAvailable)
	assert.Nil(t, claimed2, "no more pending engagements should be available")
}

// TestConcurrentClaimsDifferentEngagements tests that concurrent workers
// claim different engagements.
func TestConcurrentClaimsDifferentEngagements(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	engagementIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		e := createPendingEngagement(ctx, t, client)
		engagementIDs[e.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil)
			eng, err := w.claimNextEngagement(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if eng != nil {
				mu.Lock()
				claimed = append(claimed, eng.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil engagement without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 engagements should be claimed, each by exactly one worker
	assert.Len(t, claimed, 5, "all 5 engagements should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "engagement %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}

	for _, id := range claimed {
		_, ok := engagementIDs[id]
		assert.True(t, ok, "claimed engagement %s was not in original set", id)
	}
}

// TestOrphanRecovery tests that orphaned engagements are detected and recovered.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Simulate a crash: in_progress with a stale heartbeat
	staleBeat := time.Now().Add(-10 * time.Minute)
	eng, err := client.Engagement.Create().
		SetID(uuid.New().String()).
		SetObjective("orphaned engagement").
		SetObjectiveType("network").
		SetStatus(engagement.StatusInProgress).
		SetPodID("crashed-pod").
		SetLastInteractionAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	err = pool.detectAndRecoverOrphans(ctx)
	require.NoError(t, err)

	updated, err := client.Engagement.Get(ctx, eng.ID)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusTimedOut, updated.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanCleanup tests the one-time startup orphan cleanup.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	for i := 0; i < 3; i++ {
		_, err := client.Engagement.Create().
			SetID(uuid.New().String()).
			SetObjective("startup orphan").
			SetObjectiveType("network").
			SetStatus(engagement.StatusInProgress).
			SetPodID(podID).
			Save(ctx)
		require.NoError(t, err)
	}

	// An engagement owned by a different pod must not be affected
	otherEng, err := client.Engagement.Create().
		SetID(uuid.New().String()).
		SetObjective("other pod engagement").
		SetObjectiveType("network").
		SetStatus(engagement.StatusInProgress).
		SetPodID("other-pod").
		Save(ctx)
	require.NoError(t, err)

	err = CleanupStartupOrphans(ctx, client, podID)
	require.NoError(t, err)

	engs, err := client.Engagement.Query().
		Where(engagement.PodID(podID)).
		All(ctx)
	require.NoError(t, err)
	for _, e := range engs {
		assert.Equal(t, engagement.StatusTimedOut, e.Status, "engagement %s should be timed_out", e.ID)
	}

	other, err := client.Engagement.Get(ctx, otherEng.ID)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusInProgress, other.Status, "other pod's engagement should be untouched")
}

// mockExecutor counts executions and tracks which engagements were processed.
type mockExecutor struct {
	processed   atomic.Int64
	engagements sync.Map // string → struct{}
	inProgress  atomic.Int64
	releaseCh   chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, eng *ent.Engagement) *ExecutionResult {
	m.processed.Add(1)
	if eng != nil {
		m.engagements.Store(eng.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{
				Status: engagement.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: engagement.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{
		Status:           engagement.StatusCompleted,
		FinalReport:      "Mock report",
		ExecutiveSummary: "Mock summary",
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createPendingEngagement(ctx, t, client)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for engagements to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	engs, err := client.Engagement.Query().
		Where(engagement.StatusEQ(engagement.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, engs, 3, "all 3 engagements should be completed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createPendingEngagement(ctx, t, client)
	}

	// Match WorkerCount to MaxConcurrentEngagements to avoid startup races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentEngagements = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait until exactly MaxConcurrentEngagements are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for engagements in progress",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentEngagements) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentEngagements), executor.inProgress.Load(),
		"should have exactly MaxConcurrentEngagements in progress")

	dbInProgress, err := client.Engagement.Query().
		Where(engagement.StatusEQ(engagement.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentEngagements, dbInProgress,
		"DB should show MaxConcurrentEngagements in_progress")

	// Release and let the remaining engagements drain
	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all engagements to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.Engagement.Query().
		Where(engagement.StatusEQ(engagement.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 engagements should complete")
}

// TestHeartbeatUpdates tests that heartbeats update last_interaction_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for engagement to be claimed",
		func() bool {
			e, err := client.Engagement.Get(ctx, eng.ID)
			require.NoError(t, err)
			return e.Status == engagement.StatusInProgress && e.LastInteractionAt != nil
		})

	e1, err := client.Engagement.Get(ctx, eng.ID)
	require.NoError(t, err)
	require.Equal(t, engagement.StatusInProgress, e1.Status)
	require.NotNil(t, e1.LastInteractionAt)
	initialTime := *e1.LastInteractionAt

	// Wait for at least one heartbeat (interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	e2, err := client.Engagement.Get(ctx, eng.ID)
	require.NoError(t, err)
	require.Equal(t, engagement.StatusInProgress, e2.Status, "engagement should still be in progress")
	require.NotNil(t, e2.LastInteractionAt)

	assert.True(t, e2.LastInteractionAt.After(initialTime),
		"last_interaction_at should be updated by heartbeat")

	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Engagement) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// EngagementExecutor.Execute does not panic and is translated into the
// correct terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks engagement failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		eng := createPendingEngagement(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for engagement to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.Engagement.Get(ctx, eng.ID)
		require.NoError(t, err)
		assert.Equal(t, engagement.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded marks engagement timed_out", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		eng := createPendingEngagement(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.EngagementTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		// Must exceed the 200ms timeout
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for engagement to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		updated, err := client.Engagement.Get(ctx, eng.ID)
		require.NoError(t, err)
		assert.Equal(t, engagement.StatusTimedOut, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("nil result with cancellation marks engagement cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		eng := createPendingEngagement(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.EngagementTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for engagement to be claimed",
			func() bool {
				e, err := client.Engagement.Get(ctx, eng.ID)
				require.NoError(t, err)
				return e.Status == engagement.StatusInProgress
			})

		// Cancel via the pool (simulates API-triggered cancellation)
		cancelled := pool.CancelEngagement(eng.ID)
		require.True(t, cancelled, "CancelEngagement should find the active engagement")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for engagement to reach terminal status",
			func() bool {
				e, err := client.Engagement.Get(ctx, eng.ID)
				require.NoError(t, err)
				return e.Status == engagement.StatusCancelled
			})

		pool.Stop()

		updated, err := client.Engagement.Get(ctx, eng.ID)
		require.NoError(t, err)
		assert.Equal(t, engagement.StatusCancelled, updated.Status)
	})
}
