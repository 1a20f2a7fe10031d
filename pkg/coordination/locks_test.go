package coordination

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/resourcelock"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLockManager(t *testing.T) (*LockManager, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	engagementID := util.CreateTestEngagement(t, dbClient.Client, "assess host 10.0.0.5")
	lm := NewLockManager(dbClient.Client, engagementID)
	lm.pollInterval = 20 * time.Millisecond // keep polling tests fast
	return lm, dbClient.Client
}

func TestLockAcquireRelease(t *testing.T) {
	lm, _ := newTestLockManager(t)
	ctx := context.Background()

	ok, err := lm.Acquire(ctx, "nmap_10.0.0.5", "agent-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	locked, err := lm.IsLocked(ctx, "nmap_10.0.0.5")
	require.NoError(t, err)
	assert.True(t, locked)

	owner, err := lm.Owner(ctx, "nmap_10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", owner)

	// Only the holder can release.
	released, err := lm.Release(ctx, "nmap_10.0.0.5", "agent-2")
	require.NoError(t, err)
	assert.False(t, released)

	released, err = lm.Release(ctx, "nmap_10.0.0.5", "agent-1")
	require.NoError(t, err)
	assert.True(t, released)

	locked, err = lm.IsLocked(ctx, "nmap_10.0.0.5")
	require.NoError(t, err)
	assert.False(t, locked)

	owner, err = lm.Owner(ctx, "nmap_10.0.0.5")
	require.NoError(t, err)
	assert.Empty(t, owner)

	// Releasing an unheld lock is a no-op.
	released, err = lm.Release(ctx, "nmap_10.0.0.5", "agent-1")
	require.NoError(t, err)
	assert.False(t, released)
}

func TestLockExclusivity(t *testing.T) {
	lm, _ := newTestLockManager(t)
	ctx := context.Background()

	ok, err := lm.Acquire(ctx, "sqlmap_target-db", "agent-1", 0)
	require.NoError(t, err)
	require.True(t, ok)

	// A held lock cannot be acquired before the timeout.
	start := time.Now()
	ok, err = lm.Acquire(ctx, "sqlmap_target-db", "agent-2", 60*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)

	// Owner is unchanged by the failed attempt.
	owner, err := lm.Owner(ctx, "sqlmap_target-db")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", owner)

	// Once released, the waiter can acquire within its timeout.
	done := make(chan struct{})
	var acquired bool
	var acquireErr error
	go func() {
		defer close(done)
		acquired, acquireErr = lm.Acquire(ctx, "sqlmap_target-db", "agent-2", 3*time.Second)
	}()

	time.Sleep(50 * time.Millisecond)
	released, err := lm.Release(ctx, "sqlmap_target-db", "agent-1")
	require.NoError(t, err)
	require.True(t, released)

	<-done
	require.NoError(t, acquireErr)
	assert.True(t, acquired)

	owner, err = lm.Owner(ctx, "sqlmap_target-db")
	require.NoError(t, err)
	assert.Equal(t, "agent-2", owner)
}

func TestLockConcurrentAcquire(t *testing.T) {
	lm, _ := newTestLockManager(t)
	ctx := context.Background()

	const contenders = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	errCh := make(chan error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := lm.Acquire(ctx, "hydra_ssh-10.0.0.5", "agent-racer", 0)
			if err != nil {
				errCh <- err
				return
			}
			if ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, winners, "unique constraint must admit exactly one acquirer")
}

func TestLockStaleReclaim(t *testing.T) {
	lm, client := newTestLockManager(t)
	ctx := context.Background()

	ok, err := lm.Acquire(ctx, "nikto_10.0.0.9", "agent-crashed", 0)
	require.NoError(t, err)
	require.True(t, ok)

	// Backdate the lock past the stale threshold, as if the holder died
	// eleven minutes ago.
	_, err = client.ResourceLock.Update().
		Where(resourcelock.ResourceEQ("nikto_10.0.0.9")).
		SetAcquiredAt(time.Now().Add(-11 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	ok, err = lm.Acquire(ctx, "nikto_10.0.0.9", "agent-fresh", 0)
	require.NoError(t, err)
	assert.True(t, ok, "stale locks must be reclaimable")

	owner, err := lm.Owner(ctx, "nikto_10.0.0.9")
	require.NoError(t, err)
	assert.Equal(t, "agent-fresh", owner)

	// The crashed holder's late release must not free the new owner's lock.
	released, err := lm.Release(ctx, "nikto_10.0.0.9", "agent-crashed")
	require.NoError(t, err)
	assert.False(t, released)

	locked, err := lm.IsLocked(ctx, "nikto_10.0.0.9")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestLockFreshLockIsNotReclaimed(t *testing.T) {
	lm, _ := newTestLockManager(t)
	ctx := context.Background()

	ok, err := lm.Acquire(ctx, "gobuster_app", "agent-alive", 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = lm.Acquire(ctx, "gobuster_app", "agent-greedy", 50*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)

	owner, err := lm.Owner(ctx, "gobuster_app")
	require.NoError(t, err)
	assert.Equal(t, "agent-alive", owner)
}

func TestLockReleaseAll(t *testing.T) {
	lm, _ := newTestLockManager(t)
	ctx := context.Background()

	resources := []string{"nmap_10.0.0.5", "nmap_10.0.0.6", "msf_10.0.0.7"}
	for _, r := range resources {
		ok, err := lm.Acquire(ctx, r, "agent-1", 0)
		require.NoError(t, err)
		require.True(t, ok)
	}

	n, err := lm.ReleaseAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, r := range resources {
		locked, err := lm.IsLocked(ctx, r)
		require.NoError(t, err)
		assert.False(t, locked, "resource %s should be free after ReleaseAll", r)
	}

	// Second pass finds nothing.
	n, err = lm.ReleaseAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLockContextCancellation(t *testing.T) {
	lm, _ := newTestLockManager(t)
	ctx := context.Background()

	ok, err := lm.Acquire(ctx, "amass_corp-domain", "agent-1", 0)
	require.NoError(t, err)
	require.True(t, ok)

	cancelCtx, cancel := context.WithCancel(ctx)
	go func() {
		time.Sleep(40 * time.Millisecond)
		cancel()
	}()

	_, err = lm.Acquire(cancelCtx, "amass_corp-domain", "agent-2", 10*time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
