package coordination

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestQueue creates a task queue against a fresh schema with one
// engagement to hang tasks off.
func newTestQueue(t *testing.T) (*TaskQueue, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	engagementID := util.CreateTestEngagement(t, dbClient.Client, "assess host 10.0.0.5")
	return NewTaskQueue(dbClient.Client, engagementID), dbClient.Client
}

func addTask(t *testing.T, q *TaskQueue, key string, deps []string, priority int) *ent.Task {
	t.Helper()
	created, err := q.Add(context.Background(), TaskSpec{
		Key:          key,
		Description:  "task " + key,
		Type:         models.TaskTypeRecon,
		Dependencies: deps,
		Priority:     priority,
	})
	require.NoError(t, err)
	return created
}

func TestTaskQueueAddUpsert(t *testing.T) {
	q, client := newTestQueue(t)
	ctx := context.Background()

	first := addTask(t, q, "recon-1", nil, 0)
	assert.Equal(t, task.StatusPending, first.Status)
	assert.Equal(t, "task recon-1", first.Description)

	// Re-adding the same key updates the definition, not the identity.
	updated, err := q.Add(ctx, TaskSpec{
		Key:         "recon-1",
		Description: "updated description",
		Type:        models.TaskTypeScan,
		Priority:    7,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "updated description", updated.Description)
	assert.Equal(t, string(models.TaskTypeScan), updated.TaskType)
	assert.Equal(t, 7, updated.Priority)

	count, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Execution state survives a re-add.
	_, err = q.Claim(ctx, "agent-1")
	require.NoError(t, err)
	require.NoError(t, q.Complete(ctx, "recon-1", "done"))

	readded, err := q.Add(ctx, TaskSpec{Key: "recon-1", Description: "third description"})
	require.NoError(t, err)
	assert.Equal(t, task.StatusComplete, readded.Status)
	require.NotNil(t, readded.Result)
	assert.Equal(t, "done", *readded.Result)

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := q.Add(ctx, TaskSpec{Description: "keyless"})
		assert.Error(t, err)
	})

	t.Run("unknown type degrades to generic", func(t *testing.T) {
		created, err := q.Add(ctx, TaskSpec{Key: "odd-1", Type: models.TaskType("warp-drive")})
		require.NoError(t, err)
		assert.Equal(t, string(models.TaskTypeGeneric), created.TaskType)
	})
}

func TestTaskQueueClaimOrdering(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "low", nil, 0)
	addTask(t, q, "high-older", nil, 5)
	addTask(t, q, "high-newer", nil, 5)

	// Highest priority first; created_at breaks ties.
	first, err := q.Claim(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "high-older", first.TaskKey)
	assert.Equal(t, task.StatusRunning, first.Status)
	require.NotNil(t, first.Assignee)
	assert.Equal(t, "agent-1", *first.Assignee)
	assert.NotNil(t, first.StartedAt)

	second, err := q.Claim(ctx, "agent-2")
	require.NoError(t, err)
	assert.Equal(t, "high-newer", second.TaskKey)

	third, err := q.Claim(ctx, "agent-3")
	require.NoError(t, err)
	assert.Equal(t, "low", third.TaskKey)

	_, err = q.Claim(ctx, "agent-4")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestTaskQueueClaimExclusive(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "only", nil, 0)

	const claimers = 10
	var mu sync.Mutex
	winners := make([]string, 0, 1)
	misses := 0
	errCh := make(chan error, claimers)
	var wg sync.WaitGroup

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			claimed, err := q.Claim(ctx, fmt.Sprintf("agent-%d", n))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, claimed.TaskKey)
			case errors.Is(err, ErrNoTasksAvailable):
				misses++
			default:
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	assert.Len(t, winners, 1, "exactly one claimer should win the task")
	assert.Equal(t, claimers-1, misses)
}

func TestTaskQueueDependencyGating(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "recon-1", nil, 0)
	addTask(t, q, "exploit-1", []string{"recon-1"}, 10)

	// exploit-1 has higher priority but a pending dependency, so recon-1
	// is the only claimable task.
	first, err := q.Claim(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "recon-1", first.TaskKey)

	_, err = q.Claim(ctx, "agent-2")
	assert.ErrorIs(t, err, ErrNoTasksAvailable, "dependent task must stay blocked while its dependency runs")

	require.NoError(t, q.Complete(ctx, "recon-1", "open ports: 22, 443"))

	second, err := q.Claim(ctx, "agent-2")
	require.NoError(t, err)
	assert.Equal(t, "exploit-1", second.TaskKey)
}

func TestTaskQueueFailedDependencyBlocksForever(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "recon-1", nil, 0)
	addTask(t, q, "exploit-1", []string{"recon-1"}, 0)

	_, err := q.Claim(ctx, "agent-1")
	require.NoError(t, err)
	require.NoError(t, q.Fail(ctx, "recon-1", "host unreachable"))

	// Failed dependencies never satisfy dependents.
	_, err = q.Claim(ctx, "agent-2")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	_, err = q.ClaimByKey(ctx, "agent-2", "exploit-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	failed, err := q.Get(ctx, "recon-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)
	require.NotNil(t, failed.Error)
	assert.Equal(t, "host unreachable", *failed.Error)
}

func TestTaskQueueClaimByKey(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "recon-1", nil, 0)
	addTask(t, q, "analysis-1", []string{"recon-1"}, 0)

	// Blocked until the dependency completes.
	_, err := q.ClaimByKey(ctx, "agent-analysis-1", "analysis-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	claimed, err := q.ClaimByKey(ctx, "agent-recon-1", "recon-1")
	require.NoError(t, err)
	assert.Equal(t, "recon-1", claimed.TaskKey)

	// Already running: a second dedicated claim must miss.
	_, err = q.ClaimByKey(ctx, "agent-thief", "recon-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	require.NoError(t, q.Complete(ctx, "recon-1", "done"))

	claimed2, err := q.ClaimByKey(ctx, "agent-analysis-1", "analysis-1")
	require.NoError(t, err)
	assert.Equal(t, "analysis-1", claimed2.TaskKey)
	require.NotNil(t, claimed2.Assignee)
	assert.Equal(t, "agent-analysis-1", *claimed2.Assignee)

	// Unknown key.
	_, err = q.ClaimByKey(ctx, "agent-x", "no-such-task")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestTaskQueueSummaryAndAllDone(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	// Empty queue counts as done.
	done, err := q.AllDone(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	addTask(t, q, "a", nil, 0)
	addTask(t, q, "b", nil, 0)
	addTask(t, q, "c", nil, 0)
	addTask(t, q, "d", nil, 0)

	_, err = q.Claim(ctx, "agent-1")
	require.NoError(t, err)
	_, err = q.Claim(ctx, "agent-2")
	require.NoError(t, err)
	require.NoError(t, q.Complete(ctx, "a", "result-a"))
	require.NoError(t, q.Fail(ctx, "b", "boom"))

	summary, err := q.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Pending: 2, Running: 0, Complete: 1, Failed: 1, Total: 4}, summary)

	done, err = q.AllDone(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	_, err = q.Claim(ctx, "agent-3")
	require.NoError(t, err)
	_, err = q.Claim(ctx, "agent-4")
	require.NoError(t, err)
	require.NoError(t, q.Complete(ctx, "c", "result-c"))
	require.NoError(t, q.Complete(ctx, "d", "result-d"))

	done, err = q.AllDone(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	completed, err := q.Completed(ctx)
	require.NoError(t, err)
	keys := make([]string, len(completed))
	for i, c := range completed {
		keys[i] = c.TaskKey
	}
	assert.Equal(t, []string{"a", "c", "d"}, keys)
}

func TestTaskQueueRequeueRunning(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "a", nil, 0)
	addTask(t, q, "b", nil, 0)

	_, err := q.Claim(ctx, "agent-1")
	require.NoError(t, err)
	_, err = q.Claim(ctx, "agent-2")
	require.NoError(t, err)

	n, err := q.RequeueRunning(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, key := range []string{"a", "b"} {
		requeued, err := q.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, requeued.Status)
		assert.Nil(t, requeued.Assignee)
		assert.Nil(t, requeued.StartedAt)
	}

	// Requeued tasks are claimable again.
	_, err = q.Claim(ctx, "agent-3")
	require.NoError(t, err)
}

func TestTaskQueueReset(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	addTask(t, q, "a", nil, 0)
	addTask(t, q, "b", nil, 0)

	require.NoError(t, q.Reset(ctx))

	summary, err := q.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
}

func TestTaskQueuesAreEngagementScoped(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	engA := util.CreateTestEngagement(t, dbClient.Client, "objective A")
	engB := util.CreateTestEngagement(t, dbClient.Client, "objective B")
	qA := NewTaskQueue(dbClient.Client, engA)
	qB := NewTaskQueue(dbClient.Client, engB)

	// Same task key in both engagements is legal and independent.
	_, err := qA.Add(ctx, TaskSpec{Key: "recon-1", Description: "A's recon"})
	require.NoError(t, err)
	_, err = qB.Add(ctx, TaskSpec{Key: "recon-1", Description: "B's recon"})
	require.NoError(t, err)

	claimed, err := qA.Claim(ctx, "agent-a")
	require.NoError(t, err)
	assert.Equal(t, "A's recon", claimed.Description)

	// B's queue is untouched by A's claim.
	summaryB, err := qB.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summaryB.Pending)
}
