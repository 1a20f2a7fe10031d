// Package coordination provides the durable primitives worker agents share:
// a dependency-gated task queue, a mailbox, and advisory resource locks.
// All three are backed by PostgreSQL rows scoped to one engagement, so
// coordination survives process restarts and works across replicas.
package coordination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/google/uuid"
)

// ErrNoTasksAvailable indicates no claimable task exists right now: every
// pending task is either dependency-blocked or locked by another claimer.
var ErrNoTasksAvailable = errors.New("no tasks available")

// TaskSpec describes a task to enqueue.
type TaskSpec struct {
	// Key is the decomposition-local identifier (e.g. "recon-1"),
	// unique within the engagement. Re-adding an existing key updates
	// the task definition instead of duplicating it.
	Key          string
	Description  string
	Type         models.TaskType
	Dependencies []string
	Priority     int
}

// Summary holds task counts by status for one engagement.
type Summary struct {
	Pending  int `json:"pending"`
	Running  int `json:"running"`
	Complete int `json:"complete"`
	Failed   int `json:"failed"`
	Total    int `json:"total"`
}

// TaskQueue is the engagement-scoped work queue. Tasks carry dependencies on
// other tasks' keys; a task is claimable only once every dependency is
// complete. Claiming is atomic across concurrent workers (FOR UPDATE SKIP
// LOCKED), so a task is executed by at most one agent.
type TaskQueue struct {
	client       *ent.Client
	engagementID string
	logger       *slog.Logger
}

// NewTaskQueue creates a task queue scoped to one engagement.
func NewTaskQueue(client *ent.Client, engagementID string) *TaskQueue {
	return &TaskQueue{
		client:       client,
		engagementID: engagementID,
		logger:       slog.With("component", "task_queue", "engagement_id", engagementID),
	}
}

// Add enqueues a task, upserting by task key: re-adding an existing key
// updates its description, type, dependencies, and priority but never
// touches execution state (status, assignee, result).
func (q *TaskQueue) Add(ctx context.Context, spec TaskSpec) (*ent.Task, error) {
	if spec.Key == "" {
		return nil, fmt.Errorf("task key is required")
	}

	taskType := spec.Type
	if !taskType.IsValid() {
		// Decompositions come from an LLM; unknown types degrade to generic.
		taskType = models.TaskTypeGeneric
	}

	id, err := q.client.Task.Create().
		SetID(uuid.New().String()).
		SetEngagementID(q.engagementID).
		SetTaskKey(spec.Key).
		SetDescription(spec.Description).
		SetTaskType(string(taskType)).
		SetDependencies(spec.Dependencies).
		SetPriority(spec.Priority).
		OnConflictColumns(task.FieldEngagementID, task.FieldTaskKey).
		Update(func(u *ent.TaskUpsert) {
			u.UpdateDescription()
			u.UpdateTaskType()
			u.UpdateDependencies()
			u.UpdatePriority()
		}).
		ID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add task %s: %w", spec.Key, err)
	}

	t, err := q.client.Task.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load task %s: %w", spec.Key, err)
	}
	return t, nil
}

// Claim atomically claims the highest-priority claimable task for agentID.
// Returns ErrNoTasksAvailable when nothing is claimable.
func (q *TaskQueue) Claim(ctx context.Context, agentID string) (*ent.Task, error) {
	return q.claim(ctx, agentID, "")
}

// ClaimByKey atomically claims one specific task. Used by dedicated workers
// that poll until their task's dependencies complete.
func (q *TaskQueue) ClaimByKey(ctx context.Context, agentID, taskKey string) (*ent.Task, error) {
	return q.claim(ctx, agentID, taskKey)
}

func (q *TaskQueue) claim(ctx context.Context, agentID, taskKey string) (*ent.Task, error) {
	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED so concurrent claimers never block
	// each other and never win the same row.
	query := tx.Task.Query().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.StatusEQ(task.StatusPending),
		)
	if taskKey != "" {
		query = query.Where(task.TaskKeyEQ(taskKey))
	}
	candidates, err := query.
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoTasksAvailable
	}

	// Dependency completeness is evaluated inside the same transaction so a
	// dependency failing or completing concurrently cannot be half-observed.
	// Failed dependencies never appear in the set, so their dependents stay
	// unclaimable.
	done, err := completedKeys(ctx, tx, q.engagementID)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if !dependenciesSatisfied(candidate, done) {
			continue
		}

		claimed, err := candidate.Update().
			SetStatus(task.StatusRunning).
			SetAssignee(agentID).
			SetStartedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task %s: %w", candidate.TaskKey, err)
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}

		q.logger.Info("Task claimed", "task_key", claimed.TaskKey, "agent_id", agentID)
		return claimed, nil
	}

	return nil, ErrNoTasksAvailable
}

// Complete marks a task complete and records its result verbatim.
func (q *TaskQueue) Complete(ctx context.Context, taskKey, result string) error {
	n, err := q.client.Task.Update().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.TaskKeyEQ(taskKey),
		).
		SetStatus(task.StatusComplete).
		SetResult(result).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete task %s: %w", taskKey, err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", taskKey)
	}

	q.logger.Info("Task complete", "task_key", taskKey)
	return nil
}

// Fail marks a task failed. Tasks depending on it become permanently
// unclaimable.
func (q *TaskQueue) Fail(ctx context.Context, taskKey, errMsg string) error {
	n, err := q.client.Task.Update().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.TaskKeyEQ(taskKey),
		).
		SetStatus(task.StatusFailed).
		SetError(errMsg).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail task %s: %w", taskKey, err)
	}
	if n == 0 {
		return fmt.Errorf("task %s not found", taskKey)
	}

	q.logger.Warn("Task failed", "task_key", taskKey, "error", errMsg)
	return nil
}

// Get returns the task with the given key.
func (q *TaskQueue) Get(ctx context.Context, taskKey string) (*ent.Task, error) {
	t, err := q.client.Task.Query().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.TaskKeyEQ(taskKey),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskKey, err)
	}
	return t, nil
}

// Completed returns all complete tasks in completion order. The team lead
// synthesizes the final report from these.
func (q *TaskQueue) Completed(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := q.client.Task.Query().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.StatusEQ(task.StatusComplete),
		).
		Order(ent.Asc(task.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed tasks: %w", err)
	}
	return tasks, nil
}

// AllDone reports whether no pending or running tasks remain.
func (q *TaskQueue) AllDone(ctx context.Context) (bool, error) {
	exists, err := q.client.Task.Query().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.StatusIn(task.StatusPending, task.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check remaining tasks: %w", err)
	}
	return !exists, nil
}

// Summary returns task counts by status.
func (q *TaskQueue) Summary(ctx context.Context) (*Summary, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := q.client.Task.Query().
		Where(task.EngagementIDEQ(q.engagementID)).
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize tasks: %w", err)
	}

	summary := &Summary{}
	for _, row := range rows {
		switch task.Status(row.Status) {
		case task.StatusPending:
			summary.Pending = row.Count
		case task.StatusRunning:
			summary.Running = row.Count
		case task.StatusComplete:
			summary.Complete = row.Count
		case task.StatusFailed:
			summary.Failed = row.Count
		}
		summary.Total += row.Count
	}
	return summary, nil
}

// RequeueRunning returns running tasks to pending. Called during orphan
// recovery when a pod died mid-engagement; the recovered engagement's
// workers re-claim them.
func (q *TaskQueue) RequeueRunning(ctx context.Context) (int, error) {
	n, err := q.client.Task.Update().
		Where(
			task.EngagementIDEQ(q.engagementID),
			task.StatusEQ(task.StatusRunning),
		).
		SetStatus(task.StatusPending).
		ClearAssignee().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue running tasks: %w", err)
	}
	if n > 0 {
		q.logger.Info("Requeued running tasks", "count", n)
	}
	return n, nil
}

// Reset deletes every task of this engagement.
func (q *TaskQueue) Reset(ctx context.Context) error {
	_, err := q.client.Task.Delete().
		Where(task.EngagementIDEQ(q.engagementID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset task queue: %w", err)
	}
	return nil
}

// completedKeys returns the set of task keys whose tasks are complete,
// read within the caller's transaction.
func completedKeys(ctx context.Context, tx *ent.Tx, engagementID string) (map[string]struct{}, error) {
	keys, err := tx.Task.Query().
		Where(
			task.EngagementIDEQ(engagementID),
			task.StatusEQ(task.StatusComplete),
		).
		Select(task.FieldTaskKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed task keys: %w", err)
	}

	done := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		done[k] = struct{}{}
	}
	return done, nil
}

func dependenciesSatisfied(t *ent.Task, done map[string]struct{}) bool {
	for _, dep := range t.Dependencies {
		if _, ok := done[dep]; !ok {
			return false
		}
	}
	return true
}
