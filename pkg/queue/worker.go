package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes engagements.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  EngagementExecutor
	publisher EventPublisher
	pool      EngagementRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                   sync.RWMutex
	status               WorkerStatus
	currentEngagementID  string
	engagementsProcessed int
	lastActivity         time.Time
}

// EngagementRegistry is the subset of WorkerPool used by Worker for
// cancellation registration.
type EngagementRegistry interface {
	RegisterEngagement(engagementID string, cancel context.CancelFunc)
	UnregisterEngagement(engagementID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (event streaming disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor EngagementExecutor, pool EngagementRegistry, publisher EventPublisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                   w.id,
		Status:               string(w.status),
		CurrentEngagementID:  w.currentEngagementID,
		EngagementsProcessed: w.engagementsProcessed,
		LastActivity:         w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoEngagementsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing engagement", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an engagement, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Engagement.Query().
		Where(engagement.StatusEQ(engagement.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active engagements: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentEngagements {
		return ErrAtCapacity
	}

	// 2. Claim next engagement
	eng, err := w.claimNextEngagement(ctx)
	if err != nil {
		return err
	}

	log := slog.With("engagement_id", eng.ID, "worker_id", w.id)
	log.Info("Engagement claimed", "objective_type", eng.ObjectiveType)

	// Publish in_progress to both the engagement and global channels
	w.publishEngagementStatus(ctx, eng.ID, engagement.StatusInProgress, "")

	w.setStatus(WorkerStatusWorking, eng.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create engagement context with timeout
	engCtx, cancelEngagement := context.WithTimeout(ctx, w.config.EngagementTimeout)
	defer cancelEngagement()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterEngagement(eng.ID, cancelEngagement)
	defer w.pool.UnregisterEngagement(eng.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(engCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, eng.ID)

	// 6. Execute engagement
	result := w.executor.Execute(engCtx, eng)

	// 6a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(engCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: engagement.StatusTimedOut,
				Error:  fmt.Errorf("engagement timed out after %v", w.config.EngagementTimeout),
			}
		case errors.Is(engCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: engagement.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: engagement.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Handle timeout
	if result.Status == "" && errors.Is(engCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status: engagement.StatusTimedOut,
			Error:  fmt.Errorf("engagement timed out after %v", w.config.EngagementTimeout),
		}
	}

	// 8. Handle cancellation
	if result.Status == "" && errors.Is(engCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status: engagement.StatusCancelled,
			Error:  context.Canceled,
		}
	}

	// 9. Stop heartbeat
	cancelHeartbeat()

	// 10. Update terminal status (use background context — engagement ctx may be cancelled)
	if err := w.updateEngagementTerminalStatus(context.Background(), eng, result); err != nil {
		log.Error("Failed to update engagement terminal status", "error", err)
		return err
	}

	// 10a. Publish terminal engagement status event
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	w.publishEngagementStatus(context.Background(), eng.ID, result.Status, errMsg)

	w.mu.Lock()
	w.engagementsProcessed++
	w.mu.Unlock()

	log.Info("Engagement processing complete", "status", result.Status)
	return nil
}

// claimNextEngagement atomically claims the next pending engagement using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextEngagement(ctx context.Context) (*ent.Engagement, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	eng, err := tx.Engagement.Query().
		Where(
			engagement.StatusEQ(engagement.StatusPending),
			engagement.DeletedAtIsNil(),
		).
		Order(ent.Asc(engagement.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoEngagementsAvailable
		}
		return nil, fmt.Errorf("failed to query pending engagement: %w", err)
	}

	// Claim: set in_progress, pod_id, started_at, last_interaction_at
	now := time.Now()
	eng, err = eng.Update().
		SetStatus(engagement.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim engagement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return eng, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, engagementID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Engagement.UpdateOneID(engagementID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "engagement_id", engagementID, "error", err)
			}
		}
	}
}

// updateEngagementTerminalStatus writes the final engagement status.
func (w *Worker) updateEngagementTerminalStatus(ctx context.Context, eng *ent.Engagement, result *ExecutionResult) error {
	update := w.client.Engagement.UpdateOneID(eng.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.FinalReport != "" {
		update = update.SetFinalReport(result.FinalReport)
	}
	if result.ExecutiveSummary != "" {
		update = update.SetExecutiveSummary(result.ExecutiveSummary)
	}
	if result.Stats != nil {
		update = update.SetStats(result.Stats)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	return update.Exec(ctx)
}

// publishEngagementStatus publishes an engagement status event to both the
// engagement-specific and global channels. Non-blocking: errors are logged.
func (w *Worker) publishEngagementStatus(ctx context.Context, engagementID string, status engagement.Status, errMsg string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishEngagementStatus(ctx, engagementID, events.EngagementStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeEngagementStatus,
			EngagementID: engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		Status:       string(status),
		ErrorMessage: errMsg,
	}); err != nil {
		slog.Warn("Failed to publish engagement status",
			"engagement_id", engagementID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, engagementID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentEngagementID = engagementID
	w.lastActivity = time.Now()
}
