package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  EngagementExecutor
	publisher EventPublisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Engagement cancel registry: engagement_id → cancel function
	activeEngagements map[string]context.CancelFunc
	mu                sync.RWMutex
	started           bool

	// Orphan recovery state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
// publisher may be nil (event streaming disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor EngagementExecutor, publisher EventPublisher) *WorkerPool {
	return &WorkerPool{
		podID:             podID,
		client:            client,
		config:            cfg,
		executor:          executor,
		publisher:         publisher,
		workers:           make([]*Worker, 0, cfg.WorkerCount),
		stopCh:            make(chan struct{}),
		activeEngagements: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan recovery background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan recovery
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanRecovery(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current engagements before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	// Log active engagements
	active := p.getActiveEngagementIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active engagements to complete",
			"count", len(active),
			"engagement_ids", active)
	}

	// Signal all workers to stop (they finish current engagements)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan recovery to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterEngagement stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterEngagement(engagementID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeEngagements[engagementID] = cancel
}

// UnregisterEngagement removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterEngagement(engagementID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeEngagements, engagementID)
}

// CancelEngagement triggers context cancellation for an engagement on this pod.
// Returns true if the engagement was found and cancelled on this pod.
func (p *WorkerPool) CancelEngagement(engagementID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeEngagements[engagementID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Engagement.Query().
		Where(
			engagement.StatusEQ(engagement.StatusPending),
			engagement.DeletedAtIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeEngagements, errA := p.client.Engagement.Query().
		Where(
			engagement.StatusEQ(engagement.StatusInProgress),
			engagement.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active engagements for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeEngagements <= p.config.MaxConcurrentEngagements && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active engagements query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:         isHealthy,
		DBReachable:       dbHealthy,
		DBError:           dbError,
		PodID:             p.podID,
		ActiveWorkers:     activeWorkers,
		TotalWorkers:      len(p.workers),
		ActiveEngagements: activeEngagements,
		MaxConcurrent:     p.config.MaxConcurrentEngagements,
		QueueDepth:        queueDepth,
		WorkerStats:       workerStats,
		LastOrphanScan:    lastOrphanScan,
		OrphansRecovered:  orphansRecovered,
	}
}

// getActiveEngagementIDs returns IDs of currently processing engagements (for logging).
func (p *WorkerPool) getActiveEngagementIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeEngagements))
	for id := range p.activeEngagements {
		ids = append(ids, id)
	}
	return ids
}
