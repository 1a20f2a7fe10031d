// Package queue provides the engagement processing fabric: a pool of
// workers that claim pending engagements from PostgreSQL, the team lead
// executor that runs one engagement end-to-end, and orphan recovery that
// returns abandoned engagements to the queue.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
)

// Sentinel errors for queue operations.
var (
	// ErrNoEngagementsAvailable indicates no pending engagements are in the queue.
	ErrNoEngagementsAvailable = errors.New("no engagements available")

	// ErrAtCapacity indicates the global concurrent engagement limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// EngagementExecutor runs one claimed engagement to a terminal state.
//
// The executor owns the engagement lifecycle internally: decomposition,
// worker agents, coordination, and synthesis. Intermediate state (tasks,
// messages, findings, interactions) is written progressively during
// execution; the worker only handles claiming, heartbeat, and the terminal
// status update.
type EngagementExecutor interface {
	Execute(ctx context.Context, eng *ent.Engagement) *ExecutionResult
}

// ExecutionResult is the terminal state of one engagement run. Everything
// else was already persisted by the executor while it ran.
type ExecutionResult struct {
	Status           engagement.Status      // completed, failed, timed_out, cancelled
	FinalReport      string                 // synthesized report (if completed)
	ExecutiveSummary string                 // brief summary (if completed)
	Stats            map[string]interface{} // task counts, findings by severity, call totals
	Error            error                  // error details (if failed/timed_out/cancelled)
}

// EventPublisher publishes engagement lifecycle events. Implemented by
// events.EventPublisher; declared here so the queue can be tested with
// mocks and run with streaming disabled (nil).
type EventPublisher interface {
	PublishEngagementStatus(ctx context.Context, engagementID string, payload events.EngagementStatusPayload) error
	PublishTaskStatus(ctx context.Context, engagementID string, payload events.TaskStatusPayload) error
	PublishFindingCreated(ctx context.Context, engagementID string, payload events.FindingCreatedPayload) error
	PublishEngagementProgress(ctx context.Context, payload events.EngagementProgressPayload) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy         bool           `json:"is_healthy"`
	DBReachable       bool           `json:"db_reachable"`
	DBError           string         `json:"db_error,omitempty"`
	PodID             string         `json:"pod_id"`
	ActiveWorkers     int            `json:"active_workers"`
	TotalWorkers      int            `json:"total_workers"`
	ActiveEngagements int            `json:"active_engagements"`
	MaxConcurrent     int            `json:"max_concurrent"`
	QueueDepth        int            `json:"queue_depth"`
	WorkerStats       []WorkerHealth `json:"worker_stats"`
	LastOrphanScan    time.Time      `json:"last_orphan_scan"`
	OrphansRecovered  int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                   string    `json:"id"`
	Status               string    `json:"status"` // "idle" or "working"
	CurrentEngagementID  string    `json:"current_engagement_id,omitempty"`
	EngagementsProcessed int       `json:"engagements_processed"`
	LastActivity         time.Time `json:"last_activity"`
}
