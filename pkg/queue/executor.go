package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
)

// teamLeadAgentID is the mailbox identity of the coordinating agent.
const teamLeadAgentID = "team-lead"

// maxDynamicValidations caps validation tasks spawned from worker requests,
// so one noisy finding cannot grow the task graph unboundedly.
const maxDynamicValidations = 3

// TeamLeadExecutor runs one engagement end-to-end: it decomposes the
// objective into a task graph, spawns a worker agent per task, monitors the
// team through the shared mailbox, and synthesizes the final report.
type TeamLeadExecutor struct {
	cfg       *config.Config
	client    *ent.Client
	llmClient llm.Client
	bridge    *tools.Bridge
	publisher EventPublisher
	recorder  agent.Recorder
}

// NewTeamLeadExecutor creates the executor used by queue workers.
// publisher and recorder may be nil (streaming and timeline disabled).
func NewTeamLeadExecutor(cfg *config.Config, client *ent.Client, llmClient llm.Client, bridge *tools.Bridge, publisher EventPublisher, recorder agent.Recorder) *TeamLeadExecutor {
	return &TeamLeadExecutor{
		cfg:       cfg,
		client:    client,
		llmClient: llmClient,
		bridge:    bridge,
		publisher: publisher,
		recorder:  recorder,
	}
}

// ────────────────────────────────────────────────────────────
// Per-engagement state
// ────────────────────────────────────────────────────────────

// engagementRun bundles the coordination primitives and bookkeeping shared
// by the team lead's phases. One is built per Execute call and never reused.
type engagementRun struct {
	eng      *ent.Engagement
	scope    *models.Scope
	tasks    *coordination.TaskQueue
	mailbox  *coordination.Mailbox
	locks    *coordination.LockManager
	findings *services.FindingService
	logger   *slog.Logger

	// wg tracks worker agent goroutines. All Add calls happen on the
	// Execute goroutine (initial spawn and monitor-driven spawns), strictly
	// before cleanup waits.
	wg  sync.WaitGroup
	sem chan struct{}

	// validation bookkeeping, touched only from the monitor loop
	validationsSent int
	validatedTitles map[string]struct{}
}

// ────────────────────────────────────────────────────────────
// Execute
// ────────────────────────────────────────────────────────────

// Execute implements EngagementExecutor. It always returns a result; worker
// code maps context state when the engagement was cancelled or timed out.
func (e *TeamLeadExecutor) Execute(ctx context.Context, eng *ent.Engagement) *ExecutionResult {
	logger := slog.With(
		"engagement_id", eng.ID,
		"objective_type", eng.ObjectiveType,
	)
	logger.Info("Team lead: starting engagement")

	run := &engagementRun{
		eng:             eng,
		scope:           e.resolveScope(eng),
		tasks:           coordination.NewTaskQueue(e.client, eng.ID),
		mailbox:         coordination.NewMailbox(e.client, eng.ID),
		locks:           coordination.NewLockManager(e.client, eng.ID),
		findings:        services.NewFindingService(e.client),
		logger:          logger,
		sem:             make(chan struct{}, e.maxTeammates()),
		validatedTitles: make(map[string]struct{}),
	}
	run.mailbox.Register(teamLeadAgentID)

	// Phases 1-2: decompose the objective and enqueue the plan. Recovered
	// engagements skip decomposition and reseed from the persisted graph.
	specs, err := e.seedTasks(ctx, run)
	if err != nil {
		if r := e.mapCancellation(ctx); r != nil {
			return r
		}
		return &ExecutionResult{
			Status: engagement.StatusFailed,
			Error:  err,
		}
	}

	// Cleanup runs on every exit path, after the result is computed:
	// terminate broadcast, bounded wait for workers, lock release.
	defer e.cleanup(run)

	// Phase 3: one worker agent per task. Workers block on their claim
	// until dependencies complete.
	for _, spec := range specs {
		e.spawnWorkerAgent(ctx, run, spec)
	}
	logger.Info("Worker agents spawned", "count", len(specs))

	// Phase 4: monitor until the graph drains or stalls.
	e.monitor(ctx, run)

	if r := e.mapCancellation(ctx); r != nil {
		return r
	}

	// Phase 5: synthesize the final report. Fail-open: a synthesis failure
	// downgrades to the statistics report, never to a failed engagement.
	outcome := e.synthesize(ctx, run)
	if outcome.tasksCompleted == 0 {
		return &ExecutionResult{
			Status:      engagement.StatusFailed,
			FinalReport: outcome.report,
			Stats:       outcome.stats,
			Error:       fmt.Errorf("no tasks completed (%d failed)", outcome.tasksFailed),
		}
	}
	return &ExecutionResult{
		Status:           engagement.StatusCompleted,
		FinalReport:      outcome.report,
		ExecutiveSummary: outcome.summary,
		Stats:            outcome.stats,
	}
}

// ────────────────────────────────────────────────────────────
// Task seeding
// ────────────────────────────────────────────────────────────

// seedTasks produces the specs to spawn workers for. A non-empty persisted
// graph means this engagement was recovered after a pod loss: decomposition
// is skipped, stuck rows are requeued, and workers are reseeded for every
// task that still needs to run.
func (e *TeamLeadExecutor) seedTasks(ctx context.Context, run *engagementRun) ([]coordination.TaskSpec, error) {
	summary, err := run.tasks.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect task graph: %w", err)
	}

	if summary.Total > 0 {
		requeued, err := run.tasks.RequeueRunning(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to requeue stuck tasks: %w", err)
		}
		run.logger.Info("Task graph already exists, resuming engagement",
			"total", summary.Total,
			"complete", summary.Complete,
			"failed", summary.Failed,
			"requeued", requeued)
		return e.pendingSpecs(ctx, run)
	}

	specs := e.decompose(ctx, run)
	for _, spec := range specs {
		if _, err := run.tasks.Add(ctx, spec); err != nil {
			return nil, fmt.Errorf("failed to enqueue task %s: %w", spec.Key, err)
		}
		e.publishTaskStatus(ctx, run, spec.Key, string(spec.Type), "pending", "", "")
	}
	return specs, nil
}

// pendingSpecs rebuilds worker specs from persisted pending tasks.
func (e *TeamLeadExecutor) pendingSpecs(ctx context.Context, run *engagementRun) ([]coordination.TaskSpec, error) {
	rows, err := e.client.Task.Query().
		Where(
			enttask.EngagementIDEQ(run.eng.ID),
			enttask.StatusEQ(enttask.StatusPending),
		).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending tasks: %w", err)
	}

	specs := make([]coordination.TaskSpec, 0, len(rows))
	for _, row := range rows {
		specs = append(specs, coordination.TaskSpec{
			Key:          row.TaskKey,
			Description:  row.Description,
			Type:         models.TaskType(row.TaskType),
			Dependencies: row.Dependencies,
			Priority:     row.Priority,
		})
	}
	return specs, nil
}

// spawnWorkerAgent registers a mailbox identity for the task's worker and
// starts its goroutine. Must be called from the Execute goroutine only.
func (e *TeamLeadExecutor) spawnWorkerAgent(ctx context.Context, run *engagementRun, spec coordination.TaskSpec) {
	agentID := "agent-" + spec.Key
	run.mailbox.Register(agentID)
	run.wg.Add(1)
	go func() {
		defer run.wg.Done()
		defer run.mailbox.Unregister(agentID)
		e.runWorkerAgent(ctx, run, agentID, spec)
	}()
}

// ────────────────────────────────────────────────────────────
// Cleanup
// ────────────────────────────────────────────────────────────

// cleanup broadcasts terminate, waits for worker agents up to the configured
// budget, and releases any locks still held. It builds its own contexts so
// it works after the engagement context is dead.
func (e *TeamLeadExecutor) cleanup(run *engagementRun) {
	timeout := e.cfg.Agent.CleanupTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if n, err := run.mailbox.Broadcast(ctx, teamLeadAgentID, models.MessageKindTerminate, map[string]any{
		"reason": "engagement ending",
	}); err != nil {
		run.logger.Warn("Terminate broadcast failed", "error", err)
	} else if n > 0 {
		run.logger.Info("Terminate broadcast sent", "recipients", n)
	}

	done := make(chan struct{})
	go func() {
		run.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		run.logger.Info("All worker agents finished")
	case <-ctx.Done():
		run.logger.Warn("Worker agents did not finish within cleanup budget",
			"timeout", timeout)
	}

	// Fresh context: the cleanup budget above may already be spent.
	releaseCtx, releaseCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer releaseCancel()
	if n, err := run.locks.ReleaseAll(releaseCtx); err != nil {
		run.logger.Warn("Lock release failed", "error", err)
	} else if n > 0 {
		run.logger.Info("Released engagement locks", "count", n)
	}
}

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

// resolveScope prefers the engagement's own scope and falls back to the
// deployment-wide scope from configuration.
func (e *TeamLeadExecutor) resolveScope(eng *ent.Engagement) *models.Scope {
	if len(eng.Scope) > 0 {
		if scope, err := models.ScopeFromMap(eng.Scope); err == nil && scope != nil {
			return scope
		}
	}
	return e.cfg.Scope
}

func (e *TeamLeadExecutor) maxTeammates() int {
	if e.cfg.Agent.MaxTeammates > 0 {
		return e.cfg.Agent.MaxTeammates
	}
	return config.DefaultAgentConfig().MaxTeammates
}

// mapCancellation translates a dead engagement context into the terminal
// result the worker persists. Returns nil while the context is alive.
func (e *TeamLeadExecutor) mapCancellation(ctx context.Context) *ExecutionResult {
	if ctx.Err() == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ExecutionResult{
			Status: engagement.StatusTimedOut,
			Error:  fmt.Errorf("engagement timed out"),
		}
	}
	return &ExecutionResult{
		Status: engagement.StatusCancelled,
		Error:  context.Canceled,
	}
}

// writeContext returns ctx while it is alive, or a short-lived background
// context for terminal writes after cancellation.
func writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx.Err() == nil {
		return ctx, func() {}
	}
	return context.WithTimeout(context.Background(), 10*time.Second)
}
