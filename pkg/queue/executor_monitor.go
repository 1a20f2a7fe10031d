package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// monitor is the team lead's supervision loop: drain the lead mailbox, push
// a progress event, heartbeat the engagement row, and exit once the task
// graph has drained or can no longer make progress.
func (e *TeamLeadExecutor) monitor(ctx context.Context, run *engagementRun) {
	interval := e.cfg.Agent.MonitorInterval
	if interval <= 0 {
		interval = config.DefaultAgentConfig().MonitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		e.drainLeadMailbox(ctx, run)

		summary, err := run.tasks.Summary(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			run.logger.Warn("Task summary failed", "error", err)
			continue
		}
		e.publishProgress(ctx, run, summary)
		e.heartbeat(ctx, run)

		if summary.Total > 0 && summary.Pending == 0 && summary.Running == 0 {
			run.logger.Info("All tasks finished",
				"complete", summary.Complete,
				"failed", summary.Failed)
			return
		}

		// Nothing running and claims not happening: check whether the
		// remaining pending tasks are transitively blocked by failures.
		if summary.Running == 0 && summary.Pending > 0 {
			stalled, err := e.graphStalled(ctx, run)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				run.logger.Warn("Stall check failed", "error", err)
				continue
			}
			if stalled {
				run.logger.Warn("Task graph stalled; remaining tasks are blocked by failed dependencies",
					"pending", summary.Pending,
					"failed", summary.Failed)
				return
			}
		}
	}
}

// drainLeadMailbox processes messages addressed to the team lead. Workers
// report completions and errors here; critical findings are rebroadcast to
// the team and validation requests may grow the task graph.
func (e *TeamLeadExecutor) drainLeadMailbox(ctx context.Context, run *engagementRun) {
	msgs, err := run.mailbox.Receive(ctx, teamLeadAgentID, true)
	if err != nil {
		if ctx.Err() == nil {
			run.logger.Warn("Lead mailbox read failed", "error", err)
		}
		return
	}

	for _, msg := range msgs {
		switch models.MessageKind(msg.Kind) {
		case models.MessageKindTaskComplete:
			run.logger.Info("Worker reported task complete",
				"from", msg.FromAgent,
				"task_key", payloadString(msg.Payload, "task_key"))
		case models.MessageKindError:
			run.logger.Warn("Worker reported an error",
				"from", msg.FromAgent,
				"task_key", payloadString(msg.Payload, "task_key"),
				"reason", payloadString(msg.Payload, "reason"))
		case models.MessageKindCriticalFinding:
			e.handleCriticalFinding(ctx, run, msg)
		case models.MessageKindValidationRequest:
			e.handleValidationRequest(ctx, run, msg)
		default:
			run.logger.Debug("Unhandled mailbox message",
				"from", msg.FromAgent,
				"kind", string(msg.Kind))
		}
	}
}

// handleCriticalFinding rebroadcasts a worker's critical finding so agents
// still working factor it into their own tasks. The finding row itself was
// already persisted by the reporting worker.
func (e *TeamLeadExecutor) handleCriticalFinding(ctx context.Context, run *engagementRun, msg *ent.AgentMessage) {
	run.logger.Warn("Critical finding reported",
		"from", msg.FromAgent,
		"title", payloadString(msg.Payload, "title"))

	n, err := run.mailbox.Broadcast(ctx, teamLeadAgentID, models.MessageKindBroadcast, msg.Payload)
	if err != nil {
		run.logger.Warn("Critical finding broadcast failed", "error", err)
		return
	}
	if n > 0 {
		run.logger.Info("Critical finding shared with team", "recipients", n)
	}
}

// handleValidationRequest enqueues a dynamic validation task for a reported
// finding and spawns a worker for it. Requests are capped per engagement and
// deduplicated by finding title.
func (e *TeamLeadExecutor) handleValidationRequest(ctx context.Context, run *engagementRun, msg *ent.AgentMessage) {
	title := payloadString(msg.Payload, "title")
	originKey := payloadString(msg.Payload, "task_key")

	if run.validationsSent >= maxDynamicValidations {
		run.logger.Info("Validation request dropped, cap reached", "title", title)
		return
	}
	if _, dup := run.validatedTitles[title]; dup {
		run.logger.Debug("Validation request dropped, already queued", "title", title)
		return
	}

	spec := coordination.TaskSpec{
		Key: fmt.Sprintf("validate-req-%d", run.validationsSent+1),
		Description: fmt.Sprintf(
			"Independently validate the reported finding %q: %s. Reproduce it with fresh evidence and confirm or refute the severity rating.",
			title, payloadString(msg.Payload, "description")),
		Type: models.TaskTypeValidation,
	}
	if originKey != "" {
		spec.Dependencies = []string{originKey}
	}

	if _, err := run.tasks.Add(ctx, spec); err != nil {
		run.logger.Warn("Failed to enqueue validation task",
			"task_key", spec.Key, "error", err)
		return
	}
	run.validationsSent++
	run.validatedTitles[title] = struct{}{}

	e.publishTaskStatus(ctx, run, spec.Key, string(spec.Type), "pending", "", "")
	e.spawnWorkerAgent(ctx, run, spec)
	run.logger.Info("Validation task enqueued",
		"task_key", spec.Key,
		"origin", originKey,
		"title", title)
}

// graphStalled loads the full task graph and checks reachability.
func (e *TeamLeadExecutor) graphStalled(ctx context.Context, run *engagementRun) (bool, error) {
	rows, err := e.client.Task.Query().
		Where(enttask.EngagementIDEQ(run.eng.ID)).
		All(ctx)
	if err != nil {
		return false, err
	}
	return !progressPossible(rows), nil
}

// progressPossible reports whether the task graph can still advance: a task
// is running, or some pending task's dependencies are all satisfiable.
// Pending tasks behind a failed or missing dependency are unreachable.
func progressPossible(tasks []*ent.Task) bool {
	complete := make(map[string]bool, len(tasks))
	var pending []*ent.Task
	for _, t := range tasks {
		switch t.Status {
		case enttask.StatusRunning:
			return true
		case enttask.StatusComplete:
			complete[t.TaskKey] = true
		case enttask.StatusPending:
			pending = append(pending, t)
		}
	}

	// Fixpoint over pending tasks: grow the reachable set until it stops
	// changing. Reachability through another pending task counts, since
	// that task may still complete.
	reachable := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, t := range pending {
			if reachable[t.TaskKey] {
				continue
			}
			ok := true
			for _, dep := range t.Dependencies {
				if !complete[dep] && !reachable[dep] {
					ok = false
					break
				}
			}
			if ok {
				reachable[t.TaskKey] = true
				changed = true
			}
		}
	}
	return len(reachable) > 0
}
