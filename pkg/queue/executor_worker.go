package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
)

// claimRetryInterval paces a worker's attempts to claim its task while
// dependencies are still running.
const claimRetryInterval = time.Second

// runWorkerAgent is the body of one worker goroutine: wait until the task's
// dependencies allow a claim, run the ReAct loop, and persist the outcome.
func (e *TeamLeadExecutor) runWorkerAgent(ctx context.Context, run *engagementRun, agentID string, spec coordination.TaskSpec) {
	logger := run.logger.With("agent_id", agentID, "task_key", spec.Key)

	claimed, peerNotes, ok := e.claimAssignedTask(ctx, run, agentID, spec, logger)
	if !ok {
		return
	}
	logger.Info("Task claimed", "task_type", claimed.TaskType)
	e.publishTaskStatus(ctx, run, claimed.TaskKey, claimed.TaskType, "running", agentID, "")

	// An agent slot bounds concurrent conversations per engagement. The
	// claim already happened, so the row sits in running while we wait.
	select {
	case run.sem <- struct{}{}:
	case <-ctx.Done():
		e.failTask(ctx, run, agentID, claimed, "canceled", "engagement ended before the task started")
		return
	}
	defer func() { <-run.sem }()

	e.executeClaimedTask(ctx, run, agentID, claimed, peerNotes, logger)
}

// claimAssignedTask polls until the worker's own task becomes claimable.
// Returns false when the worker should exit instead: terminate received,
// context dead, the task already terminal, or a dependency failed for good.
func (e *TeamLeadExecutor) claimAssignedTask(ctx context.Context, run *engagementRun, agentID string, spec coordination.TaskSpec, logger *slog.Logger) (*ent.Task, []string, bool) {
	ticker := time.NewTicker(claimRetryInterval)
	defer ticker.Stop()

	var peerNotes []string
	for {
		// Mailbox first: terminate beats another claim attempt.
		msgs, err := run.mailbox.Receive(ctx, agentID, true)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, false
			}
		} else {
			for _, msg := range msgs {
				switch models.MessageKind(msg.Kind) {
				case models.MessageKindTerminate:
					logger.Info("Terminate received while waiting to claim")
					return nil, nil, false
				case models.MessageKindBroadcast, models.MessageKindCriticalFinding:
					if note := findingNote(msg.Payload); note != "" {
						peerNotes = append(peerNotes, note)
					}
				}
			}
		}

		claimed, err := run.tasks.ClaimByKey(ctx, agentID, spec.Key)
		if err == nil {
			return claimed, peerNotes, true
		}
		switch {
		case errors.Is(err, coordination.ErrNoTasksAvailable):
			// Unclaimable right now: dependencies incomplete, or the task
			// reached a terminal state on a previous run.
			if done, terr := e.taskAlreadyTerminal(ctx, run, spec.Key); terr == nil && done {
				logger.Info("Task already finished, worker exiting")
				return nil, nil, false
			}
			dep, derr := e.blockedByFailedDependency(ctx, run, spec.Dependencies)
			if derr == nil && dep != "" {
				logger.Warn("Dependency failed, task will never be claimable", "dependency", dep)
				_ = run.mailbox.Send(ctx, agentID, teamLeadAgentID, models.MessageKindError, map[string]any{
					"task_key":   spec.Key,
					"reason":     "dependency_failed",
					"dependency": dep,
				})
				return nil, nil, false
			}
		case ctx.Err() != nil:
			return nil, nil, false
		default:
			logger.Warn("Claim attempt failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, nil, false
		case <-ticker.C:
		}
	}
}

// executeClaimedTask runs the ReAct loop for a claimed task and persists the
// outcome. Terminate messages are honored at assistant-turn boundaries by
// cancelling the task context; the runtime then winds down on its own.
func (e *TeamLeadExecutor) executeClaimedTask(ctx context.Context, run *engagementRun, agentID string, claimed *ent.Task, peerNotes []string, logger *slog.Logger) {
	taskCtx, cancelTask := context.WithCancel(ctx)
	defer cancelTask()

	runtime := agent.NewRuntime(e.llmClient, e.bridge, agent.Options{
		MaxIterations:  e.cfg.Agent.MaxIterations,
		TaskTimeout:    e.cfg.Agent.TaskTimeout,
		OutputMaxChars: e.cfg.Agent.OutputMaxChars,
		Recorder:       e.recorder,
		Logger:         logger,
	})

	taskContext := &agent.TaskContext{
		EngagementID: run.eng.ID,
		AgentID:      agentID,
		Scope:        run.scope,
		TaskType:     models.TaskType(claimed.TaskType),
		PeerFindings: e.peerFindings(ctx, run, peerNotes),
	}

	var final agent.Event
	sawFinal := false
	for ev := range runtime.RunTask(taskCtx, claimed.Description, taskContext) {
		if ev.IsFinal {
			final = ev
			sawFinal = true
			continue
		}
		if ev.Kind == agent.EventAssistant && e.terminateRequested(ctx, run, agentID, logger) {
			cancelTask()
		}
	}

	reason := "error"
	content := ""
	if sawFinal {
		content = final.Content
		if r, ok := final.Metadata["reason"].(string); ok && r != "" {
			reason = r
		}
	}

	if reason == "completed" {
		e.completeTask(ctx, run, agentID, claimed, content, final.Metadata)
		return
	}
	detail := content
	if detail == "" {
		detail = "task ended without a final answer"
	}
	e.failTask(ctx, run, agentID, claimed, reason, detail)
}

// terminateRequested drains the worker's mailbox at an iteration boundary.
// Non-terminate messages arriving mid-task are dropped; the conversation is
// already underway and cannot absorb new context.
func (e *TeamLeadExecutor) terminateRequested(ctx context.Context, run *engagementRun, agentID string, logger *slog.Logger) bool {
	if ctx.Err() != nil {
		return false
	}
	msgs, err := run.mailbox.Receive(ctx, agentID, true)
	if err != nil {
		return false
	}
	for _, msg := range msgs {
		if models.MessageKind(msg.Kind) == models.MessageKindTerminate {
			logger.Info("Terminate received mid-task, cancelling")
			return true
		}
	}
	return false
}

// completeTask persists results, findings, and notifications for a task
// that reached a final answer.
func (e *TeamLeadExecutor) completeTask(ctx context.Context, run *engagementRun, agentID string, claimed *ent.Task, content string, meta map[string]any) {
	writeCtx, cancel := writeContext(ctx)
	defer cancel()

	e.recordFindings(writeCtx, run, agentID, claimed, content)

	if err := run.tasks.Complete(writeCtx, claimed.TaskKey, content); err != nil {
		run.logger.Error("Failed to mark task complete",
			"task_key", claimed.TaskKey, "error", err)
	}

	payload := map[string]any{"task_key": claimed.TaskKey}
	if iters, ok := meta["iterations"]; ok {
		payload["iterations"] = iters
	}
	if err := run.mailbox.Send(writeCtx, agentID, teamLeadAgentID, models.MessageKindTaskComplete, payload); err != nil {
		run.logger.Warn("Task completion message failed",
			"task_key", claimed.TaskKey, "error", err)
	}

	e.publishTaskStatus(writeCtx, run, claimed.TaskKey, claimed.TaskType, "complete", agentID, "")
	run.logger.Info("Task complete", "task_key", claimed.TaskKey, "agent_id", agentID)
}

// failTask persists the failure and notifies the lead. Dependents observe
// the failed status and exit through their own dependency checks.
func (e *TeamLeadExecutor) failTask(ctx context.Context, run *engagementRun, agentID string, claimed *ent.Task, reason, detail string) {
	writeCtx, cancel := writeContext(ctx)
	defer cancel()

	if err := run.tasks.Fail(writeCtx, claimed.TaskKey, detail); err != nil {
		run.logger.Error("Failed to mark task failed",
			"task_key", claimed.TaskKey, "error", err)
	}
	if err := run.mailbox.Send(writeCtx, agentID, teamLeadAgentID, models.MessageKindError, map[string]any{
		"task_key": claimed.TaskKey,
		"reason":   reason,
		"detail":   detail,
	}); err != nil {
		run.logger.Warn("Task failure message failed",
			"task_key", claimed.TaskKey, "error", err)
	}

	e.publishTaskStatus(writeCtx, run, claimed.TaskKey, claimed.TaskType, "failed", agentID, detail)
	run.logger.Warn("Task failed",
		"task_key", claimed.TaskKey,
		"agent_id", agentID,
		"reason", reason)
}

// recordFindings extracts FINDING lines from the worker's final answer,
// persists them, and routes critical ones to the team lead. Only the
// originating worker writes rows; peers see broadcast copies.
func (e *TeamLeadExecutor) recordFindings(ctx context.Context, run *engagementRun, agentID string, claimed *ent.Task, content string) {
	for _, f := range agent.ParseFindings(content) {
		row, err := run.findings.Add(ctx, run.eng.ID, services.FindingInput{
			Phase:       claimed.TaskType,
			Title:       f.Title,
			Severity:    f.Severity,
			Description: f.Description,
			AgentID:     agentID,
			Metadata:    map[string]any{"task_key": claimed.TaskKey},
		})
		if err != nil {
			run.logger.Warn("Failed to record finding", "title", f.Title, "error", err)
			continue
		}
		e.publishFindingCreated(ctx, run, row)
		run.logger.Info("Finding recorded",
			"finding_id", row.ID,
			"severity", string(f.Severity),
			"title", f.Title)

		if f.Severity != models.SeverityCritical {
			continue
		}
		payload := map[string]any{
			"task_key":    claimed.TaskKey,
			"finding_id":  row.ID,
			"title":       f.Title,
			"severity":    string(f.Severity),
			"description": f.Description,
		}
		if err := run.mailbox.Send(ctx, agentID, teamLeadAgentID, models.MessageKindCriticalFinding, payload); err != nil {
			run.logger.Warn("Critical finding message failed", "title", f.Title, "error", err)
		}
		if models.TaskType(claimed.TaskType) != models.TaskTypeValidation {
			if err := run.mailbox.Send(ctx, agentID, teamLeadAgentID, models.MessageKindValidationRequest, payload); err != nil {
				run.logger.Warn("Validation request failed", "title", f.Title, "error", err)
			}
		}
	}
}
