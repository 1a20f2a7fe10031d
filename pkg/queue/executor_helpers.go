package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
)

// ────────────────────────────────────────────────────────────
// Event publishing
// ────────────────────────────────────────────────────────────

// publishTaskStatus emits a task lifecycle event. All publishing is
// best-effort: a broken event channel never fails the engagement.
func (e *TeamLeadExecutor) publishTaskStatus(ctx context.Context, run *engagementRun, taskKey, taskType, status, assignee, errMsg string) {
	if e.publisher == nil {
		return
	}
	payload := events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeTaskStatus,
			EngagementID: run.eng.ID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TaskKey:  taskKey,
		TaskType: taskType,
		Status:   status,
		Assignee: assignee,
		Error:    errMsg,
	}
	if err := e.publisher.PublishTaskStatus(ctx, run.eng.ID, payload); err != nil {
		run.logger.Debug("Task status publish failed",
			"task_key", taskKey, "status", status, "error", err)
	}
}

// publishFindingCreated emits an event for a freshly persisted finding.
func (e *TeamLeadExecutor) publishFindingCreated(ctx context.Context, run *engagementRun, row *ent.Finding) {
	if e.publisher == nil {
		return
	}
	payload := events.FindingCreatedPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeFindingCreated,
			EngagementID: run.eng.ID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		FindingID: row.ID,
		Title:     row.Title,
		Severity:  string(row.Severity),
		Phase:     row.Phase,
		AgentID:   row.AgentID,
	}
	if err := e.publisher.PublishFindingCreated(ctx, run.eng.ID, payload); err != nil {
		run.logger.Debug("Finding publish failed",
			"finding_id", row.ID, "error", err)
	}
}

// publishProgress emits the transient team snapshot consumed by live
// dashboards. Never persisted; subscribers that miss it catch the next tick.
func (e *TeamLeadExecutor) publishProgress(ctx context.Context, run *engagementRun, summary *coordination.Summary) {
	if e.publisher == nil {
		return
	}
	payload := events.EngagementProgressPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeEngagementProgress,
			EngagementID: run.eng.ID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TasksTotal:    summary.Total,
		TasksPending:  summary.Pending,
		TasksRunning:  summary.Running,
		TasksComplete: summary.Complete,
		TasksFailed:   summary.Failed,
		ActiveAgents:  summary.Running,
		StatusText:    fmt.Sprintf("%d/%d tasks complete", summary.Complete, summary.Total),
	}
	if err := e.publisher.PublishEngagementProgress(ctx, payload); err != nil {
		run.logger.Debug("Progress publish failed", "error", err)
	}
}

// ────────────────────────────────────────────────────────────
// Shared lookups
// ────────────────────────────────────────────────────────────

// heartbeat refreshes last_interaction_at so orphan detection keeps treating
// this engagement as alive during long monitor phases.
func (e *TeamLeadExecutor) heartbeat(ctx context.Context, run *engagementRun) {
	err := e.client.Engagement.UpdateOneID(run.eng.ID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil && ctx.Err() == nil {
		run.logger.Warn("Engagement heartbeat failed", "error", err)
	}
}

// peerFindings builds the shared context injected into a worker's system
// prompt: recent findings from the store plus broadcast notes the worker
// collected while waiting for its claim.
func (e *TeamLeadExecutor) peerFindings(ctx context.Context, run *engagementRun, extra []string) []string {
	rows, err := e.client.Finding.Query().
		Where(finding.EngagementIDEQ(run.eng.ID)).
		Order(ent.Desc(finding.FieldCreatedAt)).
		Limit(10).
		All(ctx)
	if err != nil {
		run.logger.Warn("Peer finding lookup failed", "error", err)
		return extra
	}

	notes := make([]string, 0, len(rows)+len(extra))
	for _, row := range rows {
		notes = append(notes, fmt.Sprintf("[%s] %s (%s)", row.Severity, row.Title, row.Phase))
	}
	return append(notes, extra...)
}

// blockedByFailedDependency returns the first dependency that will never
// complete: one marked failed, or one that does not exist at all.
func (e *TeamLeadExecutor) blockedByFailedDependency(ctx context.Context, run *engagementRun, deps []string) (string, error) {
	for _, dep := range deps {
		row, err := run.tasks.Get(ctx, dep)
		if err != nil {
			if ent.IsNotFound(err) {
				return dep, nil
			}
			return "", err
		}
		if row.Status == enttask.StatusFailed {
			return dep, nil
		}
	}
	return "", nil
}

// taskAlreadyTerminal reports whether the task reached complete or failed,
// which happens when an engagement resumes after a pod loss.
func (e *TeamLeadExecutor) taskAlreadyTerminal(ctx context.Context, run *engagementRun, taskKey string) (bool, error) {
	row, err := run.tasks.Get(ctx, taskKey)
	if err != nil {
		return false, err
	}
	return row.Status == enttask.StatusComplete || row.Status == enttask.StatusFailed, nil
}

func payloadString(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

// findingNote formats a broadcast finding payload for peer context.
func findingNote(payload map[string]any) string {
	title := payloadString(payload, "title")
	if title == "" {
		return ""
	}
	if sev := payloadString(payload, "severity"); sev != "" {
		return fmt.Sprintf("[%s] %s", sev, title)
	}
	return title
}
