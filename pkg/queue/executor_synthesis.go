package queue

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/llminteraction"
	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/toolinteraction"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// maxResultChars bounds how much of each task result enters the synthesis
// prompt.
const maxResultChars = 4000

const synthesisSystemPrompt = `You are the team lead of an autonomous penetration-testing team. Write the final engagement report from your workers' task results.

Structure the report with these sections:
1. Scope and objective.
2. Findings, ordered by severity, each with its evidence.
3. Attack path narrative: how the individual results chain together.
4. Unfinished work: failed or blocked tasks and what they leave unknown.
5. Remediation priorities.

Be factual. Only report what the task results support.`

const executiveSummarySystemPrompt = `Condense the following penetration-testing report into an executive summary of at most three paragraphs for a non-technical audience. Lead with the overall risk posture, then the most important findings, then the recommended next steps.`

// ────────────────────────────────────────────────────────────
// Synthesis
// ────────────────────────────────────────────────────────────

// synthesisOutcome is the report package for a finished engagement.
type synthesisOutcome struct {
	report         string
	summary        string
	stats          map[string]interface{}
	tasksCompleted int
	tasksFailed    int
}

// synthesize builds the final report. Every step fails open: if the router
// is unavailable, the statistics report stands in for the narrative, and a
// missing executive summary never blocks completion.
func (e *TeamLeadExecutor) synthesize(ctx context.Context, run *engagementRun) *synthesisOutcome {
	out := &synthesisOutcome{}

	summary, err := run.tasks.Summary(ctx)
	if err != nil {
		run.logger.Error("Task summary unavailable for synthesis", "error", err)
		out.report = fmt.Sprintf("Engagement finished but task results could not be loaded: %v", err)
		return out
	}
	out.tasksCompleted = summary.Complete
	out.tasksFailed = summary.Failed

	completed, err := run.tasks.Completed(ctx)
	if err != nil {
		run.logger.Warn("Completed task load failed", "error", err)
	}
	unfinished, err := e.unfinishedTasks(ctx, run)
	if err != nil {
		run.logger.Warn("Unfinished task load failed", "error", err)
	}
	severityCounts, err := run.findings.CountBySeverity(ctx, run.eng.ID)
	if err != nil {
		run.logger.Warn("Finding counts unavailable", "error", err)
	}

	out.stats = e.buildStats(ctx, run, summary, severityCounts)
	fallback := statsReport(run.eng, summary, severityCounts, completed, unfinished)

	if summary.Complete == 0 {
		out.report = fallback
		return out
	}

	report, err := e.buildReport(ctx, run, completed, unfinished, severityCounts)
	if err != nil {
		run.logger.Warn("Report synthesis failed, using statistics report", "error", err)
		out.report = fallback
		return out
	}
	out.report = report
	run.logger.Info("Final report synthesized", "chars", len(report))

	execSummary, err := e.buildExecutiveSummary(ctx, run, report)
	if err != nil {
		run.logger.Warn("Executive summary failed, continuing without one", "error", err)
		return out
	}
	out.summary = execSummary
	return out
}

// buildReport asks the router for the narrative report over all completed
// task results.
func (e *TeamLeadExecutor) buildReport(ctx context.Context, run *engagementRun, completed, unfinished []*ent.Task, severityCounts map[string]int) (string, error) {
	var user strings.Builder
	fmt.Fprintf(&user, "Objective: %s\n", run.eng.Objective)
	if run.scope != nil {
		targets := append(append([]string{}, run.scope.IncludeCIDRs...), run.scope.IncludeDomains...)
		if len(targets) > 0 {
			fmt.Fprintf(&user, "Scope: %s\n", strings.Join(targets, ", "))
		}
	}
	if len(severityCounts) > 0 {
		fmt.Fprintf(&user, "Finding counts: %s\n", formatSeverityCounts(severityCounts))
	}

	user.WriteString("\nTask results:\n")
	for _, t := range completed {
		fmt.Fprintf(&user, "\n## %s (%s)\n%s\n", t.TaskKey, t.TaskType, truncateForPrompt(taskResult(t), maxResultChars))
	}
	if len(unfinished) > 0 {
		user.WriteString("\nUnfinished tasks:\n")
		for _, t := range unfinished {
			fmt.Fprintf(&user, "- %s (%s, %s): %s\n", t.TaskKey, t.TaskType, t.Status, unfinishedDetail(t))
		}
	}

	started := time.Now()
	resp, err := e.llmClient.Chat(ctx, &llm.ChatRequest{
		EngagementID: run.eng.ID,
		AgentID:      teamLeadAgentID,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: synthesisSystemPrompt},
			{Role: llm.RoleUser, Content: user.String()},
		},
	})
	e.recordLeadCall(ctx, run, "synthesis", resp, err, time.Since(started))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("synthesis returned empty content")
	}
	return resp.Content, nil
}

func (e *TeamLeadExecutor) buildExecutiveSummary(ctx context.Context, run *engagementRun, report string) (string, error) {
	started := time.Now()
	resp, err := e.llmClient.Chat(ctx, &llm.ChatRequest{
		EngagementID: run.eng.ID,
		AgentID:      teamLeadAgentID,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: executiveSummarySystemPrompt},
			{Role: llm.RoleUser, Content: report},
		},
	})
	e.recordLeadCall(ctx, run, "executive summary", resp, err, time.Since(started))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("executive summary returned empty content")
	}
	return resp.Content, nil
}

// ────────────────────────────────────────────────────────────
// Statistics
// ────────────────────────────────────────────────────────────

// buildStats assembles the stats JSON persisted on the engagement row.
func (e *TeamLeadExecutor) buildStats(ctx context.Context, run *engagementRun, summary *coordination.Summary, severityCounts map[string]int) map[string]interface{} {
	stats := map[string]interface{}{
		"tasks_total":      summary.Total,
		"tasks_complete":   summary.Complete,
		"tasks_failed":     summary.Failed,
		"tasks_unfinished": summary.Pending + summary.Running,
	}
	if len(severityCounts) > 0 {
		stats["findings_by_severity"] = severityCounts
	}
	if n, err := e.client.LLMInteraction.Query().
		Where(llminteraction.EngagementIDEQ(run.eng.ID)).
		Count(ctx); err == nil {
		stats["llm_calls"] = n
	}
	if n, err := e.client.ToolInteraction.Query().
		Where(toolinteraction.EngagementIDEQ(run.eng.ID)).
		Count(ctx); err == nil {
		stats["tool_calls"] = n
	}
	return stats
}

// unfinishedTasks returns failed plus still-pending tasks; pending at this
// point means blocked behind a failed dependency.
func (e *TeamLeadExecutor) unfinishedTasks(ctx context.Context, run *engagementRun) ([]*ent.Task, error) {
	return e.client.Task.Query().
		Where(
			enttask.EngagementIDEQ(run.eng.ID),
			enttask.StatusIn(enttask.StatusFailed, enttask.StatusPending),
		).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
}

// statsReport is the fail-open fallback when narrative synthesis is
// unavailable: raw task outcomes and counts.
func statsReport(eng *ent.Engagement, summary *coordination.Summary, severityCounts map[string]int, completed, unfinished []*ent.Task) string {
	var b strings.Builder
	b.WriteString("# Engagement Report (statistics only)\n\n")
	b.WriteString("Narrative synthesis was unavailable; raw task outcomes follow.\n\n")
	fmt.Fprintf(&b, "Objective: %s\n", eng.Objective)
	fmt.Fprintf(&b, "Tasks: %d complete, %d failed, %d blocked of %d total\n",
		summary.Complete, summary.Failed, summary.Pending+summary.Running, summary.Total)
	if len(severityCounts) > 0 {
		fmt.Fprintf(&b, "Findings: %s\n", formatSeverityCounts(severityCounts))
	}

	if len(completed) > 0 {
		b.WriteString("\n## Completed tasks\n")
		for _, t := range completed {
			fmt.Fprintf(&b, "\n### %s (%s)\n%s\n", t.TaskKey, t.TaskType, truncateForPrompt(taskResult(t), 2000))
		}
	}
	if len(unfinished) > 0 {
		b.WriteString("\n## Unfinished tasks\n")
		for _, t := range unfinished {
			fmt.Fprintf(&b, "- %s (%s, %s): %s\n", t.TaskKey, t.TaskType, t.Status, unfinishedDetail(t))
		}
	}
	return b.String()
}

func unfinishedDetail(t *ent.Task) string {
	if t.Error != nil && *t.Error != "" {
		return *t.Error
	}
	if t.Status == enttask.StatusPending {
		return "blocked by a failed dependency"
	}
	return "no detail recorded"
}

// taskResult unwraps the nillable result column. A completed task with no
// recorded result reads as empty rather than panicking the report builder.
func taskResult(t *ent.Task) string {
	if t.Result == nil {
		return ""
	}
	return *t.Result
}

// formatSeverityCounts renders counts ordered by severity rank.
func formatSeverityCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return models.Severity(keys[i]).Rank() < models.Severity(keys[j]).Rank()
	})
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
	}
	return strings.Join(parts, ", ")
}

// truncateForPrompt caps s for inclusion in an LLM prompt.
func truncateForPrompt(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars] + fmt.Sprintf("\n... [truncated %d of %d chars]", len(s)-maxChars, len(s))
}
