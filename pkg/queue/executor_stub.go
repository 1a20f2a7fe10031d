package queue

import (
	"context"
	"log/slog"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
)

// StubExecutor is an EngagementExecutor that completes immediately without
// running any agents. Used in worker and pool tests to exercise the
// claim/heartbeat/terminal-update path in isolation.
type StubExecutor struct{}

// NewStubExecutor creates a new stub executor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute returns a completed result immediately.
func (e *StubExecutor) Execute(ctx context.Context, eng *ent.Engagement) *ExecutionResult {
	engagementID := ""
	objectiveType := ""
	if eng != nil {
		engagementID = eng.ID
		objectiveType = eng.ObjectiveType
	}
	slog.Info("Stub executor: engagement processing (no-op)",
		"engagement_id", engagementID,
		"objective_type", objectiveType,
	)

	if ctx.Err() != nil {
		return &ExecutionResult{
			Status: engagement.StatusCancelled,
			Error:  ctx.Err(),
		}
	}

	return &ExecutionResult{
		Status:           engagement.StatusCompleted,
		FinalReport:      "Stub executor: no agent execution performed",
		ExecutiveSummary: "Stub execution completed successfully",
	}
}
