package queue

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/finding"
	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM routes chat requests by the system prompt of the request:
// decomposition, synthesis, and executive summary calls get fixed responses,
// everything else is treated as a worker turn and answered per task via
// workerReply. Any hook left nil falls through to a sensible default.
type scriptedLLM struct {
	decompositions atomic.Int64
	syntheses      atomic.Int64

	decomposeContent string
	decomposeErr     error
	synthesisErr     error
	workerReply      func(taskDescription string) (string, error)
}

func (s *scriptedLLM) Chat(_ context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	system := ""
	lastUser := ""
	for _, msg := range req.Messages {
		switch msg.Role {
		case llm.RoleSystem:
			if system == "" {
				system = msg.Content
			}
		case llm.RoleUser:
			lastUser = msg.Content
		}
	}

	reply := func(content string) *llm.ChatResponse {
		return &llm.ChatResponse{
			Content:      content,
			FinishReason: "stop",
			Usage:        llm.Usage{PromptTokens: 40, CompletionTokens: 20, TotalTokens: 60},
			Provider:     "scripted",
			Model:        "scripted-1",
		}
	}

	switch {
	case strings.Contains(system, "Split the engagement objective"):
		s.decompositions.Add(1)
		if s.decomposeErr != nil {
			return nil, s.decomposeErr
		}
		if s.decomposeContent != "" {
			return reply(s.decomposeContent), nil
		}
		return reply(`[
			{"id": "recon-1", "description": "Enumerate services on the scoped network", "type": "recon"},
			{"id": "exploit-1", "description": "Exploit the most promising service", "dependencies": ["recon-1"], "type": "exploit"}
		]`), nil

	case strings.Contains(system, "final engagement report"):
		s.syntheses.Add(1)
		if s.synthesisErr != nil {
			return nil, s.synthesisErr
		}
		return reply("# Engagement Report\n\nNarrative over the task results."), nil

	case strings.Contains(system, "executive summary"):
		return reply("Executive summary for leadership."), nil

	default:
		if s.workerReply != nil {
			content, err := s.workerReply(lastUser)
			if err != nil {
				return nil, err
			}
			return reply(content), nil
		}
		return reply("Task finished. Nothing further to report."), nil
	}
}

// newExecutorTestConfig returns agent settings tuned for fast tests.
func newExecutorTestConfig() *config.Config {
	agentCfg := config.DefaultAgentConfig()
	agentCfg.MonitorInterval = 50 * time.Millisecond
	agentCfg.CleanupTimeout = 5 * time.Second
	return &config.Config{
		Agent: agentCfg,
		Scope: &models.Scope{IncludeCIDRs: []string{"10.0.0.0/24"}},
	}
}

func TestTeamLeadExecutor_HappyPath(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	script := &scriptedLLM{
		workerReply: func(desc string) (string, error) {
			if strings.Contains(desc, "Enumerate services") {
				return "Enumeration done.\nFINDING: high | Exposed admin panel | Admin panel reachable without auth on port 8080.", nil
			}
			return "Exploitation attempted with minimal impact; evidence captured.", nil
		},
	}
	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, script, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusCompleted, result.Status)
	assert.Contains(t, result.FinalReport, "Narrative over the task results")
	assert.Equal(t, "Executive summary for leadership.", result.ExecutiveSummary)
	assert.EqualValues(t, 1, script.decompositions.Load())

	// Both tasks should be complete with persisted results
	tasks, err := client.Task.Query().
		Where(enttask.EngagementIDEQ(eng.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, row := range tasks {
		assert.Equal(t, enttask.StatusComplete, row.Status, "task %s", row.TaskKey)
		assert.NotEmpty(t, row.Result)
	}

	// The recon worker's FINDING line becomes a persisted finding
	rows, err := client.Finding.Query().
		Where(finding.EngagementIDEQ(eng.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Exposed admin panel", rows[0].Title)
	assert.Equal(t, finding.SeverityHigh, rows[0].Severity)
	assert.Equal(t, "recon", rows[0].Phase)

	require.NotNil(t, result.Stats)
	assert.EqualValues(t, 2, result.Stats["tasks_total"])
	assert.EqualValues(t, 2, result.Stats["tasks_complete"])
	assert.EqualValues(t, 0, result.Stats["tasks_failed"])
}

func TestTeamLeadExecutor_DecompositionFallsBackToDefaultPlan(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	script := &scriptedLLM{
		decomposeErr: errors.New("provider unavailable"),
	}
	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, script, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusCompleted, result.Status)

	// The fixed network plan has 5 tasks
	count, err := client.Task.Query().
		Where(enttask.EngagementIDEQ(eng.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	complete, err := client.Task.Query().
		Where(
			enttask.EngagementIDEQ(eng.ID),
			enttask.StatusEQ(enttask.StatusComplete),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, complete)
}

func TestTeamLeadExecutor_FailedDependencyBlocksDependents(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	script := &scriptedLLM{
		workerReply: func(desc string) (string, error) {
			if strings.Contains(desc, "Enumerate services") {
				return "", errors.New("all providers exhausted")
			}
			return "should never run: dependency failed", nil
		},
	}
	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, script, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "no tasks completed")

	// Even a failed engagement carries the statistics report
	assert.Contains(t, result.FinalReport, "statistics only")

	reconRow, err := client.Task.Query().
		Where(enttask.EngagementIDEQ(eng.ID), enttask.TaskKeyEQ("recon-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusFailed, reconRow.Status)

	// The dependent task stays pending: its worker exited without claiming
	exploitRow, err := client.Task.Query().
		Where(enttask.EngagementIDEQ(eng.ID), enttask.TaskKeyEQ("exploit-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusPending, exploitRow.Status)
}

func TestTeamLeadExecutor_SynthesisFailureDowngradesToStatsReport(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	script := &scriptedLLM{
		decomposeContent: `[{"id": "recon-1", "description": "Enumerate services on the scoped network", "type": "recon"}]`,
		synthesisErr:     errors.New("provider unavailable"),
	}
	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, script, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusCompleted, result.Status,
		"synthesis failure must not fail a productive engagement")
	assert.Contains(t, result.FinalReport, "statistics only")
	assert.Empty(t, result.ExecutiveSummary)
}

func TestTeamLeadExecutor_ResumesExistingTaskGraph(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	// Simulate a pod loss mid-engagement: one task already complete, one
	// still pending.
	queue := coordination.NewTaskQueue(client, eng.ID)
	_, err := queue.Add(ctx, coordination.TaskSpec{
		Key:         "recon-1",
		Description: "Enumerate services on the scoped network",
		Type:        models.TaskTypeRecon,
	})
	require.NoError(t, err)
	require.NoError(t, queue.Complete(ctx, "recon-1", "Enumeration done before the crash."))
	_, err = queue.Add(ctx, coordination.TaskSpec{
		Key:          "exploit-1",
		Description:  "Exploit the most promising service",
		Type:         models.TaskTypeExploit,
		Dependencies: []string{"recon-1"},
	})
	require.NoError(t, err)

	script := &scriptedLLM{}
	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, script, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusCompleted, result.Status)
	assert.EqualValues(t, 0, script.decompositions.Load(),
		"a recovered engagement must not be re-decomposed")

	exploitRow, err := client.Task.Query().
		Where(enttask.EngagementIDEQ(eng.ID), enttask.TaskKeyEQ("exploit-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusComplete, exploitRow.Status)
}

func TestTeamLeadExecutor_CriticalFindingSpawnsValidationTask(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	eng := createPendingEngagement(ctx, t, client)

	script := &scriptedLLM{
		decomposeContent: `[{"id": "exploit-1", "description": "Exploit the most promising service", "type": "exploit"}]`,
		workerReply: func(desc string) (string, error) {
			if strings.Contains(desc, "Exploit the most promising") {
				return "Got a shell.\nFINDING: critical | Remote code execution | Unauthenticated RCE on port 9000.", nil
			}
			// The dynamically spawned validation worker lands here.
			return "Reproduced the finding with fresh evidence. Severity confirmed.", nil
		},
	}
	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, script, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusCompleted, result.Status)

	validateRow, err := client.Task.Query().
		Where(enttask.EngagementIDEQ(eng.ID), enttask.TaskKeyEQ("validate-req-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusComplete, validateRow.Status)
	assert.Equal(t, string(models.TaskTypeValidation), validateRow.TaskType)
	assert.Equal(t, []string{"exploit-1"}, validateRow.Dependencies)
	assert.Contains(t, validateRow.Description, "Remote code execution")
}

func TestTeamLeadExecutor_CancelledContextMapsToCancelled(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	eng := createPendingEngagement(context.Background(), t, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := NewTeamLeadExecutor(newExecutorTestConfig(), client, &scriptedLLM{}, nil, nil, nil)

	result := exec.Execute(ctx, eng)
	require.NotNil(t, result)
	assert.Equal(t, engagement.StatusCancelled, result.Status)
}
