package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEngagementPipeline drives one engagement through the whole stack:
// HTTP intake, queue claim, decomposition, worker agents, findings, and the
// synthesized report, all read back through the API.
func TestEngagementPipeline(t *testing.T) {
	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool { return IsWorkerTask(req, "Enumerate services") },
		Respond: func(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			return TextResponse("Enumeration done.\nFINDING: high | Exposed admin panel | Admin panel reachable without auth on port 8080."), nil
		},
	})

	app := NewTestApp(t, WithLLM(script))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network for exposed services", "network")

	eng := app.AwaitEngagementStatus(id, "completed", 30*time.Second)
	report, _ := eng["final_report"].(string)
	assert.Contains(t, report, "Narrative over the task results")
	assert.Equal(t, "Executive summary for leadership.", eng["executive_summary"])

	// Findings surfaced through the API with severity rollup
	findings := app.ListFindings(id)
	bySeverity, ok := findings["by_severity"].(map[string]any)
	require.True(t, ok, "by_severity missing: %v", findings)
	assert.EqualValues(t, 1, bySeverity["high"])

	rows, ok := findings["findings"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	first, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Exposed admin panel", first["title"])

	// The team lead's decomposition and synthesis calls land on the timeline
	entries := app.Timeline(id)
	assert.NotEmpty(t, entries, "lead LLM calls should be recorded")

	// Worker pool drained: stats show the engagement as completed
	var stats struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	}
	status := app.doJSON(http.MethodGet, "/api/v1/engagements/stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByStatus["completed"])
}

// TestEngagementPipeline_DependencyOrdering verifies the exploit worker only
// runs after the recon task it depends on has completed.
func TestEngagementPipeline_DependencyOrdering(t *testing.T) {
	reconDone := make(chan struct{})

	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool { return IsWorkerTask(req, "Enumerate services") },
		Respond: func(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			defer close(reconDone)
			return TextResponse("Enumeration done."), nil
		},
	})
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool { return IsWorkerTask(req, "Exploit the most promising") },
		Respond: func(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			select {
			case <-reconDone:
				return TextResponse("Exploitation done after recon."), nil
			default:
				return TextResponse("ORDERING VIOLATION: exploit ran before recon finished"), nil
			}
		},
	})

	app := NewTestApp(t, WithLLM(script))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "completed", 30*time.Second)

	row, err := app.EntClient.Task.Query().
		Where(enttask.EngagementIDEQ(id), enttask.TaskKeyEQ("exploit-1")).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusComplete, row.Status)
	require.NotNil(t, row.Result)
	assert.NotContains(t, *row.Result, "ORDERING VIOLATION")
}
