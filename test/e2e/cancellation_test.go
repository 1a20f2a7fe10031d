package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCancelRunningEngagement cancels an engagement whose workers are
// blocked mid-conversation and verifies the cancel propagates through the
// pool to a terminal cancelled status.
func TestCancelRunningEngagement(t *testing.T) {
	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool {
			return !IsDecomposition(req) && IsWorkerTask(req, "Enumerate services")
		},
		Respond: func(ctx context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			// Hold the worker until the engagement context dies.
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})

	app := NewTestApp(t, WithLLM(script))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "in_progress", 10*time.Second)

	var cancelResp map[string]any
	status := app.doJSON(http.MethodPost, "/api/v1/engagements/"+id+"/cancel", nil, &cancelResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", cancelResp["status"])

	eng := app.AwaitEngagementStatus(id, "cancelled", 15*time.Second)
	assert.NotNil(t, eng["completed_at"], "cancelled engagements get a completion timestamp")
}

// TestCancelPendingEngagement cancels before any worker claims the row.
func TestCancelPendingEngagement(t *testing.T) {
	// Zero workers: submissions stay pending forever.
	app := NewTestApp(t, WithWorkerCount(0))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")

	status := app.doJSON(http.MethodPost, "/api/v1/engagements/"+id+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, status)

	eng := app.GetEngagement(id)
	assert.Equal(t, "cancelled", eng["status"])
}

// TestEngagementTimeout lets the engagement budget expire while workers are
// stuck and verifies the timed_out terminal status.
func TestEngagementTimeout(t *testing.T) {
	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool { return !IsDecomposition(req) },
		Respond: func(ctx context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})

	app := NewTestApp(t, WithLLM(script), WithEngagementTimeout(2*time.Second))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	eng := app.AwaitEngagementStatus(id, "timed_out", 20*time.Second)

	errMsg, _ := eng["error_message"].(string)
	assert.Contains(t, errMsg, "timed out")
}
