package e2e

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGuardianBlocksDestructiveCommand runs a worker that first asks for a
// destructive terminal command, sees the guardian denial in its tool result,
// then finishes with a safe command. The engagement completes and the denial
// is visible on the audit endpoint.
func TestGuardianBlocksDestructiveCommand(t *testing.T) {
	guard := guardian.New(guardian.ConfigFrom(nil, &models.Scope{
		IncludeCIDRs: []string{"10.0.0.0/24"},
	}))
	bridge := tools.NewBridge(guard)
	require.NoError(t, bridge.RegisterServer(context.Background(), tools.NewTerminalServer()))

	script := NewScriptedLLMClient()
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool {
			return IsWorkerTask(req, "Enumerate services") && !HasToolResponse(req)
		},
		Respond: func(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			return ToolCallResponse("call-1", tools.TerminalToolName, map[string]any{
				"command": "rm -rf / --no-preserve-root",
			}), nil
		},
	})
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool {
			return IsWorkerTask(req, "Enumerate services") && HasToolResponse(req)
		},
		Respond: func(_ context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
			// The model must see the denial, not a shell error.
			for _, msg := range req.Messages {
				if msg.Role == llm.RoleTool && strings.Contains(msg.Content, "Blocked by guardian") {
					return TextResponse("Destructive command was denied; recon finished without it."), nil
				}
			}
			return TextResponse("MISSING DENIAL: tool result did not explain the block"), nil
		},
	})

	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool {
			return IsWorkerTask(req, "Exploit the most promising") && !HasToolResponse(req)
		},
		Respond: func(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			return ToolCallResponse("call-2", tools.TerminalToolName, map[string]any{
				"command": "echo exploitation-evidence",
			}), nil
		},
	})
	script.AddRule(ScriptRule{
		Match: func(req *llm.ChatRequest) bool {
			return IsWorkerTask(req, "Exploit the most promising") && HasToolResponse(req)
		},
		Respond: func(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
			return TextResponse("Exploitation done with captured output."), nil
		},
	})

	app := NewTestApp(t,
		WithLLM(script),
		WithBridge(bridge),
		WithGuardian(guard),
	)

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "completed", 30*time.Second)

	// The recon worker must have seen the denial text
	revealed := false
	for _, row := range app.EntClient.Task.Query().AllX(context.Background()) {
		if row.Result != nil && strings.Contains(*row.Result, "MISSING DENIAL") {
			revealed = true
		}
	}
	assert.False(t, revealed, "denial text never reached the model")

	// The bridge logged one failed and one successful execution
	execs := bridge.Executions()
	var blocked, succeeded int
	for _, ex := range execs {
		if ex.Success {
			succeeded++
		} else if strings.Contains(ex.Error, "Blocked by guardian") {
			blocked++
		}
	}
	assert.Equal(t, 1, blocked, "exactly one guardian denial expected: %+v", execs)
	assert.GreaterOrEqual(t, succeeded, 1, "the echo command should have run")

	// The denial is visible on the audit endpoint
	var audit struct {
		Records []struct {
			Command string `json:"command"`
			Allowed bool   `json:"allowed"`
		} `json:"records"`
		Count int `json:"count"`
	}
	status := app.doJSON(http.MethodGet, "/api/v1/guardian/audit", nil, &audit)
	require.Equal(t, http.StatusOK, status)
	require.NotZero(t, audit.Count)

	var sawDenial bool
	for _, rec := range audit.Records {
		if !rec.Allowed && strings.Contains(rec.Command, "rm -rf /") {
			sawDenial = true
		}
	}
	assert.True(t, sawDenial, "audit log should carry the blocked command")
}
