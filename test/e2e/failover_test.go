package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAIStub is a minimal chat-completions server that routes on the system
// prompt the same way the scripted client does.
func openAIStub(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)

		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		var system string
		for _, m := range req.Messages {
			if m.Role == "system" {
				system = m.Content
				break
			}
		}

		var content string
		switch {
		case strings.Contains(system, "Split the engagement objective"):
			content = `[
				{"id": "recon-1", "description": "Enumerate services on the scoped network", "type": "recon"}
			]`
		case strings.Contains(system, "final engagement report"):
			content = "# Engagement Report\n\nServed by the backup provider."
		case strings.Contains(system, "executive summary"):
			content = "Backup provider carried the engagement."
		default:
			content = "Task finished. Nothing further to report."
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "backup-model",
			"choices": []map[string]any{
				{
					"message":       map[string]any{"content": content},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 20,
				"total_tokens":      60,
			},
		})
	}))
}

// TestProviderFailover points the router at a primary that rejects every
// request with 401 and a healthy OpenAI-compatible backup. Auth failures
// are not retryable, so the router must fail over immediately and the
// engagement must complete on the backup.
func TestProviderFailover(t *testing.T) {
	var primaryHits, backupHits atomic.Int64

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryHits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	t.Cleanup(primary.Close)

	backup := openAIStub(t, &backupHits)
	t.Cleanup(backup.Close)

	router := llm.NewRouter([]*config.LLMProviderConfig{
		{Name: "primary", Endpoint: primary.URL, Model: "primary-model", Priority: 0, TimeoutSeconds: 10},
		{Name: "backup", Endpoint: backup.URL, Model: "backup-model", Priority: 1, TimeoutSeconds: 10},
	})

	app := NewTestApp(t, WithLLM(router))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "completed", 30*time.Second)

	eng := app.GetEngagement(id)
	report, _ := eng["final_report"].(string)
	assert.Contains(t, report, "backup provider")

	assert.Equal(t, "backup", router.ActiveProvider())
	stats := router.Stats()
	assert.Equal(t, "backup", stats.ActiveProvider)
	assert.NotZero(t, stats.RequestCount)

	// Every call tried the primary first and every call landed on the backup.
	assert.NotZero(t, primaryHits.Load())
	assert.Equal(t, primaryHits.Load(), backupHits.Load())
}

// TestProviderExhaustionFailsEngagement removes every working provider: both
// endpoints reject with 401, so the router returns an ExhaustedError and the
// engagement fails with no tasks completed.
func TestProviderExhaustionFailsEngagement(t *testing.T) {
	deny := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	t.Cleanup(deny.Close)

	router := llm.NewRouter([]*config.LLMProviderConfig{
		{Name: "primary", Endpoint: deny.URL, Model: "m1", Priority: 0, TimeoutSeconds: 10},
		{Name: "backup", Endpoint: deny.URL, Model: "m2", Priority: 1, TimeoutSeconds: 10},
	})

	app := NewTestApp(t, WithLLM(router))

	id := app.CreateEngagement("Assess the 10.0.0.0/24 network", "network")
	app.AwaitEngagementStatus(id, "failed", 30*time.Second)

	eng := app.GetEngagement(id)
	errMsg, _ := eng["error_message"].(string)
	assert.Contains(t, errMsg, "no tasks completed")
	assert.Empty(t, router.ActiveProvider())
}
