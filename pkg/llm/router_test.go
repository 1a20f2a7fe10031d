package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
)

// requestLog records which provider served each HTTP request, in order.
type requestLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *requestLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, name)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func testProvider(name, endpoint string, priority int) *config.LLMProviderConfig {
	return &config.LLMProviderConfig{
		Name:         name,
		Endpoint:     endpoint,
		Model:        "test-model",
		Priority:     priority,
		RetryCount:   2,
		MaxTokens:    1024,
		ContextLimit: 8192,
	}
}

// newTestRouter builds a router with sleeps and jitter stubbed out,
// recording every backoff it would have waited.
func newTestRouter(t *testing.T, configs ...*config.LLMProviderConfig) (*Router, *[]time.Duration) {
	t.Helper()
	r := NewRouter(configs)
	var sleeps []time.Duration
	var mu sync.Mutex
	r.sleep = func(ctx context.Context, d time.Duration) error {
		mu.Lock()
		sleeps = append(sleeps, d)
		mu.Unlock()
		return ctx.Err()
	}
	r.jitter = func(float64) float64 { return 0 }
	return r, &sleeps
}

func completionResponse(t *testing.T, w http.ResponseWriter, content string, toolCalls ...wireToolCall) {
	t.Helper()
	resp := map[string]any{
		"model": "test-model",
		"choices": []map[string]any{{
			"message": map[string]any{
				"content":    content,
				"tool_calls": toolCalls,
			},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{
			"prompt_tokens":     10,
			"completion_tokens": 5,
			"total_tokens":      15,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func decodeRequest(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func simpleRequest() *ChatRequest {
	return &ChatRequest{
		EngagementID: "eng-1",
		AgentID:      "agent-1",
		Messages: []Message{
			{Role: RoleSystem, Content: "you are a tester"},
			{Role: RoleUser, Content: "do the thing"},
		},
	}
}

func TestRouterChatSuccess(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		captured = decodeRequest(t, r)
		completionResponse(t, w, "hello back")
	}))
	defer srv.Close()

	router, _ := newTestRouter(t, testProvider("primary", srv.URL, 1))
	resp, err := router.Chat(context.Background(), simpleRequest())
	require.NoError(t, err)

	assert.Equal(t, "hello back", resp.Content)
	assert.Equal(t, "primary", resp.Provider)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 15, resp.Usage.TotalTokens)

	assert.Equal(t, "test-model", captured["model"])
	assert.EqualValues(t, 1024, captured["max_tokens"])
	assert.NotContains(t, captured, "tools", "no tools requested")

	stats := router.Stats()
	assert.Equal(t, "primary", stats.ActiveProvider)
	assert.EqualValues(t, 1, stats.RequestCount)
	assert.EqualValues(t, 15, stats.TokenCount)
}

func TestRouterChatParsesNativeToolCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeRequest(t, r)
		require.Contains(t, body, "tools")
		assert.Equal(t, "auto", body["tool_choice"])
		completionResponse(t, w, "", wireToolCall{
			ID:   "call_abc",
			Type: "function",
			Function: wireFunction{
				Name:      "redclaw_terminal",
				Arguments: `{"command":"whoami"}`,
			},
		})
	}))
	defer srv.Close()

	router, _ := newTestRouter(t, testProvider("primary", srv.URL, 1))
	req := simpleRequest()
	req.Tools = []ToolSchema{sampleSchema()}

	resp, err := router.Chat(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_abc", resp.ToolCalls[0].ID)
	assert.Equal(t, "redclaw_terminal", resp.ToolCalls[0].Name)
	assert.Equal(t, "whoami", resp.ToolCalls[0].Arguments["command"])
}

func TestRouterFailoverAfterRetriesExhausted(t *testing.T) {
	log := &requestLog{}

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add("primary")
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limit exceeded"}}`)
	}))
	defer primary.Close()

	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add("backup")
		completionResponse(t, w, "served by backup")
	}))
	defer backup.Close()

	router, sleeps := newTestRouter(t,
		testProvider("primary", primary.URL, 1),
		testProvider("backup", backup.URL, 2),
	)

	resp, err := router.Chat(context.Background(), simpleRequest())
	require.NoError(t, err)
	assert.Equal(t, "backup", resp.Provider)
	assert.Equal(t, "served by backup", resp.Content)

	// Failover is monotonic: every primary attempt precedes the first
	// backup attempt, and primary got initial try + RetryCount retries.
	sequence := log.all()
	require.Equal(t, []string{"primary", "primary", "primary", "backup"}, sequence)

	// Backoff follows min(300, retry-after × attempt) with jitter stubbed to 0.
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 1*time.Second, (*sleeps)[0])
	assert.Equal(t, 2*time.Second, (*sleeps)[1])

	assert.Equal(t, "backup", router.ActiveProvider())
}

func TestRouterRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "internal error")
			return
		}
		completionResponse(t, w, "recovered")
	}))
	defer srv.Close()

	router, sleeps := newTestRouter(t, testProvider("primary", srv.URL, 1))
	resp, err := router.Chat(context.Background(), simpleRequest())
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Content)
	assert.Equal(t, 3, calls)

	// Exponential: 2^1, 2^2 seconds.
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 2*time.Second, (*sleeps)[0])
	assert.Equal(t, 4*time.Second, (*sleeps)[1])
}

func TestRouterPromptModeFallback(t *testing.T) {
	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeRequest(t, r)
		if _, hasTools := body["tools"]; hasTools {
			log.add("native")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "tools is not supported by this model"}}`)
			return
		}
		log.add("prompt")

		// The tool catalog must have been folded into the system message.
		messages := body["messages"].([]any)
		system := messages[0].(map[string]any)
		assert.Contains(t, system["content"], "Available tools")

		completionResponse(t, w,
			"Running scan.\n```json\n{\"tool_call\": {\"name\": \"redclaw_terminal\", \"arguments\": {\"command\": \"id\"}}}\n```")
	}))
	defer srv.Close()

	router, _ := newTestRouter(t, testProvider("primary", srv.URL, 1))
	req := simpleRequest()
	req.Tools = []ToolSchema{sampleSchema()}

	resp, err := router.Chat(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"native", "prompt"}, log.all())

	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "redclaw_terminal", resp.ToolCalls[0].Name)
	assert.Equal(t, "id", resp.ToolCalls[0].Arguments["command"])
	assert.Equal(t, "Running scan.", resp.Content)

	t.Run("prompt mode is remembered", func(t *testing.T) {
		resp, err := router.Chat(context.Background(), req)
		require.NoError(t, err)
		require.NotEmpty(t, resp.ToolCalls)
		// No new native attempt: only one more prompt-mode request.
		assert.Equal(t, []string{"native", "prompt", "prompt"}, log.all())
	})
}

func TestRouterAdaptsMaxTokens(t *testing.T) {
	var mu sync.Mutex
	var budgets []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeRequest(t, r)
		mu.Lock()
		budgets = append(budgets, body["max_tokens"].(float64))
		first := len(budgets) == 1
		mu.Unlock()
		if first {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"message": "max_tokens too large: request used 7000 input tokens"}}`)
			return
		}
		completionResponse(t, w, "fits now")
	}))
	defer srv.Close()

	cfg := testProvider("primary", srv.URL, 1)
	cfg.ContextLimit = 8192
	router, _ := newTestRouter(t, cfg)

	resp, err := router.Chat(context.Background(), simpleRequest())
	require.NoError(t, err)
	assert.Equal(t, "fits now", resp.Content)

	// 8192 − 7000 − margin(512) = 680.
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, budgets, 2)
	assert.EqualValues(t, 1024, budgets[0])
	assert.EqualValues(t, 680, budgets[1])
}

func TestRouterHalvesMaxTokensWithoutInputHint(t *testing.T) {
	var mu sync.Mutex
	var budgets []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeRequest(t, r)
		mu.Lock()
		budgets = append(budgets, body["max_tokens"].(float64))
		mu.Unlock()
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "max_tokens exceeds limit"}}`)
	}))
	defer srv.Close()

	router, _ := newTestRouter(t, testProvider("primary", srv.URL, 1))
	_, err := router.Chat(context.Background(), simpleRequest())
	require.Error(t, err)

	// Initial try plus two bounded halving retries: 1024, 512, 256.
	mu.Lock()
	assert.Equal(t, []float64{1024, 512, 256}, budgets)
	mu.Unlock()

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
}

func TestRouterExhaustedError(t *testing.T) {
	unauthorized := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "invalid api key"}}`)
	}))
	defer unauthorized.Close()

	router, sleeps := newTestRouter(t,
		testProvider("alpha", unauthorized.URL, 1),
		testProvider("beta", unauthorized.URL, 2),
	)

	_, err := router.Chat(context.Background(), simpleRequest())
	require.Error(t, err)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Len(t, exhausted.LastErrors, 2)
	assert.Contains(t, err.Error(), "alpha")
	assert.Contains(t, err.Error(), "beta")

	assert.Empty(t, *sleeps, "401 is not retried")
}

func TestRouterNoProviders(t *testing.T) {
	router, _ := newTestRouter(t)
	_, err := router.Chat(context.Background(), simpleRequest())

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
}

func TestRouterContextCancellationStopsFailover(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "rate limit")
	}))
	defer srv.Close()

	router, _ := newTestRouter(t,
		testProvider("alpha", srv.URL, 1),
		testProvider("beta", srv.URL, 2),
	)

	ctx, cancel := context.WithCancel(context.Background())
	router.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err := router.Chat(ctx, simpleRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "no further attempts after cancellation")
}

func TestRouterNativeToolsDisabledInConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeRequest(t, r)
		assert.NotContains(t, body, "tools", "prompt-only provider never sees native tools")
		completionResponse(t, w, "plain answer")
	}))
	defer srv.Close()

	cfg := testProvider("primary", srv.URL, 1)
	disabled := false
	cfg.NativeTools = &disabled

	router, _ := newTestRouter(t, cfg)
	req := simpleRequest()
	req.Tools = []ToolSchema{sampleSchema()}

	resp, err := router.Chat(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "plain answer", resp.Content)
}

func TestCheckProviders(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer unhealthy.Close()

	router, _ := newTestRouter(t,
		testProvider("up", healthy.URL, 1),
		testProvider("down", unhealthy.URL, 2),
	)

	results := router.CheckProviders(context.Background())
	assert.True(t, results["up"])
	assert.False(t, results["down"])

	stats := router.Stats()
	assert.True(t, stats.ProviderHealth["up"])
	assert.False(t, stats.ProviderHealth["down"])
}

func TestParseRetryDelay(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"retry-after header", "retry-after: 30\nrate limit", 30},
		{"wait seconds", "please wait 12 seconds before retrying", 12},
		{"bare seconds", "try again in 5s", 5},
		{"milliseconds", "retry in 1500 milliseconds", 1.5},
		{"default", "rate limit exceeded", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseRetryDelay(tt.body), 0.001)
		})
	}
}
