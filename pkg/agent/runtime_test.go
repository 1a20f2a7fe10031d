package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/tools"
)

// scriptStep is one scripted router response. When the script runs out the
// last step repeats, which lets tests model a model that loops forever.
type scriptStep struct {
	resp *llm.ChatResponse
	err  error
}

type scriptedClient struct {
	mu       sync.Mutex
	script   []scriptStep
	requests []*llm.ChatRequest
	delay    time.Duration
}

func (c *scriptedClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := *req
	snapshot.Messages = append([]llm.Message(nil), req.Messages...)
	c.requests = append(c.requests, &snapshot)

	idx := len(c.requests) - 1
	if idx >= len(c.script) {
		idx = len(c.script) - 1
	}
	step := c.script[idx]
	return step.resp, step.err
}

func (c *scriptedClient) requestLog() []*llm.ChatRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*llm.ChatRequest(nil), c.requests...)
}

// proberClient adds the router's health probe to a scripted client.
type proberClient struct {
	scriptedClient
	health map[string]bool

	mu     sync.Mutex
	probes int
}

func (c *proberClient) CheckProviders(ctx context.Context) map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes++
	return c.health
}

// echoServer is a canned tool server: fixed output or error per tool name.
type echoServer struct {
	name    string
	outputs map[string]string
	fails   map[string]string

	mu    sync.Mutex
	calls []llm.ToolCall
}

func (s *echoServer) Name() string { return s.name }

func (s *echoServer) GetTools(ctx context.Context) ([]llm.ToolSchema, error) {
	var schemas []llm.ToolSchema
	for tool := range s.outputs {
		schemas = append(schemas, llm.ToolSchema{Name: tool, Description: "test tool"})
	}
	for tool := range s.fails {
		schemas = append(schemas, llm.ToolSchema{Name: tool, Description: "test tool"})
	}
	return schemas, nil
}

func (s *echoServer) ExecuteTool(ctx context.Context, call llm.ToolCall) (*tools.Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	if msg, failing := s.fails[call.Name]; failing {
		return &tools.Result{Tool: call.Name, Success: false, Error: msg}, nil
	}
	return &tools.Result{Tool: call.Name, Success: true, Output: s.outputs[call.Name]}, nil
}

func newTestBridge(t *testing.T, server *echoServer) *tools.Bridge {
	t.Helper()
	bridge := tools.NewBridge(nil)
	require.NoError(t, bridge.RegisterServer(context.Background(), server))
	return bridge
}

func collectEvents(t *testing.T, ch <-chan Event) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, open := <-ch:
			if !open {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("event stream did not close in time")
		}
	}
}

func requireSingleFinal(t *testing.T, events []Event) Event {
	t.Helper()
	require.NotEmpty(t, events)

	var finals []Event
	for _, ev := range events {
		if ev.IsFinal {
			finals = append(finals, ev)
		}
	}
	require.Len(t, finals, 1, "expected exactly one final event, got %d", len(finals))
	assert.True(t, events[len(events)-1].IsFinal, "the final event must be the last one")
	return finals[0]
}

func toolCall(id, name string, args map[string]any) llm.ToolCall {
	return llm.ToolCall{ID: id, Name: name, Arguments: args}
}

func TestRunTaskCompletesWithoutTools(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{
			Content:      "No exposed services found on the target.",
			FinishReason: "stop",
			Provider:     "openai",
			Model:        "gpt-4o",
		}},
	}}
	rt := NewRuntime(client, nil, Options{})

	events := collectEvents(t, rt.RunTask(context.Background(), "check 10.0.0.5 for exposed services", nil))

	require.Len(t, events, 2)
	assert.Equal(t, EventAssistant, events[0].Kind)
	assert.False(t, events[0].IsFinal)
	assert.Equal(t, "No exposed services found on the target.", events[0].Content)
	assert.Equal(t, "openai", events[0].Metadata["provider"])

	final := requireSingleFinal(t, events)
	assert.Equal(t, EventAssistant, final.Kind)
	assert.Equal(t, "No exposed services found on the target.", final.Content)
	assert.Equal(t, "completed", final.Metadata["reason"])
	assert.Equal(t, 1, final.Metadata["iterations"])

	requests := client.requestLog()
	require.Len(t, requests, 1)
	require.Len(t, requests[0].Messages, 2)
	assert.Equal(t, llm.RoleSystem, requests[0].Messages[0].Role)
	assert.Equal(t, llm.RoleUser, requests[0].Messages[1].Role)
	assert.Equal(t, "check 10.0.0.5 for exposed services", requests[0].Messages[1].Content)
	assert.Empty(t, requests[0].Tools)

	stats := rt.Stats()
	assert.True(t, stats.Initialized)
	assert.Equal(t, HealthReady, stats.Health)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, 1, stats.LastIterations)
}

func TestRunTaskToolLoop(t *testing.T) {
	server := &echoServer{
		name: "scanner",
		outputs: map[string]string{
			"port_scan":  "22/tcp open ssh\n80/tcp open http",
			"http_probe": "HTTP/1.1 200 OK\nServer: nginx",
		},
	}
	bridge := newTestBridge(t, server)

	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{
			Content:  "I will scan the target, then probe the web server.",
			Provider: "openai",
			Model:    "gpt-4o",
			ToolCalls: []llm.ToolCall{
				toolCall("call-1", "port_scan", map[string]any{"target": "10.0.0.5"}),
				toolCall("call-2", "http_probe", map[string]any{"url": "http://10.0.0.5"}),
			},
		}},
		{resp: &llm.ChatResponse{
			Content:  "Target exposes ssh and an nginx web server.",
			Provider: "openai",
			Model:    "gpt-4o",
		}},
	}}
	rt := NewRuntime(client, bridge, Options{})

	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", nil))

	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []EventKind{
		EventAssistant,
		EventThinking, EventTool,
		EventThinking, EventTool,
		EventAssistant, EventAssistant,
	}, kinds)

	final := requireSingleFinal(t, events)
	assert.Equal(t, "Target exposes ssh and an nginx web server.", final.Content)
	assert.Equal(t, 2, final.Metadata["iterations"])

	assert.Contains(t, events[1].Content, "port_scan")
	assert.Equal(t, "port_scan", events[2].Metadata["tool"])
	assert.Equal(t, true, events[2].Metadata["success"])
	assert.Equal(t, "22/tcp open ssh\n80/tcp open http", events[2].Content)

	// The second request must carry the assistant's tool calls plus one tool
	// message per call, ids matched.
	requests := client.requestLog()
	require.Len(t, requests, 2)
	msgs := requests[1].Messages
	require.Len(t, msgs, 5)
	assert.Equal(t, llm.RoleAssistant, msgs[2].Role)
	require.Len(t, msgs[2].ToolCalls, 2)
	assert.Equal(t, llm.RoleTool, msgs[3].Role)
	assert.Equal(t, "call-1", msgs[3].ToolCallID)
	assert.Equal(t, "port_scan", msgs[3].ToolName)
	assert.Equal(t, "22/tcp open ssh\n80/tcp open http", msgs[3].Content)
	assert.Equal(t, llm.RoleTool, msgs[4].Role)
	assert.Equal(t, "call-2", msgs[4].ToolCallID)

	assert.Equal(t, 2, rt.Stats().LastIterations)
}

func TestRunTaskToolFailureFeedsErrorBack(t *testing.T) {
	server := &echoServer{
		name:  "scanner",
		fails: map[string]string{"port_scan": "connection refused by target"},
	}
	bridge := newTestBridge(t, server)

	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{
			Content:   "Scanning.",
			ToolCalls: []llm.ToolCall{toolCall("call-1", "port_scan", map[string]any{"target": "10.0.0.5"})},
		}},
		{resp: &llm.ChatResponse{Content: "The target is not reachable."}},
	}}
	rt := NewRuntime(client, bridge, Options{})

	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", nil))
	requireSingleFinal(t, events)

	var toolEvent *Event
	for i := range events {
		if events[i].Kind == EventTool {
			toolEvent = &events[i]
			break
		}
	}
	require.NotNil(t, toolEvent)
	assert.Equal(t, false, toolEvent.Metadata["success"])
	assert.Contains(t, toolEvent.Content, "connection refused by target")

	// The model sees the failure reason in its next turn.
	requests := client.requestLog()
	require.Len(t, requests, 2)
	last := requests[1].Messages[len(requests[1].Messages)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Contains(t, last.Content, "connection refused by target")
}

func TestRunTaskMaxIterations(t *testing.T) {
	server := &echoServer{
		name:    "scanner",
		outputs: map[string]string{"port_scan": "22/tcp open ssh"},
	}
	bridge := newTestBridge(t, server)

	// The script never produces a tool-free answer, so the cap must fire.
	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{
			Content:   "Scanning again.",
			ToolCalls: []llm.ToolCall{toolCall("call-1", "port_scan", map[string]any{"target": "10.0.0.5"})},
		}},
	}}
	rt := NewRuntime(client, bridge, Options{MaxIterations: 3})

	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", nil))

	final := requireSingleFinal(t, events)
	assert.Equal(t, EventSystem, final.Kind)
	assert.Contains(t, final.Content, "maximum iterations (3)")
	assert.Equal(t, "max_iterations", final.Metadata["reason"])

	// Three iterations of assistant + thinking + tool, then the final event.
	assert.Len(t, events, 10)
	assert.Equal(t, 3, rt.Stats().LastIterations)
	assert.Len(t, client.requestLog(), 3)
}

func TestRunTaskProviderExhaustion(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{err: &llm.ExhaustedError{LastErrors: map[string]error{
			"openai": errors.New("status 500"),
		}}},
	}}
	rt := NewRuntime(client, nil, Options{})

	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", nil))

	require.Len(t, events, 1)
	final := requireSingleFinal(t, events)
	assert.Equal(t, EventSystem, final.Kind)
	assert.Equal(t, "provider_exhaustion", final.Metadata["reason"])
	assert.Contains(t, final.Content, "all LLM providers exhausted")
}

func TestRunTaskWallClockTimeout(t *testing.T) {
	client := &scriptedClient{
		delay: 500 * time.Millisecond,
		script: []scriptStep{
			{resp: &llm.ChatResponse{Content: "too late"}},
		},
	}
	rt := NewRuntime(client, nil, Options{TaskTimeout: 50 * time.Millisecond})

	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", nil))

	final := requireSingleFinal(t, events)
	assert.Equal(t, EventSystem, final.Kind)
	assert.Equal(t, "timeout", final.Metadata["reason"])
	assert.Contains(t, final.Content, "timed out")
}

func TestRunTaskCancellation(t *testing.T) {
	client := &scriptedClient{
		delay: 500 * time.Millisecond,
		script: []scriptStep{
			{resp: &llm.ChatResponse{Content: "too late"}},
		},
	}
	rt := NewRuntime(client, nil, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	ch := rt.RunTask(ctx, "map 10.0.0.5", nil)
	time.AfterFunc(50*time.Millisecond, cancel)

	events := collectEvents(t, ch)

	final := requireSingleFinal(t, events)
	assert.Equal(t, EventSystem, final.Kind)
	assert.Equal(t, "canceled", final.Metadata["reason"])
}

func TestRunTaskTrimsConversation(t *testing.T) {
	server := &echoServer{
		name:    "scanner",
		outputs: map[string]string{"noisy": strings.Repeat("A", 300)},
	}
	bridge := newTestBridge(t, server)

	step := func(id string) scriptStep {
		return scriptStep{resp: &llm.ChatResponse{
			Content:   "Collecting more output.",
			ToolCalls: []llm.ToolCall{toolCall(id, "noisy", map[string]any{"target": "10.0.0.5"})},
		}}
	}
	client := &scriptedClient{script: []scriptStep{
		step("call-1"),
		step("call-2"),
		step("call-3"),
		{resp: &llm.ChatResponse{Content: "Done."}},
	}}

	// 100-token budget: the 60% threshold is a few hundred characters, so
	// trimming starts as soon as the conversation is long enough to trim.
	rt := NewRuntime(client, bridge, Options{ContextLimit: 100})

	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", nil))
	requireSingleFinal(t, events)

	requests := client.requestLog()
	require.Len(t, requests, 4)

	assert.Len(t, requests[0].Messages, 2)
	assert.Len(t, requests[1].Messages, 4)

	// Six messages at iteration 3 collapse to: system prompt, objective,
	// trim note, and the last assistant/tool pair.
	third := requests[2].Messages
	require.Len(t, third, 5)
	assert.Equal(t, llm.RoleSystem, third[2].Role)
	assert.Equal(t, "[2 messages trimmed. Iteration: 3. Continue task.]", third[2].Content)
	assert.Equal(t, "map 10.0.0.5", third[1].Content)
	assert.Equal(t, "call-2", third[4].ToolCallID)

	fourth := requests[3].Messages
	require.Len(t, fourth, 5)
	assert.Equal(t, "[3 messages trimmed. Iteration: 4. Continue task.]", fourth[2].Content)
	assert.Equal(t, "call-3", fourth[4].ToolCallID)
}

func TestRunTaskSystemPromptCarriesContext(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{Content: "done"}},
	}}
	rt := NewRuntime(client, nil, Options{})

	taskCtx := &TaskContext{
		EngagementID: "eng-1",
		AgentID:      "agent-recon",
		Scope:        &models.Scope{IncludeCIDRs: []string{"10.0.0.0/24"}},
		TaskType:     models.TaskTypeRecon,
		PeerFindings: []string{"Open SSH on 10.0.0.5 (high)"},
	}
	events := collectEvents(t, rt.RunTask(context.Background(), "enumerate the network", taskCtx))
	requireSingleFinal(t, events)

	requests := client.requestLog()
	require.Len(t, requests, 1)
	assert.Equal(t, "eng-1", requests[0].EngagementID)
	assert.Equal(t, "agent-recon", requests[0].AgentID)

	system := requests[0].Messages[0].Content
	assert.Contains(t, system, "10.0.0.0/24")
	assert.Contains(t, system, "Reconnaissance task")
	assert.Contains(t, system, "Open SSH on 10.0.0.5 (high)")
}

func TestInitialize(t *testing.T) {
	t.Run("plain client is ready", func(t *testing.T) {
		rt := NewRuntime(&scriptedClient{}, nil, Options{})
		assert.Equal(t, HealthNotInitialized, rt.Health())
		require.NoError(t, rt.Initialize(context.Background()))
		assert.Equal(t, HealthReady, rt.Health())
	})

	t.Run("prober with a reachable provider is ready", func(t *testing.T) {
		client := &proberClient{health: map[string]bool{"openai": false, "anthropic": true}}
		rt := NewRuntime(client, nil, Options{})
		require.NoError(t, rt.Initialize(context.Background()))
		assert.Equal(t, HealthReady, rt.Health())
		assert.Equal(t, map[string]bool{"openai": false, "anthropic": true}, rt.Stats().ProviderHealth)
	})

	t.Run("prober with no reachable provider is degraded", func(t *testing.T) {
		client := &proberClient{health: map[string]bool{"openai": false}}
		rt := NewRuntime(client, nil, Options{})
		require.NoError(t, rt.Initialize(context.Background()))
		assert.Equal(t, HealthDegraded, rt.Health())
	})

	t.Run("initialize is idempotent", func(t *testing.T) {
		client := &proberClient{health: map[string]bool{"openai": true}}
		rt := NewRuntime(client, nil, Options{})
		require.NoError(t, rt.Initialize(context.Background()))
		require.NoError(t, rt.Initialize(context.Background()))
		assert.Equal(t, 1, client.probes)
	})

	t.Run("nil client errors", func(t *testing.T) {
		rt := NewRuntime(nil, nil, Options{})
		assert.Error(t, rt.Initialize(context.Background()))
	})
}

func TestRuntimeLifecycle(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{Content: "done"}},
	}}
	rt := NewRuntime(client, nil, Options{})

	events := collectEvents(t, rt.RunTask(context.Background(), "task one", nil))
	requireSingleFinal(t, events)
	assert.Greater(t, rt.Stats().ConversationLen, 0)

	rt.ResetConversation()
	assert.Equal(t, 0, rt.Stats().ConversationLen)

	rt.Shutdown()
	assert.Equal(t, HealthNotInitialized, rt.Health())
	assert.False(t, rt.Stats().Initialized)

	// A new task re-initializes on demand.
	events = collectEvents(t, rt.RunTask(context.Background(), "task two", nil))
	requireSingleFinal(t, events)
	assert.Equal(t, HealthReady, rt.Health())
	assert.Equal(t, 2, rt.Stats().TotalTasks)
}

// memRecorder collects interaction records in memory.
type memRecorder struct {
	mu       sync.Mutex
	llmRecs  []*LLMRecord
	toolRecs []*ToolRecord
	fail     bool
}

func (m *memRecorder) RecordLLMInteraction(ctx context.Context, rec *LLMRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("recorder unavailable")
	}
	m.llmRecs = append(m.llmRecs, rec)
	return nil
}

func (m *memRecorder) RecordToolInteraction(ctx context.Context, rec *ToolRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("recorder unavailable")
	}
	m.toolRecs = append(m.toolRecs, rec)
	return nil
}

func TestRunTaskRecordsInteractions(t *testing.T) {
	server := &echoServer{
		name:    "scanner",
		outputs: map[string]string{"port_scan": "22/tcp open ssh"},
	}
	bridge := newTestBridge(t, server)

	client := &scriptedClient{script: []scriptStep{
		{resp: &llm.ChatResponse{
			Content:   "Scanning.",
			Provider:  "openai",
			Model:     "gpt-4o",
			Usage:     llm.Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
			ToolCalls: []llm.ToolCall{toolCall("call-1", "port_scan", map[string]any{"target": "10.0.0.5"})},
		}},
		{resp: &llm.ChatResponse{Content: "Done.", Provider: "openai", Model: "gpt-4o"}},
	}}

	recorder := &memRecorder{}
	rt := NewRuntime(client, bridge, Options{Recorder: recorder})

	taskCtx := &TaskContext{EngagementID: "eng-1", AgentID: "agent-t1"}
	events := collectEvents(t, rt.RunTask(context.Background(), "map 10.0.0.5", taskCtx))
	requireSingleFinal(t, events)

	require.Len(t, recorder.llmRecs, 2)
	first := recorder.llmRecs[0]
	assert.Equal(t, "eng-1", first.EngagementID)
	assert.Equal(t, "agent-t1", first.AgentID)
	assert.Equal(t, 1, first.Iteration)
	assert.Equal(t, "openai", first.Provider)
	assert.Equal(t, 1, first.ToolCallCount)
	assert.Equal(t, 120, first.Usage.TotalTokens)
	assert.Contains(t, first.RequestSummary, "2 messages:")
	assert.NotContains(t, first.RequestSummary, "map 10.0.0.5", "summaries must not leak message bodies")

	require.Len(t, recorder.toolRecs, 1)
	tr := recorder.toolRecs[0]
	assert.Equal(t, "port_scan", tr.ToolName)
	assert.Equal(t, "scanner", tr.ServerName)
	assert.True(t, tr.Success)
	assert.Equal(t, "22/tcp open ssh", tr.Output)

	t.Run("recorder failures do not fail the task", func(t *testing.T) {
		client := &scriptedClient{script: []scriptStep{
			{resp: &llm.ChatResponse{Content: "Done."}},
		}}
		rt := NewRuntime(client, nil, Options{Recorder: &memRecorder{fail: true}})

		events := collectEvents(t, rt.RunTask(context.Background(), "objective", taskCtx))
		final := requireSingleFinal(t, events)
		assert.Equal(t, "completed", final.Metadata["reason"])
	})
}
