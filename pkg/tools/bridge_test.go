package tools

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
)

// stubServer is a scriptable ToolServer for bridge tests.
type stubServer struct {
	name    string
	kind    guardian.SessionKind
	schemas []llm.ToolSchema
	result  *Result
	err     error

	mu    sync.Mutex
	calls []llm.ToolCall
}

func (s *stubServer) Name() string { return s.name }

func (s *stubServer) SessionKind() guardian.SessionKind {
	if s.kind == "" {
		return guardian.SessionRemote
	}
	return s.kind
}

func (s *stubServer) GetTools(context.Context) ([]llm.ToolSchema, error) {
	return s.schemas, nil
}

func (s *stubServer) ExecuteTool(_ context.Context, call llm.ToolCall) (*Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		out := *s.result
		return &out, nil
	}
	return &Result{Tool: call.Name, Success: true, Output: "ok"}, nil
}

func (s *stubServer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func nmapStub() *stubServer {
	return &stubServer{
		name: "nmap",
		schemas: []llm.ToolSchema{
			{Name: "nmap_scan", Description: "Port scan", Parameters: map[string]any{"type": "object"}},
		},
	}
}

func newTestGuardian(t *testing.T) *guardian.Guardian {
	t.Helper()
	return guardian.New(guardian.ConfigFrom(&config.GuardianConfig{}, nil))
}

func TestBridgeRegisterAndGetTools(t *testing.T) {
	b := NewBridge(nil)
	require.NoError(t, b.RegisterServer(context.Background(), nmapStub()))
	require.NoError(t, b.RegisterServer(context.Background(), &stubServer{
		name: "gobuster",
		schemas: []llm.ToolSchema{
			{Name: "dir_scan"}, {Name: "vhost_scan"},
		},
	}))

	tools := b.GetTools()
	assert.Len(t, tools, 3)

	names := make([]string, 0, len(tools))
	for _, schema := range tools {
		names = append(names, schema.Name)
	}
	assert.ElementsMatch(t, []string{"nmap_scan", "dir_scan", "vhost_scan"}, names)

	stats := b.Stats()
	assert.Equal(t, 2, stats.RegisteredServers)
	assert.Zero(t, stats.TotalExecutions)
}

func TestBridgeDispatchResolution(t *testing.T) {
	server := nmapStub()
	b := NewBridge(nil)
	require.NoError(t, b.RegisterServer(context.Background(), server))

	t.Run("schema index hit", func(t *testing.T) {
		res := b.Dispatch(context.Background(), llm.ToolCall{ID: "1", Name: "nmap_scan"})
		assert.True(t, res.Success)
		assert.Equal(t, "ok", res.Output)
	})

	t.Run("prefix stripped before index lookup", func(t *testing.T) {
		res := b.Dispatch(context.Background(), llm.ToolCall{ID: "2", Name: "redclaw_nmap_scan"})
		require.True(t, res.Success)

		// The server must see the resolved tool name, not the prefixed one.
		server.mu.Lock()
		last := server.calls[len(server.calls)-1]
		server.mu.Unlock()
		assert.Equal(t, "nmap_scan", last.Name)
	})

	t.Run("tool name as server name", func(t *testing.T) {
		res := b.Dispatch(context.Background(), llm.ToolCall{ID: "3", Name: "nmap"})
		assert.True(t, res.Success)
	})

	t.Run("unknown tool returns failed result", func(t *testing.T) {
		res := b.Dispatch(context.Background(), llm.ToolCall{ID: "4", Name: "unknown_tool"})
		assert.False(t, res.Success)
		assert.Equal(t, "no server registered for tool: unknown_tool", res.Error)
	})
}

func TestBridgeGuardianAuthorization(t *testing.T) {
	t.Run("blocked command never reaches the server", func(t *testing.T) {
		server := &stubServer{
			name:    "terminal",
			kind:    guardian.SessionLocal,
			schemas: []llm.ToolSchema{{Name: "run_terminal_command"}},
		}
		b := NewBridge(newTestGuardian(t))
		require.NoError(t, b.RegisterServer(context.Background(), server))

		res := b.Dispatch(context.Background(), llm.ToolCall{
			ID:        "1",
			Name:      "run_terminal_command",
			Arguments: map[string]any{"command": "rm -rf /"},
		})

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "Blocked")
		assert.Equal(t, string(guardian.RiskBlocked), res.Metadata["risk_level"])
		assert.Zero(t, server.callCount(), "denied call must not reach the server")
	})

	t.Run("allowed command passes through", func(t *testing.T) {
		server := &stubServer{
			name:    "terminal",
			kind:    guardian.SessionLocal,
			schemas: []llm.ToolSchema{{Name: "run_terminal_command"}},
		}
		b := NewBridge(newTestGuardian(t))
		require.NoError(t, b.RegisterServer(context.Background(), server))

		res := b.Dispatch(context.Background(), llm.ToolCall{
			ID:        "2",
			Name:      "run_terminal_command",
			Arguments: map[string]any{"command": "whois example.com"},
		})

		assert.True(t, res.Success)
		assert.Equal(t, 1, server.callCount())
	})

	t.Run("calls without a command argument skip guardian", func(t *testing.T) {
		server := nmapStub()
		b := NewBridge(newTestGuardian(t))
		require.NoError(t, b.RegisterServer(context.Background(), server))

		res := b.Dispatch(context.Background(), llm.ToolCall{
			ID:        "3",
			Name:      "nmap_scan",
			Arguments: map[string]any{"target": "10.0.0.5"},
		})

		assert.True(t, res.Success)
		assert.Equal(t, 1, server.callCount())
	})
}

func TestBridgeDispatchServerFailures(t *testing.T) {
	t.Run("server error becomes failed result", func(t *testing.T) {
		b := NewBridge(nil)
		require.NoError(t, b.RegisterServer(context.Background(), &stubServer{
			name:    "flaky",
			schemas: []llm.ToolSchema{{Name: "flaky_op"}},
			err:     errors.New("subprocess died"),
		}))

		res := b.Dispatch(context.Background(), llm.ToolCall{ID: "1", Name: "flaky_op"})

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "subprocess died")
	})

	t.Run("failed tool result passes through with metadata", func(t *testing.T) {
		b := NewBridge(nil)
		require.NoError(t, b.RegisterServer(context.Background(), &stubServer{
			name:    "nmap",
			schemas: []llm.ToolSchema{{Name: "nmap_scan"}},
			result:  &Result{Tool: "nmap_scan", Success: false, Error: "host unreachable"},
		}))

		res := b.Dispatch(context.Background(), llm.ToolCall{ID: "1", Name: "nmap_scan"})

		assert.False(t, res.Success)
		assert.Equal(t, "host unreachable", res.Error)
		assert.Equal(t, "nmap", res.Metadata["server"])
	})
}

func TestBridgeMasksToolOutput(t *testing.T) {
	b := NewBridge(nil)
	b.UseMasking(masking.NewService(&config.MaskingConfig{PatternGroups: []string{"basic"}}))
	require.NoError(t, b.RegisterServer(context.Background(), &stubServer{
		name:    "http",
		schemas: []llm.ToolSchema{{Name: "http_probe"}},
		result: &Result{
			Tool:    "http_probe",
			Success: true,
			Output:  `response body: password: "hunter2hunter2"`,
		},
	}))

	res := b.Dispatch(context.Background(), llm.ToolCall{ID: "1", Name: "http_probe"})

	require.True(t, res.Success)
	assert.NotContains(t, res.Output, "hunter2hunter2")
	assert.Contains(t, res.Output, "__MASKED_PASSWORD__")
}

func TestBridgeStatsAndExecutions(t *testing.T) {
	b := NewBridge(nil)
	require.NoError(t, b.RegisterServer(context.Background(), nmapStub()))

	b.Dispatch(context.Background(), llm.ToolCall{ID: "1", Name: "nmap_scan"})
	b.Dispatch(context.Background(), llm.ToolCall{ID: "2", Name: "nmap_scan"})
	b.Dispatch(context.Background(), llm.ToolCall{ID: "3", Name: "missing_tool"})

	stats := b.Stats()
	assert.Equal(t, 1, stats.RegisteredServers)
	assert.Equal(t, 3, stats.TotalExecutions)
	assert.Equal(t, 2, stats.Successes)
	assert.Equal(t, 1, stats.Failures)
	assert.InDelta(t, 2.0/3.0, stats.SuccessRate, 1e-9)

	log := b.Executions()
	require.Len(t, log, 3)
	assert.Equal(t, "nmap_scan", log[0].Tool)
	assert.True(t, log[0].Success)
	assert.Equal(t, "missing_tool", log[2].Tool)
	assert.False(t, log[2].Success)
	assert.NotZero(t, log[0].Timestamp)
}

func TestBridgeConcurrentDispatch(t *testing.T) {
	b := NewBridge(nil)
	require.NoError(t, b.RegisterServer(context.Background(), nmapStub()))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := b.Dispatch(context.Background(), llm.ToolCall{Name: "nmap_scan"})
			assert.True(t, res.Success)
		}()
	}
	wg.Wait()

	stats := b.Stats()
	assert.Equal(t, n, stats.TotalExecutions)
	assert.Equal(t, n, stats.Successes)
}
