package tools

import (
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("terminal server requires sh")
	}
}

func TestTerminalServerMetadata(t *testing.T) {
	srv := NewTerminalServer()

	assert.Equal(t, TerminalServerName, srv.Name())

	kinder, ok := srv.(sessionKinder)
	require.True(t, ok)
	assert.Equal(t, guardian.SessionLocal, kinder.SessionKind())

	tools, err := srv.GetTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, TerminalToolName, tools[0].Name)
	assert.Contains(t, tools[0].Parameters, "properties")
}

func TestTerminalServerExecute(t *testing.T) {
	requireShell(t)
	srv := NewTerminalServer()

	t.Run("captures combined output", func(t *testing.T) {
		res, err := srv.ExecuteTool(context.Background(), llm.ToolCall{
			Name:      TerminalToolName,
			Arguments: map[string]any{"command": "echo out; echo err 1>&2"},
		})
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Contains(t, res.Output, "out")
		assert.Contains(t, res.Output, "err")
		assert.Equal(t, "echo out; echo err 1>&2", res.CommandExecuted)
		assert.Equal(t, 0, res.Metadata["exit_code"])
		assert.Greater(t, res.Duration, time.Duration(0))
	})

	t.Run("nonzero exit is a failed result with output", func(t *testing.T) {
		res, err := srv.ExecuteTool(context.Background(), llm.ToolCall{
			Name:      TerminalToolName,
			Arguments: map[string]any{"command": "echo partial; exit 3"},
		})
		require.NoError(t, err)

		assert.False(t, res.Success)
		assert.Contains(t, res.Output, "partial")
		assert.Equal(t, 3, res.Metadata["exit_code"])
		assert.NotEmpty(t, res.Error)
	})

	t.Run("missing command argument", func(t *testing.T) {
		res, err := srv.ExecuteTool(context.Background(), llm.ToolCall{
			Name:      TerminalToolName,
			Arguments: map[string]any{"target": "10.0.0.5"},
		})
		require.NoError(t, err)

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "command")
	})

	t.Run("timeout kills the command", func(t *testing.T) {
		fast := &terminalServer{timeout: 100 * time.Millisecond, logger: testLogger()}
		start := time.Now()
		res, err := fast.ExecuteTool(context.Background(), llm.ToolCall{
			Name:      TerminalToolName,
			Arguments: map[string]any{"command": "sleep 5"},
		})
		require.NoError(t, err)

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "timed out")
		assert.Less(t, time.Since(start), 3*time.Second)
	})

	t.Run("timeout override respected", func(t *testing.T) {
		fast := &terminalServer{timeout: 50 * time.Millisecond, logger: testLogger()}
		res, err := fast.ExecuteTool(context.Background(), llm.ToolCall{
			Name: TerminalToolName,
			Arguments: map[string]any{
				"command":         "sleep 0.2; echo done",
				"timeout_seconds": 5.0,
			},
		})
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Contains(t, res.Output, "done")
	})
}

func TestTerminalThroughBridge(t *testing.T) {
	requireShell(t)

	b := NewBridge(newTestGuardian(t))
	require.NoError(t, b.RegisterServer(context.Background(), NewTerminalServer()))

	t.Run("benign command executes", func(t *testing.T) {
		res := b.Dispatch(context.Background(), llm.ToolCall{
			Name:      TerminalToolName,
			Arguments: map[string]any{"command": "echo recon"},
		})
		assert.True(t, res.Success)
		assert.Contains(t, res.Output, "recon")
	})

	t.Run("destructive command is blocked before execution", func(t *testing.T) {
		res := b.Dispatch(context.Background(), llm.ToolCall{
			Name:      TerminalToolName,
			Arguments: map[string]any{"command": "rm -rf / --no-preserve-root"},
		})
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "Blocked")
		assert.Empty(t, res.Output)
	})
}

func testLogger() *slog.Logger {
	return slog.Default()
}
