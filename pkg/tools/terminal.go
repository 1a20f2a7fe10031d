package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
)

const (
	// TerminalServerName is the registration name of the builtin terminal.
	TerminalServerName = "terminal"

	// TerminalToolName is the single tool the terminal server exposes.
	TerminalToolName = "run_terminal_command"

	// defaultCommandTimeout bounds one terminal command.
	defaultCommandTimeout = 60 * time.Second

	// maxCommandTimeout caps caller-requested timeouts (long scans).
	maxCommandTimeout = 300 * time.Second
)

// terminalServer executes commands on the orchestrator host through sh.
// Every call goes through the bridge and therefore through guardian; the
// server itself performs no policy checks.
type terminalServer struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewTerminalServer creates the builtin local terminal tool server.
func NewTerminalServer() ToolServer {
	return &terminalServer{
		timeout: defaultCommandTimeout,
		logger:  slog.Default().With("component", "terminal_server"),
	}
}

func (s *terminalServer) Name() string { return TerminalServerName }

// SessionKind marks terminal commands as local host executions.
func (s *terminalServer) SessionKind() guardian.SessionKind {
	return guardian.SessionLocal
}

// GetTools describes the single run_terminal_command tool.
func (s *terminalServer) GetTools(_ context.Context) ([]llm.ToolSchema, error) {
	return []llm.ToolSchema{
		{
			Name:        TerminalToolName,
			Description: "Run a shell command on the orchestrator host and return its combined stdout/stderr.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"command": map[string]any{
						"type":        "string",
						"description": "Shell command to execute",
					},
					"timeout_seconds": map[string]any{
						"type":        "number",
						"description": "Optional timeout override in seconds (max 300)",
					},
				},
				"required": []string{"command"},
			},
		},
	}, nil
}

// ExecuteTool runs the command with combined output capture.
func (s *terminalServer) ExecuteTool(ctx context.Context, call llm.ToolCall) (*Result, error) {
	start := time.Now()

	command, found := commandArgument(call.Arguments)
	if !found {
		return &Result{
			Tool:     call.Name,
			Success:  false,
			Error:    "missing required string argument: command",
			Duration: time.Since(start),
		}, nil
	}

	timeout := s.commandTimeout(call.Arguments)
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "sh", "-c", command)
	output, err := cmd.CombinedOutput()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	res := &Result{
		Tool:            call.Name,
		Success:         err == nil,
		Output:          string(output),
		Duration:        time.Since(start),
		CommandExecuted: command,
		Metadata:        map[string]any{"exit_code": exitCode},
	}

	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.Error = fmt.Sprintf("command timed out after %s", timeout)
	case err != nil:
		res.Error = err.Error()
	}

	return res, nil
}

// commandTimeout honors an optional timeout_seconds argument, capped.
func (s *terminalServer) commandTimeout(args map[string]any) time.Duration {
	raw, exists := args["timeout_seconds"]
	if !exists {
		return s.timeout
	}
	seconds, isNumber := raw.(float64)
	if !isNumber || seconds <= 0 {
		return s.timeout
	}
	timeout := time.Duration(seconds * float64(time.Second))
	if timeout > maxCommandTimeout {
		return maxCommandTimeout
	}
	return timeout
}
