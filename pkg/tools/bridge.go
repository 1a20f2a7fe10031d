// Package tools implements the tool bridge: a registry of tool servers and
// the dispatcher that routes model tool calls through guardian authorization
// and output masking before any server executes anything.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/masking"
)

// toolPrefix is stripped from model-emitted tool names during resolution.
// Some models prepend the product name to tool schemas they were shown.
const toolPrefix = "redclaw_"

// Result is the structured outcome of one tool execution.
type Result struct {
	Tool            string         `json:"tool"`
	Success         bool           `json:"success"`
	Output          string         `json:"output,omitempty"`
	Error           string         `json:"error,omitempty"`
	Duration        time.Duration  `json:"duration"`
	CommandExecuted string         `json:"command_executed,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// ToolServer is the contract the bridge dispatches to. Implementations are
// opaque: the bridge never inspects what a tool does, only its schemas.
type ToolServer interface {
	Name() string
	GetTools(ctx context.Context) ([]llm.ToolSchema, error)
	ExecuteTool(ctx context.Context, call llm.ToolCall) (*Result, error)
}

// sessionKinder is an optional ToolServer upgrade that declares where the
// server's commands execute. Servers that do not implement it are treated
// as remote.
type sessionKinder interface {
	SessionKind() guardian.SessionKind
}

// Execution is one entry in the bridge's dispatch log.
type Execution struct {
	Timestamp time.Time     `json:"timestamp"`
	Tool      string        `json:"tool"`
	Server    string        `json:"server,omitempty"`
	Success   bool          `json:"success"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// Stats summarizes bridge activity since construction.
type Stats struct {
	RegisteredServers int     `json:"registered_servers"`
	TotalExecutions   int     `json:"total_executions"`
	Successes         int     `json:"successes"`
	Failures          int     `json:"failures"`
	SuccessRate       float64 `json:"success_rate"`
}

// Bridge resolves model tool calls to registered servers. Read-mostly after
// construction; Dispatch is safe for concurrent use provided each server is.
type Bridge struct {
	guardian *guardian.Guardian
	masking  *masking.Service

	mu          sync.RWMutex
	servers     map[string]ToolServer
	kinds       map[string]guardian.SessionKind // server name → session kind
	schemaIndex map[string]string               // tool name → server name
	schemas     []llm.ToolSchema

	executions []Execution
	successes  int
	failures   int

	logger *slog.Logger
}

// NewBridge creates a bridge with guardian authorization. A nil guardian
// disables command validation (tests only; production always passes one).
func NewBridge(g *guardian.Guardian) *Bridge {
	return &Bridge{
		guardian:    g,
		servers:     make(map[string]ToolServer),
		kinds:       make(map[string]guardian.SessionKind),
		schemaIndex: make(map[string]string),
		logger:      slog.Default().With("component", "tool_bridge"),
	}
}

// UseMasking applies the masking service to all tool output from this bridge.
func (b *Bridge) UseMasking(svc *masking.Service) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.masking = svc
}

// RegisterServer adds a server and indexes its tool schemas. Tool names
// already claimed by another server are overwritten; last registration wins.
func (b *Bridge) RegisterServer(ctx context.Context, server ToolServer) error {
	schemas, err := server.GetTools(ctx)
	if err != nil {
		return fmt.Errorf("list tools from server %q: %w", server.Name(), err)
	}

	kind := guardian.SessionRemote
	if sk, ok := server.(sessionKinder); ok {
		kind = sk.SessionKind()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.servers[server.Name()] = server
	b.kinds[server.Name()] = kind
	for _, schema := range schemas {
		if prev, exists := b.schemaIndex[schema.Name]; exists && prev != server.Name() {
			b.logger.Warn("Tool name collision, re-indexing",
				"tool", schema.Name, "previous", prev, "server", server.Name())
		}
		b.schemaIndex[schema.Name] = server.Name()
	}
	b.schemas = append(b.schemas, schemas...)

	b.logger.Info("Tool server registered",
		"server", server.Name(), "tools", len(schemas), "session_kind", kind)
	return nil
}

// GetTools returns a snapshot of every registered tool schema.
func (b *Bridge) GetTools() []llm.ToolSchema {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]llm.ToolSchema, len(b.schemas))
	copy(out, b.schemas)
	return out
}

// Dispatch routes one tool call. It never returns a Go error: every failure
// mode (unknown tool, guardian denial, server error) becomes a failed Result
// so the model sees the reason in its next turn.
func (b *Bridge) Dispatch(ctx context.Context, call llm.ToolCall) *Result {
	start := time.Now()

	serverName, toolName, ok := b.resolve(call.Name)
	if !ok {
		res := &Result{
			Tool:     call.Name,
			Success:  false,
			Error:    fmt.Sprintf("no server registered for tool: %s", call.Name),
			Duration: time.Since(start),
		}
		b.record("", res)
		return res
	}

	b.mu.RLock()
	server := b.servers[serverName]
	kind := b.kinds[serverName]
	maskSvc := b.masking
	b.mu.RUnlock()

	// Guardian authorization applies to calls carrying a command string.
	if b.guardian != nil {
		if command, found := commandArgument(call.Arguments); found {
			v := b.guardian.Evaluate(command, kind)
			if !v.Allowed {
				res := &Result{
					Tool:            call.Name,
					Success:         false,
					Error:           fmt.Sprintf("Blocked by guardian (risk=%s): %s", v.Risk, strings.Join(v.Reasons, "; ")),
					Duration:        time.Since(start),
					CommandExecuted: command,
					Metadata:        map[string]any{"risk_level": string(v.Risk)},
				}
				b.record(serverName, res)
				return res
			}
		}
	}

	resolved := call
	resolved.Name = toolName
	res, err := server.ExecuteTool(ctx, resolved)
	if err != nil {
		res = &Result{
			Tool:    call.Name,
			Success: false,
			Error:   fmt.Sprintf("tool execution failed: %v", err),
		}
	}
	if res.Tool == "" {
		res.Tool = call.Name
	}
	if res.Duration == 0 {
		res.Duration = time.Since(start)
	}
	if res.Metadata == nil {
		res.Metadata = make(map[string]any)
	}
	res.Metadata["server"] = serverName

	if maskSvc != nil && res.Output != "" {
		res.Output = maskSvc.MaskToolResult(res.Output, call.Name)
	}

	b.record(serverName, res)
	return res
}

// Stats reports dispatch counters. SuccessRate is 0 when nothing ran yet.
func (b *Bridge) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := b.successes + b.failures
	s := Stats{
		RegisteredServers: len(b.servers),
		TotalExecutions:   total,
		Successes:         b.successes,
		Failures:          b.failures,
	}
	if total > 0 {
		s.SuccessRate = float64(b.successes) / float64(total)
	}
	return s
}

// Executions returns a copy of the dispatch log.
func (b *Bridge) Executions() []Execution {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Execution, len(b.executions))
	copy(out, b.executions)
	return out
}

// Close shuts down every registered server that holds resources.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for name, server := range b.servers {
		if closer, ok := server.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("close server %q: %w", name, err)
			}
		}
	}
	return firstErr
}

// resolve maps a model-emitted tool name to (server, tool). Resolution order:
// schema index, schema index after prefix strip, then the tool name itself as
// a server name.
func (b *Bridge) resolve(name string) (serverName, toolName string, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if server, exists := b.schemaIndex[name]; exists {
		return server, name, true
	}

	stripped := strings.TrimPrefix(name, toolPrefix)
	if server, exists := b.schemaIndex[stripped]; exists {
		return server, stripped, true
	}

	if _, exists := b.servers[stripped]; exists {
		return stripped, stripped, true
	}
	return "", "", false
}

// commandArgument extracts a non-empty string "command" argument.
func commandArgument(args map[string]any) (string, bool) {
	raw, exists := args["command"]
	if !exists {
		return "", false
	}
	command, isString := raw.(string)
	if !isString || command == "" {
		return "", false
	}
	return command, true
}

// record appends to the execution log and bumps counters.
func (b *Bridge) record(server string, res *Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.executions = append(b.executions, Execution{
		Timestamp: time.Now(),
		Tool:      res.Tool,
		Server:    server,
		Success:   res.Success,
		Duration:  res.Duration,
		Error:     res.Error,
	})
	if res.Success {
		b.successes++
	} else {
		b.failures++
	}
}
