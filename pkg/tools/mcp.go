package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/version"
)

const (
	// mcpInitTimeout bounds transport startup + protocol handshake.
	mcpInitTimeout = 30 * time.Second

	// listToolsTimeout bounds schema discovery at registration time.
	listToolsTimeout = 30 * time.Second

	// Jittered backoff window before the single reconnect retry.
	retryBackoffMin = 250 * time.Millisecond
	retryBackoffMax = 750 * time.Millisecond
)

// mcpServer adapts one MCP server session to the ToolServer contract.
// A session lives for the process lifetime; transport failures trigger one
// reconnect-and-retry per call.
type mcpServer struct {
	name string
	cfg  *config.ToolServerConfig

	mu      sync.Mutex
	session *mcpsdk.ClientSession

	logger *slog.Logger
}

// NewMCPServer connects to a configured MCP server eagerly so that
// misconfigured or unreachable servers fail at boot, not mid-engagement.
func NewMCPServer(ctx context.Context, name string, cfg *config.ToolServerConfig) (ToolServer, error) {
	s := &mcpServer{
		name:   name,
		cfg:    cfg,
		logger: slog.Default().With("component", "mcp_server", "server", name),
	}
	if err := s.connect(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *mcpServer) Name() string { return s.name }

// SessionKind reports where this server's commands execute, for guardian
// policy. MCP servers default to remote unless configured otherwise.
func (s *mcpServer) SessionKind() guardian.SessionKind {
	if s.cfg.Kind() == config.SessionKindLocal {
		return guardian.SessionLocal
	}
	return guardian.SessionRemote
}

// GetTools lists the server's tool schemas.
func (s *mcpServer) GetTools(ctx context.Context) ([]llm.ToolSchema, error) {
	opCtx, cancel := context.WithTimeout(ctx, listToolsTimeout)
	defer cancel()

	session := s.currentSession()
	if session == nil {
		return nil, fmt.Errorf("no session for server %q", s.name)
	}

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", s.name, err)
	}

	schemas := make([]llm.ToolSchema, 0, len(result.Tools))
	for _, tool := range result.Tools {
		schemas = append(schemas, llm.ToolSchema{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  schemaToMap(tool.InputSchema),
		})
	}
	return schemas, nil
}

// ExecuteTool calls a tool with the configured per-call timeout. One
// reconnect-and-retry is attempted on transport failures; tool-level errors
// come back as failed Results, never as reconnect triggers.
func (s *mcpServer) ExecuteTool(ctx context.Context, call llm.ToolCall) (*Result, error) {
	start := time.Now()
	opCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout())*time.Second)
	defer cancel()

	params := &mcpsdk.CallToolParams{
		Name:      call.Name,
		Arguments: call.Arguments,
	}

	result, err := s.callOnce(opCtx, params)
	if err != nil && isTransportError(err) && opCtx.Err() == nil {
		s.logger.Info("MCP call hit transport failure, reconnecting",
			"tool", call.Name, "error", err)
		backoff := retryBackoffMin + time.Duration(rand.Int64N(int64(retryBackoffMax-retryBackoffMin)))
		select {
		case <-time.After(backoff):
		case <-opCtx.Done():
			return nil, opCtx.Err()
		}
		if rerr := s.reconnect(opCtx); rerr != nil {
			return nil, fmt.Errorf("session recreation for %q failed: %w", s.name, rerr)
		}
		result, err = s.callOnce(opCtx, params)
	}
	if err != nil {
		return nil, fmt.Errorf("call %q on %q: %w", call.Name, s.name, err)
	}

	output := extractTextContent(result)
	res := &Result{
		Tool:     call.Name,
		Success:  !result.IsError,
		Output:   output,
		Duration: time.Since(start),
	}
	if result.IsError {
		res.Error = output
		res.Output = ""
	}
	return res, nil
}

// Close shuts down the session and its transport (including any stdio child).
func (s *mcpServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	return err
}

func (s *mcpServer) currentSession() *mcpsdk.ClientSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *mcpServer) callOnce(ctx context.Context, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	session := s.currentSession()
	if session == nil {
		return nil, fmt.Errorf("no session for server %q", s.name)
	}
	return session.CallTool(ctx, params)
}

// connect establishes the MCP session over the configured transport.
func (s *mcpServer) connect(ctx context.Context) error {
	transport, err := createTransport(s.cfg.Transport)
	if err != nil {
		return fmt.Errorf("create transport for %q: %w", s.name, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, mcpInitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it holds resources (stdio child processes).
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("connect to %q: %w", s.name, err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info("MCP server connected", "transport", s.cfg.Transport.Type)
	return nil
}

// reconnect tears down the broken session and dials again.
func (s *mcpServer) reconnect(ctx context.Context) error {
	s.mu.Lock()
	if s.session != nil {
		_ = s.session.Close()
		s.session = nil
	}
	s.mu.Unlock()

	return s.connect(ctx)
}

// createTransport builds an MCP SDK transport from config.
func createTransport(cfg config.TransportConfig) (mcpsdk.Transport, error) {
	switch cfg.Type {
	case config.TransportTypeStdio:
		return createStdioTransport(cfg)
	case config.TransportTypeHTTP:
		return createHTTPTransport(cfg)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Type)
	}
}

func createStdioTransport(cfg config.TransportConfig) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, errors.New("stdio transport requires command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)

	// Inherit parent environment + config overrides.
	env := os.Environ()
	for k, v := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

func createHTTPTransport(cfg config.TransportConfig) (*mcpsdk.StreamableClientTransport, error) {
	if cfg.URL == "" {
		return nil, errors.New("HTTP transport requires url")
	}
	transport := &mcpsdk.StreamableClientTransport{
		Endpoint: cfg.URL,
	}
	if cfg.BearerToken != "" {
		transport.HTTPClient = &http.Client{
			Transport: &bearerTokenTransport{
				base:  http.DefaultTransport,
				token: cfg.BearerToken,
			},
		}
	}
	return transport, nil
}

// bearerTokenTransport wraps an http.RoundTripper to add Authorization headers.
type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

// isTransportError detects connection-level failures worth a reconnect.
// Context errors, timeouts, and protocol errors are not retried.
func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return !netErr.Timeout()
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"connection closed",
	} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}

// extractTextContent concatenates text items from an MCP result. Non-text
// content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// schemaToMap converts a tool's input schema to the generic map form the
// router serializes. Unconvertible schemas degrade to an empty object schema.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return map[string]any{"type": "object"}
	}
	return out
}
