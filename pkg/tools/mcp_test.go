package tools

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/guardian"
)

func TestCreateTransportStdio(t *testing.T) {
	cfg := config.TransportConfig{
		Type:    config.TransportTypeStdio,
		Command: "npx",
		Args:    []string{"-y", "mcp-nmap-server"},
		Env:     map[string]string{"NMAP_PATH": "/usr/bin/nmap"},
	}

	transport, err := createTransport(cfg)
	require.NoError(t, err)

	cmdTransport, ok := transport.(*mcpsdk.CommandTransport)
	require.True(t, ok)
	// exec.Command resolves the full path, so check Args for the basename
	assert.Contains(t, cmdTransport.Command.Args, "-y")
	assert.Contains(t, cmdTransport.Command.Args, "mcp-nmap-server")
	assert.Contains(t, cmdTransport.Command.Env, "NMAP_PATH=/usr/bin/nmap")
}

func TestCreateTransportStdioMissingCommand(t *testing.T) {
	_, err := createTransport(config.TransportConfig{Type: config.TransportTypeStdio})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires command")
}

func TestCreateTransportHTTP(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		transport, err := createTransport(config.TransportConfig{
			Type: config.TransportTypeHTTP,
			URL:  "https://mcp.example.com/v1",
		})
		require.NoError(t, err)

		httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
		require.True(t, ok)
		assert.Equal(t, "https://mcp.example.com/v1", httpTransport.Endpoint)
		assert.Nil(t, httpTransport.HTTPClient)
	})

	t.Run("bearer token", func(t *testing.T) {
		transport, err := createTransport(config.TransportConfig{
			Type:        config.TransportTypeHTTP,
			URL:         "https://mcp.example.com/v1",
			BearerToken: "tok-123",
		})
		require.NoError(t, err)

		httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
		require.True(t, ok)
		require.NotNil(t, httpTransport.HTTPClient)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := createTransport(config.TransportConfig{Type: config.TransportTypeHTTP})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires url")
	})
}

func TestCreateTransportUnsupported(t *testing.T) {
	_, err := createTransport(config.TransportConfig{Type: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

func TestBearerTokenTransport(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := &http.Client{Transport: &bearerTokenTransport{
		base:  http.DefaultTransport,
		token: "tok-456",
	}}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer tok-456", gotAuth)
}

func TestIsTransportError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil-safe eof", io.EOF, true},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"protocol error", errors.New("jsonrpc2: method not found"), false},
		{"tool error", errors.New("tool execution rejected"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isTransportError(tt.err))
		})
	}
}

func TestSchemaToMap(t *testing.T) {
	t.Run("nil schema degrades to empty object", func(t *testing.T) {
		assert.Equal(t, map[string]any{"type": "object"}, schemaToMap(nil))
	})

	t.Run("structured schema converts", func(t *testing.T) {
		in := map[string]any{
			"type": "object",
			"properties": map[string]any{
				"target": map[string]any{"type": "string"},
			},
		}
		out := schemaToMap(in)
		assert.Equal(t, "object", out["type"])
		assert.Contains(t, out, "properties")
	})
}

func TestMCPServerSessionKind(t *testing.T) {
	remote := &mcpServer{name: "nmap", cfg: &config.ToolServerConfig{}}
	assert.Equal(t, guardian.SessionRemote, remote.SessionKind())

	local := &mcpServer{name: "local-tools", cfg: &config.ToolServerConfig{
		SessionKind: config.SessionKindLocal,
	}}
	assert.Equal(t, guardian.SessionLocal, local.SessionKind())
}
