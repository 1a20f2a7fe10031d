package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportTypeIsValid(t *testing.T) {
	tests := []struct {
		name      string
		transport TransportType
		valid     bool
	}{
		{"stdio", TransportTypeStdio, true},
		{"http", TransportTypeHTTP, true},
		{"invalid", TransportType("invalid"), false},
		{"empty", TransportType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.transport.IsValid())
		})
	}
}

func TestSessionKindIsValid(t *testing.T) {
	tests := []struct {
		name  string
		kind  SessionKind
		valid bool
	}{
		{"local", SessionKindLocal, true},
		{"remote", SessionKindRemote, true},
		{"invalid", SessionKind("invalid"), false},
		{"empty", SessionKind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.IsValid())
		})
	}
}

func TestToolServerConfigDefaults(t *testing.T) {
	cfg := &ToolServerConfig{}

	assert.Equal(t, SessionKindRemote, cfg.Kind())
	assert.Equal(t, 300, cfg.Timeout())

	cfg.SessionKind = SessionKindLocal
	cfg.TimeoutSeconds = 60
	assert.Equal(t, SessionKindLocal, cfg.Kind())
	assert.Equal(t, 60, cfg.Timeout())
}

func TestLLMProviderConfigDefaults(t *testing.T) {
	cfg := &LLMProviderConfig{}

	assert.Equal(t, 120, cfg.Timeout())
	assert.True(t, cfg.SupportsNativeTools())

	cfg.TimeoutSeconds = 30
	cfg.NativeTools = BoolPtr(false)
	assert.Equal(t, 30, cfg.Timeout())
	assert.False(t, cfg.SupportsNativeTools())
}
