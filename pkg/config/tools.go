package config

import (
	"fmt"
	"sort"
	"sync"
)

// TransportConfig defines tool server transport configuration
type TransportConfig struct {
	Type TransportType `yaml:"type" validate:"required"`

	// For stdio transport
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"` // Environment overrides for stdio subprocess

	// For http transport
	URL         string `yaml:"url,omitempty"`
	BearerToken string `yaml:"bearer_token,omitempty"`
}

// ToolServerConfig defines a tool server the bridge connects to at startup.
type ToolServerConfig struct {
	// Transport configuration (required)
	Transport TransportConfig `yaml:"transport" validate:"required"`

	// Where this server's commands execute; drives guardian session kind.
	// Defaults to remote.
	SessionKind SessionKind `yaml:"session_kind,omitempty"`

	// Instructions for the LLM when using this server's tools
	Instructions string `yaml:"instructions,omitempty"`

	// Per-call timeout in seconds (default 300)
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Kind returns the session kind, applying the remote default.
func (c *ToolServerConfig) Kind() SessionKind {
	if c.SessionKind != "" {
		return c.SessionKind
	}
	return SessionKindRemote
}

// Timeout returns the per-call timeout in seconds, applying the 300s default.
func (c *ToolServerConfig) Timeout() int {
	if c.TimeoutSeconds > 0 {
		return c.TimeoutSeconds
	}
	return 300
}

// ToolServerRegistry stores tool server configurations in memory with thread-safe access
type ToolServerRegistry struct {
	servers map[string]*ToolServerConfig
	mu      sync.RWMutex
}

// NewToolServerRegistry creates a new tool server registry
func NewToolServerRegistry(servers map[string]*ToolServerConfig) *ToolServerRegistry {
	return &ToolServerRegistry{
		servers: servers,
	}
}

// Get retrieves a tool server configuration by ID (thread-safe)
func (r *ToolServerRegistry) Get(serverID string) (*ToolServerConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	server, exists := r.servers[serverID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolServerNotFound, serverID)
	}
	return server, nil
}

// GetAll returns all tool server configurations (thread-safe, returns copy)
func (r *ToolServerRegistry) GetAll() map[string]*ToolServerConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*ToolServerConfig, len(r.servers))
	for k, v := range r.servers {
		result[k] = v
	}
	return result
}

// Has checks if a tool server exists in the registry (thread-safe)
func (r *ToolServerRegistry) Has(serverID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.servers[serverID]
	return exists
}

// Len returns the number of tool servers in the registry (thread-safe)
func (r *ToolServerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.servers)
}

// ServerIDs returns a sorted list of all configured tool server IDs.
func (r *ToolServerRegistry) ServerIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.servers))
	for id := range r.servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
