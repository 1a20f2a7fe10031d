package config

import "github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// ReAct runtime configuration
	Agent *AgentConfig

	// Safety policy configuration
	Guardian *GuardianConfig

	// Default engagement scope (per-engagement scope overrides it)
	Scope *models.Scope

	// Tool output masking configuration
	Masking *MaskingConfig

	// Data retention configuration
	Retention *RetentionConfig

	// Component registries
	ToolServerRegistry  *ToolServerRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	ToolServers  int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ToolServerRegistry != nil {
		s.ToolServers = c.ToolServerRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetToolServer retrieves a tool server configuration by ID.
// This is a convenience method that wraps ToolServerRegistry.Get().
func (c *Config) GetToolServer(serverID string) (*ToolServerConfig, error) {
	return c.ToolServerRegistry.Get(serverID)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// AllToolServerIDs returns a sorted list of all configured tool server IDs.
func (c *Config) AllToolServerIDs() []string {
	return c.ToolServerRegistry.ServerIDs()
}

// ProvidersByPriority returns all LLM providers ordered ascending by priority.
func (c *Config) ProvidersByPriority() []*LLMProviderConfig {
	return c.LLMProviderRegistry.OrderedByPriority()
}
