package config

import (
	"fmt"
	"sort"
	"sync"
)

// LLMProviderConfig defines one OpenAI-compatible chat-completions endpoint.
// The router walks providers in ascending Priority order, exhausting each
// provider's retries before failing over to the next.
type LLMProviderConfig struct {
	// Name is the registry key; set during load, not from YAML.
	Name string `yaml:"-"`

	// Base URL of the endpoint, without the /chat/completions suffix (required)
	Endpoint string `yaml:"endpoint" validate:"required"`

	// Model name sent in requests (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable name for the API key (empty = no auth header)
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Failover order: lower priority is tried first
	Priority int `yaml:"priority"`

	// Requests per minute; also the token bucket capacity
	RPMLimit int `yaml:"rpm_limit"`

	// Completion token budget per request
	MaxTokens int `yaml:"max_tokens"`

	// Sampling temperature
	Temperature float64 `yaml:"temperature"`

	// Per-request HTTP timeout in seconds
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Retry attempts per provider before failing over
	RetryCount int `yaml:"retry_count"`

	// Model context window in tokens; drives compaction and trimming
	ContextLimit int `yaml:"context_limit"`

	// Whether the endpoint supports native tool calling. nil = assume yes;
	// the router falls back to prompt-based tools on capability errors anyway.
	NativeTools *bool `yaml:"native_tools,omitempty"`
}

// Timeout returns the per-request timeout, applying the 120s default.
func (c *LLMProviderConfig) Timeout() int {
	if c.TimeoutSeconds > 0 {
		return c.TimeoutSeconds
	}
	return 120
}

// SupportsNativeTools reports whether native tool calling should be attempted.
func (c *LLMProviderConfig) SupportsNativeTools() bool {
	return c.NativeTools == nil || *c.NativeTools
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		v.Name = k
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// OrderedByPriority returns all providers sorted ascending by priority,
// breaking ties by name for deterministic failover order.
func (r *LLMProviderRegistry) OrderedByPriority() []*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*LLMProviderConfig, 0, len(r.providers))
	for _, v := range r.providers {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority < result[j].Priority
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
