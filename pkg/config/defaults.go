package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// LLM provider default: primary provider when no priority ordering
	// is configured
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Default objective type for new engagements (application state default)
	ObjectiveType string `yaml:"objective_type,omitempty"`

	// Tool servers granted to teammate agents when a task does not name
	// its own set
	ToolServers []string `yaml:"tool_servers,omitempty"`
}
