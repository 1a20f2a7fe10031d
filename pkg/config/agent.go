// Package config provides configuration management for the RedClaw system,
// including agent runtime, guardian, tool server, and LLM provider configurations.
package config

import "time"

// AgentConfig holds ReAct runtime knobs loaded from the agent section.
// Zero values mean "use default"; DefaultAgentConfig supplies the baseline
// merged underneath user values.
type AgentConfig struct {
	// Hard cap on reasoning iterations per task (default 30)
	MaxIterations int `yaml:"max_iterations,omitempty"`

	// Wall-clock budget for a single task run (default 10m)
	TaskTimeout time.Duration `yaml:"task_timeout,omitempty"`

	// Tool output beyond this is compressed before entering the
	// conversation (default 3000)
	OutputMaxChars int `yaml:"output_max_chars,omitempty"`

	// Team lead progress poll interval (default 2s)
	MonitorInterval time.Duration `yaml:"monitor_interval,omitempty"`

	// Budget for post-run cleanup work (default 10s)
	CleanupTimeout time.Duration `yaml:"cleanup_timeout,omitempty"`

	// Max concurrent teammate agents per engagement (default 4)
	MaxTeammates int `yaml:"max_teammates,omitempty"`
}

// DefaultAgentConfig returns agent runtime defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		MaxIterations:   30,
		TaskTimeout:     10 * time.Minute,
		OutputMaxChars:  3000,
		MonitorInterval: 2 * time.Second,
		CleanupTimeout:  10 * time.Second,
		MaxTeammates:    4,
	}
}
