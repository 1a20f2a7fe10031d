package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EngagementRetentionDays is how many days to keep completed engagements
	// before soft-deleting them (setting deleted_at).
	EngagementRetentionDays int `yaml:"engagement_retention_days"`

	// EventTTL is the maximum age of orphaned Event rows before deletion.
	// Per-engagement cleanup handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EngagementRetentionDays: 365,
		EventTTL:                1 * time.Hour,
		CleanupInterval:         12 * time.Hour,
	}
}
