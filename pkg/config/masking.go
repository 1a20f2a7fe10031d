package config

// MaskingConfig defines credential masking applied to tool output and LLM
// request summaries before they are persisted or logged.
// Enabled is a *bool: nil means "use default" (enabled), explicit false disables.
type MaskingConfig struct {
	Enabled        *bool            `yaml:"enabled,omitempty"`
	PatternGroups  []string         `yaml:"pattern_groups,omitempty"`
	Patterns       []string         `yaml:"patterns,omitempty"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingDisabled returns true only when Enabled is explicitly set to false.
func (c *MaskingConfig) MaskingDisabled() bool {
	return c != nil && c.Enabled != nil && !*c.Enabled
}

// MaskingPattern defines a regex-based masking pattern
type MaskingPattern struct {
	Pattern     string `yaml:"pattern" validate:"required"`
	Replacement string `yaml:"replacement" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }
