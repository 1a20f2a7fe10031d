package config

// GuardianConfig holds safety engine settings loaded from the guardian
// section of redclaw.yaml. Blocked commands and suspicious patterns merge
// on top of the built-in sets; scope lives separately in Config.Scope.
type GuardianConfig struct {
	// Max guardian-approved commands per sliding 60s window (default 10)
	RateLimit int `yaml:"rate_limit,omitempty"`

	// Additional substrings blocked outright (merged with built-ins)
	BlockedCommands []string `yaml:"blocked_commands,omitempty"`

	// Additional regex patterns flagged as suspicious (merged with built-ins)
	SuspiciousPatterns []string `yaml:"suspicious_patterns,omitempty"`

	// Phases whose high-risk commands require operator approval
	ApprovalPhases []string `yaml:"approval_phases,omitempty"`
}

// WindowLimit returns the sliding-window rate limit, applying the default.
func (c *GuardianConfig) WindowLimit() int {
	if c.RateLimit > 0 {
		return c.RateLimit
	}
	return 10
}
