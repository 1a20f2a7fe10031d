package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → tool servers → guardian → scope → masking → defaults
	// This ensures dependencies are validated before dependents

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateToolServers(); err != nil {
		return fmt.Errorf("tool server validation failed: %w", err)
	}

	if err := v.validateGuardian(); err != nil {
		return fmt.Errorf("guardian validation failed: %w", err)
	}

	if err := v.validateScope(); err != nil {
		return fmt.Errorf("scope validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateAgent(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}

	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentEngagements < 1 {
		return fmt.Errorf("max_concurrent_engagements must be at least 1, got %d", q.MaxConcurrentEngagements)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", q.PollInterval)
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must be non-negative, got %v", q.PollIntervalJitter)
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be less than poll_interval (%v >= %v)", q.PollIntervalJitter, q.PollInterval)
	}
	if q.EngagementTimeout <= 0 {
		return fmt.Errorf("engagement_timeout must be positive, got %v", q.EngagementTimeout)
	}
	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive, got %v", q.GracefulShutdownTimeout)
	}
	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %v", q.HeartbeatInterval)
	}
	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan_detection_interval must be positive, got %v", q.OrphanDetectionInterval)
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan_threshold must be positive, got %v", q.OrphanThreshold)
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return fmt.Errorf("heartbeat_interval must be less than orphan_threshold (%v >= %v)", q.HeartbeatInterval, q.OrphanThreshold)
	}

	return nil
}

func (v *ConfigValidator) validateAgent() error {
	a := v.cfg.Agent
	if a == nil {
		return fmt.Errorf("agent configuration is nil")
	}

	if a.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", a.MaxIterations)
	}
	if a.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be positive, got %v", a.TaskTimeout)
	}
	if a.OutputMaxChars < 500 {
		return fmt.Errorf("output_max_chars must be at least 500, got %d", a.OutputMaxChars)
	}
	if a.MonitorInterval <= 0 {
		return fmt.Errorf("monitor_interval must be positive, got %v", a.MonitorInterval)
	}
	if a.CleanupTimeout <= 0 {
		return fmt.Errorf("cleanup_timeout must be positive, got %v", a.CleanupTimeout)
	}
	if a.MaxTeammates < 1 {
		return fmt.Errorf("max_teammates must be at least 1, got %d", a.MaxTeammates)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	if v.cfg.LLMProviderRegistry.Len() == 0 {
		return NewValidationError("llm_provider", "(none)", "", fmt.Errorf("at least one LLM provider required"))
	}

	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		// Validate endpoint is not empty
		if provider.Endpoint == "" {
			return NewValidationError("llm_provider", name, "endpoint", fmt.Errorf("endpoint required"))
		}
		if !strings.HasPrefix(provider.Endpoint, "http://") && !strings.HasPrefix(provider.Endpoint, "https://") {
			return NewValidationError("llm_provider", name, "endpoint", fmt.Errorf("endpoint must start with http:// or https://"))
		}

		// Validate model is not empty
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		// Validate API key environment variable is set (if specified)
		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		if provider.Priority < 0 {
			return NewValidationError("llm_provider", name, "priority", fmt.Errorf("must not be negative"))
		}
		if provider.RPMLimit < 0 {
			return NewValidationError("llm_provider", name, "rpm_limit", fmt.Errorf("must not be negative"))
		}
		if provider.MaxTokens < 0 {
			return NewValidationError("llm_provider", name, "max_tokens", fmt.Errorf("must not be negative"))
		}
		if provider.Temperature < 0 || provider.Temperature > 2 {
			return NewValidationError("llm_provider", name, "temperature", fmt.Errorf("must be between 0 and 2"))
		}
		if provider.RetryCount < 0 {
			return NewValidationError("llm_provider", name, "retry_count", fmt.Errorf("must not be negative"))
		}
		if provider.ContextLimit > 0 && provider.ContextLimit < 1000 {
			return NewValidationError("llm_provider", name, "context_limit", fmt.Errorf("must be at least 1000 when set"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateToolServers() error {
	for serverID, server := range v.cfg.ToolServerRegistry.GetAll() {
		// Validate transport type
		if !server.Transport.Type.IsValid() {
			return NewValidationError("tool_server", serverID, "transport.type", fmt.Errorf("invalid transport type: %s", server.Transport.Type))
		}

		// Validate transport-specific fields
		switch server.Transport.Type {
		case TransportTypeStdio:
			if server.Transport.Command == "" {
				return NewValidationError("tool_server", serverID, "transport.command", fmt.Errorf("command required for stdio transport"))
			}

		case TransportTypeHTTP:
			if server.Transport.URL == "" {
				return NewValidationError("tool_server", serverID, "transport.url", fmt.Errorf("url required for http transport"))
			}
		}

		// Validate session kind if specified
		if server.SessionKind != "" && !server.SessionKind.IsValid() {
			return NewValidationError("tool_server", serverID, "session_kind", fmt.Errorf("invalid session kind: %s", server.SessionKind))
		}

		if server.TimeoutSeconds < 0 {
			return NewValidationError("tool_server", serverID, "timeout_seconds", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateGuardian() error {
	g := v.cfg.Guardian
	if g == nil {
		return NewValidationError("guardian", "guardian", "", fmt.Errorf("guardian configuration missing"))
	}

	if g.RateLimit < 1 {
		return NewValidationError("guardian", "guardian", "rate_limit", fmt.Errorf("must be at least 1"))
	}

	// Suspicious patterns are compiled at startup; reject invalid regexes here
	// so the guardian never silently skips a rule.
	for i, pattern := range g.SuspiciousPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return NewValidationError("guardian", "guardian", fmt.Sprintf("suspicious_patterns[%d]", i), fmt.Errorf("invalid regex %q: %v", pattern, err))
		}
	}

	return nil
}

func (v *ConfigValidator) validateScope() error {
	s := v.cfg.Scope
	if s == nil {
		return nil
	}

	for i, cidr := range s.IncludeCIDRs {
		if err := validateCIDROrIP(cidr); err != nil {
			return NewValidationError("scope", "scope", fmt.Sprintf("include_cidrs[%d]", i), err)
		}
	}
	for i, cidr := range s.ExcludeCIDRs {
		if err := validateCIDROrIP(cidr); err != nil {
			return NewValidationError("scope", "scope", fmt.Sprintf("exclude_cidrs[%d]", i), err)
		}
	}
	if s.RateLimit < 0 {
		return NewValidationError("scope", "scope", "rate_limit", fmt.Errorf("must not be negative"))
	}

	return nil
}

// validateCIDROrIP accepts either CIDR notation or a bare IPv4 address.
func validateCIDROrIP(value string) error {
	if _, _, err := net.ParseCIDR(value); err == nil {
		return nil
	}
	if ip := net.ParseIP(value); ip != nil {
		return nil
	}
	return fmt.Errorf("invalid CIDR or IP address: %s", value)
}

func (v *ConfigValidator) validateMasking() error {
	m := v.cfg.Masking
	if m == nil || m.MaskingDisabled() {
		return nil
	}

	builtin := GetBuiltinConfig()

	// Validate pattern groups reference built-in groups
	for _, groupName := range m.PatternGroups {
		if _, exists := builtin.PatternGroups[groupName]; !exists {
			return NewValidationError("masking", "masking", "pattern_groups", fmt.Errorf("pattern group '%s' not found", groupName))
		}
	}

	// Validate individual patterns reference built-in patterns
	for _, patternName := range m.Patterns {
		if _, exists := builtin.MaskingPatterns[patternName]; !exists {
			return NewValidationError("masking", "masking", "patterns", fmt.Errorf("pattern '%s' not found", patternName))
		}
	}

	// Validate custom patterns have required fields and compile
	for i, pattern := range m.CustomPatterns {
		if pattern.Pattern == "" {
			return NewValidationError("masking", "masking", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("pattern required"))
		}
		if pattern.Replacement == "" {
			return NewValidationError("masking", "masking", fmt.Sprintf("custom_patterns[%d].replacement", i), fmt.Errorf("replacement required"))
		}
		if _, err := regexp.Compile(pattern.Pattern); err != nil {
			return NewValidationError("masking", "masking", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("invalid regex: %v", err))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d == nil {
		return nil
	}

	// Default provider must exist when pinned
	if d.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("LLM provider '%s' not found", d.LLMProvider))
	}

	// Default tool servers must exist
	for _, serverID := range d.ToolServers {
		if !v.cfg.ToolServerRegistry.Has(serverID) {
			return NewValidationError("defaults", "defaults", "tool_servers", fmt.Errorf("tool server '%s' not found", serverID))
		}
	}

	return nil
}
