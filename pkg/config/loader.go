package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

// RedClawYAMLConfig represents the complete redclaw.yaml file structure
type RedClawYAMLConfig struct {
	System      *SystemYAMLConfig           `yaml:"system"`
	Guardian    *GuardianConfig             `yaml:"guardian"`
	Scope       *models.Scope               `yaml:"scope"`
	ToolServers map[string]ToolServerConfig `yaml:"tool_servers"`
	Agent       *AgentConfig                `yaml:"agent"`
	Defaults    *Defaults                   `yaml:"defaults"`
	Queue       *QueueConfig                `yaml:"queue"`
	Masking     *MaskingConfig              `yaml:"masking"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Retention *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined guardian and masking rules
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"tool_servers", stats.ToolServers,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load redclaw.yaml (guardian, scope, tool_servers, agent, defaults, queue, masking)
	redclawConfig, err := loader.loadRedClawYAML()
	if err != nil {
		return nil, NewLoadError("redclaw.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Resolve guardian config (built-in rules + user additions)
	guardianCfg := resolveGuardianConfig(redclawConfig.Guardian, builtin)

	// 5. Build registries. Tool servers and providers are user-defined only;
	// endpoints and transports are deployment-specific, so there are no
	// built-in entries to merge.
	toolServers := make(map[string]*ToolServerConfig, len(redclawConfig.ToolServers))
	for id, server := range redclawConfig.ToolServers {
		serverCopy := server
		toolServers[id] = &serverCopy
	}
	providers := make(map[string]*LLMProviderConfig, len(llmProviders))
	for name, provider := range llmProviders {
		providerCopy := provider
		providers[name] = &providerCopy
	}
	toolServerRegistry := NewToolServerRegistry(toolServers)
	llmProviderRegistry := NewLLMProviderRegistry(providers)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := redclawConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.ObjectiveType == "" {
		defaults.ObjectiveType = builtin.DefaultObjectiveType
	}

	// Resolve agent config (merge user YAML with built-in defaults)
	agentConfig := DefaultAgentConfig()
	if redclawConfig.Agent != nil {
		if err := mergo.Merge(agentConfig, redclawConfig.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent config: %w", err)
		}
	}

	// Resolve queue config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	queueConfig := DefaultQueueConfig()
	if redclawConfig.Queue != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(queueConfig, redclawConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// Resolve masking config (default: enabled, "secrets" group)
	maskingCfg := resolveMaskingConfig(redclawConfig.Masking)

	// Resolve default scope (engagements may override per-run)
	scope := redclawConfig.Scope
	if scope == nil {
		scope = &models.Scope{}
	}

	retentionCfg := resolveRetentionConfig(redclawConfig.System)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Agent:               agentConfig,
		Guardian:            guardianCfg,
		Scope:               scope,
		Masking:             maskingCfg,
		Retention:           retentionCfg,
		ToolServerRegistry:  toolServerRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadRedClawYAML() (*RedClawYAMLConfig, error) {
	var config RedClawYAMLConfig

	// Initialize maps to avoid nil maps
	config.ToolServers = make(map[string]ToolServerConfig)

	if err := l.loadYAML("redclaw.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveGuardianConfig merges user guardian settings on top of built-in
// rules. Blocked commands and suspicious patterns are additive; the rate
// limit falls back to the built-in default when unset.
func resolveGuardianConfig(user *GuardianConfig, builtin *BuiltinConfig) *GuardianConfig {
	cfg := &GuardianConfig{
		RateLimit:          10,
		BlockedCommands:    mergeGuardianLists(builtin.BlockedCommands, nil),
		SuspiciousPatterns: mergeGuardianLists(builtin.SuspiciousPatterns, nil),
	}

	if user == nil {
		return cfg
	}

	if user.RateLimit > 0 {
		cfg.RateLimit = user.RateLimit
	}
	cfg.BlockedCommands = mergeGuardianLists(builtin.BlockedCommands, user.BlockedCommands)
	cfg.SuspiciousPatterns = mergeGuardianLists(builtin.SuspiciousPatterns, user.SuspiciousPatterns)
	cfg.ApprovalPhases = user.ApprovalPhases

	return cfg
}

// resolveMaskingConfig resolves masking configuration, applying defaults.
func resolveMaskingConfig(user *MaskingConfig) *MaskingConfig {
	cfg := &MaskingConfig{
		Enabled:       BoolPtr(true),
		PatternGroups: []string{"secrets"},
	}

	if user == nil {
		return cfg
	}

	if user.Enabled != nil {
		cfg.Enabled = user.Enabled
	}
	if len(user.PatternGroups) > 0 {
		cfg.PatternGroups = user.PatternGroups
	}
	cfg.Patterns = user.Patterns
	cfg.CustomPatterns = user.CustomPatterns

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.EngagementRetentionDays > 0 {
		cfg.EngagementRetentionDays = r.EngagementRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
