package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	// Create temporary config directory with valid config files
	configDir := setupTestConfigDir(t)

	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registries are populated
	assert.NotNil(t, cfg.ToolServerRegistry)
	assert.NotNil(t, cfg.LLMProviderRegistry)
	assert.NotNil(t, cfg.Defaults)
	assert.NotNil(t, cfg.Guardian)
	assert.NotNil(t, cfg.Agent)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.Masking)
	assert.NotNil(t, cfg.Retention)

	// Verify user-defined entries are loaded
	assert.True(t, cfg.ToolServerRegistry.Has("terminal"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-main"))

	// Built-in guardian rules survive the merge
	assert.Contains(t, cfg.Guardian.BlockedCommands, "rm -rf /")
	assert.Contains(t, cfg.Guardian.BlockedCommands, "drop database")

	// Verify stats
	stats := cfg.Stats()
	assert.Greater(t, stats.ToolServers, 0)
	assert.Greater(t, stats.LLMProviders, 0)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	// Write invalid YAML
	invalidYAML := `{{{`
	err := os.WriteFile(filepath.Join(configDir, "redclaw.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	// Create empty llm-providers.yaml
	err = os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte("llm_providers: {}"), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// No LLM providers configured at all
	err := os.WriteFile(filepath.Join(configDir, "redclaw.yaml"), []byte("tool_servers: {}"), 0644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte("llm_providers: {}"), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "at least one LLM provider required")
}

func TestInitializeBadScope(t *testing.T) {
	configDir := t.TempDir()

	redclawYAML := `
scope:
  include_cidrs:
    - "not-a-cidr"
`
	err := os.WriteFile(filepath.Join(configDir, "redclaw.yaml"), []byte(redclawYAML), 0644)
	require.NoError(t, err)

	llmYAML := `
llm_providers:
  openai-main:
    endpoint: "https://api.openai.com/v1"
    model: "gpt-4o"
`
	err = os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(llmYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CIDR or IP address")
}

func TestLoadRedClawYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
defaults:
  llm_provider: "test-provider"
  objective_type: "web"

guardian:
  rate_limit: 20
  blocked_commands:
    - "drop database"
  approval_phases:
    - "exploitation"

scope:
  include_cidrs:
    - "10.0.0.0/24"
  exclude_cidrs:
    - "10.0.0.1/32"
  include_domains:
    - "lab.example.com"

tool_servers:
  test-server:
    session_kind: "local"
    transport:
      type: "stdio"
      command: "test-command"

agent:
  max_iterations: 25
  task_timeout: 5m

queue:
  worker_count: 3
`
	err := os.WriteFile(filepath.Join(configDir, "redclaw.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	redclawConfig, err := loader.loadRedClawYAML()

	require.NoError(t, err)
	assert.NotNil(t, redclawConfig.Defaults)
	assert.Equal(t, "test-provider", redclawConfig.Defaults.LLMProvider)
	assert.Equal(t, "web", redclawConfig.Defaults.ObjectiveType)
	require.NotNil(t, redclawConfig.Guardian)
	assert.Equal(t, 20, redclawConfig.Guardian.RateLimit)
	assert.Equal(t, []string{"exploitation"}, redclawConfig.Guardian.ApprovalPhases)
	require.NotNil(t, redclawConfig.Scope)
	assert.Equal(t, []string{"10.0.0.0/24"}, redclawConfig.Scope.IncludeCIDRs)
	assert.Len(t, redclawConfig.ToolServers, 1)
	assert.Equal(t, SessionKindLocal, redclawConfig.ToolServers["test-server"].SessionKind)
	require.NotNil(t, redclawConfig.Agent)
	assert.Equal(t, 25, redclawConfig.Agent.MaxIterations)
	assert.Equal(t, 5*time.Minute, redclawConfig.Agent.TaskTimeout)
	require.NotNil(t, redclawConfig.Queue)
	assert.Equal(t, 3, redclawConfig.Queue.WorkerCount)
}

func TestLoadLLMProvidersYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
llm_providers:
  test-provider:
    endpoint: "https://llm.example.com/v1"
    model: test-model
    api_key_env: TEST_API_KEY
    priority: 1
    rpm_limit: 30
    max_tokens: 4096
    context_limit: 128000
`
	err := os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	providers, err := loader.loadLLMProvidersYAML()

	require.NoError(t, err)
	assert.Len(t, providers, 1)
	provider := providers["test-provider"]
	assert.Equal(t, "https://llm.example.com/v1", provider.Endpoint)
	assert.Equal(t, "test-model", provider.Model)
	assert.Equal(t, "TEST_API_KEY", provider.APIKeyEnv)
	assert.Equal(t, 1, provider.Priority)
	assert.Equal(t, 30, provider.RPMLimit)
	assert.Equal(t, 128000, provider.ContextLimit)
}

func TestMergedDefaultsPreserved(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	// redclaw.yaml only sets worker_count; the rest fall back to defaults
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentEngagements)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)

	// agent section is absent entirely
	assert.Equal(t, 30, cfg.Agent.MaxIterations)
	assert.Equal(t, 10*time.Minute, cfg.Agent.TaskTimeout)

	// masking defaults to enabled with the secrets group
	assert.False(t, cfg.Masking.MaskingDisabled())
	assert.Equal(t, []string{"secrets"}, cfg.Masking.PatternGroups)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
tool_servers:
  test-server:
    transport:
      type: "stdio"
      command: "{{.TEST_COMMAND}}"
      args:
        - "{{.TEST_ARG1}}"
        - "{{.TEST_ARG2}}"
`
	err := os.WriteFile(filepath.Join(configDir, "redclaw.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	llmYAML := `
llm_providers:
  openai-main:
    endpoint: "https://api.openai.com/v1"
    model: "gpt-4o"
`
	err = os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(llmYAML), 0644)
	require.NoError(t, err)

	// Set environment variables
	t.Setenv("TEST_COMMAND", "test-cmd")
	t.Setenv("TEST_ARG1", "arg1-value")
	t.Setenv("TEST_ARG2", "arg2-value")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	server, err := cfg.ToolServerRegistry.Get("test-server")
	require.NoError(t, err)
	assert.Equal(t, "test-cmd", server.Transport.Command)
	assert.Equal(t, []string{"arg1-value", "arg2-value"}, server.Transport.Args)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	// Create minimal valid redclaw.yaml
	redclawYAML := `
defaults:
  llm_provider: "openai-main"

guardian:
  blocked_commands:
    - "drop database"

scope:
  include_cidrs:
    - "10.0.0.0/24"

tool_servers:
  terminal:
    session_kind: "local"
    transport:
      type: "stdio"
      command: "redclaw-terminal"

queue:
  worker_count: 3
`
	err := os.WriteFile(filepath.Join(dir, "redclaw.yaml"), []byte(redclawYAML), 0644)
	require.NoError(t, err)

	// Create minimal valid llm-providers.yaml
	llmYAML := `
llm_providers:
  openai-main:
    endpoint: "https://api.openai.com/v1"
    model: "gpt-4o"
    api_key_env: "OPENAI_API_KEY"
    priority: 0
    rpm_limit: 60
    context_limit: 128000
`
	err = os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmYAML), 0644)
	require.NoError(t, err)

	return dir
}
