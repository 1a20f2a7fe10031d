package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("tool_server", "terminal", "transport.command",
			errors.New("command is required"))
		assert.EqualError(t, err,
			"tool_server 'terminal': field 'transport.command': command is required")
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("llm_provider", "openai-main", "",
			ErrLLMProviderNotFound)
		assert.EqualError(t, err, "llm_provider 'openai-main': LLM provider not found")
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		err := NewValidationError("scope", "default", "include_cidrs", ErrInvalidYAML)
		assert.True(t, errors.Is(err, ErrInvalidYAML))
	})
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("redclaw.yaml", ErrConfigNotFound)
	assert.EqualError(t, err, "failed to load redclaw.yaml: configuration file not found")
	assert.True(t, errors.Is(err, ErrConfigNotFound))

	parseErr := NewLoadError("llm-providers.yaml", errors.New("yaml: unmarshal error"))
	assert.Contains(t, parseErr.Error(), "llm-providers.yaml")
	assert.Contains(t, parseErr.Error(), "unmarshal error")
}
