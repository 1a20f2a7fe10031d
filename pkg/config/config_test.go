package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigConvenienceMethods tests all convenience methods on Config
func TestConfigConvenienceMethods(t *testing.T) {
	toolServers := map[string]*ToolServerConfig{
		"test-server": {
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "test"},
		},
	}
	llmProviders := map[string]*LLMProviderConfig{
		"test-provider": {
			Endpoint: "https://api.example.com/v1",
			Model:    "test-model",
		},
	}

	cfg := &Config{
		configDir:           "/test/config",
		ToolServerRegistry:  NewToolServerRegistry(toolServers),
		LLMProviderRegistry: NewLLMProviderRegistry(llmProviders),
	}

	t.Run("ConfigDir", func(t *testing.T) {
		assert.Equal(t, "/test/config", cfg.ConfigDir())
	})

	t.Run("GetToolServer success", func(t *testing.T) {
		server, err := cfg.GetToolServer("test-server")
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, TransportTypeStdio, server.Transport.Type)
	})

	t.Run("GetToolServer not found", func(t *testing.T) {
		_, err := cfg.GetToolServer("nonexistent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("GetLLMProvider success", func(t *testing.T) {
		provider, err := cfg.GetLLMProvider("test-provider")
		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.Equal(t, "test-model", provider.Model)
	})

	t.Run("GetLLMProvider not found", func(t *testing.T) {
		_, err := cfg.GetLLMProvider("nonexistent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("AllToolServerIDs", func(t *testing.T) {
		assert.Equal(t, []string{"test-server"}, cfg.AllToolServerIDs())
	})

	t.Run("ProvidersByPriority", func(t *testing.T) {
		ordered := cfg.ProvidersByPriority()
		require.Len(t, ordered, 1)
		assert.Equal(t, "test-provider", ordered[0].Name)
	})
}

func TestConfigStats(t *testing.T) {
	cfg := &Config{
		ToolServerRegistry:  NewToolServerRegistry(map[string]*ToolServerConfig{"t1": {}, "t2": {}, "t3": {}}),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{"l1": {}, "l2": {}}),
	}

	stats := cfg.Stats()
	assert.Equal(t, 3, stats.ToolServers)
	assert.Equal(t, 2, stats.LLMProviders)
}
