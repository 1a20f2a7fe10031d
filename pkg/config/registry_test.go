package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Tool Server Registry

func TestToolServerRegistry(t *testing.T) {
	servers := map[string]*ToolServerConfig{
		"terminal": {
			Transport:   TransportConfig{Type: TransportTypeStdio, Command: "cmd1"},
			SessionKind: SessionKindLocal,
		},
		"scanner": {
			Transport: TransportConfig{Type: TransportTypeHTTP, URL: "http://example.com"},
		},
	}

	registry := NewToolServerRegistry(servers)

	t.Run("Get existing server", func(t *testing.T) {
		server, err := registry.Get("terminal")
		require.NoError(t, err)
		assert.Equal(t, "cmd1", server.Transport.Command)
	})

	t.Run("Get nonexistent server", func(t *testing.T) {
		_, err := registry.Get("nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrToolServerNotFound)
	})

	t.Run("Has server", func(t *testing.T) {
		assert.True(t, registry.Has("terminal"))
		assert.False(t, registry.Has("nonexistent"))
	})

	t.Run("ServerIDs sorted", func(t *testing.T) {
		assert.Equal(t, []string{"scanner", "terminal"}, registry.ServerIDs())
	})

	t.Run("GetAll returns copy", func(t *testing.T) {
		all := registry.GetAll()
		assert.Len(t, all, 2)

		// Modify the returned map
		all["extra"] = &ToolServerConfig{
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "cmd3"},
		}

		// Original registry should be unchanged
		assert.False(t, registry.Has("extra"))
	})
}

func TestToolServerRegistryThreadSafety(_ *testing.T) {
	servers := map[string]*ToolServerConfig{
		"terminal": {
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "cmd1"},
		},
	}

	registry := NewToolServerRegistry(servers)

	const goroutines = 100
	var wg sync.WaitGroup

	// Launch multiple goroutines reading concurrently
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = registry.Get("terminal")
			_ = registry.Has("terminal")
			_ = registry.GetAll()
			_ = registry.ServerIDs()
		}()
	}

	wg.Wait()
	// If no panic, thread safety is good
}

// Test LLM Provider Registry

func TestLLMProviderRegistry(t *testing.T) {
	providers := map[string]*LLMProviderConfig{
		"provider1": {
			Endpoint: "https://api.example.com/v1",
			Model:    "model1",
			Priority: 0,
		},
		"provider2": {
			Endpoint: "https://api.other.com/v1",
			Model:    "model2",
			Priority: 1,
		},
	}

	registry := NewLLMProviderRegistry(providers)

	t.Run("Get existing provider", func(t *testing.T) {
		provider, err := registry.Get("provider1")
		require.NoError(t, err)
		assert.Equal(t, "model1", provider.Model)
	})

	t.Run("Name set from registry key", func(t *testing.T) {
		provider, err := registry.Get("provider2")
		require.NoError(t, err)
		assert.Equal(t, "provider2", provider.Name)
	})

	t.Run("Get nonexistent provider", func(t *testing.T) {
		_, err := registry.Get("nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("Has provider", func(t *testing.T) {
		assert.True(t, registry.Has("provider1"))
		assert.False(t, registry.Has("nonexistent"))
	})

	t.Run("GetAll returns copy", func(t *testing.T) {
		all := registry.GetAll()
		assert.Len(t, all, 2)

		// Modify the returned map
		all["provider3"] = &LLMProviderConfig{
			Endpoint: "https://api.third.com/v1",
			Model:    "model3",
		}

		// Original registry should be unchanged
		assert.False(t, registry.Has("provider3"))
	})
}

func TestLLMProviderRegistryOrderedByPriority(t *testing.T) {
	providers := map[string]*LLMProviderConfig{
		"backup": {
			Endpoint: "https://api.backup.com/v1",
			Model:    "backup-model",
			Priority: 2,
		},
		"primary": {
			Endpoint: "https://api.primary.com/v1",
			Model:    "primary-model",
			Priority: 0,
		},
		"secondary": {
			Endpoint: "https://api.secondary.com/v1",
			Model:    "secondary-model",
			Priority: 1,
		},
		// Same priority as secondary; name breaks the tie
		"alt": {
			Endpoint: "https://api.alt.com/v1",
			Model:    "alt-model",
			Priority: 1,
		},
	}

	registry := NewLLMProviderRegistry(providers)
	ordered := registry.OrderedByPriority()

	require.Len(t, ordered, 4)
	assert.Equal(t, "primary", ordered[0].Name)
	assert.Equal(t, "alt", ordered[1].Name)
	assert.Equal(t, "secondary", ordered[2].Name)
	assert.Equal(t, "backup", ordered[3].Name)
}

func TestLLMProviderRegistryThreadSafety(_ *testing.T) {
	providers := map[string]*LLMProviderConfig{
		"provider1": {
			Endpoint: "https://api.example.com/v1",
			Model:    "model1",
		},
	}

	registry := NewLLMProviderRegistry(providers)

	const goroutines = 100
	var wg sync.WaitGroup

	// Launch multiple goroutines reading concurrently
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = registry.Get("provider1")
			_ = registry.Has("provider1")
			_ = registry.GetAll()
			_ = registry.OrderedByPriority()
		}()
	}

	wg.Wait()
	// If no panic, thread safety is good
}
