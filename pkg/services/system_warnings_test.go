package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning("tool_health", "Tool server unreachable", "connection refused", "nmap-server")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "tool_health", warnings[0].Category)
	assert.Equal(t, "Tool server unreachable", warnings[0].Message)
	assert.Equal(t, "connection refused", warnings[0].Details)
	assert.Equal(t, "nmap-server", warnings[0].SourceID)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearBySource(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning("tool_health", "Tool server unreachable", "", "nmap-server")
	svc.AddWarning("tool_health", "Tool server unreachable", "", "metasploit-server")

	assert.Len(t, svc.GetWarnings(), 2)

	// Clear the nmap warning
	cleared := svc.ClearBySource("tool_health", "nmap-server")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "metasploit-server", svc.GetWarnings()[0].SourceID)

	// Clear non-existent
	cleared = svc.ClearBySource("tool_health", "nonexistent")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning("tool_health", "First error", "err1", "nmap-server")
	svc.AddWarning("tool_health", "Second error", "err2", "nmap-server")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second error", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_DistinctCategoriesCoexist(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning("tool_health", "Tool server unreachable", "", "nmap-server")
	svc.AddWarning("llm_provider", "Provider rate-limited", "", "openai-primary")

	assert.Len(t, svc.GetWarnings(), 2)

	// Clearing one category leaves the other untouched
	cleared := svc.ClearBySource("tool_health", "nmap-server")
	assert.True(t, cleared)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "llm_provider", warnings[0].Category)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	// Concurrent adds
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	// Just ensure no panics — exact count doesn't matter for concurrency test
	assert.NotNil(t, svc.GetWarnings())
}
