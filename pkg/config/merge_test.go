package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeGuardianLists(t *testing.T) {
	builtin := []string{"rm -rf /", "mkfs", "shutdown"}
	user := []string{"drop database", "mkfs", "format c:"}

	result := mergeGuardianLists(builtin, user)

	// Built-ins come first, user additions appended, duplicates skipped
	assert.Equal(t, []string{"rm -rf /", "mkfs", "shutdown", "drop database", "format c:"}, result)
}

func TestMergeGuardianListsEmpty(t *testing.T) {
	t.Run("empty user list", func(t *testing.T) {
		result := mergeGuardianLists([]string{"a", "b"}, nil)
		assert.Equal(t, []string{"a", "b"}, result)
	})

	t.Run("empty builtin list", func(t *testing.T) {
		result := mergeGuardianLists(nil, []string{"c"})
		assert.Equal(t, []string{"c"}, result)
	})

	t.Run("both empty", func(t *testing.T) {
		result := mergeGuardianLists(nil, nil)
		assert.Empty(t, result)
	})
}

func TestMergeMaskingPatterns(t *testing.T) {
	builtin := map[string]MaskingPattern{
		"api_key": {
			Pattern:     `api_key=\S+`,
			Replacement: "__MASKED_API_KEY__",
			Description: "API keys",
		},
		"token": {
			Pattern:     `token=\S+`,
			Replacement: "__MASKED_TOKEN__",
			Description: "Tokens",
		},
	}

	user := []MaskingPattern{
		{
			Pattern:     `session=\S+`,
			Replacement: "__MASKED_SESSION__",
			Description: "session_cookie",
		},
		{
			// Keyed by pattern text when description is missing
			Pattern:     `secret=\S+`,
			Replacement: "__MASKED_SECRET__",
		},
	}

	result := mergeMaskingPatterns(builtin, user)

	assert.Len(t, result, 4)
	assert.Contains(t, result, "api_key")
	assert.Contains(t, result, "token")
	assert.Contains(t, result, "session_cookie")
	assert.Contains(t, result, `secret=\S+`)
	assert.Equal(t, "__MASKED_SESSION__", result["session_cookie"].Replacement)
}

func TestMergeMaskingPatternsEmpty(t *testing.T) {
	t.Run("no custom patterns", func(t *testing.T) {
		builtin := map[string]MaskingPattern{
			"api_key": {Pattern: `x`, Replacement: "y"},
		}
		result := mergeMaskingPatterns(builtin, nil)
		assert.Len(t, result, 1)
	})

	t.Run("nil builtin", func(t *testing.T) {
		result := mergeMaskingPatterns(nil, []MaskingPattern{
			{Pattern: `x`, Replacement: "y", Description: "custom"},
		})
		assert.Len(t, result, 1)
		assert.Contains(t, result, "custom")
	})
}
