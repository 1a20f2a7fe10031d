package masking

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// resolvedPatterns is the effective set of maskers and patterns for this
// deployment, resolved once at service construction.
type resolvedPatterns struct {
	codeMaskerNames []string
	regexPatterns   []*CompiledPattern
}

// compileBuiltinPatterns compiles all built-in regex patterns.
// Invalid built-in patterns are logged and skipped.
func (s *Service) compileBuiltinPatterns() {
	for name, pattern := range config.GetBuiltinConfig().MaskingPatterns {
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			s.logger.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
}

// compileCustomPatterns compiles the deployment's custom patterns.
// Custom patterns are keyed "custom:{index}" to avoid builtin collisions.
func (s *Service) compileCustomPatterns(cfg *config.MaskingConfig) {
	if cfg == nil {
		return
	}
	for i, pattern := range cfg.CustomPatterns {
		name := fmt.Sprintf("custom:%d", i)
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			s.logger.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
}

// resolvePatterns expands the config's groups and pattern names into a
// deduplicated resolvedPatterns set. Custom patterns always apply. When the
// config names neither groups nor patterns, the default group is used.
func (s *Service) resolvePatterns(cfg *config.MaskingConfig) *resolvedPatterns {
	seen := make(map[string]bool)
	resolved := &resolvedPatterns{}
	builtin := config.GetBuiltinConfig()

	groups := []string{defaultPatternGroup}
	var individual []string
	if cfg != nil && (len(cfg.PatternGroups) > 0 || len(cfg.Patterns) > 0) {
		groups = cfg.PatternGroups
		individual = cfg.Patterns
	}

	for _, groupName := range groups {
		members, ok := builtin.PatternGroups[groupName]
		if !ok {
			s.logger.Warn("Unknown masking pattern group, skipping", "group", groupName)
			continue
		}
		for _, name := range members {
			if seen[name] {
				continue
			}
			seen[name] = true
			s.addToResolved(resolved, name, builtin)
		}
	}

	for _, name := range individual {
		if seen[name] {
			continue
		}
		seen[name] = true
		s.addToResolved(resolved, name, builtin)
	}

	if cfg != nil {
		for i := range cfg.CustomPatterns {
			name := fmt.Sprintf("custom:%d", i)
			if cp, ok := s.patterns[name]; ok && !seen[name] {
				seen[name] = true
				resolved.regexPatterns = append(resolved.regexPatterns, cp)
			}
		}
	}

	return resolved
}

// addToResolved categorizes a pattern name as a code masker or regex pattern.
func (s *Service) addToResolved(resolved *resolvedPatterns, name string, builtin *config.BuiltinConfig) {
	if slices.Contains(builtin.CodeMaskers, name) {
		resolved.codeMaskerNames = append(resolved.codeMaskerNames, name)
		return
	}
	if cp, ok := s.patterns[name]; ok {
		resolved.regexPatterns = append(resolved.regexPatterns, cp)
		return
	}
	s.logger.Warn("Unknown masking pattern name, skipping", "pattern", name)
}
