package config

// mergeGuardianLists merges built-in and user-supplied guardian string lists
// (blocked commands, suspicious patterns). Built-ins come first; user entries
// are appended, skipping exact duplicates.
func mergeGuardianLists(builtin, user []string) []string {
	result := make([]string, 0, len(builtin)+len(user))
	seen := make(map[string]bool, len(builtin)+len(user))
	for _, entry := range builtin {
		if !seen[entry] {
			seen[entry] = true
			result = append(result, entry)
		}
	}
	for _, entry := range user {
		if !seen[entry] {
			seen[entry] = true
			result = append(result, entry)
		}
	}
	return result
}

// mergeMaskingPatterns merges built-in and user-defined masking patterns.
// User-defined patterns override built-in patterns with the same name.
func mergeMaskingPatterns(builtinPatterns map[string]MaskingPattern, userPatterns []MaskingPattern) map[string]MaskingPattern {
	result := make(map[string]MaskingPattern, len(builtinPatterns)+len(userPatterns))

	// First, add built-in patterns
	for name, pattern := range builtinPatterns {
		result[name] = pattern
	}

	// Then, add custom patterns keyed by description (or pattern text when
	// no description is given)
	for _, userPattern := range userPatterns {
		key := userPattern.Description
		if key == "" {
			key = userPattern.Pattern
		}
		result[key] = userPattern
	}

	return result
}
