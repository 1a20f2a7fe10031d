package masking

import (
	"regexp"
	"strings"
)

// MaskedEnvValue replaces the value of a secret-bearing environment variable.
const MaskedEnvValue = "[MASKED_ENV_VALUE]"

// Pre-compiled patterns for fast AppliesTo checks and line parsing.
var (
	envAssignmentPattern = regexp.MustCompile(`^(\s*(?:export\s+)?)([A-Za-z_][A-Za-z0-9_]*)=(.+)$`)
	secretEnvKeyPattern  = regexp.MustCompile(`(?i)(secret|token|passw(or)?d|pwd$|api_?key|private_?key|credential|access_?key)`)
)

// EnvSecretMasker masks values of secret-bearing variables in environment
// dumps and dotenv-style files (`env`, `printenv`, `cat .env`, `set` output).
// Regex sweeps catch `KEY=value` assignments inside commands; this masker
// handles whole-line dumps where the value carries no quoting or context.
type EnvSecretMasker struct{}

// Name returns the unique identifier for this masker.
func (m *EnvSecretMasker) Name() string { return "env_secrets" }

// AppliesTo performs a lightweight check on whether this masker should
// process the data: at least one line must look like an env assignment.
func (m *EnvSecretMasker) AppliesTo(data string) bool {
	for _, line := range strings.Split(data, "\n") {
		if envAssignmentPattern.MatchString(line) {
			return true
		}
	}
	return false
}

// Mask replaces the value of every assignment whose variable name suggests a
// secret. Non-assignment lines and benign variables pass through unchanged.
func (m *EnvSecretMasker) Mask(data string) string {
	lines := strings.Split(data, "\n")
	changed := false

	for i, line := range lines {
		match := envAssignmentPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		prefix, key := match[1], match[2]
		if !secretEnvKeyPattern.MatchString(key) {
			continue
		}
		lines[i] = prefix + key + "=" + MaskedEnvValue
		changed = true
	}

	if !changed {
		return data
	}
	return strings.Join(lines, "\n")
}
