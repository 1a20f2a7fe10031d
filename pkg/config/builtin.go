package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default guardian rules, risk keyword classes, and masking patterns.
type BuiltinConfig struct {
	// Guardian: case-insensitive substrings blocked outright
	BlockedCommands []string

	// Guardian: regex source strings compiled at startup; a match raises
	// risk to critical
	SuspiciousPatterns []string

	// Guardian: keyword classes for commands that produced no other hits.
	// Checked high first, then medium, then low.
	HighRiskKeywords   []string
	MediumRiskKeywords []string
	LowRiskKeywords    []string

	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string

	// Names of code-based maskers (structural, beyond regex). Pattern groups
	// may reference these names alongside regex pattern names.
	CodeMaskers []string

	DefaultObjectiveType string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		BlockedCommands:      initBuiltinBlockedCommands(),
		SuspiciousPatterns:   initBuiltinSuspiciousPatterns(),
		HighRiskKeywords:     initBuiltinHighRiskKeywords(),
		MediumRiskKeywords:   initBuiltinMediumRiskKeywords(),
		LowRiskKeywords:      initBuiltinLowRiskKeywords(),
		MaskingPatterns:      initBuiltinMaskingPatterns(),
		PatternGroups:        initBuiltinPatternGroups(),
		CodeMaskers:          []string{"env_secrets"},
		DefaultObjectiveType: "network",
	}
}

// initBuiltinBlockedCommands returns destructive command substrings that are
// never allowed regardless of scope. Matching is case-insensitive.
func initBuiltinBlockedCommands() []string {
	return []string{
		"rm -rf /",
		"rm -rf /*",
		"rm -fr /",
		"mkfs",
		"dd if=/dev/zero of=/dev/",
		"dd of=/dev/sd",
		"dd of=/dev/nvme",
		"> /dev/sda",
		":(){ :|:& };:",
		":(){:|:&};:",
		"shutdown",
		"reboot",
		"poweroff",
		"halt -f",
		"init 0",
		"init 6",
		"iptables -F",
		"iptables --flush",
		"shred /dev/",
		"wipefs",
	}
}

// initBuiltinSuspiciousPatterns returns regex sources flagged as critical.
// Compiled once by the guardian at startup; an invalid user-supplied pattern
// fails config validation rather than being skipped.
func initBuiltinSuspiciousPatterns() []string {
	return []string{
		`dd\s+[^|;]*of=/dev/(sd|hd|nvme|vd)`,            // raw device overwrite
		`rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+/(\s|$)`,     // recursive delete of root
		`(curl|wget)\s+[^|;]*\|\s*(ba|z|da)?sh`,         // download piped to shell
		`(chmod|chown)\s+(-[a-zA-Z]+\s+)*[0-7]+\s+/\s*$`, // permission sweep of root
		`mv\s+[^|;]*\s+/dev/null`,
		`history\s+-c`,
	}
}

func initBuiltinHighRiskKeywords() []string {
	return []string{
		"msfconsole",
		"msfvenom",
		"metasploit",
		"meterpreter",
		"sqlmap",
		"hydra",
		"medusa",
		"hashcat",
		"john ",
		"mimikatz",
		"crackmapexec",
		"netexec",
		"evil-winrm",
		"impacket",
		"exploit",
		"reverse shell",
		"privilege escalation",
	}
}

func initBuiltinMediumRiskKeywords() []string {
	return []string{
		"nmap",
		"masscan",
		"rustscan",
		"nikto",
		"nuclei",
		"gobuster",
		"feroxbuster",
		"dirb",
		"ffuf",
		"wfuzz",
		"wpscan",
		"enum4linux",
		"smbmap",
		"smbclient",
	}
}

func initBuiltinLowRiskKeywords() []string {
	return []string{
		"whois",
		"dig ",
		"nslookup",
		"host ",
		"ping",
		"traceroute",
		"theharvester",
		"amass",
		"shodan",
	}
}

func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-]{20,})["\']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password_assignment": {
			Pattern:     `(?i)(?:password|passwd|pwd)["\']?\s*[:=]\s*["\']?([^"\'\s\n]{6,})["\']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Password assignments",
		},
		"basic_auth_url": {
			Pattern:     `([a-zA-Z][a-zA-Z0-9+.-]*://[^/\s:@]+):([^@/\s]+)@`,
			Replacement: `$1:__MASKED_PASSWORD__@`,
			Description: "Credentials embedded in URLs",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM certificates and keys",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-\.]{20,})["\']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"authorization_header": {
			Pattern:     `(?i)authorization:\s*(?:bearer|basic)\s+[A-Za-z0-9+/_\-\.=]{8,}`,
			Replacement: `Authorization: __MASKED_AUTH_HEADER__`,
			Description: "HTTP Authorization headers",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-\.]{20,})["\']?`,
			Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
			Description: "Private keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9_\-\.]{20,})["\']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"aws_access_key": {
			Pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["\']?\s*[:=]\s*["\']?(AKIA[A-Z0-9]{16})["\']?`,
			Replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
			Description: "AWS access keys",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["\']?\s*[:=]\s*["\']?([A-Za-z0-9/+=]{40})["\']?`,
			Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `gh[ps]_[A-Za-z0-9_]{36,255}`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
// Group members reference keys in MaskingPatterns or CodeMaskers.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":    {"api_key", "password_assignment"},
		"secrets":  {"api_key", "password_assignment", "token", "private_key", "secret_key"},
		"web":      {"api_key", "token", "authorization_header", "basic_auth_url"},
		"cloud":    {"aws_access_key", "aws_secret_key", "api_key", "token"},
		"terminal": {"env_secrets", "password_assignment", "basic_auth_url", "ssh_key"},
		"all": {
			"env_secrets",
			"api_key", "password_assignment", "basic_auth_url", "certificate",
			"token", "authorization_header", "ssh_key", "private_key",
			"secret_key", "aws_access_key", "aws_secret_key", "github_token",
			"slack_token",
		},
	}
}
