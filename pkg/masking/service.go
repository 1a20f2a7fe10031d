// Package masking redacts credentials and other sensitive material from tool
// output before it reaches the LLM, the event stream, or durable storage.
package masking

import (
	"fmt"
	"log/slog"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
)

// RedactionNotice replaces tool output entirely when masking itself fails.
// Tool output is fail-closed: unmaskable content must never propagate.
const RedactionNotice = "[REDACTED: data masking failure — tool result could not be safely processed]"

// defaultPatternGroup is applied when the config names no groups or patterns.
const defaultPatternGroup = "all"

// Service applies data masking to tool results and persisted interaction rows.
// Created once at application startup. Thread-safe and stateless aside from
// compiled patterns.
type Service struct {
	enabled     bool
	patterns    map[string]*CompiledPattern // built-in + custom compiled patterns
	codeMaskers map[string]Masker           // registered code-based maskers
	resolved    *resolvedPatterns           // effective set for this deployment
	logger      *slog.Logger
}

// NewService compiles the configured masking patterns eagerly. Invalid custom
// patterns are logged and skipped. A nil cfg yields the default pattern set.
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{
		enabled:     !cfg.MaskingDisabled(),
		patterns:    make(map[string]*CompiledPattern),
		codeMaskers: make(map[string]Masker),
		logger:      slog.Default().With("component", "masking"),
	}

	s.compileBuiltinPatterns()
	s.compileCustomPatterns(cfg)
	s.registerMasker(&EnvSecretMasker{})
	s.resolved = s.resolvePatterns(cfg)

	s.logger.Info("Masking service initialized",
		"enabled", s.enabled,
		"compiled_patterns", len(s.patterns),
		"active_patterns", len(s.resolved.regexPatterns),
		"code_maskers", len(s.resolved.codeMaskerNames))

	return s
}

// MaskToolResult masks tool output before it is returned to the agent loop.
// Fail-closed: if masking fails the entire result is replaced with a
// redaction notice. The tool name is used only for logging.
func (s *Service) MaskToolResult(content string, tool string) string {
	if !s.enabled || content == "" {
		return content
	}

	masked, err := s.applyMasking(content)
	if err != nil {
		s.logger.Error("Masking failed, redacting tool result",
			"tool", tool, "error", err)
		return RedactionNotice
	}
	return masked
}

// MaskText masks free-form text before it is persisted (timeline rows, event
// payloads). Fail-open: on masking failure the original text is kept so the
// engagement record stays useful.
func (s *Service) MaskText(text string) string {
	if !s.enabled || text == "" {
		return text
	}

	masked, err := s.applyMasking(text)
	if err != nil {
		s.logger.Error("Masking failed, persisting unmasked text", "error", err)
		return text
	}
	return masked
}

// applyMasking runs code-based maskers first (structural awareness), then the
// regex patterns as a general sweep. A panicking masker is converted to an
// error so callers can apply their fail-open/fail-closed policy.
func (s *Service) applyMasking(content string) (masked string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("masker panicked: %v", r)
		}
	}()

	masked = content

	for _, name := range s.resolved.codeMaskerNames {
		masker, ok := s.codeMaskers[name]
		if !ok {
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	for _, pattern := range s.resolved.regexPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked, nil
}

// registerMasker registers a code-based masker by its name.
func (s *Service) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}
