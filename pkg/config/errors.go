package config

import (
	"errors"
	"fmt"
)

// Sentinel causes for configuration failures; callers branch on these with
// errors.Is while the wrapping types below carry the file or component
// context.
var (
	ErrConfigNotFound      = errors.New("configuration file not found")
	ErrInvalidYAML         = errors.New("invalid YAML syntax")
	ErrToolServerNotFound  = errors.New("tool server not found")
	ErrLLMProviderNotFound = errors.New("LLM provider not found")
)

// ValidationError names the misconfigured component (llm_provider,
// tool_server, guardian, scope, queue) and optionally the field.
type ValidationError struct {
	Component string
	ID        string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s '%s': field '%s': %v", e.Component, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Component, e.ID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError; field may be empty when the
// problem spans the whole component.
func NewValidationError(component, id, field string, err error) *ValidationError {
	return &ValidationError{Component: component, ID: id, Field: field, Err: err}
}

// LoadError ties a read or parse failure to the file it came from.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}
