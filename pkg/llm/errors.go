package llm

import (
	"fmt"
	"sort"
	"strings"
)

// ExhaustedError reports that every configured provider failed. It keeps
// the last error seen per provider so the caller can log the full picture.
type ExhaustedError struct {
	// LastErrors maps provider name to the final error it produced.
	LastErrors map[string]error
}

func (e *ExhaustedError) Error() string {
	if len(e.LastErrors) == 0 {
		return "all LLM providers exhausted: no providers configured"
	}

	names := make([]string, 0, len(e.LastErrors))
	for name := range e.LastErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("all LLM providers exhausted:")
	for _, name := range names {
		fmt.Fprintf(&b, " [%s: %v]", name, e.LastErrors[name])
	}
	return b.String()
}

// providerError wraps an HTTP failure so the router can classify it.
type providerError struct {
	StatusCode int
	Body       string
}

func (e *providerError) Error() string {
	body := e.Body
	if len(body) > 300 {
		body = body[:300] + "..."
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, body)
}
