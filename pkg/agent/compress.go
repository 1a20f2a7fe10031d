package agent

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// Line-window compression applies above this line count.
	compressMaxLines = 100

	// Lines kept at each end of a long output.
	compressLineWindow = 30
)

// CompressToolOutput bounds one tool result before it enters the
// conversation. Output at or under maxChars passes through untouched.
// JSON output is pretty-printed when the pretty form fits and truncated
// with a marker otherwise; short texts are cut by characters; long texts
// keep the first and last 30 lines under a summary header.
func CompressToolOutput(raw string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = defaultOutputMaxChars
	}
	if len(raw) <= maxChars {
		return raw
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		pretty, merr := json.MarshalIndent(parsed, "", "  ")
		if merr == nil {
			if len(pretty) <= maxChars {
				return string(pretty)
			}
			marker := fmt.Sprintf("\n[JSON TRUNCATED: %d total chars]", len(pretty))
			return cutAtRune(string(pretty), maxChars-len(marker)) + marker
		}
	}

	lines := strings.Split(raw, "\n")
	if len(lines) <= compressMaxLines {
		marker := fmt.Sprintf("\n... [TRUNCATED: %d total chars]", len(raw))
		return cutAtRune(raw, maxChars-len(marker)) + marker
	}

	header := fmt.Sprintf("[tool] %d lines, %d chars — first %d + last %d:",
		len(lines), len(raw), compressLineWindow, compressLineWindow)
	head := strings.Join(lines[:compressLineWindow], "\n")
	tail := strings.Join(lines[len(lines)-compressLineWindow:], "\n")
	return header + "\n" + head + "\n... [MIDDLE OMITTED] ...\n" + tail
}

// truncateForDisplay caps the copy of a tool result shown in events.
func truncateForDisplay(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	const marker = "\n[output truncated]"
	return cutAtRune(s, maxChars-len(marker)) + marker
}

// cutAtRune slices s to at most n bytes without splitting a rune.
func cutAtRune(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
