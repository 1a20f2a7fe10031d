package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Compact once the estimate crosses this share of the context window.
	compactionThreshold = 0.85

	// Non-system messages preserved verbatim at the tail.
	compactionKeepRecent = 8

	// Characters of each dropped message quoted in the summary.
	compactionSummaryChars = 100
)

// EstimateTokens approximates the token count of a conversation using the
// 4-characters-per-token heuristic, including tool call payloads.
func EstimateTokens(messages []Message) int {
	chars := 0
	for _, m := range messages {
		chars += len(m.Role) + len(m.Content) + len(m.ToolName)
		for _, call := range m.ToolCalls {
			chars += len(call.Name)
			if raw, err := json.Marshal(call.Arguments); err == nil {
				chars += len(raw)
			}
		}
	}
	return chars / 4
}

// CompactMessages shrinks a conversation that exceeds 85% of the model's
// context limit. All system messages and the last 8 non-system messages
// survive; the dropped middle span collapses into one synthetic user
// message quoting the first 100 characters of each dropped message plus an
// omitted-count footer. If compaction cannot bring the estimate under the
// threshold it is skipped entirely, which also makes the operation
// idempotent: a compacted conversation estimates below the threshold and
// passes through untouched.
func CompactMessages(messages []Message, contextLimit int) []Message {
	if contextLimit <= 0 {
		return messages
	}
	threshold := int(compactionThreshold * float64(contextLimit))
	if EstimateTokens(messages) <= threshold {
		return messages
	}

	var nonSystem []int
	for i, m := range messages {
		if m.Role != RoleSystem {
			nonSystem = append(nonSystem, i)
		}
	}
	if len(nonSystem) <= compactionKeepRecent {
		return messages
	}

	drop := make(map[int]bool, len(nonSystem)-compactionKeepRecent)
	for _, i := range nonSystem[:len(nonSystem)-compactionKeepRecent] {
		drop[i] = true
	}

	var lines []string
	out := make([]Message, 0, len(messages)-len(drop)+1)
	summaryAt := -1
	for i, m := range messages {
		if drop[i] {
			lines = append(lines, fmt.Sprintf("[%s]: %s", m.Role, firstChars(m.Content, compactionSummaryChars)))
			if summaryAt == -1 {
				summaryAt = len(out)
				out = append(out, Message{}) // placeholder, filled below
			}
			continue
		}
		out = append(out, m)
	}

	out[summaryAt] = Message{
		Role: RoleUser,
		Content: fmt.Sprintf(
			"Earlier conversation compacted to fit the context window:\n%s\n(%d earlier messages omitted)",
			strings.Join(lines, "\n"), len(lines)),
	}

	if EstimateTokens(out) > threshold {
		// The surviving tail alone is too large; compaction cannot help.
		return messages
	}
	return out
}

func firstChars(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
