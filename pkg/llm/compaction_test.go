package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: strings.Repeat("x", 396)}, // 396 + len("user") = 400 chars
	}
	assert.Equal(t, 100, EstimateTokens(messages))

	t.Run("tool calls count", func(t *testing.T) {
		withCall := []Message{{
			Role: RoleAssistant,
			ToolCalls: []ToolCall{
				{Name: "scan", Arguments: map[string]any{"target": "10.0.0.1"}},
			},
		}}
		assert.Greater(t, EstimateTokens(withCall), 5)
	})
}

func TestCompactMessagesBelowThresholdUntouched(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "prompt"},
		{Role: RoleUser, Content: "short objective"},
	}
	out := CompactMessages(messages, 10000)
	assert.Equal(t, messages, out)
}

func TestCompactMessagesKeepsSystemAndTail(t *testing.T) {
	long := strings.Repeat("A", 600)

	messages := []Message{{Role: RoleSystem, Content: "system prompt here"}}
	for i := 0; i < 15; i++ {
		messages = append(messages, Message{Role: RoleUser, Content: long})
	}
	tail := []Message{}
	for i := 0; i < 8; i++ {
		m := Message{Role: RoleAssistant, Content: "tail message"}
		messages = append(messages, m)
		tail = append(tail, m)
	}

	out := CompactMessages(messages, 1000)
	require.Len(t, out, 10, "system + summary + last 8")

	assert.Equal(t, RoleSystem, out[0].Role)
	assert.Equal(t, "system prompt here", out[0].Content)

	summary := out[1]
	assert.Equal(t, RoleUser, summary.Role)
	assert.Contains(t, summary.Content, "(15 earlier messages omitted)")
	assert.Contains(t, summary.Content, "[user]: "+strings.Repeat("A", 100)+"...")

	assert.Equal(t, tail, out[2:])

	t.Run("idempotent", func(t *testing.T) {
		again := CompactMessages(out, 1000)
		assert.Equal(t, out, again)
	})

	t.Run("reduces estimate below threshold", func(t *testing.T) {
		assert.LessOrEqual(t, EstimateTokens(out), int(0.85*1000))
	})
}

func TestCompactMessagesSkippedWhenItCannotReduce(t *testing.T) {
	t.Run("too few messages", func(t *testing.T) {
		messages := make([]Message, 0, 8)
		for i := 0; i < 8; i++ {
			messages = append(messages, Message{Role: RoleUser, Content: strings.Repeat("B", 2000)})
		}
		out := CompactMessages(messages, 100)
		assert.Equal(t, messages, out)
	})

	t.Run("tail alone exceeds threshold", func(t *testing.T) {
		messages := make([]Message, 0, 9)
		for i := 0; i < 9; i++ {
			messages = append(messages, Message{Role: RoleUser, Content: strings.Repeat("C", 4000)})
		}
		out := CompactMessages(messages, 1000)
		assert.Equal(t, messages, out)
	})

	t.Run("no context limit configured", func(t *testing.T) {
		messages := []Message{{Role: RoleUser, Content: strings.Repeat("D", 100000)}}
		out := CompactMessages(messages, 0)
		assert.Equal(t, messages, out)
	})
}
