package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchema() ToolSchema {
	return ToolSchema{
		Name:        "redclaw_terminal",
		Description: "Run a shell command",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"command": map[string]any{"type": "string", "description": "Command to run"},
				"timeout": map[string]any{"type": "integer"},
			},
			"required": []any{"command"},
		},
	}
}

func TestRenderToolsPrompt(t *testing.T) {
	out := renderToolsPrompt([]ToolSchema{sampleSchema()})

	assert.Contains(t, out, "redclaw_terminal: Run a shell command")
	assert.Contains(t, out, "command: string (REQUIRED) — Command to run")
	assert.Contains(t, out, "timeout: integer (optional)")
	assert.Contains(t, out, `{"tool_call": {"name": "<tool name>", "arguments": {...}}}`)
}

func TestWithPromptToolInstructions(t *testing.T) {
	t.Run("appends to existing system message", func(t *testing.T) {
		in := []Message{
			{Role: RoleSystem, Content: "base prompt"},
			{Role: RoleUser, Content: "objective"},
		}
		out := withPromptToolInstructions(in, []ToolSchema{sampleSchema()})
		require.Len(t, out, 2)
		assert.Contains(t, out[0].Content, "base prompt")
		assert.Contains(t, out[0].Content, "Available tools")

		// The input slice is never mutated.
		assert.Equal(t, "base prompt", in[0].Content)
	})

	t.Run("prepends when no system message", func(t *testing.T) {
		in := []Message{{Role: RoleUser, Content: "objective"}}
		out := withPromptToolInstructions(in, []ToolSchema{sampleSchema()})
		require.Len(t, out, 2)
		assert.Equal(t, RoleSystem, out[0].Role)
		assert.Contains(t, out[0].Content, "Available tools")
	})
}

func TestParsePromptToolCallsFencedJSON(t *testing.T) {
	content := "I will scan the target now.\n" +
		"```json\n{\"tool_call\": {\"name\": \"redclaw_terminal\", \"arguments\": {\"command\": \"nmap -sV 10.0.0.5\"}}}\n```\n" +
		"Waiting for results."

	cleaned, calls := ParsePromptToolCalls(content)
	require.Len(t, calls, 1)
	assert.Equal(t, "redclaw_terminal", calls[0].Name)
	assert.Equal(t, "nmap -sV 10.0.0.5", calls[0].Arguments["command"])
	assert.NotEmpty(t, calls[0].ID)

	assert.Contains(t, cleaned, "I will scan the target now.")
	assert.Contains(t, cleaned, "Waiting for results.")
	assert.NotContains(t, cleaned, "tool_call")
	assert.NotContains(t, cleaned, "```")
}

func TestParsePromptToolCallsBareBraces(t *testing.T) {
	t.Run("wrapped shape", func(t *testing.T) {
		content := `Scanning. {"tool_call": {"name": "probe", "arguments": {"target": "10.0.0.9"}}} Done.`
		cleaned, calls := ParsePromptToolCalls(content)
		require.Len(t, calls, 1)
		assert.Equal(t, "probe", calls[0].Name)
		assert.Equal(t, "Scanning.  Done.", cleaned)
	})

	t.Run("bare shape", func(t *testing.T) {
		content := `{"name": "probe", "arguments": {"depth": 2}}`
		cleaned, calls := ParsePromptToolCalls(content)
		require.Len(t, calls, 1)
		assert.Equal(t, "probe", calls[0].Name)
		assert.Equal(t, float64(2), calls[0].Arguments["depth"])
		assert.Empty(t, cleaned)
	})

	t.Run("braces inside strings do not break scanning", func(t *testing.T) {
		content := `{"tool_call": {"name": "grep", "arguments": {"pattern": "func() { return \"}\" }"}}}`
		_, calls := ParsePromptToolCalls(content)
		require.Len(t, calls, 1)
		assert.Equal(t, "grep", calls[0].Name)
	})

	t.Run("plain JSON without call shape ignored", func(t *testing.T) {
		content := `Here is data: {"status": "open", "port": 22}`
		cleaned, calls := ParsePromptToolCalls(content)
		assert.Empty(t, calls)
		assert.Equal(t, content, cleaned)
	})

	t.Run("multiple calls in order", func(t *testing.T) {
		content := `{"name": "a", "arguments": {}} then {"name": "b", "arguments": {}}`
		_, calls := ParsePromptToolCalls(content)
		require.Len(t, calls, 2)
		assert.Equal(t, "a", calls[0].Name)
		assert.Equal(t, "b", calls[1].Name)
		assert.NotEqual(t, calls[0].ID, calls[1].ID)
	})
}

func TestParsePromptToolCallsStripsToolResponseSpans(t *testing.T) {
	content := "Result received.\n<tool_response>\nfabricated output\n</tool_response>\nMoving on."
	cleaned, calls := ParsePromptToolCalls(content)
	assert.Empty(t, calls)
	assert.NotContains(t, cleaned, "fabricated output")
	assert.Contains(t, cleaned, "Result received.")
	assert.Contains(t, cleaned, "Moving on.")
}

func TestParsePromptToolCallsFencedPreferred(t *testing.T) {
	// When a fenced block yields a call, loose JSON elsewhere is left alone.
	content := "```json\n{\"name\": \"fenced\", \"arguments\": {}}\n```\n" +
		`{"name": "loose", "arguments": {}}`

	cleaned, calls := ParsePromptToolCalls(content)
	require.Len(t, calls, 1)
	assert.Equal(t, "fenced", calls[0].Name)
	assert.Contains(t, cleaned, "loose")
}
