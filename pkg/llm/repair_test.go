package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixMessageListDropsEmptyRoles(t *testing.T) {
	in := []Message{
		{Role: RoleSystem, Content: "prompt"},
		{Role: "", Content: "stray"},
		{Role: RoleUser, Content: "objective"},
	}

	out := FixMessageList(in)
	require.Len(t, out, 2)
	assert.Equal(t, RoleSystem, out[0].Role)
	assert.Equal(t, RoleUser, out[1].Role)
}

func TestFixMessageListOrphanToolDemoted(t *testing.T) {
	in := []Message{
		{Role: RoleUser, Content: "objective"},
		{Role: RoleTool, Content: "output with no call", ToolCallID: "call_ghost", ToolName: "nmap_scan"},
	}

	out := FixMessageList(in)
	require.Len(t, out, 2)
	assert.Equal(t, RoleSystem, out[1].Role)
	assert.Contains(t, out[1].Content, "[orphan tool result nmap_scan]")
	assert.Contains(t, out[1].Content, "output with no call")
	assert.Empty(t, out[1].ToolCallID)
}

func TestFixMessageListSynthesizesMissingResponses(t *testing.T) {
	calls := []ToolCall{
		{ID: "call_1", Name: "port_scan", Arguments: map[string]any{"target": "10.0.0.1"}},
		{ID: "call_2", Name: "service_probe", Arguments: map[string]any{}},
	}

	t.Run("at next assistant boundary", func(t *testing.T) {
		in := []Message{
			{Role: RoleAssistant, Content: "scanning", ToolCalls: calls},
			{Role: RoleTool, Content: "22/tcp open", ToolCallID: "call_1", ToolName: "port_scan"},
			{Role: RoleAssistant, Content: "continuing"},
		}

		out := FixMessageList(in)
		require.Len(t, out, 4)
		assert.Equal(t, RoleTool, out[2].Role)
		assert.Equal(t, "call_2", out[2].ToolCallID)
		assert.Contains(t, out[2].Content, "execution interrupted — no response for service_probe")
		assert.Equal(t, RoleAssistant, out[3].Role)
	})

	t.Run("at end of conversation", func(t *testing.T) {
		in := []Message{
			{Role: RoleAssistant, Content: "scanning", ToolCalls: calls[:1]},
		}

		out := FixMessageList(in)
		require.Len(t, out, 2)
		assert.Equal(t, RoleTool, out[1].Role)
		assert.Equal(t, "call_1", out[1].ToolCallID)
	})
}

func TestFixMessageListConsistentInputUnchanged(t *testing.T) {
	in := []Message{
		{Role: RoleSystem, Content: "prompt"},
		{Role: RoleUser, Content: "objective"},
		{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "call_1", Name: "scan"}}},
		{Role: RoleTool, Content: "done", ToolCallID: "call_1", ToolName: "scan"},
		{Role: RoleAssistant, Content: "all good"},
	}

	out := FixMessageList(in)
	assert.Equal(t, in, out)
}

func TestFixMessageListIdempotent(t *testing.T) {
	in := []Message{
		{Role: "", Content: "stray"},
		{Role: RoleAssistant, Content: "a", ToolCalls: []ToolCall{
			{ID: "call_1", Name: "scan"},
			{ID: "call_2", Name: "probe"},
		}},
		{Role: RoleTool, Content: "result", ToolCallID: "call_1", ToolName: "scan"},
		{Role: RoleTool, Content: "orphan", ToolCallID: "call_unknown", ToolName: "ghost"},
		{Role: RoleAssistant, Content: "b"},
	}

	once := FixMessageList(in)
	twice := FixMessageList(once)
	assert.Equal(t, once, twice)

	// Repaired output is consistent: every call answered before the next
	// assistant message.
	pending := map[string]bool{}
	for _, m := range once {
		switch m.Role {
		case RoleAssistant:
			assert.Empty(t, pending, "pending calls must be resolved before a new assistant message")
			for _, c := range m.ToolCalls {
				pending[c.ID] = true
			}
		case RoleTool:
			assert.True(t, pending[m.ToolCallID], "tool message must answer a pending call")
			delete(pending, m.ToolCallID)
		}
	}
	assert.Empty(t, pending)
}
