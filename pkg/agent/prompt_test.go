package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("nil context yields the base rules only", func(t *testing.T) {
		prompt := buildSystemPrompt(nil)
		assert.Contains(t, prompt, "RedClaw")
		assert.Contains(t, prompt, "authorized engagement")
		assert.NotContains(t, prompt, "Engagement scope")
		assert.NotContains(t, prompt, "teammates")
	})

	t.Run("scope is rendered", func(t *testing.T) {
		prompt := buildSystemPrompt(&TaskContext{Scope: &models.Scope{
			IncludeCIDRs:   []string{"10.0.0.0/24", "192.168.1.0/24"},
			IncludeDomains: []string{"corp.example.com"},
			ExcludeCIDRs:   []string{"10.0.0.128/25"},
			ExcludeDomains: []string{"prod.example.com"},
			RateLimit:      30,
		}})

		assert.Contains(t, prompt, "In-scope networks: 10.0.0.0/24, 192.168.1.0/24")
		assert.Contains(t, prompt, "In-scope domains: corp.example.com")
		assert.Contains(t, prompt, "Excluded networks (never touch): 10.0.0.128/25")
		assert.Contains(t, prompt, "Excluded domains (never touch): prod.example.com")
		assert.Contains(t, prompt, "at most 30 commands per minute")
	})

	t.Run("task type hints", func(t *testing.T) {
		hints := map[models.TaskType]string{
			models.TaskTypeRecon:      "Reconnaissance task",
			models.TaskTypeScan:       "Scanning task",
			models.TaskTypeExploit:    "Exploitation task",
			models.TaskTypeAnalysis:   "Analysis task",
			models.TaskTypeValidation: "Validation task",
		}
		for taskType, want := range hints {
			prompt := buildSystemPrompt(&TaskContext{TaskType: taskType})
			assert.Contains(t, prompt, want, "task type %s", taskType)
		}

		// Generic and unknown types add no hint.
		assert.NotContains(t, buildSystemPrompt(&TaskContext{TaskType: models.TaskTypeGeneric}), "task:")
		assert.NotContains(t, buildSystemPrompt(&TaskContext{TaskType: "warp-drive"}), "task:")
	})

	t.Run("peer findings are listed", func(t *testing.T) {
		prompt := buildSystemPrompt(&TaskContext{PeerFindings: []string{
			"Open SSH on 10.0.0.5 (high)",
			"Default credentials on admin panel (critical)",
		}})

		assert.Contains(t, prompt, "Findings reported by teammates so far:")
		assert.Contains(t, prompt, "- Open SSH on 10.0.0.5 (high)")
		assert.Contains(t, prompt, "- Default credentials on admin panel (critical)")

		empty := buildSystemPrompt(&TaskContext{})
		assert.NotContains(t, empty, "teammates")
	})
}

func TestRequestSummary(t *testing.T) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: strings.Repeat("s", 120)},
		{Role: llm.RoleUser, Content: "scan the host"},
		{Role: llm.RoleAssistant, Content: "running", ToolCalls: []llm.ToolCall{
			{ID: "c1", Name: "port_scan"},
			{ID: "c2", Name: "http_probe"},
		}},
		{Role: llm.RoleTool, Content: strings.Repeat("o", 50)},
	}

	summary := requestSummary(messages)

	assert.Equal(t, "4 messages: system(120), user(13), assistant(7, 2 tool calls), tool(50)", summary)
	assert.NotContains(t, summary, "scan the host", "bodies stay out of summaries")
}
