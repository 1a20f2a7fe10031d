package services

import (
	"context"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/llm"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineService_RecordLLMInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTimelineService(client.Client, newTestMasker(t))
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	t.Run("persists a full record", func(t *testing.T) {
		err := svc.RecordLLMInteraction(ctx, &agent.LLMRecord{
			EngagementID:    eng.ID,
			AgentID:         "worker-1",
			Provider:        "primary",
			Model:           "gpt-4o",
			Iteration:       2,
			RequestSummary:  "system(1200 chars), user(80 chars)",
			ResponseContent: "scanning the target now",
			ToolCallCount:   1,
			Usage:           llm.Usage{PromptTokens: 900, CompletionTokens: 40, TotalTokens: 940},
			Duration:        1200 * time.Millisecond,
		})
		require.NoError(t, err)

		rows, err := client.LLMInteraction.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "primary", rows[0].Provider)
		require.NotNil(t, rows[0].Iteration)
		assert.Equal(t, 2, *rows[0].Iteration)
		assert.Equal(t, int64(1200), rows[0].DurationMs)
		require.NotNil(t, rows[0].TotalTokens)
		assert.Equal(t, 940, *rows[0].TotalTokens)
	})

	t.Run("masks secrets in response content", func(t *testing.T) {
		err := svc.RecordLLMInteraction(ctx, &agent.LLMRecord{
			EngagementID:    eng.ID,
			AgentID:         "worker-1",
			ResponseContent: `found credentials: api_key="sk-abcdef1234567890abcdef"`,
		})
		require.NoError(t, err)

		rows, err := client.LLMInteraction.Query().All(ctx)
		require.NoError(t, err)
		last := rows[len(rows)-1]
		require.NotNil(t, last.ResponseContent)
		assert.NotContains(t, *last.ResponseContent, "sk-abcdef1234567890abcdef")
	})

	t.Run("validates identity fields", func(t *testing.T) {
		err := svc.RecordLLMInteraction(ctx, &agent.LLMRecord{AgentID: "worker-1"})
		assert.True(t, IsValidationError(err))
		err = svc.RecordLLMInteraction(ctx, &agent.LLMRecord{EngagementID: eng.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing engagement maps to not found", func(t *testing.T) {
		err := svc.RecordLLMInteraction(ctx, &agent.LLMRecord{
			EngagementID: "ghost", AgentID: "worker-1",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTimelineService_RecordToolInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTimelineService(client.Client, newTestMasker(t))
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	err := svc.RecordToolInteraction(ctx, &agent.ToolRecord{
		EngagementID: eng.ID,
		AgentID:      "worker-1",
		ServerName:   "nmap",
		ToolName:     "nmap_scan",
		Arguments:    map[string]any{"target": "10.0.0.5"},
		Success:      true,
		Output:       "22/tcp open ssh",
		Risk:         "medium",
		Duration:     3 * time.Second,
	})
	require.NoError(t, err)

	rows, err := client.ToolInteraction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "nmap_scan", rows[0].ToolName)
	assert.True(t, rows[0].Success)
	assert.Equal(t, "medium", rows[0].Risk)
}

// capturingPublisher records interaction.created payloads for assertions.
type capturingPublisher struct {
	payloads []events.InteractionCreatedPayload
}

func (p *capturingPublisher) PublishInteractionCreated(_ context.Context, _ string, payload events.InteractionCreatedPayload) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestTimelineService_PublishesInteractionEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTimelineService(client.Client, newTestMasker(t))
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	pub := &capturingPublisher{}
	svc.SetEventPublisher(pub)

	require.NoError(t, svc.RecordToolInteraction(ctx, &agent.ToolRecord{
		EngagementID: eng.ID,
		AgentID:      "worker-1",
		ServerName:   "nmap",
		ToolName:     "nmap_scan",
		Success:      true,
	}))

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "tool", pub.payloads[0].Kind)
	assert.Equal(t, "nmap/nmap_scan", pub.payloads[0].Summary)
	assert.Equal(t, eng.ID, pub.payloads[0].EngagementID)
}

func TestTimelineService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTimelineService(client.Client, newTestMasker(t))
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	require.NoError(t, svc.RecordLLMInteraction(ctx, &agent.LLMRecord{
		EngagementID: eng.ID, AgentID: "worker-1", RequestSummary: "turn 1",
	}))
	require.NoError(t, svc.RecordToolInteraction(ctx, &agent.ToolRecord{
		EngagementID: eng.ID, AgentID: "worker-1", ToolName: "nmap_scan", Success: true,
	}))
	require.NoError(t, svc.RecordLLMInteraction(ctx, &agent.LLMRecord{
		EngagementID: eng.ID, AgentID: "worker-2", RequestSummary: "turn 1",
	}))

	t.Run("merges both streams oldest first", func(t *testing.T) {
		entries, err := svc.List(ctx, eng.ID, "")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].At.Before(entries[i-1].At))
		}
	})

	t.Run("filters by agent", func(t *testing.T) {
		entries, err := svc.List(ctx, eng.ID, "worker-2")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "llm", entries[0].Kind)
	})

	t.Run("requires engagement id", func(t *testing.T) {
		_, err := svc.List(ctx, "", "")
		assert.True(t, IsValidationError(err))
	})
}
