package services

import (
	"context"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/agent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServices_EngagementLifecycle walks an engagement through the service
// layer the way the API and executor do together: create, record agent
// activity, report findings, exchange messages, then read everything back
// and delete.
func TestServices_EngagementLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	engagements := NewEngagementService(client.Client)
	findings := NewFindingService(client.Client)
	timeline := NewTimelineService(client.Client, newTestMasker(t))
	messages := NewMessageService(client.Client)

	eng, err := engagements.Create(ctx, CreateEngagementInput{
		Objective:     "assess the staging subnet for exposed services",
		ObjectiveType: "network",
		Scope: map[string]interface{}{
			"include_cidrs": []interface{}{"10.20.0.0/24"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusPending, eng.Status)

	// Worker activity: one LLM turn driving one tool dispatch.
	require.NoError(t, timeline.RecordLLMInteraction(ctx, &agent.LLMRecord{
		EngagementID:   eng.ID,
		AgentID:        "recon-1",
		Provider:       "primary",
		RequestSummary: "system(900 chars), user(120 chars)",
		ToolCallCount:  1,
	}))
	require.NoError(t, timeline.RecordToolInteraction(ctx, &agent.ToolRecord{
		EngagementID: eng.ID,
		AgentID:      "recon-1",
		ServerName:   "nmap",
		ToolName:     "nmap_scan",
		Success:      true,
		Output:       "22/tcp open ssh\n80/tcp open http",
		Duration:     2 * time.Second,
	}))

	// The worker reports a finding and messages the team lead.
	_, err = findings.Add(ctx, eng.ID, FindingInput{
		Phase:       "recon",
		Title:       "SSH exposed on staging subnet",
		Severity:    models.SeverityMedium,
		Description: "10.20.0.12 accepts SSH from outside the bastion",
		Evidence:    []string{"22/tcp open ssh"},
		AgentID:     "recon-1",
	})
	require.NoError(t, err)

	mailbox := coordination.NewMailbox(client.Client, eng.ID)
	require.NoError(t, mailbox.Send(ctx, "recon-1", "team-lead",
		models.MessageKindTaskComplete, map[string]any{"task": "recon-subnet"}))

	// Read paths the API serves.
	entries, err := timeline.List(ctx, eng.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "llm", entries[0].Kind)
	assert.Equal(t, "tool", entries[1].Kind)

	bySeverity, err := findings.CountBySeverity(ctx, eng.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bySeverity["medium"])

	msgs, err := messages.List(ctx, eng.ID, MessageFilters{Agent: "team-lead"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "recon-1", msgs[0].FromAgent)

	stats, err := engagements.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	// Cancel the pending engagement, then soft delete it.
	require.NoError(t, engagements.Cancel(ctx, eng.ID))
	got, err := engagements.Get(ctx, eng.ID)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusCancelled, got.Status)

	require.NoError(t, engagements.Delete(ctx, eng.ID))
	listed, err := engagements.List(ctx, models.EngagementFilters{})
	require.NoError(t, err)
	assert.Empty(t, listed.Engagements)

	// The timeline rows survive the soft delete for audit reads.
	entries, err = timeline.List(ctx, eng.ID, "")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
