package services

import (
	"context"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/coordination"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	mailbox := coordination.NewMailbox(client.Client, eng.ID)
	require.NoError(t, mailbox.Send(ctx, "worker-1", "team-lead",
		models.MessageKindTaskComplete, map[string]any{"task_key": "recon-1"}))
	require.NoError(t, mailbox.Send(ctx, "worker-2", "team-lead",
		models.MessageKindError, map[string]any{"reason": "timeout"}))
	require.NoError(t, mailbox.Send(ctx, "team-lead", "worker-1",
		models.MessageKindTerminate, nil))

	t.Run("lists all in send order", func(t *testing.T) {
		rows, err := svc.List(ctx, eng.ID, MessageFilters{})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "task_complete", string(rows[0].Kind))
		assert.Equal(t, "terminate", string(rows[2].Kind))
	})

	t.Run("filters by agent on either side", func(t *testing.T) {
		rows, err := svc.List(ctx, eng.ID, MessageFilters{Agent: "worker-1"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "worker-1", rows[0].FromAgent)
		assert.Equal(t, "worker-1", rows[1].ToAgent)
	})

	t.Run("filters by kind", func(t *testing.T) {
		rows, err := svc.List(ctx, eng.ID, MessageFilters{Kind: "error"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "worker-2", rows[0].FromAgent)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := svc.List(ctx, eng.ID, MessageFilters{Kind: "gossip"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unread filter drops consumed messages", func(t *testing.T) {
		_, err := mailbox.Receive(ctx, "team-lead", true)
		require.NoError(t, err)

		rows, err := svc.List(ctx, eng.ID, MessageFilters{Unread: true})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "worker-1", rows[0].ToAgent)
	})
}

func TestMessageService_CountByKind(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	mailbox := coordination.NewMailbox(client.Client, eng.ID)
	require.NoError(t, mailbox.Send(ctx, "worker-1", "team-lead", models.MessageKindTaskComplete, nil))
	require.NoError(t, mailbox.Send(ctx, "worker-2", "team-lead", models.MessageKindTaskComplete, nil))
	require.NoError(t, mailbox.Send(ctx, "worker-3", "team-lead", models.MessageKindCriticalFinding, nil))

	counts, err := svc.CountByKind(ctx, eng.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"task_complete":    2,
		"critical_finding": 1,
	}, counts)
}
