package services

import (
	"context"
	"testing"
	"time"

	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_GetEventsAfter(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	channel := "engagement:" + eng.ID
	var ids []int
	for i := 0; i < 3; i++ {
		row, err := client.Event.Create().
			SetEngagementID(eng.ID).
			SetChannel(channel).
			SetPayload(map[string]interface{}{"seq": float64(i)}).
			Save(ctx)
		require.NoError(t, err)
		ids = append(ids, row.ID)
	}

	t.Run("returns everything after cursor zero", func(t *testing.T) {
		events, err := svc.GetEventsAfter(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, float64(0), events[0].Payload["seq"])
		assert.Equal(t, float64(2), events[2].Payload["seq"])
	})

	t.Run("cursor excludes already-seen events", func(t *testing.T) {
		events, err := svc.GetEventsAfter(ctx, channel, ids[0], 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, float64(1), events[0].Payload["seq"])
	})

	t.Run("limit caps the page", func(t *testing.T) {
		events, err := svc.GetEventsAfter(ctx, channel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := svc.GetEventsAfter(ctx, "engagement:other", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	eng := createTestEngagement(t, client.Client)
	ctx := context.Background()

	channel := "engagement:" + eng.ID
	_, err := client.Event.Create().
		SetEngagementID(eng.ID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetEngagementID(eng.ID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	count, err := svc.CleanupExpiredEvents(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := svc.GetEventsAfter(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
