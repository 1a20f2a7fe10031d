package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EngagementRetentionDays: 365,
		EventTTL:                1 * time.Hour,
		CleanupInterval:         1 * time.Hour,
	}
}

func TestService_SoftDeletesOldCompletedEngagements(t *testing.T) {
	client := testdb.NewTestClient(t)
	engagementService := services.NewEngagementService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	old, err := engagementService.Create(ctx, services.CreateEngagementInput{
		Objective: "assess host 10.0.0.5",
	})
	require.NoError(t, err)

	err = client.Engagement.UpdateOneID(old.ID).
		SetStatus(engagement.StatusCompleted).
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	recent, err := engagementService.Create(ctx, services.CreateEngagementInput{
		Objective: "assess host 10.0.0.6",
	})
	require.NoError(t, err)
	err = client.Engagement.UpdateOneID(recent.ID).
		SetStatus(engagement.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), engagementService, eventService)
	svc.runAll(ctx)

	oldRow, err := client.Engagement.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.NotNil(t, oldRow.DeletedAt, "old terminal engagement should be soft-deleted")

	recentRow, err := client.Engagement.Get(ctx, recent.ID)
	require.NoError(t, err)
	assert.Nil(t, recentRow.DeletedAt, "recent engagement must survive")
}

func TestService_LeavesRunningEngagementsAlone(t *testing.T) {
	client := testdb.NewTestClient(t)
	engagementService := services.NewEngagementService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	running, err := engagementService.Create(ctx, services.CreateEngagementInput{
		Objective: "long-running assessment",
	})
	require.NoError(t, err)
	err = client.Engagement.UpdateOneID(running.ID).
		SetStatus(engagement.StatusInProgress).
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), engagementService, eventService)
	svc.runAll(ctx)

	row, err := client.Engagement.Get(ctx, running.ID)
	require.NoError(t, err)
	assert.Nil(t, row.DeletedAt, "in-progress engagements are never soft-deleted")
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	engagementService := services.NewEngagementService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	eng, err := engagementService.Create(ctx, services.CreateEngagementInput{
		Objective: "assess host 10.0.0.5",
	})
	require.NoError(t, err)

	channel := "engagement:" + eng.ID

	// One expired event, one fresh.
	_, err = client.Event.Create().
		SetEngagementID(eng.ID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{"type": "task.status"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetEngagementID(eng.ID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{"type": "task.status"}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), engagementService, eventService)
	svc.runAll(ctx)

	events, err := eventService.GetEventsAfter(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	engagementService := services.NewEngagementService(client.Client)
	eventService := services.NewEventService(client.Client)

	cfg := retentionConfig()
	cfg.CleanupInterval = 50 * time.Millisecond

	svc := NewService(cfg, engagementService, eventService)
	svc.Start(context.Background())

	// Let at least one tick fire.
	time.Sleep(120 * time.Millisecond)
	svc.Stop()

	assert.NotPanics(t, func() { (&Service{}).Stop() })
}
