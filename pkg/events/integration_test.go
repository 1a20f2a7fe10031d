package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/events"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/services"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *events.EventPublisher
	eventService *services.EventService
	manager      *events.ConnectionManager
	listener     *events.NotifyListener
	engagementID string // Pre-created Engagement (satisfies FK on events)
	channel      string // engagement:<engagementID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create Engagement required by FK on events table
	engagementID := util.CreateTestEngagement(t, dbClient.Client, "events integration objective")
	channel := events.EngagementChannel(engagementID)

	// Real components
	publisher := events.NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	manager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService))

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := events.NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		engagementID: engagementID,
		channel:      channel,
	}
}

// subscribe registers an in-process subscriber on the env's channel. LISTEN
// completes before Subscribe returns, so events published afterwards are
// guaranteed to be delivered.
func (env *streamingTestEnv) subscribe(t *testing.T, channel string) *events.Subscription {
	t.Helper()
	sub, err := env.manager.Subscribe(context.Background(), channel, 64)
	require.NoError(t, err)
	t.Cleanup(func() { env.manager.Unsubscribe(sub) })
	return sub
}

// readEventTimeout decodes the next event from a subscription as JSON.
func readEventTimeout(t *testing.T, sub *events.Subscription, timeout time.Duration) map[string]interface{} {
	t.Helper()
	select {
	case data, ok := <-sub.C:
		require.True(t, ok, "subscription closed while waiting for event")
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (task status)
	err := env.publisher.PublishTaskStatus(ctx, env.engagementID, events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeTaskStatus,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TaskKey:  "recon-1",
		TaskType: "recon",
		Status:   "running",
		Assignee: "agent-recon-1",
	})
	require.NoError(t, err)

	// Publish second event (finding created)
	err = env.publisher.PublishFindingCreated(ctx, env.engagementID, events.FindingCreatedPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeFindingCreated,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		FindingID: "fnd-1",
		Title:     "anonymous FTP login",
		Severity:  "medium",
		Phase:     "recon",
		AgentID:   "agent-recon-1",
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	rows, err := env.eventService.GetEventsAfter(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Verify order and content
	assert.Equal(t, env.engagementID, rows[0].EngagementID)
	assert.Equal(t, env.channel, rows[0].Channel)
	assert.Equal(t, events.EventTypeTaskStatus, rows[0].Payload["type"])
	assert.Equal(t, "recon-1", rows[0].Payload["task_key"])

	assert.Equal(t, events.EventTypeFindingCreated, rows[1].Payload["type"])
	assert.Equal(t, "anonymous FTP login", rows[1].Payload["title"])

	// IDs should be incrementing
	assert.Greater(t, rows[1].ID, rows[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (progress snapshot)
	err := env.publisher.PublishEngagementProgress(ctx, events.EngagementProgressPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeEngagementProgress,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TasksTotal: 4,
		StatusText: "0/4 tasks complete",
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events on either channel
	rows, err := env.eventService.GetEventsAfter(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, rows, "transient events should not be persisted in DB")

	rows, err = env.eventService.GetEventsAfter(ctx, events.GlobalEngagementsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIntegration_EndToEnd_PublishToSubscriber(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe in-process; LISTEN completes before Subscribe returns.
	sub := env.subscribe(t, env.channel)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishTaskStatus(ctx, env.engagementID, events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeTaskStatus,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TaskKey:  "exploit-1",
		TaskType: "exploit",
		Status:   "complete",
		Assignee: "agent-exploit-1",
	})
	require.NoError(t, err)

	// The event should arrive via pg_notify → listener → manager → subscription
	msg := readEventTimeout(t, sub, 5*time.Second)
	assert.Equal(t, events.EventTypeTaskStatus, msg["type"])
	assert.Equal(t, "exploit-1", msg["task_key"])
	assert.Equal(t, env.engagementID, msg["engagement_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_GlobalChannelDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// The engagement list page subscribes to the global channel and sees
	// status transitions and progress ticks from every engagement.
	sub := env.subscribe(t, events.GlobalEngagementsChannel)

	err := env.publisher.PublishEngagementStatus(ctx, env.engagementID, events.EngagementStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeEngagementStatus,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		Status: events.EngagementStatusInProgress,
	})
	require.NoError(t, err)

	msg := readEventTimeout(t, sub, 5*time.Second)
	assert.Equal(t, events.EventTypeEngagementStatus, msg["type"])
	assert.Equal(t, env.engagementID, msg["engagement_id"])
	assert.Equal(t, events.EngagementStatusInProgress, msg["status"])
	// The global copy is transient — no db_event_id.
	assert.Nil(t, msg["db_event_id"])

	err = env.publisher.PublishEngagementProgress(ctx, events.EngagementProgressPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeEngagementProgress,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TasksTotal:    4,
		TasksRunning:  2,
		TasksComplete: 1,
		ActiveAgents:  2,
		StatusText:    "1/4 tasks complete",
	})
	require.NoError(t, err)

	msg = readEventTimeout(t, sub, 5*time.Second)
	assert.Equal(t, events.EventTypeEngagementProgress, msg["type"])
	assert.Equal(t, "1/4 tasks complete", msg["status_text"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishTaskStatus(ctx, env.engagementID, events.TaskStatusPayload{
			BasePayload: events.BasePayload{
				Type:         events.EventTypeTaskStatus,
				EngagementID: env.engagementID,
				Timestamp:    time.Now().Format(time.RFC3339Nano),
			},
			TaskKey:  "recon-1",
			TaskType: "recon",
			Status:   []string{"pending", "running", "complete"}[i-1],
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allRows, err := env.eventService.GetEventsAfter(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allRows, 3)
	firstEventID := allRows[0].ID

	// Catchup from zero replays everything with db_event_id injected.
	replay, hasMore, err := env.manager.Catchup(ctx, env.channel, 0)
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, replay, 3)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(replay[0], &first))
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, float64(firstEventID), first["db_event_id"])

	// Catchup from the first event's ID returns only the later two.
	replay, hasMore, err = env.manager.Catchup(ctx, env.channel, firstEventID)
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, replay, 2)

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal(replay[0], &second))
	assert.Equal(t, "running", second["status"])

	// A subscriber attached after the catchup still gets live events.
	sub := env.subscribe(t, env.channel)
	err = env.publisher.PublishTaskStatus(ctx, env.engagementID, events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeTaskStatus,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TaskKey:  "scan-1",
		TaskType: "scan",
		Status:   "pending",
	})
	require.NoError(t, err)

	msg := readEventTimeout(t, sub, 5*time.Second)
	assert.Equal(t, "scan-1", msg["task_key"])
}

func TestIntegration_OversizedPayloadTruncatedOnWire(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	sub := env.subscribe(t, env.channel)

	// Build a payload beyond the 8000-byte NOTIFY limit.
	longError := make([]byte, 9000)
	for i := range longError {
		longError[i] = 'e'
	}
	err := env.publisher.PublishTaskStatus(ctx, env.engagementID, events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:         events.EventTypeTaskStatus,
			EngagementID: env.engagementID,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		},
		TaskKey:  "exploit-1",
		TaskType: "exploit",
		Status:   "failed",
		Error:    string(longError),
	})
	require.NoError(t, err)

	// The wire copy is the truncation envelope...
	msg := readEventTimeout(t, sub, 5*time.Second)
	assert.Equal(t, events.EventTypeTaskStatus, msg["type"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotNil(t, msg["db_event_id"])

	// ...while the DB row retains the full payload for catchup.
	rows, err := env.eventService.GetEventsAfter(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, string(longError), rows[0].Payload["error"])
}
