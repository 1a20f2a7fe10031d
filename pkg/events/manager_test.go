package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatchupQuerier is a test double for the catchup query. It records the
// arguments of the last call and honors the limit the manager passes.
type stubCatchupQuerier struct {
	events []CatchupEvent
	err    error

	gotChannel string
	gotSinceID int
	gotLimit   int
}

func (s *stubCatchupQuerier) GetCatchupEvents(_ context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	s.gotChannel = channel
	s.gotSinceID = sinceID
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if len(s.events) > limit {
		return s.events[:limit], nil
	}
	return s.events, nil
}

// receiveWithTimeout reads one event from the subscription or fails the test.
func receiveWithTimeout(t *testing.T, sub *Subscription) []byte {
	t.Helper()
	select {
	case event, ok := <-sub.C:
		require.True(t, ok, "subscription channel closed unexpectedly")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestConnectionManager_SubscribeAndBroadcast(t *testing.T) {
	// No listener configured — pure in-process fan-out, as in tests and
	// single-process deployments before Start.
	manager := NewConnectionManager(nil)

	sub, err := manager.Subscribe(context.Background(), "engagement:eng-1", 8)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "engagement:eng-1", sub.Channel)
	assert.NotEmpty(t, sub.ID)

	manager.Broadcast("engagement:eng-1", []byte(`{"type":"task.status"}`))

	event := receiveWithTimeout(t, sub)
	assert.JSONEq(t, `{"type":"task.status"}`, string(event))

	manager.Unsubscribe(sub)
}

func TestConnectionManager_MultipleSubscribers(t *testing.T) {
	manager := NewConnectionManager(nil)

	sub1, err := manager.Subscribe(context.Background(), "engagement:eng-1", 8)
	require.NoError(t, err)
	sub2, err := manager.Subscribe(context.Background(), "engagement:eng-1", 8)
	require.NoError(t, err)
	other, err := manager.Subscribe(context.Background(), "engagement:eng-2", 8)
	require.NoError(t, err)

	assert.Equal(t, 2, manager.subscriberCount("engagement:eng-1"))
	assert.Equal(t, 3, manager.ActiveSubscribers())

	manager.Broadcast("engagement:eng-1", []byte(`{"n":1}`))

	assert.JSONEq(t, `{"n":1}`, string(receiveWithTimeout(t, sub1)))
	assert.JSONEq(t, `{"n":1}`, string(receiveWithTimeout(t, sub2)))

	// The other channel's subscriber must not see the event.
	select {
	case event := <-other.C:
		t.Fatalf("subscriber on another channel received event: %s", event)
	case <-time.After(50 * time.Millisecond):
	}

	manager.Unsubscribe(sub1)
	manager.Unsubscribe(sub2)
	manager.Unsubscribe(other)
	assert.Equal(t, 0, manager.ActiveSubscribers())
}

func TestConnectionManager_UnsubscribeClosesChannel(t *testing.T) {
	manager := NewConnectionManager(nil)

	sub, err := manager.Subscribe(context.Background(), "engagements", 8)
	require.NoError(t, err)
	require.Equal(t, 1, manager.subscriberCount("engagements"))

	manager.Unsubscribe(sub)

	_, ok := <-sub.C
	assert.False(t, ok, "channel should be closed after Unsubscribe")
	assert.Equal(t, 0, manager.subscriberCount("engagements"))

	// Broadcast to a drained channel must not panic.
	manager.Broadcast("engagements", []byte(`{}`))
}

func TestConnectionManager_UnsubscribeIsIdempotent(t *testing.T) {
	manager := NewConnectionManager(nil)

	sub, err := manager.Subscribe(context.Background(), "engagements", 8)
	require.NoError(t, err)

	manager.Unsubscribe(sub)
	// Second call must not double-close the feed.
	manager.Unsubscribe(sub)
	// Nil is tolerated.
	manager.Unsubscribe(nil)
}

func TestConnectionManager_DropsWhenBufferFull(t *testing.T) {
	manager := NewConnectionManager(nil)

	sub, err := manager.Subscribe(context.Background(), "engagement:eng-1", 2)
	require.NoError(t, err)
	defer manager.Unsubscribe(sub)

	for i := 0; i < 5; i++ {
		manager.Broadcast("engagement:eng-1", []byte(fmt.Sprintf(`{"n":%d}`, i)))
	}

	// Buffer held the first two; the rest were dropped, not blocked on.
	assert.JSONEq(t, `{"n":0}`, string(receiveWithTimeout(t, sub)))
	assert.JSONEq(t, `{"n":1}`, string(receiveWithTimeout(t, sub)))
	assert.Equal(t, int64(3), sub.Dropped())
}

func TestConnectionManager_SubscribeDefaultBuffer(t *testing.T) {
	manager := NewConnectionManager(nil)

	sub, err := manager.Subscribe(context.Background(), "engagements", 0)
	require.NoError(t, err)
	defer manager.Unsubscribe(sub)

	assert.Equal(t, 64, cap(sub.ch))
}

func TestConnectionManager_Catchup(t *testing.T) {
	t.Run("returns events with db_event_id injected", func(t *testing.T) {
		querier := &stubCatchupQuerier{
			events: []CatchupEvent{
				{ID: 11, Payload: map[string]interface{}{"type": EventTypeTaskStatus, "task_key": "recon-1"}},
				{ID: 12, Payload: map[string]interface{}{"type": EventTypeFindingCreated, "finding_id": "fnd-1"}},
			},
		}
		manager := NewConnectionManager(querier)

		events, hasMore, err := manager.Catchup(context.Background(), "engagement:eng-1", 10)
		require.NoError(t, err)
		assert.False(t, hasMore)
		require.Len(t, events, 2)

		assert.Equal(t, "engagement:eng-1", querier.gotChannel)
		assert.Equal(t, 10, querier.gotSinceID)
		assert.Equal(t, catchupLimit+1, querier.gotLimit, "must over-fetch by one to detect overflow")

		var first map[string]interface{}
		require.NoError(t, json.Unmarshal(events[0], &first))
		assert.Equal(t, float64(11), first["db_event_id"])
		assert.Equal(t, "recon-1", first["task_key"])

		var second map[string]interface{}
		require.NoError(t, json.Unmarshal(events[1], &second))
		assert.Equal(t, float64(12), second["db_event_id"])
	})

	t.Run("reports overflow when more than the limit was missed", func(t *testing.T) {
		overflowing := make([]CatchupEvent, catchupLimit+1)
		for i := range overflowing {
			overflowing[i] = CatchupEvent{
				ID:      i + 1,
				Payload: map[string]interface{}{"type": EventTypeTaskStatus},
			}
		}
		manager := NewConnectionManager(&stubCatchupQuerier{events: overflowing})

		events, hasMore, err := manager.Catchup(context.Background(), "engagement:eng-1", 0)
		require.NoError(t, err)
		assert.True(t, hasMore, "client should be told to reload over REST")
		assert.Len(t, events, catchupLimit)
	})

	t.Run("propagates query errors", func(t *testing.T) {
		manager := NewConnectionManager(&stubCatchupQuerier{err: errors.New("db gone")})

		_, _, err := manager.Catchup(context.Background(), "engagement:eng-1", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catchup query failed")
	})

	t.Run("nil querier yields empty catchup", func(t *testing.T) {
		manager := NewConnectionManager(nil)

		events, hasMore, err := manager.Catchup(context.Background(), "engagement:eng-1", 0)
		require.NoError(t, err)
		assert.False(t, hasMore)
		assert.Empty(t, events)
	})
}

func TestConnectionManager_BroadcastConcurrentWithUnsubscribe(t *testing.T) {
	manager := NewConnectionManager(nil)

	sub, err := manager.Subscribe(context.Background(), "engagement:eng-1", 1)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			manager.Broadcast("engagement:eng-1", []byte(`{}`))
		}
	}()

	manager.Unsubscribe(sub)
	<-done
	// Nothing to assert — the race detector flags unsafe interleavings.
}
