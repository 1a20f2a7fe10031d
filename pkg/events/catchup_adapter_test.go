package events

import (
	"context"
	"errors"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventQuerier struct {
	rows []*ent.Event
	err  error
}

func (s *stubEventQuerier) GetEventsAfter(_ context.Context, _ string, _ int, limit int) ([]*ent.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.rows) > limit {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func TestEventServiceAdapter(t *testing.T) {
	t.Run("maps rows to catchup events", func(t *testing.T) {
		adapter := NewEventServiceAdapter(&stubEventQuerier{rows: []*ent.Event{
			{ID: 10, Payload: map[string]any{"type": EventTypeTaskStatus, "task_key": "recon-1"}},
			{ID: 20, Payload: map[string]any{"type": EventTypeFindingCreated, "finding_id": "fnd-1"}},
		}})

		got, err := adapter.GetCatchupEvents(context.Background(), "engagement:eng-1", 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 10, got[0].ID)
		assert.Equal(t, "recon-1", got[0].Payload["task_key"])
		assert.Equal(t, 20, got[1].ID)
		assert.Equal(t, EventTypeFindingCreated, got[1].Payload["type"])
	})

	t.Run("honors the limit", func(t *testing.T) {
		adapter := NewEventServiceAdapter(&stubEventQuerier{rows: []*ent.Event{
			{ID: 1, Payload: map[string]any{}},
			{ID: 2, Payload: map[string]any{}},
			{ID: 3, Payload: map[string]any{}},
		}})

		got, err := adapter.GetCatchupEvents(context.Background(), "engagement:eng-1", 0, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[1].ID)
	})

	t.Run("propagates query errors", func(t *testing.T) {
		adapter := NewEventServiceAdapter(&stubEventQuerier{err: errors.New("database connection lost")})

		got, err := adapter.GetCatchupEvents(context.Background(), "engagement:eng-1", 0, 10)
		assert.Nil(t, got)
		assert.ErrorContains(t, err, "database connection lost")
	})

	t.Run("empty history", func(t *testing.T) {
		adapter := NewEventServiceAdapter(&stubEventQuerier{})

		got, err := adapter.GetCatchupEvents(context.Background(), "engagement:eng-1", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
