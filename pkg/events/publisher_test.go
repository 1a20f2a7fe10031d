package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeTaskStatus,
				EngagementID: "eng-123",
			},
			TaskKey: "recon-1",
			Status:  "running",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTaskStatus)
		assert.Contains(t, result, "eng-123")
		assert.Contains(t, result, "recon-1")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longError := make([]byte, 8000)
		for i := range longError {
			longError[i] = 'a'
		}
		payload, _ := json.Marshal(TaskStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeTaskStatus,
				EngagementID: "eng-123",
			},
			TaskKey: "exploit-1",
			Status:  "failed",
			Error:   string(longError),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(EngagementProgressPayload{
			BasePayload: BasePayload{
				Type: EventTypeEngagementProgress,
			},
			TasksTotal: 5,
			StatusText: "2/5 tasks complete",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longDesc := make([]byte, 8000)
		for i := range longDesc {
			longDesc[i] = 'x'
		}
		payload, _ := json.Marshal(EngagementStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeEngagementStatus,
				EngagementID: "eng-789",
			},
			Status:       "failed",
			ErrorMessage: string(longDesc),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeEngagementStatus)
		assert.Contains(t, result, "eng-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed-field overhead first; the 20-byte safety margin
		// keeps the test from flipping if payload fields grow.
		base, _ := json.Marshal(TaskStatusPayload{
			BasePayload: BasePayload{Type: "t"},
		})
		fillSize := 7900 - len(base) - 20
		fill := make([]byte, fillSize)
		for i := range fill {
			fill[i] = 'b'
		}
		payload, _ := json.Marshal(TaskStatusPayload{
			BasePayload: BasePayload{Type: "t"},
			Error:       string(fill),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(FindingCreatedPayload{
			BasePayload: BasePayload{
				Type:         EventTypeFindingCreated,
				EngagementID: "eng-1",
			},
			FindingID: "fnd-1",
			Title:     "exposed admin panel",
			Severity:  "high",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "fnd-1")
		assert.Contains(t, result, "exposed admin panel")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longMsg := make([]byte, 8000)
		for i := range longMsg {
			longMsg[i] = 'x'
		}
		payload, _ := json.Marshal(EngagementStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeEngagementStatus,
				EngagementID: "eng-789",
			},
			Status:       "failed",
			ErrorMessage: string(longMsg),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "eng-789")
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
