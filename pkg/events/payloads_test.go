package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementStatusPayload(t *testing.T) {
	t.Run("round-trips through JSON", func(t *testing.T) {
		payload := EngagementStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeEngagementStatus,
				EngagementID: "eng-123",
				Timestamp:    "2026-02-10T12:00:00Z",
			},
			Status: EngagementStatusInProgress,
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded EngagementStatusPayload
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, EventTypeEngagementStatus, decoded.Type)
		assert.Equal(t, "eng-123", decoded.EngagementID)
		assert.Equal(t, EngagementStatusInProgress, decoded.Status)
		assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)

		// error_message omitted unless the engagement failed
		assert.NotContains(t, string(data), "error_message")
	})

	t.Run("carries error message for failed engagements", func(t *testing.T) {
		payload := EngagementStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeEngagementStatus,
				EngagementID: "eng-124",
			},
			Status:       EngagementStatusFailed,
			ErrorMessage: "no tasks completed (3 failed)",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"error_message":"no tasks completed (3 failed)"`)
	})
}

func TestTaskStatusPayload(t *testing.T) {
	t.Run("round-trips through JSON", func(t *testing.T) {
		payload := TaskStatusPayload{
			BasePayload: BasePayload{
				Type:         EventTypeTaskStatus,
				EngagementID: "eng-100",
				Timestamp:    "2026-02-13T10:00:00Z",
			},
			TaskKey:  "analysis-1",
			TaskType: "analysis",
			Status:   "running",
			Assignee: "agent-analysis-1",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded TaskStatusPayload
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, EventTypeTaskStatus, decoded.Type)
		assert.Equal(t, "eng-100", decoded.EngagementID)
		assert.Equal(t, "analysis-1", decoded.TaskKey)
		assert.Equal(t, "analysis", decoded.TaskType)
		assert.Equal(t, "running", decoded.Status)
		assert.Equal(t, "agent-analysis-1", decoded.Assignee)

		// error omitted while the task is healthy
		assert.NotContains(t, string(data), `"error"`)
	})

	t.Run("omits assignee while pending", func(t *testing.T) {
		payload := TaskStatusPayload{
			BasePayload: BasePayload{Type: EventTypeTaskStatus, EngagementID: "eng-100"},
			TaskKey:     "recon-1",
			TaskType:    "recon",
			Status:      "pending",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "assignee")
	})
}

func TestFindingCreatedPayload(t *testing.T) {
	payload := FindingCreatedPayload{
		BasePayload: BasePayload{
			Type:         EventTypeFindingCreated,
			EngagementID: "eng-300",
			Timestamp:    "2026-02-13T10:00:00Z",
		},
		FindingID: "fnd-1",
		Title:     "SQL injection in login form",
		Severity:  "critical",
		Phase:     "exploit",
		AgentID:   "agent-exploit-1",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded FindingCreatedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeFindingCreated, decoded.Type)
	assert.Equal(t, "fnd-1", decoded.FindingID)
	assert.Equal(t, "SQL injection in login form", decoded.Title)
	assert.Equal(t, "critical", decoded.Severity)
	assert.Equal(t, "exploit", decoded.Phase)
	assert.Equal(t, "agent-exploit-1", decoded.AgentID)
}

func TestInteractionCreatedPayload(t *testing.T) {
	payload := InteractionCreatedPayload{
		BasePayload: BasePayload{
			Type:         EventTypeInteractionCreated,
			EngagementID: "eng-400",
			Timestamp:    "2026-02-13T10:00:00Z",
		},
		InteractionID: "int-1",
		Kind:          "tool",
		AgentID:       "agent-scan-1",
		Summary:       "nmap_scan",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded InteractionCreatedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "int-1", decoded.InteractionID)
	assert.Equal(t, "tool", decoded.Kind)
	assert.Equal(t, "agent-scan-1", decoded.AgentID)
	assert.Equal(t, "nmap_scan", decoded.Summary)
}

func TestEngagementProgressPayload(t *testing.T) {
	payload := EngagementProgressPayload{
		BasePayload: BasePayload{
			Type:         EventTypeEngagementProgress,
			EngagementID: "eng-200",
			Timestamp:    "2026-02-13T10:00:00Z",
		},
		TasksTotal:    5,
		TasksPending:  1,
		TasksRunning:  2,
		TasksComplete: 2,
		ActiveAgents:  2,
		StatusText:    "2/5 tasks complete",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded EngagementProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeEngagementProgress, decoded.Type)
	assert.Equal(t, "eng-200", decoded.EngagementID)
	assert.Equal(t, 5, decoded.TasksTotal)
	assert.Equal(t, 1, decoded.TasksPending)
	assert.Equal(t, 2, decoded.TasksRunning)
	assert.Equal(t, 2, decoded.TasksComplete)
	assert.Equal(t, 0, decoded.TasksFailed)
	assert.Equal(t, "2/5 tasks complete", decoded.StatusText)
}
