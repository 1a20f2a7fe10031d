package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChannelPayloads_ContainEngagementID is a contract test between the
// publisher and event consumers.
//
// Subscribers of the global engagements channel receive payloads from every
// engagement interleaved, and SSE clients route incoming events by inspecting
// `engagement_id` in the JSON payload. ANY payload that is broadcast MUST
// include a non-empty `engagement_id` field — otherwise consumers silently
// drop it.
//
// All payload structs embed BasePayload which guarantees engagement_id is
// present. This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.EngagementID
func TestChannelPayloads_ContainEngagementID(t *testing.T) {
	const testEngagementID = "eng-contract-test"

	// Every payload type the publisher emits. If you add a new payload,
	// add it here — the test will fail if engagement_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "EngagementStatusPayload",
			payload: EngagementStatusPayload{
				BasePayload: BasePayload{
					Type:         EventTypeEngagementStatus,
					EngagementID: testEngagementID,
					Timestamp:    "2026-01-01T00:00:00Z",
				},
				Status: EngagementStatusInProgress,
			},
		},
		{
			name: "TaskStatusPayload",
			payload: TaskStatusPayload{
				BasePayload: BasePayload{
					Type:         EventTypeTaskStatus,
					EngagementID: testEngagementID,
					Timestamp:    "2026-01-01T00:00:00Z",
				},
				TaskKey:  "recon-1",
				TaskType: "recon",
				Status:   "running",
			},
		},
		{
			name: "FindingCreatedPayload",
			payload: FindingCreatedPayload{
				BasePayload: BasePayload{
					Type:         EventTypeFindingCreated,
					EngagementID: testEngagementID,
					Timestamp:    "2026-01-01T00:00:00Z",
				},
				FindingID: "fnd-1",
				Title:     "open S3 bucket",
				Severity:  "high",
				Phase:     "recon",
				AgentID:   "agent-recon-1",
			},
		},
		{
			name: "InteractionCreatedPayload",
			payload: InteractionCreatedPayload{
				BasePayload: BasePayload{
					Type:         EventTypeInteractionCreated,
					EngagementID: testEngagementID,
					Timestamp:    "2026-01-01T00:00:00Z",
				},
				InteractionID: "int-1",
				Kind:          "llm",
				AgentID:       "agent-recon-1",
			},
		},
		{
			name: "EngagementProgressPayload",
			payload: EngagementProgressPayload{
				BasePayload: BasePayload{
					Type:         EventTypeEngagementProgress,
					EngagementID: testEngagementID,
					Timestamp:    "2026-01-01T00:00:00Z",
				},
				TasksTotal: 4,
				StatusText: "1/4 tasks complete",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))

			engagementID, ok := decoded["engagement_id"].(string)
			require.True(t, ok, "payload must serialize an engagement_id field")
			assert.Equal(t, testEngagementID, engagementID,
				"engagement_id must survive marshaling — consumers route on it")

			eventType, ok := decoded["type"].(string)
			require.True(t, ok, "payload must serialize a type field")
			assert.NotEmpty(t, eventType)
		})
	}
}

// Truncated NOTIFY envelopes must honor the same contract: routing fields
// survive even when the body is dropped.
func TestTruncatedEnvelope_ContainsEngagementID(t *testing.T) {
	oversized := make([]byte, 8001)
	for i := range oversized {
		oversized[i] = 'z'
	}
	payload, err := json.Marshal(EngagementStatusPayload{
		BasePayload: BasePayload{
			Type:         EventTypeEngagementStatus,
			EngagementID: "eng-contract-test",
		},
		Status:       EngagementStatusFailed,
		ErrorMessage: string(oversized),
	})
	require.NoError(t, err)

	envelope, err := truncateIfNeeded(string(payload))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(envelope), &decoded))
	assert.Equal(t, "eng-contract-test", decoded["engagement_id"])
	assert.Equal(t, EventTypeEngagementStatus, decoded["type"])
	assert.Equal(t, true, decoded["truncated"])
}
