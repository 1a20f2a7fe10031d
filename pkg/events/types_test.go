package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementChannel(t *testing.T) {
	tests := []struct {
		name         string
		engagementID string
		want         string
	}{
		{
			name:         "formats engagement channel correctly",
			engagementID: "abc-123",
			want:         "engagement:abc-123",
		},
		{
			name:         "handles UUID format",
			engagementID: "550e8400-e29b-41d4-a716-446655440000",
			want:         "engagement:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:         "handles empty string",
			engagementID: "",
			want:         "engagement:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EngagementChannel(tt.engagementID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeEngagementStatus,
		EventTypeTaskStatus,
		EventTypeFindingCreated,
		EventTypeInteractionCreated,
		EventTypeEngagementProgress,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestEngagementStatusConstants(t *testing.T) {
	statuses := []string{
		EngagementStatusPending,
		EngagementStatusInProgress,
		EngagementStatusCompleted,
		EngagementStatusFailed,
		EngagementStatusCancelled,
		EngagementStatusTimedOut,
	}

	seen := make(map[string]bool)
	for _, status := range statuses {
		assert.NotEmpty(t, status, "engagement status should not be empty")
		assert.False(t, seen[status], "duplicate engagement status: %s", status)
		seen[status] = true
	}
}

func TestGlobalEngagementsChannel(t *testing.T) {
	assert.Equal(t, "engagements", GlobalEngagementsChannel)
}
