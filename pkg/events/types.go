// Package events provides real-time event delivery over PostgreSQL
// NOTIFY/LISTEN: publishers write and notify in one transaction, a dedicated
// listener connection receives across pods, and the connection manager fans
// payloads out to in-process subscribers (the API's SSE handler among them).
//
// Events fall into two classes:
//
//   - Persistent: written to the events table and broadcast via NOTIFY in
//     the same transaction. Reconnecting clients replay them through the
//     catchup mechanism using the injected db_event_id.
//
//   - Transient: NOTIFY only, never persisted. Used for high-frequency
//     progress snapshots where a missed message is replaced by the next
//     tick anyway.
//
// Every payload embeds BasePayload so subscribers can route on "type" and
// "engagement_id" without knowing the concrete shape.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Engagement lifecycle transitions: pending, in_progress, terminal states.
	EventTypeEngagementStatus = "engagement.status"

	// Task lifecycle inside an engagement: pending, running, complete, failed.
	EventTypeTaskStatus = "task.status"

	// A worker persisted a new finding.
	EventTypeFindingCreated = "finding.created"

	// An LLM or tool interaction row was written to the timeline.
	EventTypeInteractionCreated = "interaction.created"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Team snapshot published by the team lead each monitor tick.
	EventTypeEngagementProgress = "engagement.progress"
)

// Engagement status values carried by EngagementStatusPayload.Status.
const (
	EngagementStatusPending    = "pending"
	EngagementStatusInProgress = "in_progress"
	EngagementStatusCompleted  = "completed"
	EngagementStatusFailed     = "failed"
	EngagementStatusCancelled  = "cancelled"
	EngagementStatusTimedOut   = "timed_out"
)

// GlobalEngagementsChannel carries engagement-level status events. The
// engagement list page subscribes to this for real-time updates.
const GlobalEngagementsChannel = "engagements"

// EngagementChannel returns the channel name for a specific engagement's
// events. Format: "engagement:{engagement_id}"
func EngagementChannel(engagementID string) string {
	return "engagement:" + engagementID
}
