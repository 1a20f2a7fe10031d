package events

// BasePayload carries the fields every event shares. Subscribers route on
// Type and EngagementID before decoding the concrete payload.
type BasePayload struct {
	Type         string `json:"type"`
	EngagementID string `json:"engagement_id"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// EngagementStatusPayload is the payload for engagement.status events.
// Published on every engagement lifecycle transition, on both the
// engagement's own channel and the global list channel.
type EngagementStatusPayload struct {
	BasePayload
	Status       string `json:"status"`                  // pending, in_progress, completed, failed, cancelled, timed_out
	ErrorMessage string `json:"error_message,omitempty"` // set for failed and timed_out
}

// TaskStatusPayload is the payload for task.status events. Published by the
// team lead when a task is enqueued and by workers on claim and completion.
type TaskStatusPayload struct {
	BasePayload
	TaskKey  string `json:"task_key"`
	TaskType string `json:"task_type"`
	Status   string `json:"status"`             // pending, running, complete, failed
	Assignee string `json:"assignee,omitempty"` // worker agent id, empty while pending
	Error    string `json:"error,omitempty"`    // set for failed
}

// FindingCreatedPayload is the payload for finding.created events.
type FindingCreatedPayload struct {
	BasePayload
	FindingID string `json:"finding_id"`
	Title     string `json:"title"`
	Severity  string `json:"severity"` // critical, high, medium, low, info
	Phase     string `json:"phase"`    // task type that produced the finding
	AgentID   string `json:"agent_id"`
}

// InteractionCreatedPayload is the payload for interaction.created events.
// Published when an LLM or tool interaction row lands on the timeline so
// live views can append without polling.
type InteractionCreatedPayload struct {
	BasePayload
	InteractionID string `json:"interaction_id"`
	Kind          string `json:"kind"` // "llm" or "tool"
	AgentID       string `json:"agent_id"`
	Summary       string `json:"summary,omitempty"` // tool name or request summary
}

// EngagementProgressPayload is the payload for engagement.progress transient
// events: the team snapshot pushed each monitor tick. Never persisted.
type EngagementProgressPayload struct {
	BasePayload
	TasksTotal    int    `json:"tasks_total"`
	TasksPending  int    `json:"tasks_pending"`
	TasksRunning  int    `json:"tasks_running"`
	TasksComplete int    `json:"tasks_complete"`
	TasksFailed   int    `json:"tasks_failed"`
	ActiveAgents  int    `json:"active_agents"`
	StatusText    string `json:"status_text"`
}
