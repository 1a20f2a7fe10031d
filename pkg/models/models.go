// Package models contains the shared domain vocabulary: message kinds,
// finding severities, task types, and the engagement scope record.
package models

// MessageKind enumerates the coordination vocabulary carried by mailbox
// messages between agents and the team lead.
type MessageKind string

const (
	MessageKindTaskComplete      MessageKind = "task_complete"
	MessageKindValidationRequest MessageKind = "validation_request"
	MessageKindIntervention      MessageKind = "intervention"
	MessageKindBroadcast         MessageKind = "broadcast"
	MessageKindPeerRequest       MessageKind = "peer_request"
	MessageKindPeerResponse      MessageKind = "peer_response"
	MessageKindTerminate         MessageKind = "terminate"
	MessageKindError             MessageKind = "error"
	MessageKindCriticalFinding   MessageKind = "critical_finding"
)

// IsValid returns true if the message kind is a known value.
func (k MessageKind) IsValid() bool {
	switch k {
	case MessageKindTaskComplete, MessageKindValidationRequest, MessageKindIntervention,
		MessageKindBroadcast, MessageKindPeerRequest, MessageKindPeerResponse,
		MessageKindTerminate, MessageKindError, MessageKindCriticalFinding:
		return true
	}
	return false
}

// Severity enumerates finding severities, ordered from most to least severe.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	}
	return false
}

// Rank returns a sortable weight: critical=0 ... info=4. Unknown values sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	case SeverityInfo:
		return 4
	}
	return 5
}

// TaskType classifies decomposed tasks; workers use it to pick tool hints.
type TaskType string

const (
	TaskTypeRecon      TaskType = "recon"
	TaskTypeScan       TaskType = "scan"
	TaskTypeExploit    TaskType = "exploit"
	TaskTypeAnalysis   TaskType = "analysis"
	TaskTypeValidation TaskType = "validation"
	TaskTypeGeneric    TaskType = "generic"
)

// IsValid returns true if the task type is a known value.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeRecon, TaskTypeScan, TaskTypeExploit, TaskTypeAnalysis,
		TaskTypeValidation, TaskTypeGeneric:
		return true
	}
	return false
}
