// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
)

// Engagement is the model entity for the Engagement schema.
type Engagement struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Natural-language objective (e.g. 'assess host 10.0.0.5')
	Objective string `json:"objective,omitempty"`
	// Objective classification (network, web, full, ...)
	ObjectiveType string `json:"objective_type,omitempty"`
	// Scope snapshot: include/exclude CIDRs and domains, rate limit, blocked commands, approval phases
	Scope map[string]interface{} `json:"scope,omitempty"`
	// Status holds the value of the "status" field.
	Status engagement.Status `json:"status,omitempty"`
	// When the engagement was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed it (pending -> in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Synthesized report from completed task results
	FinalReport *string `json:"final_report,omitempty"`
	// Brief summary of the engagement outcome
	ExecutiveSummary *string `json:"executive_summary,omitempty"`
	// Task counts, findings by severity, LLM/tool call totals
	Stats map[string]interface{} `json:"stats,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Heartbeat for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EngagementQuery when eager-loading is set.
	Edges        EngagementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EngagementEdges holds the relations/edges for other nodes in the graph.
type EngagementEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// AgentMessages holds the value of the agent_messages edge.
	AgentMessages []*AgentMessage `json:"agent_messages,omitempty"`
	// Locks holds the value of the locks edge.
	Locks []*ResourceLock `json:"locks,omitempty"`
	// Findings holds the value of the findings edge.
	Findings []*Finding `json:"findings,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// ToolInteractions holds the value of the tool_interactions edge.
	ToolInteractions []*ToolInteraction `json:"tool_interactions,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// AgentMessagesOrErr returns the AgentMessages value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) AgentMessagesOrErr() ([]*AgentMessage, error) {
	if e.loadedTypes[1] {
		return e.AgentMessages, nil
	}
	return nil, &NotLoadedError{edge: "agent_messages"}
}

// LocksOrErr returns the Locks value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) LocksOrErr() ([]*ResourceLock, error) {
	if e.loadedTypes[2] {
		return e.Locks, nil
	}
	return nil, &NotLoadedError{edge: "locks"}
}

// FindingsOrErr returns the Findings value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) FindingsOrErr() ([]*Finding, error) {
	if e.loadedTypes[3] {
		return e.Findings, nil
	}
	return nil, &NotLoadedError{edge: "findings"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[4] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// ToolInteractionsOrErr returns the ToolInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) ToolInteractionsOrErr() ([]*ToolInteraction, error) {
	if e.loadedTypes[5] {
		return e.ToolInteractions, nil
	}
	return nil, &NotLoadedError{edge: "tool_interactions"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e EngagementEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[6] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Engagement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagement.FieldScope, engagement.FieldStats:
			values[i] = new([]byte)
		case engagement.FieldID, engagement.FieldObjective, engagement.FieldObjectiveType, engagement.FieldStatus, engagement.FieldErrorMessage, engagement.FieldFinalReport, engagement.FieldExecutiveSummary, engagement.FieldPodID:
			values[i] = new(sql.NullString)
		case engagement.FieldCreatedAt, engagement.FieldStartedAt, engagement.FieldCompletedAt, engagement.FieldLastInteractionAt, engagement.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Engagement fields.
func (_m *Engagement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case engagement.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = value.String
			}
		case engagement.FieldObjectiveType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_type", values[i])
			} else if value.Valid {
				_m.ObjectiveType = value.String
			}
		case engagement.FieldScope:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scope); err != nil {
					return fmt.Errorf("unmarshal field scope: %w", err)
				}
			}
		case engagement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = engagement.Status(value.String)
			}
		case engagement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case engagement.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case engagement.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case engagement.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case engagement.FieldFinalReport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_report", values[i])
			} else if value.Valid {
				_m.FinalReport = new(string)
				*_m.FinalReport = value.String
			}
		case engagement.FieldExecutiveSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executive_summary", values[i])
			} else if value.Valid {
				_m.ExecutiveSummary = new(string)
				*_m.ExecutiveSummary = value.String
			}
		case engagement.FieldStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stats); err != nil {
					return fmt.Errorf("unmarshal field stats: %w", err)
				}
			}
		case engagement.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case engagement.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case engagement.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Engagement.
// This includes values selected through modifiers, order, etc.
func (_m *Engagement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Engagement entity.
func (_m *Engagement) QueryTasks() *TaskQuery {
	return NewEngagementClient(_m.config).QueryTasks(_m)
}

// QueryAgentMessages queries the "agent_messages" edge of the Engagement entity.
func (_m *Engagement) QueryAgentMessages() *AgentMessageQuery {
	return NewEngagementClient(_m.config).QueryAgentMessages(_m)
}

// QueryLocks queries the "locks" edge of the Engagement entity.
func (_m *Engagement) QueryLocks() *ResourceLockQuery {
	return NewEngagementClient(_m.config).QueryLocks(_m)
}

// QueryFindings queries the "findings" edge of the Engagement entity.
func (_m *Engagement) QueryFindings() *FindingQuery {
	return NewEngagementClient(_m.config).QueryFindings(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the Engagement entity.
func (_m *Engagement) QueryLlmInteractions() *LLMInteractionQuery {
	return NewEngagementClient(_m.config).QueryLlmInteractions(_m)
}

// QueryToolInteractions queries the "tool_interactions" edge of the Engagement entity.
func (_m *Engagement) QueryToolInteractions() *ToolInteractionQuery {
	return NewEngagementClient(_m.config).QueryToolInteractions(_m)
}

// QueryEvents queries the "events" edge of the Engagement entity.
func (_m *Engagement) QueryEvents() *EventQuery {
	return NewEngagementClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Engagement.
// Note that you need to call Engagement.Unwrap() before calling this method if this Engagement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Engagement) Update() *EngagementUpdateOne {
	return NewEngagementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Engagement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Engagement) Unwrap() *Engagement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Engagement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Engagement) String() string {
	var builder strings.Builder
	builder.WriteString("Engagement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("objective=")
	builder.WriteString(_m.Objective)
	builder.WriteString(", ")
	builder.WriteString("objective_type=")
	builder.WriteString(_m.ObjectiveType)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalReport; v != nil {
		builder.WriteString("final_report=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutiveSummary; v != nil {
		builder.WriteString("executive_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stats))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Engagements is a parsable slice of Engagement.
type Engagements []*Engagement
