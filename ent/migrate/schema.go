// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentMessagesColumns holds the columns for the "agent_messages" table.
	AgentMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "from_agent", Type: field.TypeString},
		{Name: "to_agent", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"task_complete", "validation_request", "intervention", "broadcast", "peer_request", "peer_response", "terminate", "error", "critical_finding"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// AgentMessagesTable holds the schema information for the "agent_messages" table.
	AgentMessagesTable = &schema.Table{
		Name:       "agent_messages",
		Columns:    AgentMessagesColumns,
		PrimaryKey: []*schema.Column{AgentMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_messages_engagements_agent_messages",
				Columns:    []*schema.Column{AgentMessagesColumns[8]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentmessage_engagement_id_to_agent_read",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[8], AgentMessagesColumns[2], AgentMessagesColumns[5]},
			},
			{
				Name:    "agentmessage_to_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentMessagesColumns[2], AgentMessagesColumns[0]},
			},
		},
	}
	// EngagementsColumns holds the columns for the "engagements" table.
	EngagementsColumns = []*schema.Column{
		{Name: "engagement_id", Type: field.TypeString, Unique: true},
		{Name: "objective", Type: field.TypeString, Size: 2147483647},
		{Name: "objective_type", Type: field.TypeString, Nullable: true},
		{Name: "scope", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "final_report", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "executive_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stats", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// EngagementsTable holds the schema information for the "engagements" table.
	EngagementsTable = &schema.Table{
		Name:       "engagements",
		Columns:    EngagementsColumns,
		PrimaryKey: []*schema.Column{EngagementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "engagement_status",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[4]},
			},
			{
				Name:    "engagement_objective_type",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[2]},
			},
			{
				Name:    "engagement_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[4], EngagementsColumns[5]},
			},
			{
				Name:    "engagement_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[4], EngagementsColumns[13]},
			},
			{
				Name:    "engagement_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_engagements_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_engagement_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[3]},
			},
		},
	}
	// FindingsColumns holds the columns for the "findings" table.
	FindingsColumns = []*schema.Column{
		{Name: "finding_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low", "info"}},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// FindingsTable holds the schema information for the "findings" table.
	FindingsTable = &schema.Table{
		Name:       "findings",
		Columns:    FindingsColumns,
		PrimaryKey: []*schema.Column{FindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "findings_engagements_findings",
				Columns:    []*schema.Column{FindingsColumns[9]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "finding_engagement_id_severity",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[9], FindingsColumns[3]},
			},
			{
				Name:    "finding_engagement_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[9], FindingsColumns[8]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "iteration", Type: field.TypeInt, Nullable: true},
		{Name: "request_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_call_count", Type: field.TypeInt, Default: 0},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_engagements_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[14]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[1], LlmInteractionsColumns[13]},
			},
			{
				Name:    "llminteraction_engagement_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[14], LlmInteractionsColumns[13]},
			},
		},
	}
	// ResourceLocksColumns holds the columns for the "resource_locks" table.
	ResourceLocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "resource", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// ResourceLocksTable holds the schema information for the "resource_locks" table.
	ResourceLocksTable = &schema.Table{
		Name:       "resource_locks",
		Columns:    ResourceLocksColumns,
		PrimaryKey: []*schema.Column{ResourceLocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "resource_locks_engagements_locks",
				Columns:    []*schema.Column{ResourceLocksColumns[4]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "task_key", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "task_type", Type: field.TypeString, Default: "generic"},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed"}, Default: "pending"},
		{Name: "assignee", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_engagements_tasks",
				Columns:    []*schema.Column{TasksColumns[13]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_engagement_id_task_key",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[13], TasksColumns[1]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_engagement_id_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13], TasksColumns[6], TasksColumns[5], TasksColumns[10]},
			},
		},
	}
	// ToolInteractionsColumns holds the columns for the "tool_interactions" table.
	ToolInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "server_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "risk", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// ToolInteractionsTable holds the schema information for the "tool_interactions" table.
	ToolInteractionsTable = &schema.Table{
		Name:       "tool_interactions",
		Columns:    ToolInteractionsColumns,
		PrimaryKey: []*schema.Column{ToolInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_interactions_engagements_tool_interactions",
				Columns:    []*schema.Column{ToolInteractionsColumns[11]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolinteraction_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolInteractionsColumns[1], ToolInteractionsColumns[10]},
			},
			{
				Name:    "toolinteraction_engagement_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolInteractionsColumns[11], ToolInteractionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentMessagesTable,
		EngagementsTable,
		EventsTable,
		FindingsTable,
		LlmInteractionsTable,
		ResourceLocksTable,
		TasksTable,
		ToolInteractionsTable,
	}
)

func init() {
	AgentMessagesTable.ForeignKeys[0].RefTable = EngagementsTable
	EventsTable.ForeignKeys[0].RefTable = EngagementsTable
	FindingsTable.ForeignKeys[0].RefTable = EngagementsTable
	LlmInteractionsTable.ForeignKeys[0].RefTable = EngagementsTable
	ResourceLocksTable.ForeignKeys[0].RefTable = EngagementsTable
	TasksTable.ForeignKeys[0].RefTable = EngagementsTable
	ToolInteractionsTable.ForeignKeys[0].RefTable = EngagementsTable
}
