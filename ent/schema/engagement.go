package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Engagement holds the schema definition for the Engagement entity.
// One engagement is one submitted objective, executed end-to-end by a
// team lead and its worker agents.
type Engagement struct {
	ent.Schema
}

// Fields of the Engagement.
func (Engagement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("engagement_id").
			Unique().
			Immutable(),
		field.Text("objective").
			Comment("Natural-language objective (e.g. 'assess host 10.0.0.5')"),
		field.String("objective_type").
			Optional().
			Comment("Objective classification (network, web, full, ...)"),
		field.JSON("scope", map[string]interface{}{}).
			Optional().
			Comment("Scope snapshot: include/exclude CIDRs and domains, rate limit, blocked commands, approval phases"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the engagement was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed it (pending -> in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("final_report").
			Optional().
			Nillable().
			Comment("Synthesized report from completed task results"),
		field.Text("executive_summary").
			Optional().
			Nillable().
			Comment("Brief summary of the engagement outcome"),
		field.JSON("stats", map[string]interface{}{}).
			Optional().
			Comment("Task counts, findings by severity, LLM/tool call totals"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Engagement.
func (Engagement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_messages", AgentMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("locks", ResourceLock.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("findings", Finding.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_interactions", ToolInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Engagement.
func (Engagement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("objective_type"),

		// Worker claim ordering and orphan detection
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
