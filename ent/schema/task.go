package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// Tasks form the engagement's dependency graph: created by the team lead,
// claimed by at most one worker agent, terminated once complete or failed.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.String("task_key").
			Comment("Decomposition-local identifier (e.g. 'recon-1'), unique per engagement"),
		field.Text("description").
			Comment("What the worker agent is asked to do"),
		field.String("task_type").
			Default("generic").
			Comment("recon, scan, exploit, analysis, validation, generic"),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("task_keys that must be complete before this task is claimable"),
		field.Int("priority").
			Default(0).
			Comment("Higher claims first among claimable tasks"),
		field.Enum("status").
			Values("pending", "running", "complete", "failed").
			Default("pending"),
		field.String("assignee").
			Optional().
			Nillable().
			Comment("agent_id of the claiming worker"),
		field.Text("result").
			Optional().
			Nillable().
			Comment("Serialized outcome, recorded verbatim on completion"),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("tasks").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engagement_id", "task_key").
			Unique(),
		index.Fields("status"),
		// Claim ordering: priority desc, created_at asc (scanned under FOR UPDATE)
		index.Fields("engagement_id", "status", "priority", "created_at"),
	}
}
