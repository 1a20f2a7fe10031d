package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolInteraction holds the schema definition for the ToolInteraction entity.
// One row per tool dispatch through the bridge: which server, which tool,
// whether the guardian allowed it, and the (masked, compressed) output.
type ToolInteraction struct {
	ent.Schema
}

// Fields of the ToolInteraction.
func (ToolInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("server_name").
			Comment("Tool server that executed the call"),
		field.String("tool_name"),
		field.JSON("arguments", map[string]interface{}{}).
			Optional(),
		field.Bool("success"),
		field.Text("output").
			Optional().
			Comment("Masked, compressed copy of the tool output"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("risk").
			Optional().
			Comment("Guardian risk level for command-bearing calls"),
		field.Int64("duration_ms"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolInteraction.
func (ToolInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("tool_interactions").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolInteraction.
func (ToolInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "created_at"),
		index.Fields("engagement_id", "created_at"),
	}
}
