package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Finding holds the schema definition for the Finding entity.
// Append-only security findings accumulated during an engagement and
// referenced by the final report.
type Finding struct {
	ent.Schema
}

// Fields of the Finding.
func (Finding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("finding_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.String("phase").
			Optional().
			Comment("Engagement phase that produced the finding (recon, exploit, ...)"),
		field.String("title"),
		field.Enum("severity").
			Values("critical", "high", "medium", "low", "info"),
		field.Text("description").
			Optional(),
		field.JSON("evidence", []string{}).
			Optional().
			Comment("Raw evidence snippets (masked before persistence)"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("agent_id").
			Optional().
			Comment("Worker that reported the finding"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Finding.
func (Finding) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("findings").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Finding.
func (Finding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engagement_id", "severity"),
		index.Fields("engagement_id", "created_at"),
	}
}
