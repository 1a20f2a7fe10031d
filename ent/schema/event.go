package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persistent event-stream rows written by the events publisher (raw SQL,
// inside the same transaction as the pg_notify) and read back by the
// catchup endpoint. The implicit bigint ID is the catchup cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("engagement_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the event was broadcast on"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Typed payload, see pkg/events/payloads.go"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("events").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup scan: events on a channel after a cursor
		index.Fields("channel", "id"),
		index.Fields("engagement_id", "created_at"),
	}
}
