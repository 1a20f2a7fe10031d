package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentMessage holds the schema definition for the AgentMessage entity.
// Durable mailbox rows for inter-agent coordination. The implicit integer ID
// is the delivery order: receive returns unread rows in ID order.
type AgentMessage struct {
	ent.Schema
}

// Fields of the AgentMessage.
func (AgentMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("engagement_id").
			Immutable(),
		field.String("from_agent").
			Immutable(),
		field.String("to_agent").
			Immutable().
			Comment("Recipient agent_id; broadcasts fan out to one row per recipient"),
		field.Enum("kind").
			Values("task_complete", "validation_request", "intervention", "broadcast",
				"peer_request", "peer_response", "terminate", "error", "critical_finding"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentMessage.
func (AgentMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("agent_messages").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentMessage.
func (AgentMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Unread scan per recipient
		index.Fields("engagement_id", "to_agent", "read"),
		// Delivery order per recipient
		index.Fields("to_agent", "id"),
	}
}
