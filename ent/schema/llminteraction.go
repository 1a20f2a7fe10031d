package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds the schema definition for the LLMInteraction entity.
// One row per router call made by an agent; powers the timeline API and
// post-mortems. Raw request/response bodies are never stored — only a
// compact summary and the (masked) response content.
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Which agent made the call"),
		field.String("provider").
			Comment("Provider name that served the request"),
		field.String("model_name"),
		field.Int("iteration").
			Optional().
			Nillable().
			Comment("ReAct iteration number, null for decomposition/synthesis calls"),
		field.Text("request_summary").
			Optional().
			Comment("Roles and sizes of the messages sent, not raw bodies"),
		field.Text("response_content").
			Optional().
			Nillable().
			Comment("Assistant text (masked)"),
		field.Int("tool_call_count").
			Default(0),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Optional().
			Nillable(),
		field.Int64("duration_ms"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("llm_interactions").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		// Agent's LLM calls chronologically
		index.Fields("agent_id", "created_at"),
		index.Fields("engagement_id", "created_at"),
	}
}
