package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ResourceLock holds the schema definition for the ResourceLock entity.
// Advisory locks over external resources (e.g. "nmap_10.0.0.5"). The unique
// constraint on resource is the exclusivity mechanism: acquisition is an
// INSERT that loses on conflict. Rows live only while the lock is held.
type ResourceLock struct {
	ent.Schema
}

// Fields of the ResourceLock.
func (ResourceLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("resource").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.String("owner").
			Comment("agent_id of the holder"),
		field.Time("acquired_at").
			Default(time.Now).
			Comment("Locks older than the stale threshold may be reclaimed by any caller"),
	}
}

// Edges of the ResourceLock.
func (ResourceLock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("locks").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}
