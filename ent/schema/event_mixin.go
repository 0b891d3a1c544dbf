package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is the base of every append-only log entity: quiz attempts,
// lesson attempts, chat messages, and gateway request events. The sequence
// comes from one global counter, so entries across all logs have a total
// order that survives wall-clock ties.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global append order across all event tables"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable().
			Comment("Wall-clock time the entry was appended"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("recorded_at"),
	}
}
