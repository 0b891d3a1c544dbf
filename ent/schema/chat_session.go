package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession is one tutoring conversation, optionally bound to a program.
type ChatSession struct {
	ent.Schema
}

func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("student_id").
			Immutable(),
		field.String("program_id").
			Default("").
			Comment("Bound program; settable once after creation"),
		field.String("title").
			Default("Study chat"),
		field.Bool("tts_enabled").
			Default(false).
			Comment("Sticky voice flag"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Bumped on session changes and on every appended message"),
	}
}

func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}
