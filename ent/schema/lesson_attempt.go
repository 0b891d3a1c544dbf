package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonAttempt is one append-only log entry per lesson submission. Never
// updated or deleted; "latest" is a query over (timestamp, sequence).
type LessonAttempt struct {
	ent.Schema
}

func (LessonAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("lesson_id").
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("status").
			Immutable().
			Comment("completed, needs_help, in_progress, skipped"),
		field.JSON("answers", map[string]any{}).
			Optional().
			Immutable(),
		field.Int("score").
			Default(0).
			Immutable(),
		field.Int("stars").
			Default(0).
			Immutable().
			Comment("Mastery stars, 0-3"),
		field.String("mastery_summary").
			Default("").
			Immutable(),
		field.String("reflection_positive").
			Default("").
			Immutable(),
		field.String("reflection_negative").
			Default("").
			Immutable(),
	}
}

func (LessonAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("student_id"),
	}
}
