package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt records one diagnostic submission with its evaluation.
// Append-only via the EventMixin sequence.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("quiz_id").
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.JSON("responses", map[string]any{}).
			Immutable(),
		field.Int("score").
			Default(0).
			Comment("Evaluation score, 0-100"),
		field.JSON("analysis", map[string]any{}).
			Optional().
			Comment("Strengths and improvements from the evaluation"),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("student_id"),
	}
}
