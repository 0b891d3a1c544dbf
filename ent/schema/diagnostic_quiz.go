package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosticQuiz is the quiz attached to a program at creation. Immutable:
// resubmission semantics depend on the questions never changing.
type DiagnosticQuiz struct {
	ent.Schema
}

func (DiagnosticQuiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("program_id").
			Immutable().
			Unique().
			Comment("One quiz per program"),
		field.String("instructions").
			Immutable().
			Default(""),
		field.JSON("questions", []QuizQuestionData{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (DiagnosticQuiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("program_id"),
	}
}
