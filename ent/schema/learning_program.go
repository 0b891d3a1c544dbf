package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningProgram is one generated curriculum instance for one student and
// topic. Programs are archived (abandoned), never deleted.
type LearningProgram struct {
	ent.Schema
}

func (LearningProgram) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("student_id").
			Immutable(),
		field.String("topic_prompt").
			Immutable().
			Comment("Free-text topic the student asked to learn"),
		field.String("title"),
		field.String("summary").
			Default(""),
		field.String("status").
			Comment("awaiting_diagnostic, active, completed, abandoned"),
		field.String("skill_profile").
			Default("").
			Comment("Evaluation summary of the learner's level, set on activation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningProgram) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("status"),
	}
}
