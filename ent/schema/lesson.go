package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is one ordered node in a program's outline. Identity and content
// are immutable once created; progress is derived from the attempt log.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Unique(),
		field.String("program_id").
			Immutable(),
		field.String("chapter").
			Immutable().
			Default(""),
		field.Int("order_index").
			Immutable().
			Comment("1-based position within the program"),
		field.String("title").
			Immutable(),
		field.Text("content_markdown").
			Immutable(),
		field.JSON("objectives", []string{}).
			Optional().
			Immutable(),
		field.JSON("method_plan", []MethodStepData{}).
			Optional().
			Immutable(),
		field.JSON("practice_prompts", []PracticePromptData{}).
			Optional().
			Immutable(),
		field.JSON("assessment", AssessmentData{}).
			Immutable(),
		field.Int("estimated_minutes").
			Default(0).
			Immutable(),
		field.JSON("resources", []ResourceData{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("program_id"),
		index.Fields("program_id", "order_index").Unique(),
	}
}
