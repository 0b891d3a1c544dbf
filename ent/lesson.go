// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/lesson"
	"github.com/omnitutor/omnitutor/ent/schema"
)

// Lesson is the model entity for the Lesson schema.
type Lesson struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProgramID holds the value of the "program_id" field.
	ProgramID string `json:"program_id,omitempty"`
	// Chapter holds the value of the "chapter" field.
	Chapter string `json:"chapter,omitempty"`
	// 1-based position within the program
	OrderIndex int `json:"order_index,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ContentMarkdown holds the value of the "content_markdown" field.
	ContentMarkdown string `json:"content_markdown,omitempty"`
	// Objectives holds the value of the "objectives" field.
	Objectives []string `json:"objectives,omitempty"`
	// MethodPlan holds the value of the "method_plan" field.
	MethodPlan []schema.MethodStepData `json:"method_plan,omitempty"`
	// PracticePrompts holds the value of the "practice_prompts" field.
	PracticePrompts []schema.PracticePromptData `json:"practice_prompts,omitempty"`
	// Assessment holds the value of the "assessment" field.
	Assessment schema.AssessmentData `json:"assessment,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	// Resources holds the value of the "resources" field.
	Resources []schema.ResourceData `json:"resources,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lesson.FieldObjectives, lesson.FieldMethodPlan, lesson.FieldPracticePrompts, lesson.FieldAssessment, lesson.FieldResources:
			values[i] = new([]byte)
		case lesson.FieldOrderIndex, lesson.FieldEstimatedMinutes:
			values[i] = new(sql.NullInt64)
		case lesson.FieldID, lesson.FieldProgramID, lesson.FieldChapter, lesson.FieldTitle, lesson.FieldContentMarkdown:
			values[i] = new(sql.NullString)
		case lesson.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lesson fields.
func (_m *Lesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lesson.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lesson.FieldProgramID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program_id", values[i])
			} else if value.Valid {
				_m.ProgramID = value.String
			}
		case lesson.FieldChapter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter", values[i])
			} else if value.Valid {
				_m.Chapter = value.String
			}
		case lesson.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case lesson.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lesson.FieldContentMarkdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_markdown", values[i])
			} else if value.Valid {
				_m.ContentMarkdown = value.String
			}
		case lesson.FieldObjectives:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field objectives", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Objectives); err != nil {
					return fmt.Errorf("unmarshal field objectives: %w", err)
				}
			}
		case lesson.FieldMethodPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field method_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MethodPlan); err != nil {
					return fmt.Errorf("unmarshal field method_plan: %w", err)
				}
			}
		case lesson.FieldPracticePrompts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field practice_prompts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PracticePrompts); err != nil {
					return fmt.Errorf("unmarshal field practice_prompts: %w", err)
				}
			}
		case lesson.FieldAssessment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assessment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Assessment); err != nil {
					return fmt.Errorf("unmarshal field assessment: %w", err)
				}
			}
		case lesson.FieldEstimatedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[i])
			} else if value.Valid {
				_m.EstimatedMinutes = int(value.Int64)
			}
		case lesson.FieldResources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Resources); err != nil {
					return fmt.Errorf("unmarshal field resources: %w", err)
				}
			}
		case lesson.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lesson.
// This includes values selected through modifiers, order, etc.
func (_m *Lesson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Lesson.
// Note that you need to call Lesson.Unwrap() before calling this method if this Lesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lesson) Update() *LessonUpdateOne {
	return NewLessonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lesson) Unwrap() *Lesson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lesson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lesson) String() string {
	var builder strings.Builder
	builder.WriteString("Lesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("program_id=")
	builder.WriteString(_m.ProgramID)
	builder.WriteString(", ")
	builder.WriteString("chapter=")
	builder.WriteString(_m.Chapter)
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content_markdown=")
	builder.WriteString(_m.ContentMarkdown)
	builder.WriteString(", ")
	builder.WriteString("objectives=")
	builder.WriteString(fmt.Sprintf("%v", _m.Objectives))
	builder.WriteString(", ")
	builder.WriteString("method_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.MethodPlan))
	builder.WriteString(", ")
	builder.WriteString("practice_prompts=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticePrompts))
	builder.WriteString(", ")
	builder.WriteString("assessment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assessment))
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMinutes))
	builder.WriteString(", ")
	builder.WriteString("resources=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resources))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Lessons is a parsable slice of Lesson.
type Lessons []*Lesson
