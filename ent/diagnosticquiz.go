// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/diagnosticquiz"
	"github.com/omnitutor/omnitutor/ent/schema"
)

// DiagnosticQuiz is the model entity for the DiagnosticQuiz schema.
type DiagnosticQuiz struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// One quiz per program
	ProgramID string `json:"program_id,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions string `json:"instructions,omitempty"`
	// Questions holds the value of the "questions" field.
	Questions []schema.QuizQuestionData `json:"questions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosticQuiz) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosticquiz.FieldQuestions:
			values[i] = new([]byte)
		case diagnosticquiz.FieldID, diagnosticquiz.FieldProgramID, diagnosticquiz.FieldInstructions:
			values[i] = new(sql.NullString)
		case diagnosticquiz.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosticQuiz fields.
func (_m *DiagnosticQuiz) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosticquiz.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case diagnosticquiz.FieldProgramID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program_id", values[i])
			} else if value.Valid {
				_m.ProgramID = value.String
			}
		case diagnosticquiz.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = value.String
			}
		case diagnosticquiz.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case diagnosticquiz.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosticQuiz.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosticQuiz) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosticQuiz.
// Note that you need to call DiagnosticQuiz.Unwrap() before calling this method if this DiagnosticQuiz
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosticQuiz) Update() *DiagnosticQuizUpdateOne {
	return NewDiagnosticQuizClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosticQuiz entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosticQuiz) Unwrap() *DiagnosticQuiz {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosticQuiz is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosticQuiz) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosticQuiz(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("program_id=")
	builder.WriteString(_m.ProgramID)
	builder.WriteString(", ")
	builder.WriteString("instructions=")
	builder.WriteString(_m.Instructions)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosticQuizs is a parsable slice of DiagnosticQuiz.
type DiagnosticQuizs []*DiagnosticQuiz
