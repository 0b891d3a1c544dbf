// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/lessonattempt"
)

// LessonAttempt is the model entity for the LessonAttempt schema.
type LessonAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Global append order across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the entry was appended
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// completed, needs_help, in_progress, skipped
	Status string `json:"status,omitempty"`
	// Answers holds the value of the "answers" field.
	Answers map[string]interface{} `json:"answers,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Mastery stars, 0-3
	Stars int `json:"stars,omitempty"`
	// MasterySummary holds the value of the "mastery_summary" field.
	MasterySummary string `json:"mastery_summary,omitempty"`
	// ReflectionPositive holds the value of the "reflection_positive" field.
	ReflectionPositive string `json:"reflection_positive,omitempty"`
	// ReflectionNegative holds the value of the "reflection_negative" field.
	ReflectionNegative string `json:"reflection_negative,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonattempt.FieldAnswers:
			values[i] = new([]byte)
		case lessonattempt.FieldSequence, lessonattempt.FieldScore, lessonattempt.FieldStars:
			values[i] = new(sql.NullInt64)
		case lessonattempt.FieldID, lessonattempt.FieldLessonID, lessonattempt.FieldStudentID, lessonattempt.FieldStatus, lessonattempt.FieldMasterySummary, lessonattempt.FieldReflectionPositive, lessonattempt.FieldReflectionNegative:
			values[i] = new(sql.NullString)
		case lessonattempt.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonAttempt fields.
func (_m *LessonAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lessonattempt.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lessonattempt.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case lessonattempt.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonattempt.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case lessonattempt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case lessonattempt.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case lessonattempt.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case lessonattempt.FieldStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stars", values[i])
			} else if value.Valid {
				_m.Stars = int(value.Int64)
			}
		case lessonattempt.FieldMasterySummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_summary", values[i])
			} else if value.Valid {
				_m.MasterySummary = value.String
			}
		case lessonattempt.FieldReflectionPositive:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection_positive", values[i])
			} else if value.Valid {
				_m.ReflectionPositive = value.String
			}
		case lessonattempt.FieldReflectionNegative:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection_negative", values[i])
			} else if value.Valid {
				_m.ReflectionNegative = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *LessonAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonAttempt.
// Note that you need to call LessonAttempt.Unwrap() before calling this method if this LessonAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonAttempt) Update() *LessonAttemptUpdateOne {
	return NewLessonAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonAttempt) Unwrap() *LessonAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("LessonAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stars))
	builder.WriteString(", ")
	builder.WriteString("mastery_summary=")
	builder.WriteString(_m.MasterySummary)
	builder.WriteString(", ")
	builder.WriteString("reflection_positive=")
	builder.WriteString(_m.ReflectionPositive)
	builder.WriteString(", ")
	builder.WriteString("reflection_negative=")
	builder.WriteString(_m.ReflectionNegative)
	builder.WriteByte(')')
	return builder.String()
}

// LessonAttempts is a parsable slice of LessonAttempt.
type LessonAttempts []*LessonAttempt
