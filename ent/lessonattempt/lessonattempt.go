// Code generated by ent, DO NOT EDIT.

package lessonattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonattempt type in the database.
	Label = "lesson_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// FieldMasterySummary holds the string denoting the mastery_summary field in the database.
	FieldMasterySummary = "mastery_summary"
	// FieldReflectionPositive holds the string denoting the reflection_positive field in the database.
	FieldReflectionPositive = "reflection_positive"
	// FieldReflectionNegative holds the string denoting the reflection_negative field in the database.
	FieldReflectionNegative = "reflection_negative"
	// Table holds the table name of the lessonattempt in the database.
	Table = "lesson_attempts"
)

// Columns holds all SQL columns for lessonattempt fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldRecordedAt,
	FieldLessonID,
	FieldStudentID,
	FieldStatus,
	FieldAnswers,
	FieldScore,
	FieldStars,
	FieldMasterySummary,
	FieldReflectionPositive,
	FieldReflectionNegative,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultStars holds the default value on creation for the "stars" field.
	DefaultStars int
	// DefaultMasterySummary holds the default value on creation for the "mastery_summary" field.
	DefaultMasterySummary string
	// DefaultReflectionPositive holds the default value on creation for the "reflection_positive" field.
	DefaultReflectionPositive string
	// DefaultReflectionNegative holds the default value on creation for the "reflection_negative" field.
	DefaultReflectionNegative string
)

// OrderOption defines the ordering options for the LessonAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByStars orders the results by the stars field.
func ByStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStars, opts...).ToFunc()
}

// ByMasterySummary orders the results by the mastery_summary field.
func ByMasterySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasterySummary, opts...).ToFunc()
}

// ByReflectionPositive orders the results by the reflection_positive field.
func ByReflectionPositive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionPositive, opts...).ToFunc()
}

// ByReflectionNegative orders the results by the reflection_negative field.
func ByReflectionNegative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflectionNegative, opts...).ToFunc()
}
