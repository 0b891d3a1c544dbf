// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lesson type in the database.
	Label = "lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProgramID holds the string denoting the program_id field in the database.
	FieldProgramID = "program_id"
	// FieldChapter holds the string denoting the chapter field in the database.
	FieldChapter = "chapter"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContentMarkdown holds the string denoting the content_markdown field in the database.
	FieldContentMarkdown = "content_markdown"
	// FieldObjectives holds the string denoting the objectives field in the database.
	FieldObjectives = "objectives"
	// FieldMethodPlan holds the string denoting the method_plan field in the database.
	FieldMethodPlan = "method_plan"
	// FieldPracticePrompts holds the string denoting the practice_prompts field in the database.
	FieldPracticePrompts = "practice_prompts"
	// FieldAssessment holds the string denoting the assessment field in the database.
	FieldAssessment = "assessment"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldResources holds the string denoting the resources field in the database.
	FieldResources = "resources"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the lesson in the database.
	Table = "lessons"
)

// Columns holds all SQL columns for lesson fields.
var Columns = []string{
	FieldID,
	FieldProgramID,
	FieldChapter,
	FieldOrderIndex,
	FieldTitle,
	FieldContentMarkdown,
	FieldObjectives,
	FieldMethodPlan,
	FieldPracticePrompts,
	FieldAssessment,
	FieldEstimatedMinutes,
	FieldResources,
	FieldCreatedAt,
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
	// DefaultChapter holds the default value on creation for the "chapter" field.
	DefaultChapter string
	// DefaultEstimatedMinutes holds the default value on creation for the "estimated_minutes" field.
	DefaultEstimatedMinutes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Lesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProgramID orders the results by the program_id field.
func ByProgramID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgramID, opts...).ToFunc()
}

// ByChapter orders the results by the chapter field.
func ByChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapter, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByContentMarkdown orders the results by the content_markdown field.
func ByContentMarkdown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentMarkdown, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
