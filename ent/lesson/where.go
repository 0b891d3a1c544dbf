// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldID, id))
}

// ProgramID applies equality check predicate on the "program_id" field. It's identical to ProgramIDEQ.
func ProgramID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldProgramID, v))
}

// Chapter applies equality check predicate on the "chapter" field. It's identical to ChapterEQ.
func Chapter(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldChapter, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldOrderIndex, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// ContentMarkdown applies equality check predicate on the "content_markdown" field. It's identical to ContentMarkdownEQ.
func ContentMarkdown(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldContentMarkdown, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldCreatedAt, v))
}

// ProgramIDEQ applies the EQ predicate on the "program_id" field.
func ProgramIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldProgramID, v))
}

// ProgramIDNEQ applies the NEQ predicate on the "program_id" field.
func ProgramIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldProgramID, v))
}

// ProgramIDIn applies the In predicate on the "program_id" field.
func ProgramIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldProgramID, vs...))
}

// ProgramIDNotIn applies the NotIn predicate on the "program_id" field.
func ProgramIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldProgramID, vs...))
}

// ProgramIDGT applies the GT predicate on the "program_id" field.
func ProgramIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldProgramID, v))
}

// ProgramIDGTE applies the GTE predicate on the "program_id" field.
func ProgramIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldProgramID, v))
}

// ProgramIDLT applies the LT predicate on the "program_id" field.
func ProgramIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldProgramID, v))
}

// ProgramIDLTE applies the LTE predicate on the "program_id" field.
func ProgramIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldProgramID, v))
}

// ProgramIDContains applies the Contains predicate on the "program_id" field.
func ProgramIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldProgramID, v))
}

// ProgramIDHasPrefix applies the HasPrefix predicate on the "program_id" field.
func ProgramIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldProgramID, v))
}

// ProgramIDHasSuffix applies the HasSuffix predicate on the "program_id" field.
func ProgramIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldProgramID, v))
}

// ProgramIDEqualFold applies the EqualFold predicate on the "program_id" field.
func ProgramIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldProgramID, v))
}

// ProgramIDContainsFold applies the ContainsFold predicate on the "program_id" field.
func ProgramIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldProgramID, v))
}

// ChapterEQ applies the EQ predicate on the "chapter" field.
func ChapterEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldChapter, v))
}

// ChapterNEQ applies the NEQ predicate on the "chapter" field.
func ChapterNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldChapter, v))
}

// ChapterIn applies the In predicate on the "chapter" field.
func ChapterIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldChapter, vs...))
}

// ChapterNotIn applies the NotIn predicate on the "chapter" field.
func ChapterNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldChapter, vs...))
}

// ChapterGT applies the GT predicate on the "chapter" field.
func ChapterGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldChapter, v))
}

// ChapterGTE applies the GTE predicate on the "chapter" field.
func ChapterGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldChapter, v))
}

// ChapterLT applies the LT predicate on the "chapter" field.
func ChapterLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldChapter, v))
}

// ChapterLTE applies the LTE predicate on the "chapter" field.
func ChapterLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldChapter, v))
}

// ChapterContains applies the Contains predicate on the "chapter" field.
func ChapterContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldChapter, v))
}

// ChapterHasPrefix applies the HasPrefix predicate on the "chapter" field.
func ChapterHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldChapter, v))
}

// ChapterHasSuffix applies the HasSuffix predicate on the "chapter" field.
func ChapterHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldChapter, v))
}

// ChapterEqualFold applies the EqualFold predicate on the "chapter" field.
func ChapterEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldChapter, v))
}

// ChapterContainsFold applies the ContainsFold predicate on the "chapter" field.
func ChapterContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldChapter, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldOrderIndex, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldTitle, v))
}

// ContentMarkdownEQ applies the EQ predicate on the "content_markdown" field.
func ContentMarkdownEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldContentMarkdown, v))
}

// ContentMarkdownNEQ applies the NEQ predicate on the "content_markdown" field.
func ContentMarkdownNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldContentMarkdown, v))
}

// ContentMarkdownIn applies the In predicate on the "content_markdown" field.
func ContentMarkdownIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldContentMarkdown, vs...))
}

// ContentMarkdownNotIn applies the NotIn predicate on the "content_markdown" field.
func ContentMarkdownNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldContentMarkdown, vs...))
}

// ContentMarkdownGT applies the GT predicate on the "content_markdown" field.
func ContentMarkdownGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldContentMarkdown, v))
}

// ContentMarkdownGTE applies the GTE predicate on the "content_markdown" field.
func ContentMarkdownGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldContentMarkdown, v))
}

// ContentMarkdownLT applies the LT predicate on the "content_markdown" field.
func ContentMarkdownLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldContentMarkdown, v))
}

// ContentMarkdownLTE applies the LTE predicate on the "content_markdown" field.
func ContentMarkdownLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldContentMarkdown, v))
}

// ContentMarkdownContains applies the Contains predicate on the "content_markdown" field.
func ContentMarkdownContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldContentMarkdown, v))
}

// ContentMarkdownHasPrefix applies the HasPrefix predicate on the "content_markdown" field.
func ContentMarkdownHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldContentMarkdown, v))
}

// ContentMarkdownHasSuffix applies the HasSuffix predicate on the "content_markdown" field.
func ContentMarkdownHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldContentMarkdown, v))
}

// ContentMarkdownEqualFold applies the EqualFold predicate on the "content_markdown" field.
func ContentMarkdownEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldContentMarkdown, v))
}

// ContentMarkdownContainsFold applies the ContainsFold predicate on the "content_markdown" field.
func ContentMarkdownContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldContentMarkdown, v))
}

// ObjectivesIsNil applies the IsNil predicate on the "objectives" field.
func ObjectivesIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldObjectives))
}

// ObjectivesNotNil applies the NotNil predicate on the "objectives" field.
func ObjectivesNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldObjectives))
}

// MethodPlanIsNil applies the IsNil predicate on the "method_plan" field.
func MethodPlanIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldMethodPlan))
}

// MethodPlanNotNil applies the NotNil predicate on the "method_plan" field.
func MethodPlanNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldMethodPlan))
}

// PracticePromptsIsNil applies the IsNil predicate on the "practice_prompts" field.
func PracticePromptsIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldPracticePrompts))
}

// PracticePromptsNotNil applies the NotNil predicate on the "practice_prompts" field.
func PracticePromptsNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldPracticePrompts))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// ResourcesIsNil applies the IsNil predicate on the "resources" field.
func ResourcesIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldResources))
}

// ResourcesNotNil applies the NotNil predicate on the "resources" field.
func ResourcesNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldResources))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.NotPredicates(p))
}
