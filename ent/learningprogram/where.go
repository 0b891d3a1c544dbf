// Code generated by ent, DO NOT EDIT.

package learningprogram

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldStudentID, v))
}

// TopicPrompt applies equality check predicate on the "topic_prompt" field. It's identical to TopicPromptEQ.
func TopicPrompt(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldTopicPrompt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldSummary, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldStatus, v))
}

// SkillProfile applies equality check predicate on the "skill_profile" field. It's identical to SkillProfileEQ.
func SkillProfile(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldSkillProfile, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldStudentID, v))
}

// TopicPromptEQ applies the EQ predicate on the "topic_prompt" field.
func TopicPromptEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldTopicPrompt, v))
}

// TopicPromptNEQ applies the NEQ predicate on the "topic_prompt" field.
func TopicPromptNEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldTopicPrompt, v))
}

// TopicPromptIn applies the In predicate on the "topic_prompt" field.
func TopicPromptIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldTopicPrompt, vs...))
}

// TopicPromptNotIn applies the NotIn predicate on the "topic_prompt" field.
func TopicPromptNotIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldTopicPrompt, vs...))
}

// TopicPromptGT applies the GT predicate on the "topic_prompt" field.
func TopicPromptGT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldTopicPrompt, v))
}

// TopicPromptGTE applies the GTE predicate on the "topic_prompt" field.
func TopicPromptGTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldTopicPrompt, v))
}

// TopicPromptLT applies the LT predicate on the "topic_prompt" field.
func TopicPromptLT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldTopicPrompt, v))
}

// TopicPromptLTE applies the LTE predicate on the "topic_prompt" field.
func TopicPromptLTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldTopicPrompt, v))
}

// TopicPromptContains applies the Contains predicate on the "topic_prompt" field.
func TopicPromptContains(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContains(FieldTopicPrompt, v))
}

// TopicPromptHasPrefix applies the HasPrefix predicate on the "topic_prompt" field.
func TopicPromptHasPrefix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasPrefix(FieldTopicPrompt, v))
}

// TopicPromptHasSuffix applies the HasSuffix predicate on the "topic_prompt" field.
func TopicPromptHasSuffix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasSuffix(FieldTopicPrompt, v))
}

// TopicPromptEqualFold applies the EqualFold predicate on the "topic_prompt" field.
func TopicPromptEqualFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldTopicPrompt, v))
}

// TopicPromptContainsFold applies the ContainsFold predicate on the "topic_prompt" field.
func TopicPromptContainsFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldTopicPrompt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldSummary, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldStatus, v))
}

// SkillProfileEQ applies the EQ predicate on the "skill_profile" field.
func SkillProfileEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldSkillProfile, v))
}

// SkillProfileNEQ applies the NEQ predicate on the "skill_profile" field.
func SkillProfileNEQ(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldSkillProfile, v))
}

// SkillProfileIn applies the In predicate on the "skill_profile" field.
func SkillProfileIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldSkillProfile, vs...))
}

// SkillProfileNotIn applies the NotIn predicate on the "skill_profile" field.
func SkillProfileNotIn(vs ...string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldSkillProfile, vs...))
}

// SkillProfileGT applies the GT predicate on the "skill_profile" field.
func SkillProfileGT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldSkillProfile, v))
}

// SkillProfileGTE applies the GTE predicate on the "skill_profile" field.
func SkillProfileGTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldSkillProfile, v))
}

// SkillProfileLT applies the LT predicate on the "skill_profile" field.
func SkillProfileLT(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldSkillProfile, v))
}

// SkillProfileLTE applies the LTE predicate on the "skill_profile" field.
func SkillProfileLTE(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldSkillProfile, v))
}

// SkillProfileContains applies the Contains predicate on the "skill_profile" field.
func SkillProfileContains(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContains(FieldSkillProfile, v))
}

// SkillProfileHasPrefix applies the HasPrefix predicate on the "skill_profile" field.
func SkillProfileHasPrefix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasPrefix(FieldSkillProfile, v))
}

// SkillProfileHasSuffix applies the HasSuffix predicate on the "skill_profile" field.
func SkillProfileHasSuffix(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldHasSuffix(FieldSkillProfile, v))
}

// SkillProfileEqualFold applies the EqualFold predicate on the "skill_profile" field.
func SkillProfileEqualFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEqualFold(FieldSkillProfile, v))
}

// SkillProfileContainsFold applies the ContainsFold predicate on the "skill_profile" field.
func SkillProfileContainsFold(v string) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldContainsFold(FieldSkillProfile, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningProgram {
	return predicate.LearningProgram(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningProgram) predicate.LearningProgram {
	return predicate.LearningProgram(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningProgram) predicate.LearningProgram {
	return predicate.LearningProgram(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningProgram) predicate.LearningProgram {
	return predicate.LearningProgram(sql.NotPredicates(p))
}
