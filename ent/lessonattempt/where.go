// Code generated by ent, DO NOT EDIT.

package lessonattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldSequence, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldRecordedAt, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldLessonID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldStudentID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldStatus, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldScore, v))
}

// Stars applies equality check predicate on the "stars" field. It's identical to StarsEQ.
func Stars(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldStars, v))
}

// MasterySummary applies equality check predicate on the "mastery_summary" field. It's identical to MasterySummaryEQ.
func MasterySummary(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldMasterySummary, v))
}

// ReflectionPositive applies equality check predicate on the "reflection_positive" field. It's identical to ReflectionPositiveEQ.
func ReflectionPositive(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldReflectionPositive, v))
}

// ReflectionNegative applies equality check predicate on the "reflection_negative" field. It's identical to ReflectionNegativeEQ.
func ReflectionNegative(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldReflectionNegative, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldSequence, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldRecordedAt, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldLessonID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldStudentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldStatus, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotNull(FieldAnswers))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldScore, v))
}

// StarsEQ applies the EQ predicate on the "stars" field.
func StarsEQ(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldStars, v))
}

// StarsNEQ applies the NEQ predicate on the "stars" field.
func StarsNEQ(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldStars, v))
}

// StarsIn applies the In predicate on the "stars" field.
func StarsIn(vs ...int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldStars, vs...))
}

// StarsNotIn applies the NotIn predicate on the "stars" field.
func StarsNotIn(vs ...int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldStars, vs...))
}

// StarsGT applies the GT predicate on the "stars" field.
func StarsGT(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldStars, v))
}

// StarsGTE applies the GTE predicate on the "stars" field.
func StarsGTE(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldStars, v))
}

// StarsLT applies the LT predicate on the "stars" field.
func StarsLT(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldStars, v))
}

// StarsLTE applies the LTE predicate on the "stars" field.
func StarsLTE(v int) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldStars, v))
}

// MasterySummaryEQ applies the EQ predicate on the "mastery_summary" field.
func MasterySummaryEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldMasterySummary, v))
}

// MasterySummaryNEQ applies the NEQ predicate on the "mastery_summary" field.
func MasterySummaryNEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldMasterySummary, v))
}

// MasterySummaryIn applies the In predicate on the "mastery_summary" field.
func MasterySummaryIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldMasterySummary, vs...))
}

// MasterySummaryNotIn applies the NotIn predicate on the "mastery_summary" field.
func MasterySummaryNotIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldMasterySummary, vs...))
}

// MasterySummaryGT applies the GT predicate on the "mastery_summary" field.
func MasterySummaryGT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldMasterySummary, v))
}

// MasterySummaryGTE applies the GTE predicate on the "mastery_summary" field.
func MasterySummaryGTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldMasterySummary, v))
}

// MasterySummaryLT applies the LT predicate on the "mastery_summary" field.
func MasterySummaryLT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldMasterySummary, v))
}

// MasterySummaryLTE applies the LTE predicate on the "mastery_summary" field.
func MasterySummaryLTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldMasterySummary, v))
}

// MasterySummaryContains applies the Contains predicate on the "mastery_summary" field.
func MasterySummaryContains(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContains(FieldMasterySummary, v))
}

// MasterySummaryHasPrefix applies the HasPrefix predicate on the "mastery_summary" field.
func MasterySummaryHasPrefix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasPrefix(FieldMasterySummary, v))
}

// MasterySummaryHasSuffix applies the HasSuffix predicate on the "mastery_summary" field.
func MasterySummaryHasSuffix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasSuffix(FieldMasterySummary, v))
}

// MasterySummaryEqualFold applies the EqualFold predicate on the "mastery_summary" field.
func MasterySummaryEqualFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldMasterySummary, v))
}

// MasterySummaryContainsFold applies the ContainsFold predicate on the "mastery_summary" field.
func MasterySummaryContainsFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldMasterySummary, v))
}

// ReflectionPositiveEQ applies the EQ predicate on the "reflection_positive" field.
func ReflectionPositiveEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldReflectionPositive, v))
}

// ReflectionPositiveNEQ applies the NEQ predicate on the "reflection_positive" field.
func ReflectionPositiveNEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldReflectionPositive, v))
}

// ReflectionPositiveIn applies the In predicate on the "reflection_positive" field.
func ReflectionPositiveIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldReflectionPositive, vs...))
}

// ReflectionPositiveNotIn applies the NotIn predicate on the "reflection_positive" field.
func ReflectionPositiveNotIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldReflectionPositive, vs...))
}

// ReflectionPositiveGT applies the GT predicate on the "reflection_positive" field.
func ReflectionPositiveGT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldReflectionPositive, v))
}

// ReflectionPositiveGTE applies the GTE predicate on the "reflection_positive" field.
func ReflectionPositiveGTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldReflectionPositive, v))
}

// ReflectionPositiveLT applies the LT predicate on the "reflection_positive" field.
func ReflectionPositiveLT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldReflectionPositive, v))
}

// ReflectionPositiveLTE applies the LTE predicate on the "reflection_positive" field.
func ReflectionPositiveLTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldReflectionPositive, v))
}

// ReflectionPositiveContains applies the Contains predicate on the "reflection_positive" field.
func ReflectionPositiveContains(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContains(FieldReflectionPositive, v))
}

// ReflectionPositiveHasPrefix applies the HasPrefix predicate on the "reflection_positive" field.
func ReflectionPositiveHasPrefix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasPrefix(FieldReflectionPositive, v))
}

// ReflectionPositiveHasSuffix applies the HasSuffix predicate on the "reflection_positive" field.
func ReflectionPositiveHasSuffix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasSuffix(FieldReflectionPositive, v))
}

// ReflectionPositiveEqualFold applies the EqualFold predicate on the "reflection_positive" field.
func ReflectionPositiveEqualFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldReflectionPositive, v))
}

// ReflectionPositiveContainsFold applies the ContainsFold predicate on the "reflection_positive" field.
func ReflectionPositiveContainsFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldReflectionPositive, v))
}

// ReflectionNegativeEQ applies the EQ predicate on the "reflection_negative" field.
func ReflectionNegativeEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEQ(FieldReflectionNegative, v))
}

// ReflectionNegativeNEQ applies the NEQ predicate on the "reflection_negative" field.
func ReflectionNegativeNEQ(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNEQ(FieldReflectionNegative, v))
}

// ReflectionNegativeIn applies the In predicate on the "reflection_negative" field.
func ReflectionNegativeIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldIn(FieldReflectionNegative, vs...))
}

// ReflectionNegativeNotIn applies the NotIn predicate on the "reflection_negative" field.
func ReflectionNegativeNotIn(vs ...string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldNotIn(FieldReflectionNegative, vs...))
}

// ReflectionNegativeGT applies the GT predicate on the "reflection_negative" field.
func ReflectionNegativeGT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGT(FieldReflectionNegative, v))
}

// ReflectionNegativeGTE applies the GTE predicate on the "reflection_negative" field.
func ReflectionNegativeGTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldGTE(FieldReflectionNegative, v))
}

// ReflectionNegativeLT applies the LT predicate on the "reflection_negative" field.
func ReflectionNegativeLT(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLT(FieldReflectionNegative, v))
}

// ReflectionNegativeLTE applies the LTE predicate on the "reflection_negative" field.
func ReflectionNegativeLTE(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldLTE(FieldReflectionNegative, v))
}

// ReflectionNegativeContains applies the Contains predicate on the "reflection_negative" field.
func ReflectionNegativeContains(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContains(FieldReflectionNegative, v))
}

// ReflectionNegativeHasPrefix applies the HasPrefix predicate on the "reflection_negative" field.
func ReflectionNegativeHasPrefix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasPrefix(FieldReflectionNegative, v))
}

// ReflectionNegativeHasSuffix applies the HasSuffix predicate on the "reflection_negative" field.
func ReflectionNegativeHasSuffix(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldHasSuffix(FieldReflectionNegative, v))
}

// ReflectionNegativeEqualFold applies the EqualFold predicate on the "reflection_negative" field.
func ReflectionNegativeEqualFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldEqualFold(FieldReflectionNegative, v))
}

// ReflectionNegativeContainsFold applies the ContainsFold predicate on the "reflection_negative" field.
func ReflectionNegativeContainsFold(v string) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.FieldContainsFold(FieldReflectionNegative, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonAttempt) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonAttempt) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonAttempt) predicate.LessonAttempt {
	return predicate.LessonAttempt(sql.NotPredicates(p))
}
