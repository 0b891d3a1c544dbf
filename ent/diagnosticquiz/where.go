// Code generated by ent, DO NOT EDIT.

package diagnosticquiz

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldContainsFold(FieldID, id))
}

// ProgramID applies equality check predicate on the "program_id" field. It's identical to ProgramIDEQ.
func ProgramID(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldProgramID, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldInstructions, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldCreatedAt, v))
}

// ProgramIDEQ applies the EQ predicate on the "program_id" field.
func ProgramIDEQ(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldProgramID, v))
}

// ProgramIDNEQ applies the NEQ predicate on the "program_id" field.
func ProgramIDNEQ(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNEQ(FieldProgramID, v))
}

// ProgramIDIn applies the In predicate on the "program_id" field.
func ProgramIDIn(vs ...string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldIn(FieldProgramID, vs...))
}

// ProgramIDNotIn applies the NotIn predicate on the "program_id" field.
func ProgramIDNotIn(vs ...string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNotIn(FieldProgramID, vs...))
}

// ProgramIDGT applies the GT predicate on the "program_id" field.
func ProgramIDGT(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGT(FieldProgramID, v))
}

// ProgramIDGTE applies the GTE predicate on the "program_id" field.
func ProgramIDGTE(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGTE(FieldProgramID, v))
}

// ProgramIDLT applies the LT predicate on the "program_id" field.
func ProgramIDLT(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLT(FieldProgramID, v))
}

// ProgramIDLTE applies the LTE predicate on the "program_id" field.
func ProgramIDLTE(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLTE(FieldProgramID, v))
}

// ProgramIDContains applies the Contains predicate on the "program_id" field.
func ProgramIDContains(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldContains(FieldProgramID, v))
}

// ProgramIDHasPrefix applies the HasPrefix predicate on the "program_id" field.
func ProgramIDHasPrefix(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldHasPrefix(FieldProgramID, v))
}

// ProgramIDHasSuffix applies the HasSuffix predicate on the "program_id" field.
func ProgramIDHasSuffix(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldHasSuffix(FieldProgramID, v))
}

// ProgramIDEqualFold applies the EqualFold predicate on the "program_id" field.
func ProgramIDEqualFold(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEqualFold(FieldProgramID, v))
}

// ProgramIDContainsFold applies the ContainsFold predicate on the "program_id" field.
func ProgramIDContainsFold(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldContainsFold(FieldProgramID, v))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldContainsFold(FieldInstructions, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosticQuiz) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosticQuiz) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosticQuiz) predicate.DiagnosticQuiz {
	return predicate.DiagnosticQuiz(sql.NotPredicates(p))
}
