// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/learningprogram"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// LearningProgramUpdate is the builder for updating LearningProgram entities.
type LearningProgramUpdate struct {
	config
	hooks    []Hook
	mutation *LearningProgramMutation
}

// Where appends a list predicates to the LearningProgramUpdate builder.
func (_u *LearningProgramUpdate) Where(ps ...predicate.LearningProgram) *LearningProgramUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningProgramUpdate) SetTitle(v string) *LearningProgramUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningProgramUpdate) SetNillableTitle(v *string) *LearningProgramUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *LearningProgramUpdate) SetSummary(v string) *LearningProgramUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *LearningProgramUpdate) SetNillableSummary(v *string) *LearningProgramUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningProgramUpdate) SetStatus(v string) *LearningProgramUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningProgramUpdate) SetNillableStatus(v *string) *LearningProgramUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkillProfile sets the "skill_profile" field.
func (_u *LearningProgramUpdate) SetSkillProfile(v string) *LearningProgramUpdate {
	_u.mutation.SetSkillProfile(v)
	return _u
}

// SetNillableSkillProfile sets the "skill_profile" field if the given value is not nil.
func (_u *LearningProgramUpdate) SetNillableSkillProfile(v *string) *LearningProgramUpdate {
	if v != nil {
		_u.SetSkillProfile(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningProgramUpdate) SetUpdatedAt(v time.Time) *LearningProgramUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningProgramMutation object of the builder.
func (_u *LearningProgramUpdate) Mutation() *LearningProgramMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningProgramUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningProgramUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningProgramUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningProgramUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningProgramUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningprogram.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearningProgramUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningprogram.Table, learningprogram.Columns, sqlgraph.NewFieldSpec(learningprogram.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningprogram.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(learningprogram.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningprogram.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillProfile(); ok {
		_spec.SetField(learningprogram.FieldSkillProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningprogram.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningprogram.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningProgramUpdateOne is the builder for updating a single LearningProgram entity.
type LearningProgramUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningProgramMutation
}

// SetTitle sets the "title" field.
func (_u *LearningProgramUpdateOne) SetTitle(v string) *LearningProgramUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningProgramUpdateOne) SetNillableTitle(v *string) *LearningProgramUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *LearningProgramUpdateOne) SetSummary(v string) *LearningProgramUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *LearningProgramUpdateOne) SetNillableSummary(v *string) *LearningProgramUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningProgramUpdateOne) SetStatus(v string) *LearningProgramUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningProgramUpdateOne) SetNillableStatus(v *string) *LearningProgramUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkillProfile sets the "skill_profile" field.
func (_u *LearningProgramUpdateOne) SetSkillProfile(v string) *LearningProgramUpdateOne {
	_u.mutation.SetSkillProfile(v)
	return _u
}

// SetNillableSkillProfile sets the "skill_profile" field if the given value is not nil.
func (_u *LearningProgramUpdateOne) SetNillableSkillProfile(v *string) *LearningProgramUpdateOne {
	if v != nil {
		_u.SetSkillProfile(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningProgramUpdateOne) SetUpdatedAt(v time.Time) *LearningProgramUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningProgramMutation object of the builder.
func (_u *LearningProgramUpdateOne) Mutation() *LearningProgramMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningProgramUpdate builder.
func (_u *LearningProgramUpdateOne) Where(ps ...predicate.LearningProgram) *LearningProgramUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningProgramUpdateOne) Select(field string, fields ...string) *LearningProgramUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningProgram entity.
func (_u *LearningProgramUpdateOne) Save(ctx context.Context) (*LearningProgram, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningProgramUpdateOne) SaveX(ctx context.Context) *LearningProgram {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningProgramUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningProgramUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningProgramUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningprogram.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearningProgramUpdateOne) sqlSave(ctx context.Context) (_node *LearningProgram, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningprogram.Table, learningprogram.Columns, sqlgraph.NewFieldSpec(learningprogram.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningProgram.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningprogram.FieldID)
		for _, f := range fields {
			if !learningprogram.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningprogram.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningprogram.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(learningprogram.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningprogram.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillProfile(); ok {
		_spec.SetField(learningprogram.FieldSkillProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningprogram.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningProgram{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningprogram.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
