// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/lessonattempt"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// LessonAttemptUpdate is the builder for updating LessonAttempt entities.
type LessonAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *LessonAttemptMutation
}

// Where appends a list predicates to the LessonAttemptUpdate builder.
func (_u *LessonAttemptUpdate) Where(ps ...predicate.LessonAttempt) *LessonAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LessonAttemptMutation object of the builder.
func (_u *LessonAttemptUpdate) Mutation() *LessonAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonattempt.Table, lessonattempt.Columns, sqlgraph.NewFieldSpec(lessonattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(lessonattempt.FieldAnswers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonAttemptUpdateOne is the builder for updating a single LessonAttempt entity.
type LessonAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonAttemptMutation
}

// Mutation returns the LessonAttemptMutation object of the builder.
func (_u *LessonAttemptUpdateOne) Mutation() *LessonAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonAttemptUpdate builder.
func (_u *LessonAttemptUpdateOne) Where(ps ...predicate.LessonAttempt) *LessonAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonAttemptUpdateOne) Select(field string, fields ...string) *LessonAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonAttempt entity.
func (_u *LessonAttemptUpdateOne) Save(ctx context.Context) (*LessonAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonAttemptUpdateOne) SaveX(ctx context.Context) *LessonAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LessonAttemptUpdateOne) sqlSave(ctx context.Context) (_node *LessonAttempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonattempt.Table, lessonattempt.Columns, sqlgraph.NewFieldSpec(lessonattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonattempt.FieldID)
		for _, f := range fields {
			if !lessonattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonattempt.FieldID {
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
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(lessonattempt.FieldAnswers, field.TypeJSON)
	}
	_node = &LessonAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
