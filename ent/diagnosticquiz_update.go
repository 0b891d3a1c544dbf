// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/diagnosticquiz"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// DiagnosticQuizUpdate is the builder for updating DiagnosticQuiz entities.
type DiagnosticQuizUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosticQuizMutation
}

// Where appends a list predicates to the DiagnosticQuizUpdate builder.
func (_u *DiagnosticQuizUpdate) Where(ps ...predicate.DiagnosticQuiz) *DiagnosticQuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DiagnosticQuizMutation object of the builder.
func (_u *DiagnosticQuizUpdate) Mutation() *DiagnosticQuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosticQuizUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticQuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosticQuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticQuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DiagnosticQuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(diagnosticquiz.Table, diagnosticquiz.Columns, sqlgraph.NewFieldSpec(diagnosticquiz.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosticQuizUpdateOne is the builder for updating a single DiagnosticQuiz entity.
type DiagnosticQuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosticQuizMutation
}

// Mutation returns the DiagnosticQuizMutation object of the builder.
func (_u *DiagnosticQuizUpdateOne) Mutation() *DiagnosticQuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosticQuizUpdate builder.
func (_u *DiagnosticQuizUpdateOne) Where(ps ...predicate.DiagnosticQuiz) *DiagnosticQuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosticQuizUpdateOne) Select(field string, fields ...string) *DiagnosticQuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosticQuiz entity.
func (_u *DiagnosticQuizUpdateOne) Save(ctx context.Context) (*DiagnosticQuiz, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticQuizUpdateOne) SaveX(ctx context.Context) *DiagnosticQuiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosticQuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticQuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DiagnosticQuizUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosticQuiz, err error) {
	_spec := sqlgraph.NewUpdateSpec(diagnosticquiz.Table, diagnosticquiz.Columns, sqlgraph.NewFieldSpec(diagnosticquiz.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosticQuiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosticquiz.FieldID)
		for _, f := range fields {
			if !diagnosticquiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosticquiz.FieldID {
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
	_node = &DiagnosticQuiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticquiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
