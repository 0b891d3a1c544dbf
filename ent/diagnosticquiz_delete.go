// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/diagnosticquiz"
	"github.com/omnitutor/omnitutor/ent/predicate"
)

// DiagnosticQuizDelete is the builder for deleting a DiagnosticQuiz entity.
type DiagnosticQuizDelete struct {
	config
	hooks    []Hook
	mutation *DiagnosticQuizMutation
}

// Where appends a list predicates to the DiagnosticQuizDelete builder.
func (_d *DiagnosticQuizDelete) Where(ps ...predicate.DiagnosticQuiz) *DiagnosticQuizDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiagnosticQuizDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticQuizDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiagnosticQuizDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(diagnosticquiz.Table, sqlgraph.NewFieldSpec(diagnosticquiz.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DiagnosticQuizDeleteOne is the builder for deleting a single DiagnosticQuiz entity.
type DiagnosticQuizDeleteOne struct {
	_d *DiagnosticQuizDelete
}

// Where appends a list predicates to the DiagnosticQuizDelete builder.
func (_d *DiagnosticQuizDeleteOne) Where(ps ...predicate.DiagnosticQuiz) *DiagnosticQuizDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiagnosticQuizDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{diagnosticquiz.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticQuizDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
