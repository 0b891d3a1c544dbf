// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/diagnosticquiz"
	"github.com/omnitutor/omnitutor/ent/schema"
)

// DiagnosticQuizCreate is the builder for creating a DiagnosticQuiz entity.
type DiagnosticQuizCreate struct {
	config
	mutation *DiagnosticQuizMutation
	hooks    []Hook
}

// SetProgramID sets the "program_id" field.
func (_c *DiagnosticQuizCreate) SetProgramID(v string) *DiagnosticQuizCreate {
	_c.mutation.SetProgramID(v)
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *DiagnosticQuizCreate) SetInstructions(v string) *DiagnosticQuizCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *DiagnosticQuizCreate) SetNillableInstructions(v *string) *DiagnosticQuizCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *DiagnosticQuizCreate) SetQuestions(v []schema.QuizQuestionData) *DiagnosticQuizCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiagnosticQuizCreate) SetCreatedAt(v time.Time) *DiagnosticQuizCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiagnosticQuizCreate) SetNillableCreatedAt(v *time.Time) *DiagnosticQuizCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosticQuizCreate) SetID(v string) *DiagnosticQuizCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DiagnosticQuizMutation object of the builder.
func (_c *DiagnosticQuizCreate) Mutation() *DiagnosticQuizMutation {
	return _c.mutation
}

// Save creates the DiagnosticQuiz in the database.
func (_c *DiagnosticQuizCreate) Save(ctx context.Context) (*DiagnosticQuiz, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosticQuizCreate) SaveX(ctx context.Context) *DiagnosticQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticQuizCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticQuizCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosticQuizCreate) defaults() {
	if _, ok := _c.mutation.Instructions(); !ok {
		v := diagnosticquiz.DefaultInstructions
		_c.mutation.SetInstructions(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diagnosticquiz.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosticQuizCreate) check() error {
	if _, ok := _c.mutation.ProgramID(); !ok {
		return &ValidationError{Name: "program_id", err: errors.New(`ent: missing required field "DiagnosticQuiz.program_id"`)}
	}
	if _, ok := _c.mutation.Instructions(); !ok {
		return &ValidationError{Name: "instructions", err: errors.New(`ent: missing required field "DiagnosticQuiz.instructions"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "DiagnosticQuiz.questions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DiagnosticQuiz.created_at"`)}
	}
	return nil
}

func (_c *DiagnosticQuizCreate) sqlSave(ctx context.Context) (*DiagnosticQuiz, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DiagnosticQuiz.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagnosticQuizCreate) createSpec() (*DiagnosticQuiz, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosticQuiz{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosticquiz.Table, sqlgraph.NewFieldSpec(diagnosticquiz.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProgramID(); ok {
		_spec.SetField(diagnosticquiz.FieldProgramID, field.TypeString, value)
		_node.ProgramID = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(diagnosticquiz.FieldInstructions, field.TypeString, value)
		_node.Instructions = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(diagnosticquiz.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diagnosticquiz.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DiagnosticQuizCreateBulk is the builder for creating many DiagnosticQuiz entities in bulk.
type DiagnosticQuizCreateBulk struct {
	config
	err      error
	builders []*DiagnosticQuizCreate
}

// Save creates the DiagnosticQuiz entities in the database.
func (_c *DiagnosticQuizCreateBulk) Save(ctx context.Context) ([]*DiagnosticQuiz, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosticQuiz, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosticQuizMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiagnosticQuizCreateBulk) SaveX(ctx context.Context) []*DiagnosticQuiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticQuizCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticQuizCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
