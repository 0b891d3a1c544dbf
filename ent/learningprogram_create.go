// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/learningprogram"
)

// LearningProgramCreate is the builder for creating a LearningProgram entity.
type LearningProgramCreate struct {
	config
	mutation *LearningProgramMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *LearningProgramCreate) SetStudentID(v string) *LearningProgramCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopicPrompt sets the "topic_prompt" field.
func (_c *LearningProgramCreate) SetTopicPrompt(v string) *LearningProgramCreate {
	_c.mutation.SetTopicPrompt(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LearningProgramCreate) SetTitle(v string) *LearningProgramCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *LearningProgramCreate) SetSummary(v string) *LearningProgramCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *LearningProgramCreate) SetNillableSummary(v *string) *LearningProgramCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningProgramCreate) SetStatus(v string) *LearningProgramCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSkillProfile sets the "skill_profile" field.
func (_c *LearningProgramCreate) SetSkillProfile(v string) *LearningProgramCreate {
	_c.mutation.SetSkillProfile(v)
	return _c
}

// SetNillableSkillProfile sets the "skill_profile" field if the given value is not nil.
func (_c *LearningProgramCreate) SetNillableSkillProfile(v *string) *LearningProgramCreate {
	if v != nil {
		_c.SetSkillProfile(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningProgramCreate) SetCreatedAt(v time.Time) *LearningProgramCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningProgramCreate) SetNillableCreatedAt(v *time.Time) *LearningProgramCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningProgramCreate) SetUpdatedAt(v time.Time) *LearningProgramCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningProgramCreate) SetNillableUpdatedAt(v *time.Time) *LearningProgramCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningProgramCreate) SetID(v string) *LearningProgramCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningProgramMutation object of the builder.
func (_c *LearningProgramCreate) Mutation() *LearningProgramMutation {
	return _c.mutation
}

// Save creates the LearningProgram in the database.
func (_c *LearningProgramCreate) Save(ctx context.Context) (*LearningProgram, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningProgramCreate) SaveX(ctx context.Context) *LearningProgram {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningProgramCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningProgramCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningProgramCreate) defaults() {
	if _, ok := _c.mutation.Summary(); !ok {
		v := learningprogram.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.SkillProfile(); !ok {
		v := learningprogram.DefaultSkillProfile
		_c.mutation.SetSkillProfile(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningprogram.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningprogram.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningProgramCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "LearningProgram.student_id"`)}
	}
	if _, ok := _c.mutation.TopicPrompt(); !ok {
		return &ValidationError{Name: "topic_prompt", err: errors.New(`ent: missing required field "LearningProgram.topic_prompt"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LearningProgram.title"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "LearningProgram.summary"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningProgram.status"`)}
	}
	if _, ok := _c.mutation.SkillProfile(); !ok {
		return &ValidationError{Name: "skill_profile", err: errors.New(`ent: missing required field "LearningProgram.skill_profile"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningProgram.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningProgram.updated_at"`)}
	}
	return nil
}

func (_c *LearningProgramCreate) sqlSave(ctx context.Context) (*LearningProgram, error) {
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
			return nil, fmt.Errorf("unexpected LearningProgram.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningProgramCreate) createSpec() (*LearningProgram, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningProgram{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningprogram.Table, sqlgraph.NewFieldSpec(learningprogram.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(learningprogram.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TopicPrompt(); ok {
		_spec.SetField(learningprogram.FieldTopicPrompt, field.TypeString, value)
		_node.TopicPrompt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(learningprogram.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(learningprogram.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningprogram.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkillProfile(); ok {
		_spec.SetField(learningprogram.FieldSkillProfile, field.TypeString, value)
		_node.SkillProfile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningprogram.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningprogram.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningProgramCreateBulk is the builder for creating many LearningProgram entities in bulk.
type LearningProgramCreateBulk struct {
	config
	err      error
	builders []*LearningProgramCreate
}

// Save creates the LearningProgram entities in the database.
func (_c *LearningProgramCreateBulk) Save(ctx context.Context) ([]*LearningProgram, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningProgram, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningProgramMutation)
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
func (_c *LearningProgramCreateBulk) SaveX(ctx context.Context) []*LearningProgram {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningProgramCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningProgramCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
