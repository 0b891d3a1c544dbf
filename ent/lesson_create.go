// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/lesson"
	"github.com/omnitutor/omnitutor/ent/schema"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetProgramID sets the "program_id" field.
func (_c *LessonCreate) SetProgramID(v string) *LessonCreate {
	_c.mutation.SetProgramID(v)
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *LessonCreate) SetChapter(v string) *LessonCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_c *LessonCreate) SetNillableChapter(v *string) *LessonCreate {
	if v != nil {
		_c.SetChapter(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *LessonCreate) SetOrderIndex(v int) *LessonCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContentMarkdown sets the "content_markdown" field.
func (_c *LessonCreate) SetContentMarkdown(v string) *LessonCreate {
	_c.mutation.SetContentMarkdown(v)
	return _c
}

// SetObjectives sets the "objectives" field.
func (_c *LessonCreate) SetObjectives(v []string) *LessonCreate {
	_c.mutation.SetObjectives(v)
	return _c
}

// SetMethodPlan sets the "method_plan" field.
func (_c *LessonCreate) SetMethodPlan(v []schema.MethodStepData) *LessonCreate {
	_c.mutation.SetMethodPlan(v)
	return _c
}

// SetPracticePrompts sets the "practice_prompts" field.
func (_c *LessonCreate) SetPracticePrompts(v []schema.PracticePromptData) *LessonCreate {
	_c.mutation.SetPracticePrompts(v)
	return _c
}

// SetAssessment sets the "assessment" field.
func (_c *LessonCreate) SetAssessment(v schema.AssessmentData) *LessonCreate {
	_c.mutation.SetAssessment(v)
	return _c
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_c *LessonCreate) SetEstimatedMinutes(v int) *LessonCreate {
	_c.mutation.SetEstimatedMinutes(v)
	return _c
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_c *LessonCreate) SetNillableEstimatedMinutes(v *int) *LessonCreate {
	if v != nil {
		_c.SetEstimatedMinutes(*v)
	}
	return _c
}

// SetResources sets the "resources" field.
func (_c *LessonCreate) SetResources(v []schema.ResourceData) *LessonCreate {
	_c.mutation.SetResources(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonCreate) SetCreatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableCreatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v string) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.Chapter(); !ok {
		v := lesson.DefaultChapter
		_c.mutation.SetChapter(v)
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		v := lesson.DefaultEstimatedMinutes
		_c.mutation.SetEstimatedMinutes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lesson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.ProgramID(); !ok {
		return &ValidationError{Name: "program_id", err: errors.New(`ent: missing required field "Lesson.program_id"`)}
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required field "Lesson.chapter"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Lesson.order_index"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if _, ok := _c.mutation.ContentMarkdown(); !ok {
		return &ValidationError{Name: "content_markdown", err: errors.New(`ent: missing required field "Lesson.content_markdown"`)}
	}
	if _, ok := _c.mutation.Assessment(); !ok {
		return &ValidationError{Name: "assessment", err: errors.New(`ent: missing required field "Lesson.assessment"`)}
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "Lesson.estimated_minutes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lesson.created_at"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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
			return nil, fmt.Errorf("unexpected Lesson.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProgramID(); ok {
		_spec.SetField(lesson.FieldProgramID, field.TypeString, value)
		_node.ProgramID = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(lesson.FieldChapter, field.TypeString, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(lesson.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ContentMarkdown(); ok {
		_spec.SetField(lesson.FieldContentMarkdown, field.TypeString, value)
		_node.ContentMarkdown = value
	}
	if value, ok := _c.mutation.Objectives(); ok {
		_spec.SetField(lesson.FieldObjectives, field.TypeJSON, value)
		_node.Objectives = value
	}
	if value, ok := _c.mutation.MethodPlan(); ok {
		_spec.SetField(lesson.FieldMethodPlan, field.TypeJSON, value)
		_node.MethodPlan = value
	}
	if value, ok := _c.mutation.PracticePrompts(); ok {
		_spec.SetField(lesson.FieldPracticePrompts, field.TypeJSON, value)
		_node.PracticePrompts = value
	}
	if value, ok := _c.mutation.Assessment(); ok {
		_spec.SetField(lesson.FieldAssessment, field.TypeJSON, value)
		_node.Assessment = value
	}
	if value, ok := _c.mutation.EstimatedMinutes(); ok {
		_spec.SetField(lesson.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := _c.mutation.Resources(); ok {
		_spec.SetField(lesson.FieldResources, field.TypeJSON, value)
		_node.Resources = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
