// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omnitutor/omnitutor/ent/lessonattempt"
)

// LessonAttemptCreate is the builder for creating a LessonAttempt entity.
type LessonAttemptCreate struct {
	config
	mutation *LessonAttemptMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LessonAttemptCreate) SetSequence(v int64) *LessonAttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *LessonAttemptCreate) SetRecordedAt(v time.Time) *LessonAttemptCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableRecordedAt(v *time.Time) *LessonAttemptCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonAttemptCreate) SetLessonID(v string) *LessonAttemptCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *LessonAttemptCreate) SetStudentID(v string) *LessonAttemptCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LessonAttemptCreate) SetStatus(v string) *LessonAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *LessonAttemptCreate) SetAnswers(v map[string]interface{}) *LessonAttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *LessonAttemptCreate) SetScore(v int) *LessonAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableScore(v *int) *LessonAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetStars sets the "stars" field.
func (_c *LessonAttemptCreate) SetStars(v int) *LessonAttemptCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableStars(v *int) *LessonAttemptCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// SetMasterySummary sets the "mastery_summary" field.
func (_c *LessonAttemptCreate) SetMasterySummary(v string) *LessonAttemptCreate {
	_c.mutation.SetMasterySummary(v)
	return _c
}

// SetNillableMasterySummary sets the "mastery_summary" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableMasterySummary(v *string) *LessonAttemptCreate {
	if v != nil {
		_c.SetMasterySummary(*v)
	}
	return _c
}

// SetReflectionPositive sets the "reflection_positive" field.
func (_c *LessonAttemptCreate) SetReflectionPositive(v string) *LessonAttemptCreate {
	_c.mutation.SetReflectionPositive(v)
	return _c
}

// SetNillableReflectionPositive sets the "reflection_positive" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableReflectionPositive(v *string) *LessonAttemptCreate {
	if v != nil {
		_c.SetReflectionPositive(*v)
	}
	return _c
}

// SetReflectionNegative sets the "reflection_negative" field.
func (_c *LessonAttemptCreate) SetReflectionNegative(v string) *LessonAttemptCreate {
	_c.mutation.SetReflectionNegative(v)
	return _c
}

// SetNillableReflectionNegative sets the "reflection_negative" field if the given value is not nil.
func (_c *LessonAttemptCreate) SetNillableReflectionNegative(v *string) *LessonAttemptCreate {
	if v != nil {
		_c.SetReflectionNegative(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonAttemptCreate) SetID(v string) *LessonAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonAttemptMutation object of the builder.
func (_c *LessonAttemptCreate) Mutation() *LessonAttemptMutation {
	return _c.mutation
}

// Save creates the LessonAttempt in the database.
func (_c *LessonAttemptCreate) Save(ctx context.Context) (*LessonAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonAttemptCreate) SaveX(ctx context.Context) *LessonAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonAttemptCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := lessonattempt.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := lessonattempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Stars(); !ok {
		v := lessonattempt.DefaultStars
		_c.mutation.SetStars(v)
	}
	if _, ok := _c.mutation.MasterySummary(); !ok {
		v := lessonattempt.DefaultMasterySummary
		_c.mutation.SetMasterySummary(v)
	}
	if _, ok := _c.mutation.ReflectionPositive(); !ok {
		v := lessonattempt.DefaultReflectionPositive
		_c.mutation.SetReflectionPositive(v)
	}
	if _, ok := _c.mutation.ReflectionNegative(); !ok {
		v := lessonattempt.DefaultReflectionNegative
		_c.mutation.SetReflectionNegative(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonAttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonAttempt.sequence"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "LessonAttempt.recorded_at"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonAttempt.lesson_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "LessonAttempt.student_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LessonAttempt.status"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "LessonAttempt.score"`)}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "LessonAttempt.stars"`)}
	}
	if _, ok := _c.mutation.MasterySummary(); !ok {
		return &ValidationError{Name: "mastery_summary", err: errors.New(`ent: missing required field "LessonAttempt.mastery_summary"`)}
	}
	if _, ok := _c.mutation.ReflectionPositive(); !ok {
		return &ValidationError{Name: "reflection_positive", err: errors.New(`ent: missing required field "LessonAttempt.reflection_positive"`)}
	}
	if _, ok := _c.mutation.ReflectionNegative(); !ok {
		return &ValidationError{Name: "reflection_negative", err: errors.New(`ent: missing required field "LessonAttempt.reflection_negative"`)}
	}
	return nil
}

func (_c *LessonAttemptCreate) sqlSave(ctx context.Context) (*LessonAttempt, error) {
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
			return nil, fmt.Errorf("unexpected LessonAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonAttemptCreate) createSpec() (*LessonAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonattempt.Table, sqlgraph.NewFieldSpec(lessonattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessonattempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(lessonattempt.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonattempt.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(lessonattempt.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lessonattempt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(lessonattempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lessonattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(lessonattempt.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	if value, ok := _c.mutation.MasterySummary(); ok {
		_spec.SetField(lessonattempt.FieldMasterySummary, field.TypeString, value)
		_node.MasterySummary = value
	}
	if value, ok := _c.mutation.ReflectionPositive(); ok {
		_spec.SetField(lessonattempt.FieldReflectionPositive, field.TypeString, value)
		_node.ReflectionPositive = value
	}
	if value, ok := _c.mutation.ReflectionNegative(); ok {
		_spec.SetField(lessonattempt.FieldReflectionNegative, field.TypeString, value)
		_node.ReflectionNegative = value
	}
	return _node, _spec
}

// LessonAttemptCreateBulk is the builder for creating many LessonAttempt entities in bulk.
type LessonAttemptCreateBulk struct {
	config
	err      error
	builders []*LessonAttemptCreate
}

// Save creates the LessonAttempt entities in the database.
func (_c *LessonAttemptCreateBulk) Save(ctx context.Context) ([]*LessonAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonAttemptMutation)
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
func (_c *LessonAttemptCreateBulk) SaveX(ctx context.Context) []*LessonAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
