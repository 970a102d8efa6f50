// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *ProgressCreate) SetQuestionID(v string) *ProgressCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ProgressCreate) SetAttempts(v int) *ProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableAttempts(v *int) *ProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ProgressCreate) SetCorrectCount(v int) *ProgressCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCorrectCount(v *int) *ProgressCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *ProgressCreate) SetIncorrectCount(v int) *ProgressCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableIncorrectCount(v *int) *ProgressCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// SetLastAttempted sets the "last_attempted" field.
func (_c *ProgressCreate) SetLastAttempted(v time.Time) *ProgressCreate {
	_c.mutation.SetLastAttempted(v)
	return _c
}

// SetNillableLastAttempted sets the "last_attempted" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastAttempted(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetLastAttempted(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *ProgressCreate) SetMastery(v string) *ProgressCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableMastery(v *string) *ProgressCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := progress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := progress.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := progress.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
	if _, ok := _c.mutation.LastAttempted(); !ok {
		v := progress.DefaultLastAttempted()
		_c.mutation.SetLastAttempted(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := progress.DefaultMastery
		_c.mutation.SetMastery(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Progress.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := progress.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Progress.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Progress.attempts"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Progress.correct_count"`)}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "Progress.incorrect_count"`)}
	}
	if _, ok := _c.mutation.LastAttempted(); !ok {
		return &ValidationError{Name: "last_attempted", err: errors.New(`ent: missing required field "Progress.last_attempted"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Progress.mastery"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(progress.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(progress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(progress.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(progress.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := _c.mutation.LastAttempted(); ok {
		_spec.SetField(progress.FieldLastAttempted, field.TypeTime, value)
		_node.LastAttempted = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(progress.FieldMastery, field.TypeString, value)
		_node.Mastery = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
