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
	"github.com/abhisek/quizdeck/ent/predicate"
	"github.com/abhisek/quizdeck/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ProgressUpdate) SetQuestionID(v string) *ProgressUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableQuestionID(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressUpdate) SetAttempts(v int) *ProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableAttempts(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressUpdate) AddAttempts(v int) *ProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ProgressUpdate) SetCorrectCount(v int) *ProgressUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCorrectCount(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ProgressUpdate) AddCorrectCount(v int) *ProgressUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *ProgressUpdate) SetIncorrectCount(v int) *ProgressUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableIncorrectCount(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *ProgressUpdate) AddIncorrectCount(v int) *ProgressUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastAttempted sets the "last_attempted" field.
func (_u *ProgressUpdate) SetLastAttempted(v time.Time) *ProgressUpdate {
	_u.mutation.SetLastAttempted(v)
	return _u
}

// SetNillableLastAttempted sets the "last_attempted" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastAttempted(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetLastAttempted(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ProgressUpdate) SetMastery(v string) *ProgressUpdate {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableMastery(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := progress.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Progress.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(progress.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(progress.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(progress.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempted(); ok {
		_spec.SetField(progress.FieldLastAttempted, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(progress.FieldMastery, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *ProgressUpdateOne) SetQuestionID(v string) *ProgressUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableQuestionID(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressUpdateOne) SetAttempts(v int) *ProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableAttempts(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressUpdateOne) AddAttempts(v int) *ProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ProgressUpdateOne) SetCorrectCount(v int) *ProgressUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCorrectCount(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ProgressUpdateOne) AddCorrectCount(v int) *ProgressUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *ProgressUpdateOne) SetIncorrectCount(v int) *ProgressUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableIncorrectCount(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *ProgressUpdateOne) AddIncorrectCount(v int) *ProgressUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// SetLastAttempted sets the "last_attempted" field.
func (_u *ProgressUpdateOne) SetLastAttempted(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetLastAttempted(v)
	return _u
}

// SetNillableLastAttempted sets the "last_attempted" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastAttempted(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastAttempted(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ProgressUpdateOne) SetMastery(v string) *ProgressUpdateOne {
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableMastery(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := progress.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Progress.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(progress.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(progress.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(progress.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempted(); ok {
		_spec.SetField(progress.FieldLastAttempted, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(progress.FieldMastery, field.TypeString, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
