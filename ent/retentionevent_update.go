// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcat/ent/predicate"
	"github.com/abhisek/mathcat/ent/retentionevent"
)

// RetentionEventUpdate is the builder for updating RetentionEvent entities.
type RetentionEventUpdate struct {
	config
	hooks    []Hook
	mutation *RetentionEventMutation
}

// Where appends a list predicates to the RetentionEventUpdate builder.
func (_u *RetentionEventUpdate) Where(ps ...predicate.RetentionEvent) *RetentionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *RetentionEventUpdate) SetSkillID(v string) *RetentionEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableSkillID(v *string) *RetentionEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *RetentionEventUpdate) SetCorrect(v bool) *RetentionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableCorrect(v *bool) *RetentionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *RetentionEventUpdate) SetReason(v string) *RetentionEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableReason(v *string) *RetentionEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *RetentionEventUpdate) SetStreakAfter(v int) *RetentionEventUpdate {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableStreakAfter(v *int) *RetentionEventUpdate {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *RetentionEventUpdate) AddStreakAfter(v int) *RetentionEventUpdate {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetStatusAfter sets the "status_after" field.
func (_u *RetentionEventUpdate) SetStatusAfter(v string) *RetentionEventUpdate {
	_u.mutation.SetStatusAfter(v)
	return _u
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableStatusAfter(v *string) *RetentionEventUpdate {
	if v != nil {
		_u.SetStatusAfter(*v)
	}
	return _u
}

// SetDaysSincePractice sets the "days_since_practice" field.
func (_u *RetentionEventUpdate) SetDaysSincePractice(v float64) *RetentionEventUpdate {
	_u.mutation.ResetDaysSincePractice()
	_u.mutation.SetDaysSincePractice(v)
	return _u
}

// SetNillableDaysSincePractice sets the "days_since_practice" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableDaysSincePractice(v *float64) *RetentionEventUpdate {
	if v != nil {
		_u.SetDaysSincePractice(*v)
	}
	return _u
}

// AddDaysSincePractice adds value to the "days_since_practice" field.
func (_u *RetentionEventUpdate) AddDaysSincePractice(v float64) *RetentionEventUpdate {
	_u.mutation.AddDaysSincePractice(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RetentionEventUpdate) SetPriority(v float64) *RetentionEventUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillablePriority(v *float64) *RetentionEventUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RetentionEventUpdate) AddPriority(v float64) *RetentionEventUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RetentionEventUpdate) SetSessionID(v string) *RetentionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RetentionEventUpdate) SetNillableSessionID(v *string) *RetentionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RetentionEventUpdate) ClearSessionID() *RetentionEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the RetentionEventMutation object of the builder.
func (_u *RetentionEventUpdate) Mutation() *RetentionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RetentionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetentionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RetentionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetentionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RetentionEventUpdate) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := retentionevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := retentionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusAfter(); ok {
		if err := retentionevent.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.status_after": %w`, err)}
		}
	}
	return nil
}

func (_u *RetentionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(retentionevent.Table, retentionevent.Columns, sqlgraph.NewFieldSpec(retentionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(retentionevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(retentionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(retentionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(retentionevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(retentionevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusAfter(); ok {
		_spec.SetField(retentionevent.FieldStatusAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.DaysSincePractice(); ok {
		_spec.SetField(retentionevent.FieldDaysSincePractice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDaysSincePractice(); ok {
		_spec.AddField(retentionevent.FieldDaysSincePractice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(retentionevent.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(retentionevent.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(retentionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(retentionevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retentionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RetentionEventUpdateOne is the builder for updating a single RetentionEvent entity.
type RetentionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RetentionEventMutation
}

// SetSkillID sets the "skill_id" field.
func (_u *RetentionEventUpdateOne) SetSkillID(v string) *RetentionEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableSkillID(v *string) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *RetentionEventUpdateOne) SetCorrect(v bool) *RetentionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableCorrect(v *bool) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *RetentionEventUpdateOne) SetReason(v string) *RetentionEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableReason(v *string) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *RetentionEventUpdateOne) SetStreakAfter(v int) *RetentionEventUpdateOne {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableStreakAfter(v *int) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *RetentionEventUpdateOne) AddStreakAfter(v int) *RetentionEventUpdateOne {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetStatusAfter sets the "status_after" field.
func (_u *RetentionEventUpdateOne) SetStatusAfter(v string) *RetentionEventUpdateOne {
	_u.mutation.SetStatusAfter(v)
	return _u
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableStatusAfter(v *string) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetStatusAfter(*v)
	}
	return _u
}

// SetDaysSincePractice sets the "days_since_practice" field.
func (_u *RetentionEventUpdateOne) SetDaysSincePractice(v float64) *RetentionEventUpdateOne {
	_u.mutation.ResetDaysSincePractice()
	_u.mutation.SetDaysSincePractice(v)
	return _u
}

// SetNillableDaysSincePractice sets the "days_since_practice" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableDaysSincePractice(v *float64) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetDaysSincePractice(*v)
	}
	return _u
}

// AddDaysSincePractice adds value to the "days_since_practice" field.
func (_u *RetentionEventUpdateOne) AddDaysSincePractice(v float64) *RetentionEventUpdateOne {
	_u.mutation.AddDaysSincePractice(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RetentionEventUpdateOne) SetPriority(v float64) *RetentionEventUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillablePriority(v *float64) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RetentionEventUpdateOne) AddPriority(v float64) *RetentionEventUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RetentionEventUpdateOne) SetSessionID(v string) *RetentionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RetentionEventUpdateOne) SetNillableSessionID(v *string) *RetentionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RetentionEventUpdateOne) ClearSessionID() *RetentionEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the RetentionEventMutation object of the builder.
func (_u *RetentionEventUpdateOne) Mutation() *RetentionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RetentionEventUpdate builder.
func (_u *RetentionEventUpdateOne) Where(ps ...predicate.RetentionEvent) *RetentionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RetentionEventUpdateOne) Select(field string, fields ...string) *RetentionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RetentionEvent entity.
func (_u *RetentionEventUpdateOne) Save(ctx context.Context) (*RetentionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetentionEventUpdateOne) SaveX(ctx context.Context) *RetentionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RetentionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetentionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RetentionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SkillID(); ok {
		if err := retentionevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := retentionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StatusAfter(); ok {
		if err := retentionevent.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.status_after": %w`, err)}
		}
	}
	return nil
}

func (_u *RetentionEventUpdateOne) sqlSave(ctx context.Context) (_node *RetentionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(retentionevent.Table, retentionevent.Columns, sqlgraph.NewFieldSpec(retentionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RetentionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, retentionevent.FieldID)
		for _, f := range fields {
			if !retentionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != retentionevent.FieldID {
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
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(retentionevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(retentionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(retentionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(retentionevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(retentionevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusAfter(); ok {
		_spec.SetField(retentionevent.FieldStatusAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.DaysSincePractice(); ok {
		_spec.SetField(retentionevent.FieldDaysSincePractice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDaysSincePractice(); ok {
		_spec.AddField(retentionevent.FieldDaysSincePractice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(retentionevent.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(retentionevent.FieldPriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(retentionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(retentionevent.FieldSessionID, field.TypeString)
	}
	_node = &RetentionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retentionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
