// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcat/ent/retentionevent"
)

// RetentionEventCreate is the builder for creating a RetentionEvent entity.
type RetentionEventCreate struct {
	config
	mutation *RetentionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RetentionEventCreate) SetSequence(v int64) *RetentionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RetentionEventCreate) SetTimestamp(v time.Time) *RetentionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RetentionEventCreate) SetNillableTimestamp(v *time.Time) *RetentionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *RetentionEventCreate) SetSkillID(v string) *RetentionEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *RetentionEventCreate) SetCorrect(v bool) *RetentionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *RetentionEventCreate) SetReason(v string) *RetentionEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetStreakAfter sets the "streak_after" field.
func (_c *RetentionEventCreate) SetStreakAfter(v int) *RetentionEventCreate {
	_c.mutation.SetStreakAfter(v)
	return _c
}

// SetStatusAfter sets the "status_after" field.
func (_c *RetentionEventCreate) SetStatusAfter(v string) *RetentionEventCreate {
	_c.mutation.SetStatusAfter(v)
	return _c
}

// SetDaysSincePractice sets the "days_since_practice" field.
func (_c *RetentionEventCreate) SetDaysSincePractice(v float64) *RetentionEventCreate {
	_c.mutation.SetDaysSincePractice(v)
	return _c
}

// SetNillableDaysSincePractice sets the "days_since_practice" field if the given value is not nil.
func (_c *RetentionEventCreate) SetNillableDaysSincePractice(v *float64) *RetentionEventCreate {
	if v != nil {
		_c.SetDaysSincePractice(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RetentionEventCreate) SetPriority(v float64) *RetentionEventCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RetentionEventCreate) SetNillablePriority(v *float64) *RetentionEventCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RetentionEventCreate) SetSessionID(v string) *RetentionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *RetentionEventCreate) SetNillableSessionID(v *string) *RetentionEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the RetentionEventMutation object of the builder.
func (_c *RetentionEventCreate) Mutation() *RetentionEventMutation {
	return _c.mutation
}

// Save creates the RetentionEvent in the database.
func (_c *RetentionEventCreate) Save(ctx context.Context) (*RetentionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RetentionEventCreate) SaveX(ctx context.Context) *RetentionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RetentionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RetentionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RetentionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := retentionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DaysSincePractice(); !ok {
		v := retentionevent.DefaultDaysSincePractice
		_c.mutation.SetDaysSincePractice(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := retentionevent.DefaultPriority
		_c.mutation.SetPriority(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RetentionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RetentionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RetentionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "RetentionEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := retentionevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "RetentionEvent.correct"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "RetentionEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := retentionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakAfter(); !ok {
		return &ValidationError{Name: "streak_after", err: errors.New(`ent: missing required field "RetentionEvent.streak_after"`)}
	}
	if _, ok := _c.mutation.StatusAfter(); !ok {
		return &ValidationError{Name: "status_after", err: errors.New(`ent: missing required field "RetentionEvent.status_after"`)}
	}
	if v, ok := _c.mutation.StatusAfter(); ok {
		if err := retentionevent.StatusAfterValidator(v); err != nil {
			return &ValidationError{Name: "status_after", err: fmt.Errorf(`ent: validator failed for field "RetentionEvent.status_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DaysSincePractice(); !ok {
		return &ValidationError{Name: "days_since_practice", err: errors.New(`ent: missing required field "RetentionEvent.days_since_practice"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "RetentionEvent.priority"`)}
	}
	return nil
}

func (_c *RetentionEventCreate) sqlSave(ctx context.Context) (*RetentionEvent, error) {
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

func (_c *RetentionEventCreate) createSpec() (*RetentionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RetentionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(retentionevent.Table, sqlgraph.NewFieldSpec(retentionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(retentionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(retentionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(retentionevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(retentionevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(retentionevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.StreakAfter(); ok {
		_spec.SetField(retentionevent.FieldStreakAfter, field.TypeInt, value)
		_node.StreakAfter = value
	}
	if value, ok := _c.mutation.StatusAfter(); ok {
		_spec.SetField(retentionevent.FieldStatusAfter, field.TypeString, value)
		_node.StatusAfter = value
	}
	if value, ok := _c.mutation.DaysSincePractice(); ok {
		_spec.SetField(retentionevent.FieldDaysSincePractice, field.TypeFloat64, value)
		_node.DaysSincePractice = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(retentionevent.FieldPriority, field.TypeFloat64, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(retentionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// RetentionEventCreateBulk is the builder for creating many RetentionEvent entities in bulk.
type RetentionEventCreateBulk struct {
	config
	err      error
	builders []*RetentionEventCreate
}

// Save creates the RetentionEvent entities in the database.
func (_c *RetentionEventCreateBulk) Save(ctx context.Context) ([]*RetentionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RetentionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RetentionEventMutation)
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
func (_c *RetentionEventCreateBulk) SaveX(ctx context.Context) []*RetentionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RetentionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RetentionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
