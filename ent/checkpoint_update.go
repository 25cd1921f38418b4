// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcat/ent/checkpoint"
	"github.com/abhisek/mathcat/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *CheckpointUpdate) SetTakenAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableTakenAt(v *time.Time) *CheckpointUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *CheckpointUpdate) SetTheta(v float64) *CheckpointUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableTheta(v *float64) *CheckpointUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *CheckpointUpdate) AddTheta(v float64) *CheckpointUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetMastered sets the "mastered" field.
func (_u *CheckpointUpdate) SetMastered(v []string) *CheckpointUpdate {
	_u.mutation.SetMastered(v)
	return _u
}

// AppendMastered appends value to the "mastered" field.
func (_u *CheckpointUpdate) AppendMastered(v []string) *CheckpointUpdate {
	_u.mutation.AppendMastered(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointUpdate) SetSessionID(v string) *CheckpointUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableSessionID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CheckpointUpdate) ClearSessionID() *CheckpointUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(checkpoint.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(checkpoint.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(checkpoint.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastered(); ok {
		_spec.SetField(checkpoint.FieldMastered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMastered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldMastered, value)
		})
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpoint.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(checkpoint.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetTakenAt sets the "taken_at" field.
func (_u *CheckpointUpdateOne) SetTakenAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableTakenAt(v *time.Time) *CheckpointUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *CheckpointUpdateOne) SetTheta(v float64) *CheckpointUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableTheta(v *float64) *CheckpointUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *CheckpointUpdateOne) AddTheta(v float64) *CheckpointUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetMastered sets the "mastered" field.
func (_u *CheckpointUpdateOne) SetMastered(v []string) *CheckpointUpdateOne {
	_u.mutation.SetMastered(v)
	return _u
}

// AppendMastered appends value to the "mastered" field.
func (_u *CheckpointUpdateOne) AppendMastered(v []string) *CheckpointUpdateOne {
	_u.mutation.AppendMastered(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointUpdateOne) SetSessionID(v string) *CheckpointUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableSessionID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CheckpointUpdateOne) ClearSessionID() *CheckpointUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(checkpoint.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(checkpoint.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(checkpoint.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastered(); ok {
		_spec.SetField(checkpoint.FieldMastered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMastered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldMastered, value)
		})
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpoint.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(checkpoint.FieldSessionID, field.TypeString)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
