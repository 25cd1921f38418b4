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
	"github.com/abhisek/mathcat/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdate) SetSessionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSessionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdate) SetUserID(v string) *ResponseEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableUserID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdate) SetItemID(v string) *ResponseEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableItemID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ResponseEventUpdate) SetSkillID(v string) *ResponseEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSkillID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ResponseEventUpdate) SetDifficulty(v float64) *ResponseEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableDifficulty(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ResponseEventUpdate) AddDifficulty(v float64) *ResponseEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *ResponseEventUpdate) SetDiscrimination(v float64) *ResponseEventUpdate {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableDiscrimination(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *ResponseEventUpdate) AddDiscrimination(v float64) *ResponseEventUpdate {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdate) SetCorrect(v bool) *ResponseEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCorrect(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (_u *ResponseEventUpdate) SetResponseTimeSeconds(v float64) *ResponseEventUpdate {
	_u.mutation.ResetResponseTimeSeconds()
	_u.mutation.SetResponseTimeSeconds(v)
	return _u
}

// SetNillableResponseTimeSeconds sets the "response_time_seconds" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableResponseTimeSeconds(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetResponseTimeSeconds(*v)
	}
	return _u
}

// AddResponseTimeSeconds adds value to the "response_time_seconds" field.
func (_u *ResponseEventUpdate) AddResponseTimeSeconds(v float64) *ResponseEventUpdate {
	_u.mutation.AddResponseTimeSeconds(v)
	return _u
}

// SetSubstituted sets the "substituted" field.
func (_u *ResponseEventUpdate) SetSubstituted(v bool) *ResponseEventUpdate {
	_u.mutation.SetSubstituted(v)
	return _u
}

// SetNillableSubstituted sets the "substituted" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSubstituted(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetSubstituted(*v)
	}
	return _u
}

// SetProbe sets the "probe" field.
func (_u *ResponseEventUpdate) SetProbe(v bool) *ResponseEventUpdate {
	_u.mutation.SetProbe(v)
	return _u
}

// SetNillableProbe sets the "probe" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableProbe(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetProbe(*v)
	}
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *ResponseEventUpdate) SetThetaAfter(v float64) *ResponseEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableThetaAfter(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *ResponseEventUpdate) AddThetaAfter(v float64) *ResponseEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetStandardErrorAfter sets the "standard_error_after" field.
func (_u *ResponseEventUpdate) SetStandardErrorAfter(v float64) *ResponseEventUpdate {
	_u.mutation.ResetStandardErrorAfter()
	_u.mutation.SetStandardErrorAfter(v)
	return _u
}

// SetNillableStandardErrorAfter sets the "standard_error_after" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableStandardErrorAfter(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetStandardErrorAfter(*v)
	}
	return _u
}

// AddStandardErrorAfter adds value to the "standard_error_after" field.
func (_u *ResponseEventUpdate) AddStandardErrorAfter(v float64) *ResponseEventUpdate {
	_u.mutation.AddStandardErrorAfter(v)
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *ResponseEventUpdate) SetQuestionNumber(v int) *ResponseEventUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionNumber(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *ResponseEventUpdate) AddQuestionNumber(v int) *ResponseEventUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := responseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := responseevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(responseevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(responseevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(responseevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(responseevent.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(responseevent.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeSeconds(); ok {
		_spec.SetField(responseevent.FieldResponseTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeSeconds(); ok {
		_spec.AddField(responseevent.FieldResponseTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Substituted(); ok {
		_spec.SetField(responseevent.FieldSubstituted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Probe(); ok {
		_spec.SetField(responseevent.FieldProbe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardErrorAfter(); ok {
		_spec.SetField(responseevent.FieldStandardErrorAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardErrorAfter(); ok {
		_spec.AddField(responseevent.FieldStandardErrorAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(responseevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(responseevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseEventUpdateOne) SetSessionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSessionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdateOne) SetUserID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableUserID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ResponseEventUpdateOne) SetItemID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableItemID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ResponseEventUpdateOne) SetSkillID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSkillID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ResponseEventUpdateOne) SetDifficulty(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableDifficulty(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ResponseEventUpdateOne) AddDifficulty(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *ResponseEventUpdateOne) SetDiscrimination(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableDiscrimination(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *ResponseEventUpdateOne) AddDiscrimination(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdateOne) SetCorrect(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCorrect(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (_u *ResponseEventUpdateOne) SetResponseTimeSeconds(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetResponseTimeSeconds()
	_u.mutation.SetResponseTimeSeconds(v)
	return _u
}

// SetNillableResponseTimeSeconds sets the "response_time_seconds" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableResponseTimeSeconds(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeSeconds(*v)
	}
	return _u
}

// AddResponseTimeSeconds adds value to the "response_time_seconds" field.
func (_u *ResponseEventUpdateOne) AddResponseTimeSeconds(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddResponseTimeSeconds(v)
	return _u
}

// SetSubstituted sets the "substituted" field.
func (_u *ResponseEventUpdateOne) SetSubstituted(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetSubstituted(v)
	return _u
}

// SetNillableSubstituted sets the "substituted" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSubstituted(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSubstituted(*v)
	}
	return _u
}

// SetProbe sets the "probe" field.
func (_u *ResponseEventUpdateOne) SetProbe(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetProbe(v)
	return _u
}

// SetNillableProbe sets the "probe" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableProbe(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetProbe(*v)
	}
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *ResponseEventUpdateOne) SetThetaAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableThetaAfter(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *ResponseEventUpdateOne) AddThetaAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// SetStandardErrorAfter sets the "standard_error_after" field.
func (_u *ResponseEventUpdateOne) SetStandardErrorAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetStandardErrorAfter()
	_u.mutation.SetStandardErrorAfter(v)
	return _u
}

// SetNillableStandardErrorAfter sets the "standard_error_after" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableStandardErrorAfter(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetStandardErrorAfter(*v)
	}
	return _u
}

// AddStandardErrorAfter adds value to the "standard_error_after" field.
func (_u *ResponseEventUpdateOne) AddStandardErrorAfter(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddStandardErrorAfter(v)
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *ResponseEventUpdateOne) SetQuestionNumber(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionNumber(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *ResponseEventUpdateOne) AddQuestionNumber(v int) *ResponseEventUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := responseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := responseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := responseevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := responseevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(responseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(responseevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(responseevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(responseevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(responseevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(responseevent.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(responseevent.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeSeconds(); ok {
		_spec.SetField(responseevent.FieldResponseTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeSeconds(); ok {
		_spec.AddField(responseevent.FieldResponseTimeSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Substituted(); ok {
		_spec.SetField(responseevent.FieldSubstituted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Probe(); ok {
		_spec.SetField(responseevent.FieldProbe, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(responseevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardErrorAfter(); ok {
		_spec.SetField(responseevent.FieldStandardErrorAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardErrorAfter(); ok {
		_spec.AddField(responseevent.FieldStandardErrorAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(responseevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(responseevent.FieldQuestionNumber, field.TypeInt, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
