// Code generated by ent, DO NOT EDIT.

package retentionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathcat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldSkillID, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldCorrect, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldReason, v))
}

// StreakAfter applies equality check predicate on the "streak_after" field. It's identical to StreakAfterEQ.
func StreakAfter(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldStreakAfter, v))
}

// StatusAfter applies equality check predicate on the "status_after" field. It's identical to StatusAfterEQ.
func StatusAfter(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldStatusAfter, v))
}

// DaysSincePractice applies equality check predicate on the "days_since_practice" field. It's identical to DaysSincePracticeEQ.
func DaysSincePractice(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldDaysSincePractice, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldPriority, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContainsFold(FieldReason, v))
}

// StreakAfterEQ applies the EQ predicate on the "streak_after" field.
func StreakAfterEQ(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldStreakAfter, v))
}

// StreakAfterNEQ applies the NEQ predicate on the "streak_after" field.
func StreakAfterNEQ(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldStreakAfter, v))
}

// StreakAfterIn applies the In predicate on the "streak_after" field.
func StreakAfterIn(vs ...int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldStreakAfter, vs...))
}

// StreakAfterNotIn applies the NotIn predicate on the "streak_after" field.
func StreakAfterNotIn(vs ...int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldStreakAfter, vs...))
}

// StreakAfterGT applies the GT predicate on the "streak_after" field.
func StreakAfterGT(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldStreakAfter, v))
}

// StreakAfterGTE applies the GTE predicate on the "streak_after" field.
func StreakAfterGTE(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldStreakAfter, v))
}

// StreakAfterLT applies the LT predicate on the "streak_after" field.
func StreakAfterLT(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldStreakAfter, v))
}

// StreakAfterLTE applies the LTE predicate on the "streak_after" field.
func StreakAfterLTE(v int) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldStreakAfter, v))
}

// StatusAfterEQ applies the EQ predicate on the "status_after" field.
func StatusAfterEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldStatusAfter, v))
}

// StatusAfterNEQ applies the NEQ predicate on the "status_after" field.
func StatusAfterNEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldStatusAfter, v))
}

// StatusAfterIn applies the In predicate on the "status_after" field.
func StatusAfterIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldStatusAfter, vs...))
}

// StatusAfterNotIn applies the NotIn predicate on the "status_after" field.
func StatusAfterNotIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldStatusAfter, vs...))
}

// StatusAfterGT applies the GT predicate on the "status_after" field.
func StatusAfterGT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldStatusAfter, v))
}

// StatusAfterGTE applies the GTE predicate on the "status_after" field.
func StatusAfterGTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldStatusAfter, v))
}

// StatusAfterLT applies the LT predicate on the "status_after" field.
func StatusAfterLT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldStatusAfter, v))
}

// StatusAfterLTE applies the LTE predicate on the "status_after" field.
func StatusAfterLTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldStatusAfter, v))
}

// StatusAfterContains applies the Contains predicate on the "status_after" field.
func StatusAfterContains(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContains(FieldStatusAfter, v))
}

// StatusAfterHasPrefix applies the HasPrefix predicate on the "status_after" field.
func StatusAfterHasPrefix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasPrefix(FieldStatusAfter, v))
}

// StatusAfterHasSuffix applies the HasSuffix predicate on the "status_after" field.
func StatusAfterHasSuffix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasSuffix(FieldStatusAfter, v))
}

// StatusAfterEqualFold applies the EqualFold predicate on the "status_after" field.
func StatusAfterEqualFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEqualFold(FieldStatusAfter, v))
}

// StatusAfterContainsFold applies the ContainsFold predicate on the "status_after" field.
func StatusAfterContainsFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContainsFold(FieldStatusAfter, v))
}

// DaysSincePracticeEQ applies the EQ predicate on the "days_since_practice" field.
func DaysSincePracticeEQ(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldDaysSincePractice, v))
}

// DaysSincePracticeNEQ applies the NEQ predicate on the "days_since_practice" field.
func DaysSincePracticeNEQ(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldDaysSincePractice, v))
}

// DaysSincePracticeIn applies the In predicate on the "days_since_practice" field.
func DaysSincePracticeIn(vs ...float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldDaysSincePractice, vs...))
}

// DaysSincePracticeNotIn applies the NotIn predicate on the "days_since_practice" field.
func DaysSincePracticeNotIn(vs ...float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldDaysSincePractice, vs...))
}

// DaysSincePracticeGT applies the GT predicate on the "days_since_practice" field.
func DaysSincePracticeGT(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldDaysSincePractice, v))
}

// DaysSincePracticeGTE applies the GTE predicate on the "days_since_practice" field.
func DaysSincePracticeGTE(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldDaysSincePractice, v))
}

// DaysSincePracticeLT applies the LT predicate on the "days_since_practice" field.
func DaysSincePracticeLT(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldDaysSincePractice, v))
}

// DaysSincePracticeLTE applies the LTE predicate on the "days_since_practice" field.
func DaysSincePracticeLTE(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldDaysSincePractice, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v float64) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldPriority, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RetentionEvent) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RetentionEvent) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RetentionEvent) predicate.RetentionEvent {
	return predicate.RetentionEvent(sql.NotPredicates(p))
}
