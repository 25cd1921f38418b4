// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathcat/ent/checkpoint"
	"github.com/abhisek/mathcat/ent/masteryevent"
	"github.com/abhisek/mathcat/ent/responseevent"
	"github.com/abhisek/mathcat/ent/retentionevent"
	"github.com/abhisek/mathcat/ent/schema"
	"github.com/abhisek/mathcat/ent/sessionevent"
	"github.com/abhisek/mathcat/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescTakenAt is the schema descriptor for taken_at field.
	checkpointDescTakenAt := checkpointFields[0].Descriptor()
	// checkpoint.DefaultTakenAt holds the default value on creation for the taken_at field.
	checkpoint.DefaultTakenAt = checkpointDescTakenAt.Default.(func() time.Time)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[0].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescFromStatus is the schema descriptor for from_status field.
	masteryeventDescFromStatus := masteryeventFields[1].Descriptor()
	// masteryevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	masteryevent.FromStatusValidator = masteryeventDescFromStatus.Validators[0].(func(string) error)
	// masteryeventDescToStatus is the schema descriptor for to_status field.
	masteryeventDescToStatus := masteryeventFields[2].Descriptor()
	// masteryevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	masteryevent.ToStatusValidator = masteryeventDescToStatus.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[3].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescUserID is the schema descriptor for user_id field.
	responseeventDescUserID := responseeventFields[1].Descriptor()
	// responseevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	responseevent.UserIDValidator = responseeventDescUserID.Validators[0].(func(string) error)
	// responseeventDescItemID is the schema descriptor for item_id field.
	responseeventDescItemID := responseeventFields[2].Descriptor()
	// responseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	responseevent.ItemIDValidator = responseeventDescItemID.Validators[0].(func(string) error)
	// responseeventDescSkillID is the schema descriptor for skill_id field.
	responseeventDescSkillID := responseeventFields[3].Descriptor()
	// responseevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	responseevent.SkillIDValidator = responseeventDescSkillID.Validators[0].(func(string) error)
	// responseeventDescResponseTimeSeconds is the schema descriptor for response_time_seconds field.
	responseeventDescResponseTimeSeconds := responseeventFields[7].Descriptor()
	// responseevent.DefaultResponseTimeSeconds holds the default value on creation for the response_time_seconds field.
	responseevent.DefaultResponseTimeSeconds = responseeventDescResponseTimeSeconds.Default.(float64)
	// responseeventDescSubstituted is the schema descriptor for substituted field.
	responseeventDescSubstituted := responseeventFields[8].Descriptor()
	// responseevent.DefaultSubstituted holds the default value on creation for the substituted field.
	responseevent.DefaultSubstituted = responseeventDescSubstituted.Default.(bool)
	// responseeventDescProbe is the schema descriptor for probe field.
	responseeventDescProbe := responseeventFields[9].Descriptor()
	// responseevent.DefaultProbe holds the default value on creation for the probe field.
	responseevent.DefaultProbe = responseeventDescProbe.Default.(bool)
	retentioneventMixin := schema.RetentionEvent{}.Mixin()
	retentioneventMixinFields0 := retentioneventMixin[0].Fields()
	_ = retentioneventMixinFields0
	retentioneventFields := schema.RetentionEvent{}.Fields()
	_ = retentioneventFields
	// retentioneventDescTimestamp is the schema descriptor for timestamp field.
	retentioneventDescTimestamp := retentioneventMixinFields0[1].Descriptor()
	// retentionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	retentionevent.DefaultTimestamp = retentioneventDescTimestamp.Default.(func() time.Time)
	// retentioneventDescSkillID is the schema descriptor for skill_id field.
	retentioneventDescSkillID := retentioneventFields[0].Descriptor()
	// retentionevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	retentionevent.SkillIDValidator = retentioneventDescSkillID.Validators[0].(func(string) error)
	// retentioneventDescReason is the schema descriptor for reason field.
	retentioneventDescReason := retentioneventFields[2].Descriptor()
	// retentionevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	retentionevent.ReasonValidator = retentioneventDescReason.Validators[0].(func(string) error)
	// retentioneventDescStatusAfter is the schema descriptor for status_after field.
	retentioneventDescStatusAfter := retentioneventFields[4].Descriptor()
	// retentionevent.StatusAfterValidator is a validator for the "status_after" field. It is called by the builders before save.
	retentionevent.StatusAfterValidator = retentioneventDescStatusAfter.Validators[0].(func(string) error)
	// retentioneventDescDaysSincePractice is the schema descriptor for days_since_practice field.
	retentioneventDescDaysSincePractice := retentioneventFields[5].Descriptor()
	// retentionevent.DefaultDaysSincePractice holds the default value on creation for the days_since_practice field.
	retentionevent.DefaultDaysSincePractice = retentioneventDescDaysSincePractice.Default.(float64)
	// retentioneventDescPriority is the schema descriptor for priority field.
	retentioneventDescPriority := retentioneventFields[6].Descriptor()
	// retentionevent.DefaultPriority holds the default value on creation for the priority field.
	retentionevent.DefaultPriority = retentioneventDescPriority.Default.(float64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescTheta is the schema descriptor for theta field.
	sessioneventDescTheta := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTheta holds the default value on creation for the theta field.
	sessionevent.DefaultTheta = sessioneventDescTheta.Default.(float64)
	// sessioneventDescStandardError is the schema descriptor for standard_error field.
	sessioneventDescStandardError := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultStandardError holds the default value on creation for the standard_error field.
	sessionevent.DefaultStandardError = sessioneventDescStandardError.Default.(float64)
	// sessioneventDescPercentile is the schema descriptor for percentile field.
	sessioneventDescPercentile := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultPercentile holds the default value on creation for the percentile field.
	sessionevent.DefaultPercentile = sessioneventDescPercentile.Default.(float64)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
