// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathcat/ent/retentionevent"
)

// RetentionEvent is the model entity for the RetentionEvent schema.
type RetentionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// reinforced, retention-slip, or flagged-for-review
	Reason string `json:"reason,omitempty"`
	// Consecutive-correct streak after applying the probe
	StreakAfter int `json:"streak_after,omitempty"`
	// StatusAfter holds the value of the "status_after" field.
	StatusAfter string `json:"status_after,omitempty"`
	// Staleness input at selection time
	DaysSincePractice float64 `json:"days_since_practice,omitempty"`
	// Selection priority at the time the probe was chosen
	Priority float64 `json:"priority,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RetentionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case retentionevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case retentionevent.FieldDaysSincePractice, retentionevent.FieldPriority:
			values[i] = new(sql.NullFloat64)
		case retentionevent.FieldID, retentionevent.FieldSequence, retentionevent.FieldStreakAfter:
			values[i] = new(sql.NullInt64)
		case retentionevent.FieldSkillID, retentionevent.FieldReason, retentionevent.FieldStatusAfter, retentionevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case retentionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RetentionEvent fields.
func (_m *RetentionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case retentionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case retentionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case retentionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case retentionevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case retentionevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case retentionevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case retentionevent.FieldStreakAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_after", values[i])
			} else if value.Valid {
				_m.StreakAfter = int(value.Int64)
			}
		case retentionevent.FieldStatusAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_after", values[i])
			} else if value.Valid {
				_m.StatusAfter = value.String
			}
		case retentionevent.FieldDaysSincePractice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field days_since_practice", values[i])
			} else if value.Valid {
				_m.DaysSincePractice = value.Float64
			}
		case retentionevent.FieldPriority:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.Float64
			}
		case retentionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RetentionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RetentionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RetentionEvent.
// Note that you need to call RetentionEvent.Unwrap() before calling this method if this RetentionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RetentionEvent) Update() *RetentionEventUpdateOne {
	return NewRetentionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RetentionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RetentionEvent) Unwrap() *RetentionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RetentionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RetentionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RetentionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("streak_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakAfter))
	builder.WriteString(", ")
	builder.WriteString("status_after=")
	builder.WriteString(_m.StatusAfter)
	builder.WriteString(", ")
	builder.WriteString("days_since_practice=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysSincePractice))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// RetentionEvents is a parsable slice of RetentionEvent.
type RetentionEvents []*RetentionEvent
