// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "mastered", Type: field.TypeJSON},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_taken_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "standard_error", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "discrimination", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_time_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "substituted", Type: field.TypeBool, Default: false},
		{Name: "probe", Type: field.TypeBool, Default: false},
		{Name: "theta_after", Type: field.TypeFloat64},
		{Name: "standard_error_after", Type: field.TypeFloat64},
		{Name: "question_number", Type: field.TypeInt},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[6]},
			},
			{
				Name:    "responseevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
			{
				Name:    "responseevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[9]},
			},
		},
	}
	// RetentionEventsColumns holds the columns for the "retention_events" table.
	RetentionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "reason", Type: field.TypeString},
		{Name: "streak_after", Type: field.TypeInt},
		{Name: "status_after", Type: field.TypeString},
		{Name: "days_since_practice", Type: field.TypeFloat64, Default: 0},
		{Name: "priority", Type: field.TypeFloat64, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// RetentionEventsTable holds the schema information for the "retention_events" table.
	RetentionEventsTable = &schema.Table{
		Name:       "retention_events",
		Columns:    RetentionEventsColumns,
		PrimaryKey: []*schema.Column{RetentionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "retentionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RetentionEventsColumns[1]},
			},
			{
				Name:    "retentionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RetentionEventsColumns[2]},
			},
			{
				Name:    "retentionevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{RetentionEventsColumns[3]},
			},
			{
				Name:    "retentionevent_correct",
				Unique:  false,
				Columns: []*schema.Column{RetentionEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "stop_reason", Type: field.TypeString, Nullable: true},
		{Name: "theta", Type: field.TypeFloat64, Default: 0},
		{Name: "standard_error", Type: field.TypeFloat64, Default: 0},
		{Name: "percentile", Type: field.TypeFloat64, Default: 0},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		MasteryEventsTable,
		ResponseEventsTable,
		RetentionEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
