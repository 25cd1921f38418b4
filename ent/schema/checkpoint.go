package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint captures the mastered-skill set after a completed session,
// enabling retention comparisons across assessments.
type Checkpoint struct {
	ent.Schema
}

func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.Time("taken_at").
			Default(time.Now).
			Comment("When the checkpoint was recorded"),
		field.Float("theta").
			Comment("Ability estimate at checkpoint time"),
		field.JSON("mastered", []string{}).
			Comment("Sorted skill IDs with mastered status"),
		field.String("session_id").Optional(),
	}
}

func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
	}
}
