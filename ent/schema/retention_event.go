package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RetentionEvent records the outcome of a retention probe against a
// previously mastered skill.
type RetentionEvent struct {
	ent.Schema
}

func (RetentionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RetentionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty(),
		field.Bool("correct"),
		field.String("reason").
			NotEmpty().
			Comment("reinforced, retention-slip, or flagged-for-review"),
		field.Int("streak_after").
			Comment("Consecutive-correct streak after applying the probe"),
		field.String("status_after").NotEmpty(),
		field.Float("days_since_practice").
			Default(0).
			Comment("Staleness input at selection time"),
		field.Float("priority").
			Default(0).
			Comment("Selection priority at the time the probe was chosen"),
		field.String("session_id").Optional(),
	}
}

func (RetentionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
		index.Fields("correct"),
	}
}
