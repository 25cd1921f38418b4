package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answered item within an adaptive session.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty().
			Comment("Catalog item that was administered"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill the item assesses"),
		field.Float("difficulty").
			Comment("Item difficulty at administration time"),
		field.Float("discrimination").
			Comment("Item discrimination at administration time"),
		field.Bool("correct"),
		field.Float("response_time_seconds").
			Default(0).
			Comment("Zero when timing was not captured"),
		field.Bool("substituted").
			Default(false).
			Comment("True when invalid parameters were replaced before scoring"),
		field.Bool("probe").
			Default(false).
			Comment("True for retention probes of previously mastered skills"),
		field.Float("theta_after").
			Comment("Ability estimate after scoring this response"),
		field.Float("standard_error_after"),
		field.Int("question_number").
			Comment("1-based position within the session"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("item_id"),
		index.Fields("correct"),
	}
}
