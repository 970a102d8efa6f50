package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered question within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Catalog question answered"),
		field.String("topic").
			Optional().
			Comment("Question topic tag, if any"),
		field.String("grade").
			NotEmpty().
			Comment("Question grade band"),
		field.String("choice").
			NotEmpty().
			Comment("Choice key the learner picked, or 'timeout'"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Float("time_secs").
			Comment("Seconds taken to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
