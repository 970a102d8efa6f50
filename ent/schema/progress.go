package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the persisted per-question attempt record. One row per
// catalog question the learner has attempted (or explicitly reset).
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique().
			Comment("Catalog question id"),
		field.Int("attempts").
			Default(0).
			Comment("Lifetime attempt count"),
		field.Int("correct_count").
			Default(0).
			Comment("Lifetime correct answers"),
		field.Int("incorrect_count").
			Default(0).
			Comment("Lifetime incorrect answers"),
		field.Time("last_attempted").
			Default(time.Now).
			Comment("When the question was last answered"),
		field.String("mastery").
			Default("new").
			Comment("new, learning, or mastered"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("mastery"),
	}
}
