package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a single assessment question cached per goal.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique(),
		field.String("goal_id").
			NotEmpty(),
		field.Text("text").
			NotEmpty(),
		field.Text("answer").
			NotEmpty().
			Comment("Expected answer used for evaluation"),
		field.String("difficulty").
			Default("easy").
			Comment("easy, medium or hard"),
		field.Int("position").
			Comment("Stable ordering within the goal's batch"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id"),
		index.Fields("goal_id", "position"),
	}
}
