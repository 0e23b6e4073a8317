package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a learning objective within a topic, assessed by a fixed
// question batch. Goals are generated once per topic and never regenerated.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("goal_id").
			NotEmpty().
			Unique(),
		field.String("topic_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Int("ord").
			Comment("Position in the topic's goal sequence, starting at 1"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("topic_id", "ord"),
	}
}
