package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a unit of study within a chapter. Topics are created by the
// curriculum pipeline; the tutoring engine only reads them.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty().
			Unique().
			Comment("External topic identifier"),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			Default("").
			Comment("Topic body used as LLM context for goal generation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
