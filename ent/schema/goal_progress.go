package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerfRecord is the serialized per-goal performance stored inside a
// GoalProgress row.
type PerfRecord struct {
	TotalQuestions  int    `json:"total_questions"`
	CorrectAnswers  int    `json:"correct_answers"`
	AccuracyPercent int    `json:"accuracy_percent"`
	MostCommonError string `json:"most_common_error,omitempty"`
}

// GoalProgress aggregates a learner's progress through one topic's goals.
// One row per (user, topic).
type GoalProgress struct {
	ent.Schema
}

func (GoalProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.JSON("completed_goals", []string{}).
			Optional().
			Comment("Goal IDs completed so far; each appears at most once"),
		field.JSON("performances", map[string]PerfRecord{}).
			Optional().
			Comment("Recorded performance keyed by goal ID"),
		field.Int("total_questions").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("accuracy_percent").
			Default(0).
			Comment("round(correct/total*100), recomputed on every completion"),
		field.String("status").
			Default("in_progress").
			Comment("in_progress or completed"),
		field.Bool("session_active").
			Default(false).
			Comment("Cleared by the registry sweep when a session goes idle"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_accessed_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (GoalProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
	}
}
