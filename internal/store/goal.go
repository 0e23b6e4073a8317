package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mentora/ent"
	entgoal "github.com/abhisek/mentora/ent/goal"
)

type goalRepo struct {
	client *ent.Client
}

func (r *goalRepo) GoalsForTopic(ctx context.Context, topicID string) ([]Goal, error) {
	rows, err := r.client.Goal.Query().
		Where(entgoal.TopicID(topicID)).
		Order(ent.Asc(entgoal.FieldOrd)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query goals for topic %s: %w", topicID, err)
	}

	out := make([]Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}
	return out, nil
}

func (r *goalRepo) SaveGoals(ctx context.Context, topicID string, goals []Goal) error {
	for _, g := range goals {
		exists, err := r.client.Goal.Query().
			Where(entgoal.GoalID(g.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check goal %s: %w", g.ID, err)
		}
		if exists {
			continue
		}
		_, err = r.client.Goal.Create().
			SetGoalID(g.ID).
			SetTopicID(topicID).
			SetTitle(g.Title).
			SetDescription(g.Description).
			SetOrd(g.Order).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save goal %s: %w", g.ID, err)
		}
	}
	return nil
}

func (r *goalRepo) GetGoal(ctx context.Context, goalID string) (*Goal, error) {
	row, err := r.client.Goal.Query().
		Where(entgoal.GoalID(goalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query goal %s: %w", goalID, err)
	}
	g := goalFromRow(row)
	return &g, nil
}

func goalFromRow(row *ent.Goal) Goal {
	return Goal{
		ID:          row.GoalID,
		TopicID:     row.TopicID,
		Title:       row.Title,
		Description: row.Description,
		Order:       row.Ord,
	}
}
