package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mentora/ent"
	entquestion "github.com/abhisek/mentora/ent/question"
)

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) QuestionsForGoal(ctx context.Context, goalID string) ([]Question, error) {
	rows, err := r.client.Question.Query().
		Where(entquestion.GoalID(goalID)).
		Order(ent.Asc(entquestion.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for goal %s: %w", goalID, err)
	}

	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, Question{
			ID:         row.QuestionID,
			GoalID:     row.GoalID,
			Text:       row.Text,
			Answer:     row.Answer,
			Difficulty: row.Difficulty,
			Position:   row.Position,
		})
	}
	return out, nil
}

func (r *questionRepo) SaveQuestions(ctx context.Context, goalID string, questions []Question) error {
	for _, q := range questions {
		_, err := r.client.Question.Create().
			SetQuestionID(q.ID).
			SetGoalID(goalID).
			SetText(q.Text).
			SetAnswer(q.Answer).
			SetDifficulty(q.Difficulty).
			SetPosition(q.Position).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save question %s: %w", q.ID, err)
		}
	}
	return nil
}
