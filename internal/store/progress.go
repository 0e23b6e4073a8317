package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mentora/ent"
	entprogress "github.com/abhisek/mentora/ent/goalprogress"
	entschema "github.com/abhisek/mentora/ent/schema"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) GetProgress(ctx context.Context, userID, topicID string) (*GoalProgress, error) {
	row, err := r.client.GoalProgress.Query().
		Where(
			entprogress.UserID(userID),
			entprogress.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress %s/%s: %w", userID, topicID, err)
	}
	return progressFromRow(row), nil
}

// UpdateProgress upserts the whole aggregate in one write. Goal completion
// bottoms out here, so the evaluate → complete → switch sequence leaves the
// aggregate either fully before or fully after the completion.
func (r *progressRepo) UpdateProgress(ctx context.Context, p *GoalProgress) error {
	perfs := make(map[string]entschema.PerfRecord, len(p.Performances))
	for id, perf := range p.Performances {
		perfs[id] = entschema.PerfRecord{
			TotalQuestions:  perf.TotalQuestions,
			CorrectAnswers:  perf.CorrectAnswers,
			AccuracyPercent: perf.AccuracyPercent,
			MostCommonError: perf.MostCommonError,
		}
	}

	row, err := r.client.GoalProgress.Query().
		Where(
			entprogress.UserID(p.UserID),
			entprogress.TopicID(p.TopicID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress %s/%s: %w", p.UserID, p.TopicID, err)
	}

	if row == nil {
		builder := r.client.GoalProgress.Create().
			SetUserID(p.UserID).
			SetTopicID(p.TopicID).
			SetCompletedGoals(p.CompletedGoals).
			SetPerformances(perfs).
			SetTotalQuestions(p.TotalQuestions).
			SetCorrectAnswers(p.CorrectAnswers).
			SetAccuracyPercent(p.AccuracyPercent).
			SetStatus(p.Status).
			SetSessionActive(p.SessionActive).
			SetLastAccessedAt(p.LastAccessedAt)
		if !p.StartedAt.IsZero() {
			builder = builder.SetStartedAt(p.StartedAt)
		}
		if p.CompletedAt != nil {
			builder = builder.SetCompletedAt(*p.CompletedAt)
		}
		_, err = builder.Save(ctx)
	} else {
		builder := row.Update().
			SetCompletedGoals(p.CompletedGoals).
			SetPerformances(perfs).
			SetTotalQuestions(p.TotalQuestions).
			SetCorrectAnswers(p.CorrectAnswers).
			SetAccuracyPercent(p.AccuracyPercent).
			SetStatus(p.Status).
			SetSessionActive(p.SessionActive).
			SetLastAccessedAt(p.LastAccessedAt)
		if p.CompletedAt != nil {
			builder = builder.SetCompletedAt(*p.CompletedAt)
		}
		_, err = builder.Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save progress %s/%s: %w", p.UserID, p.TopicID, err)
	}
	return nil
}

func (r *progressRepo) MarkSessionInactive(ctx context.Context, userID, topicID string) error {
	n, err := r.client.GoalProgress.Update().
		Where(
			entprogress.UserID(userID),
			entprogress.TopicID(topicID),
		).
		SetSessionActive(false).
		SetLastAccessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark session inactive %s/%s: %w", userID, topicID, err)
	}
	_ = n // zero rows is fine: no aggregate yet
	return nil
}

func progressFromRow(row *ent.GoalProgress) *GoalProgress {
	perfs := make(map[string]GoalPerformance, len(row.Performances))
	for id, perf := range row.Performances {
		perfs[id] = GoalPerformance{
			TotalQuestions:  perf.TotalQuestions,
			CorrectAnswers:  perf.CorrectAnswers,
			AccuracyPercent: perf.AccuracyPercent,
			MostCommonError: perf.MostCommonError,
		}
	}
	return &GoalProgress{
		UserID:          row.UserID,
		TopicID:         row.TopicID,
		CompletedGoals:  row.CompletedGoals,
		Performances:    perfs,
		TotalQuestions:  row.TotalQuestions,
		CorrectAnswers:  row.CorrectAnswers,
		AccuracyPercent: row.AccuracyPercent,
		Status:          row.Status,
		SessionActive:   row.SessionActive,
		StartedAt:       row.StartedAt,
		LastAccessedAt:  row.LastAccessedAt,
		CompletedAt:     row.CompletedAt,
	}
}
