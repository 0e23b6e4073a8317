package goals

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mentora/internal/llm"
	"github.com/abhisek/mentora/internal/store"
)

// Accuracy below this marks a completed goal as a learning gap.
const gapThreshold = 70

// SessionSummary is the end-of-session report, derived on demand from the
// persisted progress aggregate and never stored as its own entity.
type SessionSummary struct {
	Topic            string
	TotalGoals       int
	CompletedGoals   int
	Overall          store.GoalPerformance
	TimeSpentMinutes int
	StarRating       int
	LearningGaps     []string
	Recommendations  []string
	Status           string
}

// SessionSummary computes the report for one (user, topic) pair.
func (s *Service) SessionSummary(ctx context.Context, userID, topicID string) (*SessionSummary, error) {
	progress, err := s.progress.GetProgress(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if progress == nil {
		return nil, fmt.Errorf("no progress recorded for user %s on topic %s", userID, topicID)
	}

	topic, err := s.topics.GetTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	topicTitle := topicID
	if topic != nil {
		topicTitle = topic.Title
	}

	allGoals, err := s.goals.GoalsForTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}

	end := time.Now()
	if progress.CompletedAt != nil {
		end = *progress.CompletedAt
	}

	summary := &SessionSummary{
		Topic:          topicTitle,
		TotalGoals:     len(allGoals),
		CompletedGoals: len(progress.CompletedGoals),
		Overall: store.GoalPerformance{
			TotalQuestions:  progress.TotalQuestions,
			CorrectAnswers:  progress.CorrectAnswers,
			AccuracyPercent: progress.AccuracyPercent,
		},
		TimeSpentMinutes: int(end.Sub(progress.StartedAt).Minutes()),
		StarRating:       starRating(progress.AccuracyPercent),
		LearningGaps:     learningGaps(allGoals, progress),
		Status:           progress.Status,
	}

	summary.Recommendations = s.recommendationsLLM(ctx, topicTitle, summary)
	if len(summary.Recommendations) == 0 {
		summary.Recommendations = fallbackRecommendations(topicTitle)
	}

	return summary, nil
}

func starRating(accuracyPercent int) int {
	switch {
	case accuracyPercent >= 80:
		return 3
	case accuracyPercent >= 60:
		return 2
	default:
		return 1
	}
}

// learningGaps lists the titles of goals whose recorded accuracy fell
// below the gap threshold, in goal order.
func learningGaps(allGoals []store.Goal, progress *store.GoalProgress) []string {
	var gaps []string
	for _, g := range allGoals {
		perf, ok := progress.Performances[g.ID]
		if ok && perf.AccuracyPercent < gapThreshold {
			gaps = append(gaps, g.Title)
		}
	}
	return gaps
}

func (s *Service) recommendationsLLM(ctx context.Context, topicTitle string, summary *SessionSummary) []string {
	ctx = llm.WithPurpose(ctx, "recommendations")

	gaps := "none"
	if len(summary.LearningGaps) > 0 {
		gaps = strings.Join(summary.LearningGaps, "; ")
	}
	userMsg := fmt.Sprintf(
		"Topic: %s\nAccuracy: %d%%\nGoals completed: %d of %d\nWeak areas: %s",
		topicTitle, summary.Overall.AccuracyPercent,
		summary.CompletedGoals, summary.TotalGoals, gaps,
	)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: recommendationsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      RecommendationsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil
	}

	var out struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil
	}
	return out.Recommendations
}

func fallbackRecommendations(topicTitle string) []string {
	return []string{
		"Review the areas where you made mistakes in " + topicTitle + ".",
		"Revisit this topic tomorrow to strengthen what you learned.",
		"Try explaining " + topicTitle + " to someone else in your own words.",
	}
}

const recommendationsSystemPrompt = `You are a tutor wrapping up a study session. Given the learner's results, write 3 to 5 concrete next-step study recommendations. Each one sentence, specific to the weak areas when there are any.`
