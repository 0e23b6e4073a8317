package goals

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mentora/internal/llm"
	"github.com/abhisek/mentora/internal/store"
)

func TestStarRating(t *testing.T) {
	cases := []struct {
		accuracy int
		want     int
	}{
		{85, 3},
		{80, 3},
		{65, 2},
		{60, 2},
		{40, 1},
		{0, 1},
	}
	for _, tc := range cases {
		if got := starRating(tc.accuracy); got != tc.want {
			t.Errorf("starRating(%d) = %d, want %d", tc.accuracy, got, tc.want)
		}
	}
}

func TestSessionSummary_FullReport(t *testing.T) {
	repos := newFakeRepos()
	repos.topics["t1"] = store.Topic{ID: "t1", Title: "Photosynthesis"}
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Title: "Basics", Order: 1},
		{ID: "g2", TopicID: "t1", Title: "Light reactions", Order: 2},
	}
	completed := time.Now()
	started := completed.Add(-30 * time.Minute)
	repos.progress["u1_t1"] = &store.GoalProgress{
		UserID: "u1", TopicID: "t1",
		CompletedGoals: []string{"g1", "g2"},
		Performances: map[string]store.GoalPerformance{
			"g1": {TotalQuestions: 2, CorrectAnswers: 2, AccuracyPercent: 100},
			"g2": {TotalQuestions: 2, CorrectAnswers: 1, AccuracyPercent: 50},
		},
		TotalQuestions: 4, CorrectAnswers: 3, AccuracyPercent: 75,
		Status:      store.StatusCompleted,
		StartedAt:   started,
		CompletedAt: &completed,
	}

	b, _ := json.Marshal(map[string]any{"recommendations": []string{
		"Review the light reactions.",
		"Practice drawing the process.",
		"Quiz yourself tomorrow.",
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: b})
	svc := newTestService(mock, repos)

	summary, err := svc.SessionSummary(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Topic != "Photosynthesis" {
		t.Errorf("Topic = %q, want Photosynthesis", summary.Topic)
	}
	if summary.TotalGoals != 2 || summary.CompletedGoals != 2 {
		t.Errorf("goals = %d/%d, want 2/2", summary.CompletedGoals, summary.TotalGoals)
	}
	if summary.TimeSpentMinutes != 30 {
		t.Errorf("TimeSpentMinutes = %d, want 30", summary.TimeSpentMinutes)
	}
	if summary.StarRating != 2 {
		t.Errorf("StarRating = %d, want 2 at 75%%", summary.StarRating)
	}
	if len(summary.LearningGaps) != 1 || summary.LearningGaps[0] != "Light reactions" {
		t.Errorf("LearningGaps = %v, want [Light reactions]", summary.LearningGaps)
	}
	if len(summary.Recommendations) != 3 {
		t.Errorf("got %d recommendations, want 3 from LLM", len(summary.Recommendations))
	}
	if summary.Status != store.StatusCompleted {
		t.Errorf("Status = %q, want completed", summary.Status)
	}
}

func TestSessionSummary_FallbackRecommendations(t *testing.T) {
	repos := newFakeRepos()
	repos.topics["t1"] = store.Topic{ID: "t1", Title: "Gravity"}
	repos.goals["t1"] = []store.Goal{{ID: "g1", TopicID: "t1", Title: "Basics", Order: 1}}
	repos.progress["u1_t1"] = &store.GoalProgress{
		UserID: "u1", TopicID: "t1",
		CompletedGoals:  []string{"g1"},
		Performances:    map[string]store.GoalPerformance{"g1": {TotalQuestions: 2, CorrectAnswers: 1, AccuracyPercent: 50}},
		TotalQuestions:  2,
		CorrectAnswers:  1,
		AccuracyPercent: 50,
		Status:          store.StatusCompleted,
		StartedAt:       time.Now(),
	}
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	svc := newTestService(mock, repos)

	summary, err := svc.SessionSummary(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Recommendations) != 3 {
		t.Fatalf("got %d fallback recommendations, want 3", len(summary.Recommendations))
	}
	if summary.StarRating != 1 {
		t.Errorf("StarRating = %d, want 1 at 50%%", summary.StarRating)
	}
}

func TestSessionSummary_NoProgressIsError(t *testing.T) {
	repos := newFakeRepos()
	svc := newTestService(llm.NewMockProvider(), repos)

	if _, err := svc.SessionSummary(context.Background(), "u1", "t1"); err == nil {
		t.Fatal("expected error without recorded progress")
	}
}
