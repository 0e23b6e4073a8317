package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTopicSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	topic, err := repo.GetTopic(ctx, "t-photosynthesis")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if topic != nil {
		t.Fatal("expected nil topic when none exist")
	}

	err = repo.SaveTopic(ctx, &Topic{
		ID:      "t-photosynthesis",
		Title:   "Photosynthesis",
		Content: "How plants convert light into chemical energy.",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	topic, err = repo.GetTopic(ctx, "t-photosynthesis")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if topic == nil {
		t.Fatal("expected non-nil topic")
	}
	if topic.Title != "Photosynthesis" {
		t.Errorf("title = %q, want Photosynthesis", topic.Title)
	}
}

func TestGoalSaveIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.GoalRepo()
	ctx := context.Background()

	goals := []Goal{
		{ID: "g1", TopicID: "t1", Title: "First", Order: 1},
		{ID: "g2", TopicID: "t1", Title: "Second", Order: 2},
	}
	if err := repo.SaveGoals(ctx, "t1", goals); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Second save with an overlapping goal must not duplicate.
	if err := repo.SaveGoals(ctx, "t1", goals); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := repo.GoalsForTopic(ctx, "t1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("goals = %d, want 2", len(got))
	}
	if got[0].ID != "g1" || got[1].ID != "g2" {
		t.Errorf("goal order = %s,%s, want g1,g2", got[0].ID, got[1].ID)
	}
}

func TestProgressUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.GetProgress(ctx, "u1", "t1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress when none exists")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.UpdateProgress(ctx, &GoalProgress{
		UserID:         "u1",
		TopicID:        "t1",
		CompletedGoals: []string{"g1"},
		Performances: map[string]GoalPerformance{
			"g1": {TotalQuestions: 5, CorrectAnswers: 4, AccuracyPercent: 80},
		},
		TotalQuestions:  5,
		CorrectAnswers:  4,
		AccuracyPercent: 80,
		Status:          StatusInProgress,
		SessionActive:   true,
		StartedAt:       now,
		LastAccessedAt:  now,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Update path.
	p, err = repo.GetProgress(ctx, "u1", "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.CompletedGoals = append(p.CompletedGoals, "g2")
	p.Status = StatusCompleted
	completedAt := now.Add(10 * time.Minute)
	p.CompletedAt = &completedAt
	if err := repo.UpdateProgress(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err = repo.GetProgress(ctx, "u1", "t1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if len(p.CompletedGoals) != 2 {
		t.Errorf("completed goals = %d, want 2", len(p.CompletedGoals))
	}
	if p.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", p.Status)
	}
	if p.CompletedAt == nil {
		t.Error("expected non-nil completed_at")
	}
	if p.Performances["g1"].AccuracyPercent != 80 {
		t.Errorf("g1 accuracy = %d, want 80", p.Performances["g1"].AccuracyPercent)
	}
}

func TestMarkSessionInactive(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// No aggregate yet: must not error.
	if err := repo.MarkSessionInactive(ctx, "u1", "t1"); err != nil {
		t.Fatalf("mark inactive (missing): %v", err)
	}

	now := time.Now()
	err := repo.UpdateProgress(ctx, &GoalProgress{
		UserID: "u1", TopicID: "t1",
		Status: StatusInProgress, SessionActive: true,
		StartedAt: now, LastAccessedAt: now,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.MarkSessionInactive(ctx, "u1", "t1"); err != nil {
		t.Fatalf("mark inactive: %v", err)
	}
	p, err := repo.GetProgress(ctx, "u1", "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.SessionActive {
		t.Error("session_active = true, want false")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", TopicID: "t1", Action: "start",
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "answer-eval",
		InputTokens: 10, OutputTokens: 20, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm event: %v", err)
	}

	n, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count session events: %v", err)
	}
	if n != 1 {
		t.Errorf("session events = %d, want 1", n)
	}
}
