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

// fakeRepos is an in-memory stand-in for the store, shared by the goal
// service tests so they don't need a database.
type fakeRepos struct {
	topics    map[string]store.Topic
	goals     map[string][]store.Goal
	questions map[string][]store.Question
	progress  map[string]*store.GoalProgress
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		topics:    make(map[string]store.Topic),
		goals:     make(map[string][]store.Goal),
		questions: make(map[string][]store.Question),
		progress:  make(map[string]*store.GoalProgress),
	}
}

func (f *fakeRepos) GetTopic(_ context.Context, topicID string) (*store.Topic, error) {
	if t, ok := f.topics[topicID]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeRepos) SaveTopic(_ context.Context, t *store.Topic) error {
	f.topics[t.ID] = *t
	return nil
}

func (f *fakeRepos) ListTopics(_ context.Context) ([]store.Topic, error) {
	var out []store.Topic
	for _, t := range f.topics {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepos) GoalsForTopic(_ context.Context, topicID string) ([]store.Goal, error) {
	return f.goals[topicID], nil
}

func (f *fakeRepos) SaveGoals(_ context.Context, topicID string, goals []store.Goal) error {
	f.goals[topicID] = append(f.goals[topicID], goals...)
	return nil
}

func (f *fakeRepos) GetGoal(_ context.Context, goalID string) (*store.Goal, error) {
	for _, goals := range f.goals {
		for i := range goals {
			if goals[i].ID == goalID {
				return &goals[i], nil
			}
		}
	}
	return nil, nil
}

func (f *fakeRepos) QuestionsForGoal(_ context.Context, goalID string) ([]store.Question, error) {
	return f.questions[goalID], nil
}

func (f *fakeRepos) SaveQuestions(_ context.Context, goalID string, questions []store.Question) error {
	f.questions[goalID] = append(f.questions[goalID], questions...)
	return nil
}

func (f *fakeRepos) GetProgress(_ context.Context, userID, topicID string) (*store.GoalProgress, error) {
	p, ok := f.progress[userID+"_"+topicID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepos) UpdateProgress(_ context.Context, p *store.GoalProgress) error {
	cp := *p
	f.progress[p.UserID+"_"+p.TopicID] = &cp
	return nil
}

func (f *fakeRepos) MarkSessionInactive(_ context.Context, userID, topicID string) error {
	if p, ok := f.progress[userID+"_"+topicID]; ok {
		p.SessionActive = false
	}
	return nil
}

func newTestService(provider llm.Provider, repos *fakeRepos) *Service {
	return NewServiceWithRepos(provider, repos, repos, repos, repos, DefaultConfig())
}

func goalsResponse(titles ...string) llm.MockResponse {
	type g struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	var gs []g
	for _, t := range titles {
		gs = append(gs, g{Title: t, Description: "Learn about " + t + "."})
	}
	b, _ := json.Marshal(map[string]any{"goals": gs})
	return llm.MockResponse{Content: b}
}

func TestGenerateGoals_FromLLM(t *testing.T) {
	repos := newFakeRepos()
	mock := llm.NewMockProvider(goalsResponse("Basics", "Key terms", "Mechanics", "Applications", "Mastery"))
	svc := newTestService(mock, repos)

	topic := &store.Topic{ID: "t1", Title: "Photosynthesis", Content: "..."}
	goals, err := svc.GenerateGoals(context.Background(), topic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 5 {
		t.Fatalf("got %d goals, want 5", len(goals))
	}
	for i, g := range goals {
		if g.Order != i+1 {
			t.Errorf("goal %d has Order %d, want %d", i, g.Order, i+1)
		}
		if g.TopicID != "t1" {
			t.Errorf("goal %d has TopicID %q, want t1", i, g.TopicID)
		}
	}
	if len(repos.goals["t1"]) != 5 {
		t.Errorf("persisted %d goals, want 5", len(repos.goals["t1"]))
	}
}

func TestGenerateGoals_IdempotentWhenPersisted(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Title: "Existing", Order: 1},
	}
	mock := llm.NewMockProvider() // Any call would fail.
	svc := newTestService(mock, repos)

	goals, err := svc.GenerateGoals(context.Background(), &store.Topic{ID: "t1", Title: "T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != "g1" {
		t.Fatalf("got %v, want the persisted goal", goals)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerateGoals_FallbackOnLLMFailure(t *testing.T) {
	repos := newFakeRepos()
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := newTestService(mock, repos)

	goals, err := svc.GenerateGoals(context.Background(), &store.Topic{ID: "t1", Title: "Gravity"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 4 {
		t.Fatalf("got %d fallback goals, want 4", len(goals))
	}
	if len(repos.goals["t1"]) != 4 {
		t.Errorf("fallback goals not persisted")
	}
}

func TestCurrentGoal_FirstIncomplete(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Title: "One", Order: 1},
		{ID: "g2", TopicID: "t1", Title: "Two", Order: 2},
		{ID: "g3", TopicID: "t1", Title: "Three", Order: 3},
	}
	repos.progress["u1_t1"] = &store.GoalProgress{
		UserID: "u1", TopicID: "t1",
		CompletedGoals: []string{"g1"},
	}
	svc := newTestService(llm.NewMockProvider(), repos)

	goal, err := svc.CurrentGoal(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID != "g2" {
		t.Errorf("CurrentGoal = %s, want g2", goal.ID)
	}
}

func TestCurrentGoal_AllCompleteReturnsLast(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Order: 1},
		{ID: "g2", TopicID: "t1", Order: 2},
	}
	repos.progress["u1_t1"] = &store.GoalProgress{
		UserID: "u1", TopicID: "t1",
		CompletedGoals: []string{"g1", "g2"},
	}
	svc := newTestService(llm.NewMockProvider(), repos)

	goal, err := svc.CurrentGoal(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID != "g2" {
		t.Errorf("CurrentGoal = %s, want last goal g2 as sentinel", goal.ID)
	}
}

func TestCurrentGoal_NoProgressReturnsFirst(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Order: 1},
		{ID: "g2", TopicID: "t1", Order: 2},
	}
	svc := newTestService(llm.NewMockProvider(), repos)

	goal, err := svc.CurrentGoal(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID != "g1" {
		t.Errorf("CurrentGoal = %s, want g1", goal.ID)
	}
}

func TestCompleteGoal_RecordsPerformance(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Order: 1},
		{ID: "g2", TopicID: "t1", Order: 2},
	}
	svc := newTestService(llm.NewMockProvider(), repos)

	perf := store.GoalPerformance{TotalQuestions: 2, CorrectAnswers: 2, AccuracyPercent: 100}
	if err := svc.CompleteGoal(context.Background(), "u1", "t1", "g1", perf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := repos.progress["u1_t1"]
	if p == nil {
		t.Fatal("progress not persisted")
	}
	if !p.Completed("g1") {
		t.Error("g1 not in CompletedGoals")
	}
	if p.TotalQuestions != 2 || p.CorrectAnswers != 2 || p.AccuracyPercent != 100 {
		t.Errorf("overall = %d/%d (%d%%), want 2/2 (100%%)", p.CorrectAnswers, p.TotalQuestions, p.AccuracyPercent)
	}
	if p.Status != store.StatusInProgress {
		t.Errorf("Status = %q, want in_progress with one goal left", p.Status)
	}
}

func TestCompleteGoal_Idempotent(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Order: 1},
		{ID: "g2", TopicID: "t1", Order: 2},
	}
	svc := newTestService(llm.NewMockProvider(), repos)

	perf := store.GoalPerformance{TotalQuestions: 2, CorrectAnswers: 1, AccuracyPercent: 50}
	for i := 0; i < 2; i++ {
		if err := svc.CompleteGoal(context.Background(), "u1", "t1", "g1", perf); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
	}

	p := repos.progress["u1_t1"]
	if p.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d after double completion, want 2 (no double counting)", p.TotalQuestions)
	}
	if got := len(p.CompletedGoals); got != 1 {
		t.Errorf("CompletedGoals has %d entries, want 1", got)
	}
}

func TestCompleteGoal_TransitionToCompleted(t *testing.T) {
	repos := newFakeRepos()
	repos.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Order: 1},
		{ID: "g2", TopicID: "t1", Order: 2},
	}
	svc := newTestService(llm.NewMockProvider(), repos)

	perf := store.GoalPerformance{TotalQuestions: 2, CorrectAnswers: 2, AccuracyPercent: 100}
	if err := svc.CompleteGoal(context.Background(), "u1", "t1", "g1", perf); err != nil {
		t.Fatal(err)
	}
	if repos.progress["u1_t1"].CompletedAt != nil {
		t.Error("CompletedAt set before all goals done")
	}

	if err := svc.CompleteGoal(context.Background(), "u1", "t1", "g2", perf); err != nil {
		t.Fatal(err)
	}
	p := repos.progress["u1_t1"]
	if p.Status != store.StatusCompleted {
		t.Errorf("Status = %q, want completed", p.Status)
	}
	if p.CompletedAt == nil {
		t.Error("CompletedAt not set on transition to completed")
	}
	if time.Since(*p.CompletedAt) > time.Minute {
		t.Error("CompletedAt not set to now")
	}
}

func TestQuestionsForGoal_CachedBatchIsIdempotent(t *testing.T) {
	repos := newFakeRepos()
	goal := &store.Goal{ID: "g1", TopicID: "t1", Title: "Basics"}
	for i := 1; i <= 5; i++ {
		repos.questions["g1"] = append(repos.questions["g1"], store.Question{
			ID: string(rune('a' + i)), GoalID: "g1", Text: "q", Answer: "a", Position: i,
		})
	}
	mock := llm.NewMockProvider()
	svc := newTestService(mock, repos)

	first, err := svc.QuestionsForGoal(context.Background(), goal, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.QuestionsForGoal(context.Background(), goal, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("got %d and %d questions, want 5 and 5", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("question %d differs between calls: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls with a sufficient cache, got %d", mock.CallCount())
	}
}

func TestQuestionsForGoal_GeneratesAndPersists(t *testing.T) {
	repos := newFakeRepos()
	goal := &store.Goal{ID: "g1", TopicID: "t1", Title: "Basics", Description: "d"}

	b, _ := json.Marshal(map[string]any{"questions": []map[string]string{
		{"question": "What is X?", "answer": "X is Y.", "difficulty": "easy"},
		{"question": "Why X?", "answer": "Because Y.", "difficulty": "medium"},
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: b})
	svc := newTestService(mock, repos)

	questions, err := svc.QuestionsForGoal(context.Background(), goal, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if len(repos.questions["g1"]) != 2 {
		t.Errorf("questions not persisted")
	}
	if questions[0].Position != 1 || questions[1].Position != 2 {
		t.Errorf("positions = %d,%d, want 1,2", questions[0].Position, questions[1].Position)
	}
}

func TestQuestionsForGoal_FallbackOnLLMFailure(t *testing.T) {
	repos := newFakeRepos()
	goal := &store.Goal{ID: "g1", TopicID: "t1", Title: "Basics"}
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := newTestService(mock, repos)

	questions, err := svc.QuestionsForGoal(context.Background(), goal, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 6 {
		t.Fatalf("got %d fallback questions, want 6", len(questions))
	}
}
