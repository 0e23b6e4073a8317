package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/mentora/internal/evaluator"
	"github.com/abhisek/mentora/internal/goals"
	"github.com/abhisek/mentora/internal/llm"
	"github.com/abhisek/mentora/internal/resources"
	"github.com/abhisek/mentora/internal/store"
)

// memStore is an in-memory stand-in for the store's repos.
type memStore struct {
	topics    map[string]store.Topic
	goals     map[string][]store.Goal
	questions map[string][]store.Question
	progress  map[string]*store.GoalProgress
	events    []store.SessionEventData
}

func newMemStore() *memStore {
	return &memStore{
		topics:    make(map[string]store.Topic),
		goals:     make(map[string][]store.Goal),
		questions: make(map[string][]store.Question),
		progress:  make(map[string]*store.GoalProgress),
	}
}

func (m *memStore) GetTopic(_ context.Context, topicID string) (*store.Topic, error) {
	if t, ok := m.topics[topicID]; ok {
		return &t, nil
	}
	return nil, nil
}

func (m *memStore) SaveTopic(_ context.Context, t *store.Topic) error {
	m.topics[t.ID] = *t
	return nil
}

func (m *memStore) ListTopics(_ context.Context) ([]store.Topic, error) {
	var out []store.Topic
	for _, t := range m.topics {
		out = append(out, t)
	}
	return out, nil
}

func (m *memStore) GoalsForTopic(_ context.Context, topicID string) ([]store.Goal, error) {
	return m.goals[topicID], nil
}

func (m *memStore) SaveGoals(_ context.Context, topicID string, goals []store.Goal) error {
	m.goals[topicID] = append(m.goals[topicID], goals...)
	return nil
}

func (m *memStore) GetGoal(_ context.Context, goalID string) (*store.Goal, error) {
	for _, gs := range m.goals {
		for i := range gs {
			if gs[i].ID == goalID {
				return &gs[i], nil
			}
		}
	}
	return nil, nil
}

func (m *memStore) QuestionsForGoal(_ context.Context, goalID string) ([]store.Question, error) {
	return m.questions[goalID], nil
}

func (m *memStore) SaveQuestions(_ context.Context, goalID string, questions []store.Question) error {
	m.questions[goalID] = append(m.questions[goalID], questions...)
	return nil
}

func (m *memStore) GetProgress(_ context.Context, userID, topicID string) (*store.GoalProgress, error) {
	p, ok := m.progress[userID+"_"+topicID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) UpdateProgress(_ context.Context, p *store.GoalProgress) error {
	cp := *p
	m.progress[p.UserID+"_"+p.TopicID] = &cp
	return nil
}

func (m *memStore) MarkSessionInactive(_ context.Context, userID, topicID string) error {
	if p, ok := m.progress[userID+"_"+topicID]; ok {
		p.SessionActive = false
	}
	return nil
}

func (m *memStore) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memStore) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

// seedTwoByTwo sets up one topic with 2 goals of 2 cached questions each.
func seedTwoByTwo(m *memStore) {
	m.topics["t1"] = store.Topic{ID: "t1", Title: "Photosynthesis", Content: "..."}
	m.goals["t1"] = []store.Goal{
		{ID: "g1", TopicID: "t1", Title: "Basics", Description: "The core idea.", Order: 1},
		{ID: "g2", TopicID: "t1", Title: "Light reactions", Description: "The first stage.", Order: 2},
	}
	for _, gid := range []string{"g1", "g2"} {
		for i := 1; i <= 2; i++ {
			m.questions[gid] = append(m.questions[gid], store.Question{
				ID:         fmt.Sprintf("%s-q%d", gid, i),
				GoalID:     gid,
				Text:       fmt.Sprintf("Question %d for %s?", i, gid),
				Answer:     "The expected answer.",
				Difficulty: "easy",
				Position:   i,
			})
		}
	}
}

func evalResponse(correct bool) llm.MockResponse {
	b, _ := json.Marshal(map[string]any{
		"is_correct":      correct,
		"score_percent":   map[bool]int{true: 95, false: 30}[correct],
		"error_type":      map[bool]string{true: "None", false: "Conceptual"}[correct],
		"diff_html":       "answer",
		"complete_answer": "The expected answer.",
		"feedback":        "Feedback.",
		"needs_resources": !correct,
	})
	return llm.MockResponse{Content: b}
}

func newTestOrchestrator(m *memStore, mock *llm.MockProvider) *Orchestrator {
	goalSvc := goals.NewServiceWithRepos(mock, m, m, m, m, goals.DefaultConfig())
	eval := evaluator.New(mock, evaluator.DefaultConfig())
	reg := NewRegistry(m)
	o := NewOrchestrator(reg, goalSvc, eval, resources.NewStaticFinder(), m, m)
	o.QuestionCount = 2
	return o
}

func TestStartSession_GreetingAndFirstQuestion(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	o := newTestOrchestrator(m, llm.NewMockProvider())

	res, err := o.StartSession(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Messages) != 2 {
		t.Errorf("got %d greeting messages, want 2", len(res.Messages))
	}
	if res.CurrentQuestion == nil || res.CurrentQuestion.ID != "g1-q1" {
		t.Fatalf("CurrentQuestion = %+v, want g1-q1", res.CurrentQuestion)
	}
	if res.Info.Goal != "Basics" || res.Info.QuestionNumber != 1 || res.Info.TotalQuestions != 2 {
		t.Errorf("Info = %+v, want goal Basics, question 1/2", res.Info)
	}
}

func TestStartSession_UnknownTopic(t *testing.T) {
	m := newMemStore()
	o := newTestOrchestrator(m, llm.NewMockProvider())

	if _, err := o.StartSession(context.Background(), "u1", "missing"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestProcessAnswer_UnknownSessionRaisesNotFound(t *testing.T) {
	m := newMemStore()
	o := newTestOrchestrator(m, llm.NewMockProvider())

	_, err := o.ProcessAnswer(context.Background(), "nobody", "t1", "answer")
	var nf *ErrSessionNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrSessionNotFound, got: %v", err)
	}
	if nf.UserID != "nobody" || nf.TopicID != "t1" {
		t.Errorf("fault key = %s/%s, want nobody/t1", nf.UserID, nf.TopicID)
	}
}

func TestScenario_TwoGoalsTwoQuestions(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(
		evalResponse(true), // g1 q1
		evalResponse(true), // g1 q2 -> goal 1 complete
		evalResponse(true), // g2 q1
		evalResponse(true), // g2 q2 -> session complete
	)
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// Turn 1: next question within goal 1.
	r1, err := o.ProcessAnswer(ctx, "u1", "t1", "a")
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if r1.GoalCompleted != nil || r1.SessionCompleted != nil {
		t.Error("turn 1: unexpected completion")
	}
	if r1.NextQuestion == nil || r1.NextQuestion.ID != "g1-q2" {
		t.Fatalf("turn 1: NextQuestion = %+v, want g1-q2", r1.NextQuestion)
	}

	// Turn 2: goal 1 completes, goal 2's first question arrives.
	r2, err := o.ProcessAnswer(ctx, "u1", "t1", "a")
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	if r2.GoalCompleted == nil || r2.GoalCompleted.Title != "Basics" {
		t.Fatalf("turn 2: GoalCompleted = %+v, want Basics", r2.GoalCompleted)
	}
	if r2.NextQuestion == nil || r2.NextQuestion.ID != "g2-q1" {
		t.Fatalf("turn 2: NextQuestion = %+v, want g2-q1", r2.NextQuestion)
	}
	if r2.SessionCompleted != nil {
		t.Error("turn 2: session should not be complete")
	}

	// Turn 3: next question within goal 2.
	r3, err := o.ProcessAnswer(ctx, "u1", "t1", "a")
	if err != nil {
		t.Fatalf("turn 3: %v", err)
	}
	if r3.NextQuestion == nil || r3.NextQuestion.ID != "g2-q2" {
		t.Fatalf("turn 3: NextQuestion = %+v, want g2-q2", r3.NextQuestion)
	}

	// Turn 4: session completes with a summary.
	r4, err := o.ProcessAnswer(ctx, "u1", "t1", "a")
	if err != nil {
		t.Fatalf("turn 4: %v", err)
	}
	if r4.SessionCompleted == nil {
		t.Fatal("turn 4: expected SessionCompleted")
	}
	if r4.NextQuestion != nil {
		t.Error("turn 4: NextQuestion should be nil at session end")
	}
	if r4.SessionCompleted.CompletedGoals != 2 || r4.SessionCompleted.TotalGoals != 2 {
		t.Errorf("summary goals = %d/%d, want 2/2", r4.SessionCompleted.CompletedGoals, r4.SessionCompleted.TotalGoals)
	}
	if r4.SessionCompleted.StarRating != 3 {
		t.Errorf("StarRating = %d, want 3 at 100%%", r4.SessionCompleted.StarRating)
	}

	// Turn 5: the session is gone.
	_, err = o.ProcessAnswer(ctx, "u1", "t1", "a")
	var nf *ErrSessionNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("turn 5: expected ErrSessionNotFound, got: %v", err)
	}

	// Persistence reflects the finished run.
	p := m.progress["u1_t1"]
	if p == nil || p.Status != store.StatusCompleted {
		t.Fatalf("progress = %+v, want completed", p)
	}
	if p.TotalQuestions != 4 || p.CorrectAnswers != 4 {
		t.Errorf("overall = %d/%d, want 4/4", p.CorrectAnswers, p.TotalQuestions)
	}
}

func TestProcessAnswer_IncorrectNeverAdvances(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(
		evalResponse(false),
		evalResponse(false),
	)
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatal(err)
	}

	for turn := 1; turn <= 2; turn++ {
		r, err := o.ProcessAnswer(ctx, "u1", "t1", "wrong")
		if err != nil {
			t.Fatalf("turn %d: %v", turn, err)
		}
		if r.NextQuestion != nil {
			t.Errorf("turn %d: NextQuestion set on incorrect answer", turn)
		}
		if r.Info.QuestionNumber != 1 {
			t.Errorf("turn %d: QuestionNumber = %d, want 1 (stuck on same question)", turn, r.Info.QuestionNumber)
		}
	}

	sess := o.Registry().Get("u1", "t1")
	if sess.CurrentQuestionIndex != 0 {
		t.Errorf("CurrentQuestionIndex = %d, want 0", sess.CurrentQuestionIndex)
	}
	if len(sess.Answers) != 2 {
		t.Errorf("Answers = %d records, want 2 (both attempts recorded)", len(sess.Answers))
	}
}

func TestProcessAnswer_ResourcesAttachedOnIncorrect(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(evalResponse(false))
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatal(err)
	}

	r, err := o.ProcessAnswer(ctx, "u1", "t1", "wrong")
	if err != nil {
		t.Fatal(err)
	}
	if r.Resources == nil {
		t.Fatal("Resources not attached for incorrect answer needing them")
	}
	if len(r.Evaluation.Options) != 2 {
		t.Errorf("Options = %v, want the two feedback options", r.Evaluation.Options)
	}
}

func TestHandleFeedbackOption_ExplainAttachesAndAdvances(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(evalResponse(false))
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.ProcessAnswer(ctx, "u1", "t1", "wrong"); err != nil {
		t.Fatal(err)
	}

	r, err := o.HandleFeedbackOption(ctx, "u1", "t1", evaluator.OptionExplain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Explanation == nil {
		t.Fatal("Explanation not attached for Explain option")
	}
	if r.Explanation.Text != "The expected answer." {
		t.Errorf("Explanation.Text = %q, want the complete answer", r.Explanation.Text)
	}
	if r.NextQuestion == nil || r.NextQuestion.ID != "g1-q2" {
		t.Fatalf("NextQuestion = %+v, want g1-q2 (Explain still advances)", r.NextQuestion)
	}
}

func TestHandleFeedbackOption_GotItAdvancesWithoutExplanation(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(evalResponse(false))
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.ProcessAnswer(ctx, "u1", "t1", "wrong"); err != nil {
		t.Fatal(err)
	}

	r, err := o.HandleFeedbackOption(ctx, "u1", "t1", evaluator.OptionGotIt)
	if err != nil {
		t.Fatal(err)
	}
	if r.Explanation != nil {
		t.Error("Explanation attached for Got it")
	}
	if r.NextQuestion == nil || r.NextQuestion.ID != "g1-q2" {
		t.Fatalf("NextQuestion = %+v, want g1-q2", r.NextQuestion)
	}
}

func TestAnswersScopedToCurrentGoal(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(
		evalResponse(true),
		evalResponse(true), // Goal switch happens here.
	)
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.ProcessAnswer(ctx, "u1", "t1", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.ProcessAnswer(ctx, "u1", "t1", "a"); err != nil {
		t.Fatal(err)
	}

	sess := o.Registry().Get("u1", "t1")
	if sess.CurrentGoal.ID != "g2" {
		t.Fatalf("CurrentGoal = %s, want g2", sess.CurrentGoal.ID)
	}
	if len(sess.Answers) != 0 {
		t.Errorf("Answers = %d records after goal switch, want 0", len(sess.Answers))
	}
	if sess.CurrentQuestionIndex != 0 {
		t.Errorf("CurrentQuestionIndex = %d after goal switch, want 0", sess.CurrentQuestionIndex)
	}
}

func TestSessionEventsRecorded(t *testing.T) {
	m := newMemStore()
	seedTwoByTwo(m)
	mock := llm.NewMockProvider(
		evalResponse(true), evalResponse(true),
		evalResponse(true), evalResponse(true),
	)
	o := newTestOrchestrator(m, mock)

	ctx := context.Background()
	if _, err := o.StartSession(ctx, "u1", "t1"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if _, err := o.ProcessAnswer(ctx, "u1", "t1", "a"); err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
	}

	if len(m.events) != 2 {
		t.Fatalf("got %d session events, want start and end", len(m.events))
	}
	if m.events[0].Action != "start" || m.events[1].Action != "end" {
		t.Errorf("event actions = %s, %s, want start, end", m.events[0].Action, m.events[1].Action)
	}
	if m.events[1].QuestionsServed != 4 || m.events[1].CorrectAnswers != 4 {
		t.Errorf("end event counters = %d/%d, want 4/4", m.events[1].CorrectAnswers, m.events[1].QuestionsServed)
	}
}
