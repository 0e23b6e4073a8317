package goals

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mentora/internal/llm"
	"github.com/abhisek/mentora/internal/store"
)

// DefaultQuestionCount is the question batch size per goal.
const DefaultQuestionCount = 18

// Config holds tuning parameters for the goal service's LLM calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}

// Service owns goal definitions, per-goal question batches and per-user
// progress aggregation for a topic.
type Service struct {
	provider  llm.Provider
	topics    store.TopicRepo
	goals     store.GoalRepo
	questions store.QuestionRepo
	progress  store.ProgressRepo
	cfg       Config
}

// NewService creates a goal service.
func NewService(provider llm.Provider, st *store.Store, cfg Config) *Service {
	return &Service{
		provider:  provider,
		topics:    st.TopicRepo(),
		goals:     st.GoalRepo(),
		questions: st.QuestionRepo(),
		progress:  st.ProgressRepo(),
		cfg:       cfg,
	}
}

// NewServiceWithRepos creates a goal service from individual repos.
// Used by tests that fake out persistence.
func NewServiceWithRepos(provider llm.Provider, topics store.TopicRepo, goals store.GoalRepo, questions store.QuestionRepo, progress store.ProgressRepo, cfg Config) *Service {
	return &Service{
		provider:  provider,
		topics:    topics,
		goals:     goals,
		questions: questions,
		progress:  progress,
		cfg:       cfg,
	}
}

// GenerateGoals returns the topic's goal list, generating and persisting it
// on first call. Goals are never regenerated once present. A generation
// failure falls back to a fixed starter list, which is persisted the same way.
func (s *Service) GenerateGoals(ctx context.Context, topic *store.Topic) ([]store.Goal, error) {
	existing, err := s.goals.GoalsForTopic(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	generated := s.generateGoalsLLM(ctx, topic)
	if len(generated) == 0 {
		generated = fallbackGoals(topic)
	}

	if err := s.goals.SaveGoals(ctx, topic.ID, generated); err != nil {
		return nil, fmt.Errorf("save goals: %w", err)
	}
	return generated, nil
}

func (s *Service) generateGoalsLLM(ctx context.Context, topic *store.Topic) []store.Goal {
	ctx = llm.WithPurpose(ctx, "goal-generation")

	userMsg := fmt.Sprintf("Topic: %s\n\nContent:\n%s", topic.Title, topic.Content)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: goalsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GoalsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil
	}

	var out struct {
		Goals []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"goals"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || len(out.Goals) == 0 {
		return nil
	}

	goals := make([]store.Goal, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = store.Goal{
			ID:          uuid.NewString(),
			TopicID:     topic.ID,
			Title:       g.Title,
			Description: g.Description,
			Order:       i + 1,
		}
	}
	return goals
}

// fallbackGoals is the fixed four-goal starter list used when generation
// fails. It is persisted like any generated list.
func fallbackGoals(topic *store.Topic) []store.Goal {
	templates := []struct {
		title       string
		description string
	}{
		{"Understand the basics of " + topic.Title, "Explain the core idea of " + topic.Title + " in your own words."},
		{"Identify key concepts", "Name and describe the key concepts within " + topic.Title + "."},
		{"Apply the ideas", "Apply what you learned about " + topic.Title + " to a concrete example."},
		{"Explain it to someone else", "Summarize " + topic.Title + " clearly enough to teach it."},
	}

	goals := make([]store.Goal, len(templates))
	for i, t := range templates {
		goals[i] = store.Goal{
			ID:          uuid.NewString(),
			TopicID:     topic.ID,
			Title:       t.title,
			Description: t.description,
			Order:       i + 1,
		}
	}
	return goals
}

// CurrentGoal returns the first goal the learner has not completed. When
// every goal is complete it returns the last goal; callers detect overall
// completion by noticing the returned goal did not change after CompleteGoal.
func (s *Service) CurrentGoal(ctx context.Context, userID, topicID string) (*store.Goal, error) {
	goals, err := s.goals.GoalsForTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("topic %s has no goals", topicID)
	}

	progress, err := s.progress.GetProgress(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if progress == nil {
		return &goals[0], nil
	}

	for i := range goals {
		if !progress.Completed(goals[i].ID) {
			return &goals[i], nil
		}
	}
	return &goals[len(goals)-1], nil
}

// CompleteGoal records a goal completion. Idempotent: a goal already in
// CompletedGoals is not counted again. Overall counts are recomputed by
// summing the recorded per-goal performances, and the aggregate is written
// back in a single upsert.
func (s *Service) CompleteGoal(ctx context.Context, userID, topicID, goalID string, perf store.GoalPerformance) error {
	now := time.Now()

	progress, err := s.progress.GetProgress(ctx, userID, topicID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if progress == nil {
		progress = &store.GoalProgress{
			UserID:       userID,
			TopicID:      topicID,
			Performances: make(map[string]store.GoalPerformance),
			Status:       store.StatusInProgress,
			StartedAt:    now,
		}
	}
	if progress.Performances == nil {
		progress.Performances = make(map[string]store.GoalPerformance)
	}

	if !progress.Completed(goalID) {
		progress.CompletedGoals = append(progress.CompletedGoals, goalID)
		progress.Performances[goalID] = perf
		recomputeOverall(progress)
	}

	allGoals, err := s.goals.GoalsForTopic(ctx, topicID)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}

	allDone := len(allGoals) > 0
	for _, g := range allGoals {
		if !progress.Completed(g.ID) {
			allDone = false
			break
		}
	}

	if allDone && progress.Status != store.StatusCompleted {
		progress.Status = store.StatusCompleted
		progress.CompletedAt = &now
	} else if !allDone {
		progress.Status = store.StatusInProgress
	}
	progress.LastAccessedAt = now

	if err := s.progress.UpdateProgress(ctx, progress); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// recomputeOverall re-derives the aggregate counts from the recorded
// per-goal performances. Counts only ever grow.
func recomputeOverall(p *store.GoalProgress) {
	total, correct := 0, 0
	for _, perf := range p.Performances {
		total += perf.TotalQuestions
		correct += perf.CorrectAnswers
	}
	p.TotalQuestions = total
	p.CorrectAnswers = correct
	if total > 0 {
		p.AccuracyPercent = int(math.Round(float64(correct) / float64(total) * 100))
	} else {
		p.AccuracyPercent = 0
	}
}

// QuestionsForGoal returns the goal's question batch. A cached batch large
// enough to cover count is returned as-is; otherwise count questions are
// generated, persisted and returned. Repeated calls for the same goal are
// idempotent.
func (s *Service) QuestionsForGoal(ctx context.Context, goal *store.Goal, count int) ([]store.Question, error) {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	cached, err := s.questions.QuestionsForGoal(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(cached) >= count {
		return cached[:count], nil
	}

	generated := s.generateQuestionsLLM(ctx, goal, count)
	if len(generated) == 0 {
		generated = fallbackQuestions(goal, count)
	}

	if err := s.questions.SaveQuestions(ctx, goal.ID, generated); err != nil {
		return nil, fmt.Errorf("save questions: %w", err)
	}
	return generated, nil
}

func (s *Service) generateQuestionsLLM(ctx context.Context, goal *store.Goal, count int) []store.Question {
	ctx = llm.WithPurpose(ctx, "question-generation")

	userMsg := fmt.Sprintf(
		"Goal: %s\nDescription: %s\n\nWrite exactly %d questions, a mix of easy and medium difficulty, each with its expected answer.",
		goal.Title, goal.Description, count,
	)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: questionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.cfg.MaxTokens * 2,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil
	}

	var out struct {
		Questions []struct {
			Question   string `json:"question"`
			Answer     string `json:"answer"`
			Difficulty string `json:"difficulty"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || len(out.Questions) == 0 {
		return nil
	}

	questions := make([]store.Question, len(out.Questions))
	for i, q := range out.Questions {
		questions[i] = store.Question{
			ID:         uuid.NewString(),
			GoalID:     goal.ID,
			Text:       q.Question,
			Answer:     q.Answer,
			Difficulty: q.Difficulty,
			Position:   i + 1,
		}
	}
	return questions
}

// fallbackQuestions builds a generic batch from the goal itself, used when
// question generation fails so the session can still start.
func fallbackQuestions(goal *store.Goal, count int) []store.Question {
	prompts := []struct {
		text   string
		answer string
	}{
		{"In your own words, what does %q mean?", "A clear restatement of the goal in the learner's own words."},
		{"Give one example related to %q.", "Any concrete, relevant example."},
		{"Why is %q important?", "A reason connecting the goal to the wider topic."},
	}

	questions := make([]store.Question, 0, count)
	for i := 0; i < count; i++ {
		p := prompts[i%len(prompts)]
		questions = append(questions, store.Question{
			ID:         uuid.NewString(),
			GoalID:     goal.ID,
			Text:       fmt.Sprintf(p.text, goal.Title),
			Answer:     p.answer,
			Difficulty: "easy",
			Position:   i + 1,
		})
	}
	return questions
}

const goalsSystemPrompt = `You are a curriculum designer. Given a topic and its content, produce 5 to 7 progressive learning goals, ordered from foundational understanding to confident application. Each goal gets a short title and a one-sentence description of what the learner will be able to do.`

const questionsSystemPrompt = `You are a tutor writing free-text assessment questions for one learning goal. Each question must be answerable in one or two sentences and carry the expected answer used for grading. Mix easy and medium difficulty.`
