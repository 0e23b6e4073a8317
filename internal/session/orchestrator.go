package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mentora/internal/evaluator"
	"github.com/abhisek/mentora/internal/goals"
	"github.com/abhisek/mentora/internal/resources"
	"github.com/abhisek/mentora/internal/store"
)

// QuestionView is a question as presented to the learner.
type QuestionView struct {
	ID       string
	Question string
	Goal     string
}

// Info is the turn-level snapshot of where the learner stands.
type Info struct {
	Topic          string
	Goal           string
	QuestionNumber int
	TotalQuestions int
	Status         Status
}

// GoalCompletion reports a goal that finished this turn.
type GoalCompletion struct {
	Title       string
	Performance evaluator.Performance
}

// Explanation is the payload attached when the learner asks "Explain".
type Explanation struct {
	Text      string
	Resources *resources.ResourceSet
}

// StartResult is the response to StartSession.
type StartResult struct {
	Messages        []string
	CurrentQuestion *QuestionView
	Info            *Info
}

// TurnResult is the response to ProcessAnswer and HandleFeedbackOption.
// Fields other than Info are set only when that part of the turn
// happened.
type TurnResult struct {
	Evaluation       *evaluator.Evaluation
	Info             *Info
	Resources        *resources.ResourceSet
	NextQuestion     *QuestionView
	GoalCompleted    *GoalCompletion
	SessionCompleted *goals.SessionSummary
	Explanation      *Explanation
}

// Orchestrator drives the per-turn state machine: evaluate the answer,
// record progress, and decide whether to continue, switch goals, or end
// the session. Generation failures never abort a turn; only
// ErrSessionNotFound and persistence errors reach the caller.
type Orchestrator struct {
	registry *Registry
	goals    *goals.Service
	eval     *evaluator.Evaluator
	finder   resources.Finder
	topics   store.TopicRepo
	events   store.EventRepo

	// QuestionCount is the batch size requested per goal.
	QuestionCount int
}

// NewOrchestrator wires the tutoring engine together.
func NewOrchestrator(registry *Registry, goalSvc *goals.Service, eval *evaluator.Evaluator, finder resources.Finder, topics store.TopicRepo, events store.EventRepo) *Orchestrator {
	return &Orchestrator{
		registry:      registry,
		goals:         goalSvc,
		eval:          eval,
		finder:        finder,
		topics:        topics,
		events:        events,
		QuestionCount: goals.DefaultQuestionCount,
	}
}

// Registry exposes the registry for sweeping.
func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// StartSession creates and registers a session for the (user, topic)
// pair, replacing any existing one, and returns the greeting plus the
// first question.
func (o *Orchestrator) StartSession(ctx context.Context, userID, topicID string) (*StartResult, error) {
	unlock := o.registry.LockKey(userID, topicID)
	defer unlock()

	topic, err := o.topics.GetTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return nil, fmt.Errorf("topic %s not found", topicID)
	}

	goalList, err := o.goals.GenerateGoals(ctx, topic)
	if err != nil {
		return nil, err
	}

	current, err := o.goals.CurrentGoal(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	questions, err := o.goals.QuestionsForGoal(ctx, current, o.QuestionCount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &Session{
		UserID:       userID,
		TopicID:      topicID,
		Topic:        topic,
		Goals:        goalList,
		CurrentGoal:  *current,
		Questions:    questions,
		StartTime:    now,
		LastActivity: now,
		Status:       StatusActive,
	}
	o.registry.Put(sess)

	// Telemetry, best effort.
	_ = o.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionKey(userID, topicID),
		UserID:    userID,
		TopicID:   topicID,
		Action:    "start",
	})

	return &StartResult{
		Messages: []string{
			fmt.Sprintf("Hi! Let's dig into %s together.", topic.Title),
			fmt.Sprintf("First up: %s. %s", current.Title, current.Description),
		},
		CurrentQuestion: questionView(sess),
		Info:            infoFor(sess),
	}, nil
}

// ProcessAnswer grades the learner's answer to the current question.
// Only a correct answer advances the question index; an incorrect one
// re-asks the same question through its feedback options.
func (o *Orchestrator) ProcessAnswer(ctx context.Context, userID, topicID, answer string) (*TurnResult, error) {
	unlock := o.registry.LockKey(userID, topicID)
	defer unlock()

	sess := o.registry.Get(userID, topicID)
	if sess == nil {
		return nil, &ErrSessionNotFound{UserID: userID, TopicID: topicID}
	}
	sess.LastActivity = time.Now()

	q := sess.Questions[sess.CurrentQuestionIndex]
	ev := o.eval.EvaluateAnswer(ctx, answer, q.Answer, q.Text, sess.CurrentGoal.Title)

	sess.Answers = append(sess.Answers, evaluator.AnswerRecord{
		QuestionID: q.ID,
		Question:   q.Text,
		UserAnswer: answer,
		Evaluation: ev,
		Timestamp:  time.Now(),
	})
	sess.QuestionsServed++
	if ev.IsCorrect {
		sess.CorrectAnswers++
	}

	result := &TurnResult{Evaluation: &ev}

	if !ev.IsCorrect && ev.NeedsResources {
		// Additive: resources don't change control flow, and a finder
		// failure doesn't fail the turn.
		if rs, err := o.finder.FindResources(ctx, sess.CurrentGoal.Title, sess.Topic.Title, q.Difficulty); err == nil {
			result.Resources = rs
		}
	}

	if ev.IsCorrect {
		sess.CurrentQuestionIndex++
		if sess.CurrentQuestionIndex >= len(sess.Questions) {
			if err := o.advanceGoal(ctx, sess, result); err != nil {
				return nil, err
			}
		} else {
			result.NextQuestion = questionView(sess)
		}
	}

	result.Info = infoFor(sess)
	return result, nil
}

// HandleFeedbackOption resolves a feedback choice after an incorrect
// answer. "Explain" attaches an explanation payload; either option then
// advances past the question unconditionally.
func (o *Orchestrator) HandleFeedbackOption(ctx context.Context, userID, topicID, option string) (*TurnResult, error) {
	unlock := o.registry.LockKey(userID, topicID)
	defer unlock()

	sess := o.registry.Get(userID, topicID)
	if sess == nil {
		return nil, &ErrSessionNotFound{UserID: userID, TopicID: topicID}
	}
	sess.LastActivity = time.Now()

	result := &TurnResult{}

	if option == evaluator.OptionExplain {
		result.Explanation = o.buildExplanation(ctx, sess)
	}

	if sess.CurrentQuestionIndex < len(sess.Questions) {
		sess.CurrentQuestionIndex++
	}
	if sess.CurrentQuestionIndex >= len(sess.Questions) {
		if err := o.advanceGoal(ctx, sess, result); err != nil {
			return nil, err
		}
	} else {
		result.NextQuestion = questionView(sess)
	}

	result.Info = infoFor(sess)
	return result, nil
}

// advanceGoal runs when the current goal's question list is exhausted:
// record the performance, complete the goal, and either switch to the
// next goal or finish the session. The caller holds the key lock.
func (o *Orchestrator) advanceGoal(ctx context.Context, sess *Session, result *TurnResult) error {
	perf := evaluator.AnalyzePerformance(sess.Answers)

	err := o.goals.CompleteGoal(ctx, sess.UserID, sess.TopicID, sess.CurrentGoal.ID, store.GoalPerformance{
		TotalQuestions:  perf.TotalQuestions,
		CorrectAnswers:  perf.CorrectAnswers,
		AccuracyPercent: perf.AccuracyPercent,
		MostCommonError: perf.MostCommonError,
	})
	if err != nil {
		return err
	}

	result.GoalCompleted = &GoalCompletion{
		Title:       sess.CurrentGoal.Title,
		Performance: perf,
	}

	next, err := o.goals.CurrentGoal(ctx, sess.UserID, sess.TopicID)
	if err != nil {
		return err
	}

	// Same goal back means nothing is left: the last goal doubles as the
	// all-complete sentinel.
	if next.ID != sess.CurrentGoal.ID {
		questions, err := o.goals.QuestionsForGoal(ctx, next, o.QuestionCount)
		if err != nil {
			return err
		}
		sess.CurrentGoal = *next
		sess.Questions = questions
		sess.CurrentQuestionIndex = 0
		sess.Answers = nil
		result.NextQuestion = questionView(sess)
		return nil
	}

	summary, err := o.goals.SessionSummary(ctx, sess.UserID, sess.TopicID)
	if err != nil {
		return err
	}

	sess.Status = StatusCompleted
	o.registry.Remove(sess.UserID, sess.TopicID)

	// Telemetry, best effort.
	_ = o.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       sessionKey(sess.UserID, sess.TopicID),
		UserID:          sess.UserID,
		TopicID:         sess.TopicID,
		Action:          "end",
		QuestionsServed: sess.QuestionsServed,
		CorrectAnswers:  sess.CorrectAnswers,
		DurationSecs:    int(time.Since(sess.StartTime).Seconds()),
	})

	result.SessionCompleted = summary
	return nil
}

// buildExplanation assembles the "Explain" payload from the last graded
// answer plus supplementary resources. Never fails.
func (o *Orchestrator) buildExplanation(ctx context.Context, sess *Session) *Explanation {
	text := fmt.Sprintf("Let's go over %q once more.", sess.CurrentGoal.Title)
	if n := len(sess.Answers); n > 0 {
		last := sess.Answers[n-1].Evaluation
		if last.CompleteAnswer != "" {
			text = last.CompleteAnswer
		}
	}

	exp := &Explanation{Text: text}
	if rs, err := o.finder.FindResources(ctx, sess.CurrentGoal.Title, sess.Topic.Title, "easy"); err == nil {
		exp.Resources = rs
	}
	return exp
}

func questionView(sess *Session) *QuestionView {
	q := sess.Questions[sess.CurrentQuestionIndex]
	return &QuestionView{
		ID:       q.ID,
		Question: q.Text,
		Goal:     sess.CurrentGoal.Title,
	}
}

func infoFor(sess *Session) *Info {
	num := sess.CurrentQuestionIndex + 1
	if num > len(sess.Questions) {
		num = len(sess.Questions)
	}
	return &Info{
		Topic:          sess.Topic.Title,
		Goal:           sess.CurrentGoal.Title,
		QuestionNumber: num,
		TotalQuestions: len(sess.Questions),
		Status:         sess.Status,
	}
}
