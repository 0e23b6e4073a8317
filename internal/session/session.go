package session

import (
	"fmt"
	"time"

	"github.com/abhisek/mentora/internal/evaluator"
	"github.com/abhisek/mentora/internal/store"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Session is the live, in-memory state of one learner working through one
// topic. It is owned exclusively by the Registry and mutated only under
// the registry's per-key lock.
//
// Invariants: 0 <= CurrentQuestionIndex <= len(Questions), and Answers
// only holds records for the current goal's questions (cleared on every
// goal switch).
type Session struct {
	UserID  string
	TopicID string
	Topic   *store.Topic

	Goals                []store.Goal
	CurrentGoal          store.Goal
	Questions            []store.Question
	CurrentQuestionIndex int
	Answers              []evaluator.AnswerRecord

	// Session-wide counters for the end-of-session event. Unlike
	// Answers, these survive goal switches.
	QuestionsServed int
	CorrectAnswers  int

	StartTime    time.Time
	LastActivity time.Time
	Status       Status
}

// ErrSessionNotFound reports that no active session exists for a
// (user, topic) key. It is the only engine fault surfaced to callers
// besides persistence errors.
type ErrSessionNotFound struct {
	UserID  string
	TopicID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("no active session for user %s on topic %s", e.UserID, e.TopicID)
}
