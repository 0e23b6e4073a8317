package store

import (
	"context"
	"time"
)

// Topic is a unit of study. Topics are produced by the curriculum pipeline;
// the tutoring engine treats them as read-only.
type Topic struct {
	ID      string
	Title   string
	Content string
}

// Goal is a learning objective within a topic.
type Goal struct {
	ID          string
	TopicID     string
	Title       string
	Description string
	Order       int
}

// Question is a single assessment question for a goal.
type Question struct {
	ID         string
	GoalID     string
	Text       string
	Answer     string
	Difficulty string
	Position   int
}

// GoalPerformance is the recorded outcome for one completed goal.
type GoalPerformance struct {
	TotalQuestions  int
	CorrectAnswers  int
	AccuracyPercent int
	MostCommonError string
}

// Progress status values.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// GoalProgress aggregates a learner's progress through one topic.
// A goal ID appears in CompletedGoals at most once. Overall counts are
// recomputed from Performances on every completion, never decremented.
type GoalProgress struct {
	UserID          string
	TopicID         string
	CompletedGoals  []string
	Performances    map[string]GoalPerformance
	TotalQuestions  int
	CorrectAnswers  int
	AccuracyPercent int
	Status          string
	SessionActive   bool
	StartedAt       time.Time
	LastAccessedAt  time.Time
	CompletedAt     *time.Time
}

// Completed reports whether goalID has been recorded as complete.
func (p *GoalProgress) Completed(goalID string) bool {
	for _, id := range p.CompletedGoals {
		if id == goalID {
			return true
		}
	}
	return false
}

// TopicRepo provides read access to topics.
type TopicRepo interface {
	// GetTopic returns the topic, or nil if it does not exist.
	GetTopic(ctx context.Context, topicID string) (*Topic, error)

	// SaveTopic upserts a topic. Used by seeding, not the engine.
	SaveTopic(ctx context.Context, t *Topic) error

	// ListTopics returns all topics ordered by title.
	ListTopics(ctx context.Context) ([]Topic, error)
}

// GoalRepo manages persisted goal definitions.
type GoalRepo interface {
	// GoalsForTopic returns the topic's goals ordered by Order.
	GoalsForTopic(ctx context.Context, topicID string) ([]Goal, error)

	// SaveGoals persists a goal list for a topic. Goals already present
	// (by ID) are left untouched.
	SaveGoals(ctx context.Context, topicID string, goals []Goal) error

	// GetGoal returns a goal by ID, or nil if it does not exist.
	GetGoal(ctx context.Context, goalID string) (*Goal, error)
}

// QuestionRepo manages the cached question batch per goal.
type QuestionRepo interface {
	// QuestionsForGoal returns the cached batch ordered by Position.
	QuestionsForGoal(ctx context.Context, goalID string) ([]Question, error)

	// SaveQuestions appends questions to a goal's batch.
	SaveQuestions(ctx context.Context, goalID string, questions []Question) error
}

// ProgressRepo manages per-(user, topic) goal progress aggregates.
type ProgressRepo interface {
	// GetProgress returns the aggregate, or nil if none exists yet.
	GetProgress(ctx context.Context, userID, topicID string) (*GoalProgress, error)

	// UpdateProgress upserts the aggregate as a single atomic write.
	UpdateProgress(ctx context.Context, p *GoalProgress) error

	// MarkSessionInactive clears the session-active flag on the aggregate.
	// A missing aggregate is not an error.
	MarkSessionInactive(ctx context.Context, userID, topicID string) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	UserID          string
	TopicID         string
	Action          string // start, end or inactive
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// EventQuery provides read access to recorded LLM request events,
// used by the inspection CLI rather than the engine.
type EventQuery interface {
	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRow, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRow, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
