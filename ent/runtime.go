// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mentora/ent/goal"
	"github.com/abhisek/mentora/ent/goalprogress"
	"github.com/abhisek/mentora/ent/llmrequestevent"
	"github.com/abhisek/mentora/ent/question"
	"github.com/abhisek/mentora/ent/schema"
	"github.com/abhisek/mentora/ent/sessionevent"
	"github.com/abhisek/mentora/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescGoalID is the schema descriptor for goal_id field.
	goalDescGoalID := goalFields[0].Descriptor()
	// goal.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	goal.GoalIDValidator = goalDescGoalID.Validators[0].(func(string) error)
	// goalDescTopicID is the schema descriptor for topic_id field.
	goalDescTopicID := goalFields[1].Descriptor()
	// goal.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	goal.TopicIDValidator = goalDescTopicID.Validators[0].(func(string) error)
	// goalDescTitle is the schema descriptor for title field.
	goalDescTitle := goalFields[2].Descriptor()
	// goal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	goal.TitleValidator = goalDescTitle.Validators[0].(func(string) error)
	// goalDescDescription is the schema descriptor for description field.
	goalDescDescription := goalFields[3].Descriptor()
	// goal.DefaultDescription holds the default value on creation for the description field.
	goal.DefaultDescription = goalDescDescription.Default.(string)
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[5].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	goalprogressFields := schema.GoalProgress{}.Fields()
	_ = goalprogressFields
	// goalprogressDescUserID is the schema descriptor for user_id field.
	goalprogressDescUserID := goalprogressFields[0].Descriptor()
	// goalprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	goalprogress.UserIDValidator = goalprogressDescUserID.Validators[0].(func(string) error)
	// goalprogressDescTopicID is the schema descriptor for topic_id field.
	goalprogressDescTopicID := goalprogressFields[1].Descriptor()
	// goalprogress.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	goalprogress.TopicIDValidator = goalprogressDescTopicID.Validators[0].(func(string) error)
	// goalprogressDescTotalQuestions is the schema descriptor for total_questions field.
	goalprogressDescTotalQuestions := goalprogressFields[4].Descriptor()
	// goalprogress.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	goalprogress.DefaultTotalQuestions = goalprogressDescTotalQuestions.Default.(int)
	// goalprogressDescCorrectAnswers is the schema descriptor for correct_answers field.
	goalprogressDescCorrectAnswers := goalprogressFields[5].Descriptor()
	// goalprogress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	goalprogress.DefaultCorrectAnswers = goalprogressDescCorrectAnswers.Default.(int)
	// goalprogressDescAccuracyPercent is the schema descriptor for accuracy_percent field.
	goalprogressDescAccuracyPercent := goalprogressFields[6].Descriptor()
	// goalprogress.DefaultAccuracyPercent holds the default value on creation for the accuracy_percent field.
	goalprogress.DefaultAccuracyPercent = goalprogressDescAccuracyPercent.Default.(int)
	// goalprogressDescStatus is the schema descriptor for status field.
	goalprogressDescStatus := goalprogressFields[7].Descriptor()
	// goalprogress.DefaultStatus holds the default value on creation for the status field.
	goalprogress.DefaultStatus = goalprogressDescStatus.Default.(string)
	// goalprogressDescSessionActive is the schema descriptor for session_active field.
	goalprogressDescSessionActive := goalprogressFields[8].Descriptor()
	// goalprogress.DefaultSessionActive holds the default value on creation for the session_active field.
	goalprogress.DefaultSessionActive = goalprogressDescSessionActive.Default.(bool)
	// goalprogressDescStartedAt is the schema descriptor for started_at field.
	goalprogressDescStartedAt := goalprogressFields[9].Descriptor()
	// goalprogress.DefaultStartedAt holds the default value on creation for the started_at field.
	goalprogress.DefaultStartedAt = goalprogressDescStartedAt.Default.(func() time.Time)
	// goalprogressDescLastAccessedAt is the schema descriptor for last_accessed_at field.
	goalprogressDescLastAccessedAt := goalprogressFields[10].Descriptor()
	// goalprogress.DefaultLastAccessedAt holds the default value on creation for the last_accessed_at field.
	goalprogress.DefaultLastAccessedAt = goalprogressDescLastAccessedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescGoalID is the schema descriptor for goal_id field.
	questionDescGoalID := questionFields[1].Descriptor()
	// question.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	question.GoalIDValidator = questionDescGoalID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[3].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[6].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[2].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTopicID is the schema descriptor for topic_id field.
	topicDescTopicID := topicFields[0].Descriptor()
	// topic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topic.TopicIDValidator = topicDescTopicID.Validators[0].(func(string) error)
	// topicDescTitle is the schema descriptor for title field.
	topicDescTitle := topicFields[1].Descriptor()
	// topic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	topic.TitleValidator = topicDescTitle.Validators[0].(func(string) error)
	// topicDescContent is the schema descriptor for content field.
	topicDescContent := topicFields[2].Descriptor()
	// topic.DefaultContent holds the default value on creation for the content field.
	topic.DefaultContent = topicDescContent.Default.(string)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[3].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
}
