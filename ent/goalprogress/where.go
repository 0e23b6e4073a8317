// Code generated by ent, DO NOT EDIT.

package goalprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldTopicID, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// AccuracyPercent applies equality check predicate on the "accuracy_percent" field. It's identical to AccuracyPercentEQ.
func AccuracyPercent(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldAccuracyPercent, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldStatus, v))
}

// SessionActive applies equality check predicate on the "session_active" field. It's identical to SessionActiveEQ.
func SessionActive(v bool) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldSessionActive, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldStartedAt, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldLastAccessedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldContainsFold(FieldTopicID, v))
}

// CompletedGoalsIsNil applies the IsNil predicate on the "completed_goals" field.
func CompletedGoalsIsNil() predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIsNull(FieldCompletedGoals))
}

// CompletedGoalsNotNil applies the NotNil predicate on the "completed_goals" field.
func CompletedGoalsNotNil() predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotNull(FieldCompletedGoals))
}

// PerformancesIsNil applies the IsNil predicate on the "performances" field.
func PerformancesIsNil() predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIsNull(FieldPerformances))
}

// PerformancesNotNil applies the NotNil predicate on the "performances" field.
func PerformancesNotNil() predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotNull(FieldPerformances))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// AccuracyPercentEQ applies the EQ predicate on the "accuracy_percent" field.
func AccuracyPercentEQ(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldAccuracyPercent, v))
}

// AccuracyPercentNEQ applies the NEQ predicate on the "accuracy_percent" field.
func AccuracyPercentNEQ(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldAccuracyPercent, v))
}

// AccuracyPercentIn applies the In predicate on the "accuracy_percent" field.
func AccuracyPercentIn(vs ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldAccuracyPercent, vs...))
}

// AccuracyPercentNotIn applies the NotIn predicate on the "accuracy_percent" field.
func AccuracyPercentNotIn(vs ...int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldAccuracyPercent, vs...))
}

// AccuracyPercentGT applies the GT predicate on the "accuracy_percent" field.
func AccuracyPercentGT(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldAccuracyPercent, v))
}

// AccuracyPercentGTE applies the GTE predicate on the "accuracy_percent" field.
func AccuracyPercentGTE(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldAccuracyPercent, v))
}

// AccuracyPercentLT applies the LT predicate on the "accuracy_percent" field.
func AccuracyPercentLT(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldAccuracyPercent, v))
}

// AccuracyPercentLTE applies the LTE predicate on the "accuracy_percent" field.
func AccuracyPercentLTE(v int) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldAccuracyPercent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldContainsFold(FieldStatus, v))
}

// SessionActiveEQ applies the EQ predicate on the "session_active" field.
func SessionActiveEQ(v bool) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldSessionActive, v))
}

// SessionActiveNEQ applies the NEQ predicate on the "session_active" field.
func SessionActiveNEQ(v bool) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldSessionActive, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldStartedAt, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldLastAccessedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.GoalProgress {
	return predicate.GoalProgress(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GoalProgress) predicate.GoalProgress {
	return predicate.GoalProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GoalProgress) predicate.GoalProgress {
	return predicate.GoalProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GoalProgress) predicate.GoalProgress {
	return predicate.GoalProgress(sql.NotPredicates(p))
}
