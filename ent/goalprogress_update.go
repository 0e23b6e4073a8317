// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentora/ent/goalprogress"
	"github.com/abhisek/mentora/ent/predicate"
	"github.com/abhisek/mentora/ent/schema"
)

// GoalProgressUpdate is the builder for updating GoalProgress entities.
type GoalProgressUpdate struct {
	config
	hooks    []Hook
	mutation *GoalProgressMutation
}

// Where appends a list predicates to the GoalProgressUpdate builder.
func (_u *GoalProgressUpdate) Where(ps ...predicate.GoalProgress) *GoalProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GoalProgressUpdate) SetUserID(v string) *GoalProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableUserID(v *string) *GoalProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *GoalProgressUpdate) SetTopicID(v string) *GoalProgressUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableTopicID(v *string) *GoalProgressUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetCompletedGoals sets the "completed_goals" field.
func (_u *GoalProgressUpdate) SetCompletedGoals(v []string) *GoalProgressUpdate {
	_u.mutation.SetCompletedGoals(v)
	return _u
}

// AppendCompletedGoals appends value to the "completed_goals" field.
func (_u *GoalProgressUpdate) AppendCompletedGoals(v []string) *GoalProgressUpdate {
	_u.mutation.AppendCompletedGoals(v)
	return _u
}

// ClearCompletedGoals clears the value of the "completed_goals" field.
func (_u *GoalProgressUpdate) ClearCompletedGoals() *GoalProgressUpdate {
	_u.mutation.ClearCompletedGoals()
	return _u
}

// SetPerformances sets the "performances" field.
func (_u *GoalProgressUpdate) SetPerformances(v map[string]schema.PerfRecord) *GoalProgressUpdate {
	_u.mutation.SetPerformances(v)
	return _u
}

// ClearPerformances clears the value of the "performances" field.
func (_u *GoalProgressUpdate) ClearPerformances() *GoalProgressUpdate {
	_u.mutation.ClearPerformances()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *GoalProgressUpdate) SetTotalQuestions(v int) *GoalProgressUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableTotalQuestions(v *int) *GoalProgressUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *GoalProgressUpdate) AddTotalQuestions(v int) *GoalProgressUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *GoalProgressUpdate) SetCorrectAnswers(v int) *GoalProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableCorrectAnswers(v *int) *GoalProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *GoalProgressUpdate) AddCorrectAnswers(v int) *GoalProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAccuracyPercent sets the "accuracy_percent" field.
func (_u *GoalProgressUpdate) SetAccuracyPercent(v int) *GoalProgressUpdate {
	_u.mutation.ResetAccuracyPercent()
	_u.mutation.SetAccuracyPercent(v)
	return _u
}

// SetNillableAccuracyPercent sets the "accuracy_percent" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableAccuracyPercent(v *int) *GoalProgressUpdate {
	if v != nil {
		_u.SetAccuracyPercent(*v)
	}
	return _u
}

// AddAccuracyPercent adds value to the "accuracy_percent" field.
func (_u *GoalProgressUpdate) AddAccuracyPercent(v int) *GoalProgressUpdate {
	_u.mutation.AddAccuracyPercent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalProgressUpdate) SetStatus(v string) *GoalProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableStatus(v *string) *GoalProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionActive sets the "session_active" field.
func (_u *GoalProgressUpdate) SetSessionActive(v bool) *GoalProgressUpdate {
	_u.mutation.SetSessionActive(v)
	return _u
}

// SetNillableSessionActive sets the "session_active" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableSessionActive(v *bool) *GoalProgressUpdate {
	if v != nil {
		_u.SetSessionActive(*v)
	}
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *GoalProgressUpdate) SetLastAccessedAt(v time.Time) *GoalProgressUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableLastAccessedAt(v *time.Time) *GoalProgressUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GoalProgressUpdate) SetCompletedAt(v time.Time) *GoalProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GoalProgressUpdate) SetNillableCompletedAt(v *time.Time) *GoalProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GoalProgressUpdate) ClearCompletedAt() *GoalProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GoalProgressMutation object of the builder.
func (_u *GoalProgressUpdate) Mutation() *GoalProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := goalprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GoalProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := goalprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GoalProgress.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goalprogress.Table, goalprogress.Columns, sqlgraph.NewFieldSpec(goalprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(goalprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(goalprogress.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedGoals(); ok {
		_spec.SetField(goalprogress.FieldCompletedGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, goalprogress.FieldCompletedGoals, value)
		})
	}
	if _u.mutation.CompletedGoalsCleared() {
		_spec.ClearField(goalprogress.FieldCompletedGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Performances(); ok {
		_spec.SetField(goalprogress.FieldPerformances, field.TypeJSON, value)
	}
	if _u.mutation.PerformancesCleared() {
		_spec.ClearField(goalprogress.FieldPerformances, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(goalprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(goalprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(goalprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(goalprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPercent(); ok {
		_spec.SetField(goalprogress.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPercent(); ok {
		_spec.AddField(goalprogress.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goalprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionActive(); ok {
		_spec.SetField(goalprogress.FieldSessionActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(goalprogress.FieldLastAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(goalprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(goalprogress.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goalprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalProgressUpdateOne is the builder for updating a single GoalProgress entity.
type GoalProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *GoalProgressUpdateOne) SetUserID(v string) *GoalProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableUserID(v *string) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *GoalProgressUpdateOne) SetTopicID(v string) *GoalProgressUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableTopicID(v *string) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetCompletedGoals sets the "completed_goals" field.
func (_u *GoalProgressUpdateOne) SetCompletedGoals(v []string) *GoalProgressUpdateOne {
	_u.mutation.SetCompletedGoals(v)
	return _u
}

// AppendCompletedGoals appends value to the "completed_goals" field.
func (_u *GoalProgressUpdateOne) AppendCompletedGoals(v []string) *GoalProgressUpdateOne {
	_u.mutation.AppendCompletedGoals(v)
	return _u
}

// ClearCompletedGoals clears the value of the "completed_goals" field.
func (_u *GoalProgressUpdateOne) ClearCompletedGoals() *GoalProgressUpdateOne {
	_u.mutation.ClearCompletedGoals()
	return _u
}

// SetPerformances sets the "performances" field.
func (_u *GoalProgressUpdateOne) SetPerformances(v map[string]schema.PerfRecord) *GoalProgressUpdateOne {
	_u.mutation.SetPerformances(v)
	return _u
}

// ClearPerformances clears the value of the "performances" field.
func (_u *GoalProgressUpdateOne) ClearPerformances() *GoalProgressUpdateOne {
	_u.mutation.ClearPerformances()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *GoalProgressUpdateOne) SetTotalQuestions(v int) *GoalProgressUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableTotalQuestions(v *int) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *GoalProgressUpdateOne) AddTotalQuestions(v int) *GoalProgressUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *GoalProgressUpdateOne) SetCorrectAnswers(v int) *GoalProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableCorrectAnswers(v *int) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *GoalProgressUpdateOne) AddCorrectAnswers(v int) *GoalProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAccuracyPercent sets the "accuracy_percent" field.
func (_u *GoalProgressUpdateOne) SetAccuracyPercent(v int) *GoalProgressUpdateOne {
	_u.mutation.ResetAccuracyPercent()
	_u.mutation.SetAccuracyPercent(v)
	return _u
}

// SetNillableAccuracyPercent sets the "accuracy_percent" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableAccuracyPercent(v *int) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetAccuracyPercent(*v)
	}
	return _u
}

// AddAccuracyPercent adds value to the "accuracy_percent" field.
func (_u *GoalProgressUpdateOne) AddAccuracyPercent(v int) *GoalProgressUpdateOne {
	_u.mutation.AddAccuracyPercent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalProgressUpdateOne) SetStatus(v string) *GoalProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableStatus(v *string) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionActive sets the "session_active" field.
func (_u *GoalProgressUpdateOne) SetSessionActive(v bool) *GoalProgressUpdateOne {
	_u.mutation.SetSessionActive(v)
	return _u
}

// SetNillableSessionActive sets the "session_active" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableSessionActive(v *bool) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetSessionActive(*v)
	}
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *GoalProgressUpdateOne) SetLastAccessedAt(v time.Time) *GoalProgressUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableLastAccessedAt(v *time.Time) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GoalProgressUpdateOne) SetCompletedAt(v time.Time) *GoalProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GoalProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *GoalProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GoalProgressUpdateOne) ClearCompletedAt() *GoalProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GoalProgressMutation object of the builder.
func (_u *GoalProgressUpdateOne) Mutation() *GoalProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the GoalProgressUpdate builder.
func (_u *GoalProgressUpdateOne) Where(ps ...predicate.GoalProgress) *GoalProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalProgressUpdateOne) Select(field string, fields ...string) *GoalProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GoalProgress entity.
func (_u *GoalProgressUpdateOne) Save(ctx context.Context) (*GoalProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalProgressUpdateOne) SaveX(ctx context.Context) *GoalProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := goalprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GoalProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := goalprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GoalProgress.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalProgressUpdateOne) sqlSave(ctx context.Context) (_node *GoalProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goalprogress.Table, goalprogress.Columns, sqlgraph.NewFieldSpec(goalprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GoalProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goalprogress.FieldID)
		for _, f := range fields {
			if !goalprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goalprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(goalprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(goalprogress.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedGoals(); ok {
		_spec.SetField(goalprogress.FieldCompletedGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, goalprogress.FieldCompletedGoals, value)
		})
	}
	if _u.mutation.CompletedGoalsCleared() {
		_spec.ClearField(goalprogress.FieldCompletedGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Performances(); ok {
		_spec.SetField(goalprogress.FieldPerformances, field.TypeJSON, value)
	}
	if _u.mutation.PerformancesCleared() {
		_spec.ClearField(goalprogress.FieldPerformances, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(goalprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(goalprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(goalprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(goalprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPercent(); ok {
		_spec.SetField(goalprogress.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPercent(); ok {
		_spec.AddField(goalprogress.FieldAccuracyPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goalprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionActive(); ok {
		_spec.SetField(goalprogress.FieldSessionActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(goalprogress.FieldLastAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(goalprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(goalprogress.FieldCompletedAt, field.TypeTime)
	}
	_node = &GoalProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goalprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
