// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentora/ent/goalprogress"
	"github.com/abhisek/mentora/ent/schema"
)

// GoalProgressCreate is the builder for creating a GoalProgress entity.
type GoalProgressCreate struct {
	config
	mutation *GoalProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *GoalProgressCreate) SetUserID(v string) *GoalProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *GoalProgressCreate) SetTopicID(v string) *GoalProgressCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetCompletedGoals sets the "completed_goals" field.
func (_c *GoalProgressCreate) SetCompletedGoals(v []string) *GoalProgressCreate {
	_c.mutation.SetCompletedGoals(v)
	return _c
}

// SetPerformances sets the "performances" field.
func (_c *GoalProgressCreate) SetPerformances(v map[string]schema.PerfRecord) *GoalProgressCreate {
	_c.mutation.SetPerformances(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *GoalProgressCreate) SetTotalQuestions(v int) *GoalProgressCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableTotalQuestions(v *int) *GoalProgressCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *GoalProgressCreate) SetCorrectAnswers(v int) *GoalProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableCorrectAnswers(v *int) *GoalProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetAccuracyPercent sets the "accuracy_percent" field.
func (_c *GoalProgressCreate) SetAccuracyPercent(v int) *GoalProgressCreate {
	_c.mutation.SetAccuracyPercent(v)
	return _c
}

// SetNillableAccuracyPercent sets the "accuracy_percent" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableAccuracyPercent(v *int) *GoalProgressCreate {
	if v != nil {
		_c.SetAccuracyPercent(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GoalProgressCreate) SetStatus(v string) *GoalProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableStatus(v *string) *GoalProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSessionActive sets the "session_active" field.
func (_c *GoalProgressCreate) SetSessionActive(v bool) *GoalProgressCreate {
	_c.mutation.SetSessionActive(v)
	return _c
}

// SetNillableSessionActive sets the "session_active" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableSessionActive(v *bool) *GoalProgressCreate {
	if v != nil {
		_c.SetSessionActive(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GoalProgressCreate) SetStartedAt(v time.Time) *GoalProgressCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableStartedAt(v *time.Time) *GoalProgressCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *GoalProgressCreate) SetLastAccessedAt(v time.Time) *GoalProgressCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableLastAccessedAt(v *time.Time) *GoalProgressCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GoalProgressCreate) SetCompletedAt(v time.Time) *GoalProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GoalProgressCreate) SetNillableCompletedAt(v *time.Time) *GoalProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the GoalProgressMutation object of the builder.
func (_c *GoalProgressCreate) Mutation() *GoalProgressMutation {
	return _c.mutation
}

// Save creates the GoalProgress in the database.
func (_c *GoalProgressCreate) Save(ctx context.Context) (*GoalProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GoalProgressCreate) SaveX(ctx context.Context) *GoalProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GoalProgressCreate) defaults() {
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := goalprogress.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := goalprogress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.AccuracyPercent(); !ok {
		v := goalprogress.DefaultAccuracyPercent
		_c.mutation.SetAccuracyPercent(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := goalprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SessionActive(); !ok {
		v := goalprogress.DefaultSessionActive
		_c.mutation.SetSessionActive(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := goalprogress.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		v := goalprogress.DefaultLastAccessedAt()
		_c.mutation.SetLastAccessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GoalProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GoalProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := goalprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GoalProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "GoalProgress.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := goalprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "GoalProgress.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "GoalProgress.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "GoalProgress.correct_answers"`)}
	}
	if _, ok := _c.mutation.AccuracyPercent(); !ok {
		return &ValidationError{Name: "accuracy_percent", err: errors.New(`ent: missing required field "GoalProgress.accuracy_percent"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GoalProgress.status"`)}
	}
	if _, ok := _c.mutation.SessionActive(); !ok {
		return &ValidationError{Name: "session_active", err: errors.New(`ent: missing required field "GoalProgress.session_active"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "GoalProgress.started_at"`)}
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		return &ValidationError{Name: "last_accessed_at", err: errors.New(`ent: missing required field "GoalProgress.last_accessed_at"`)}
	}
	return nil
}

func (_c *GoalProgressCreate) sqlSave(ctx context.Context) (*GoalProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GoalProgressCreate) createSpec() (*GoalProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &GoalProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(goalprogress.Table, sqlgraph.NewFieldSpec(goalprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(goalprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(goalprogress.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.CompletedGoals(); ok {
		_spec.SetField(goalprogress.FieldCompletedGoals, field.TypeJSON, value)
		_node.CompletedGoals = value
	}
	if value, ok := _c.mutation.Performances(); ok {
		_spec.SetField(goalprogress.FieldPerformances, field.TypeJSON, value)
		_node.Performances = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(goalprogress.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(goalprogress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.AccuracyPercent(); ok {
		_spec.SetField(goalprogress.FieldAccuracyPercent, field.TypeInt, value)
		_node.AccuracyPercent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(goalprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SessionActive(); ok {
		_spec.SetField(goalprogress.FieldSessionActive, field.TypeBool, value)
		_node.SessionActive = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(goalprogress.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(goalprogress.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(goalprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// GoalProgressCreateBulk is the builder for creating many GoalProgress entities in bulk.
type GoalProgressCreateBulk struct {
	config
	err      error
	builders []*GoalProgressCreate
}

// Save creates the GoalProgress entities in the database.
func (_c *GoalProgressCreateBulk) Save(ctx context.Context) ([]*GoalProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GoalProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GoalProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GoalProgressCreateBulk) SaveX(ctx context.Context) []*GoalProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
