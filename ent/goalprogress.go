// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentora/ent/goalprogress"
	"github.com/abhisek/mentora/ent/schema"
)

// GoalProgress is the model entity for the GoalProgress schema.
type GoalProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Goal IDs completed so far; each appears at most once
	CompletedGoals []string `json:"completed_goals,omitempty"`
	// Recorded performance keyed by goal ID
	Performances map[string]schema.PerfRecord `json:"performances,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// round(correct/total*100), recomputed on every completion
	AccuracyPercent int `json:"accuracy_percent,omitempty"`
	// in_progress or completed
	Status string `json:"status,omitempty"`
	// Cleared by the registry sweep when a session goes idle
	SessionActive bool `json:"session_active,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// LastAccessedAt holds the value of the "last_accessed_at" field.
	LastAccessedAt time.Time `json:"last_accessed_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GoalProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case goalprogress.FieldCompletedGoals, goalprogress.FieldPerformances:
			values[i] = new([]byte)
		case goalprogress.FieldSessionActive:
			values[i] = new(sql.NullBool)
		case goalprogress.FieldID, goalprogress.FieldTotalQuestions, goalprogress.FieldCorrectAnswers, goalprogress.FieldAccuracyPercent:
			values[i] = new(sql.NullInt64)
		case goalprogress.FieldUserID, goalprogress.FieldTopicID, goalprogress.FieldStatus:
			values[i] = new(sql.NullString)
		case goalprogress.FieldStartedAt, goalprogress.FieldLastAccessedAt, goalprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GoalProgress fields.
func (_m *GoalProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case goalprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case goalprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case goalprogress.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case goalprogress.FieldCompletedGoals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_goals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedGoals); err != nil {
					return fmt.Errorf("unmarshal field completed_goals: %w", err)
				}
			}
		case goalprogress.FieldPerformances:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field performances", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Performances); err != nil {
					return fmt.Errorf("unmarshal field performances: %w", err)
				}
			}
		case goalprogress.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case goalprogress.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case goalprogress.FieldAccuracyPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_percent", values[i])
			} else if value.Valid {
				_m.AccuracyPercent = int(value.Int64)
			}
		case goalprogress.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case goalprogress.FieldSessionActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field session_active", values[i])
			} else if value.Valid {
				_m.SessionActive = value.Bool
			}
		case goalprogress.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case goalprogress.FieldLastAccessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed_at", values[i])
			} else if value.Valid {
				_m.LastAccessedAt = value.Time
			}
		case goalprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GoalProgress.
// This includes values selected through modifiers, order, etc.
func (_m *GoalProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GoalProgress.
// Note that you need to call GoalProgress.Unwrap() before calling this method if this GoalProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GoalProgress) Update() *GoalProgressUpdateOne {
	return NewGoalProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GoalProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GoalProgress) Unwrap() *GoalProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GoalProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GoalProgress) String() string {
	var builder strings.Builder
	builder.WriteString("GoalProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("completed_goals=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedGoals))
	builder.WriteString(", ")
	builder.WriteString("performances=")
	builder.WriteString(fmt.Sprintf("%v", _m.Performances))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("accuracy_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyPercent))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("session_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionActive))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_accessed_at=")
	builder.WriteString(_m.LastAccessedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// GoalProgresses is a parsable slice of GoalProgress.
type GoalProgresses []*GoalProgress
