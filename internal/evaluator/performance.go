package evaluator

import (
	"math"
	"time"
)

// MasteryThreshold is the accuracy percent at or above which a goal
// counts as mastered.
const MasteryThreshold = 80

// AnswerRecord is one graded answer within a session. Records are
// appended as answers arrive and never mutated.
type AnswerRecord struct {
	QuestionID string
	Question   string
	UserAnswer string
	Evaluation Evaluation
	Timestamp  time.Time
}

// Performance summarizes a batch of answer records for one goal.
type Performance struct {
	TotalQuestions  int
	CorrectAnswers  int
	AccuracyPercent int
	ErrorCounts     map[string]int
	MostCommonError string
	IsMastered      bool
}

// AnalyzePerformance derives a Performance from a goal's answer records.
// Pure and deterministic: the error histogram counts incorrect answers by
// error type, and ties for the most common error go to the type seen first.
func AnalyzePerformance(answers []AnswerRecord) Performance {
	perf := Performance{
		TotalQuestions: len(answers),
		ErrorCounts:    make(map[string]int),
	}

	var errorOrder []string
	for _, rec := range answers {
		if rec.Evaluation.IsCorrect {
			perf.CorrectAnswers++
			continue
		}
		et := rec.Evaluation.ErrorType
		if et == "" {
			et = ErrorConceptual
		}
		if _, seen := perf.ErrorCounts[et]; !seen {
			errorOrder = append(errorOrder, et)
		}
		perf.ErrorCounts[et]++
	}

	if perf.TotalQuestions > 0 {
		perf.AccuracyPercent = int(math.Round(float64(perf.CorrectAnswers) / float64(perf.TotalQuestions) * 100))
	}

	best := 0
	for _, et := range errorOrder {
		if perf.ErrorCounts[et] > best {
			best = perf.ErrorCounts[et]
			perf.MostCommonError = et
		}
	}

	perf.IsMastered = perf.AccuracyPercent >= MasteryThreshold
	return perf
}
