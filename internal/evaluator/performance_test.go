package evaluator

import "testing"

func record(correct bool, errorType string) AnswerRecord {
	return AnswerRecord{
		Evaluation: Evaluation{IsCorrect: correct, ErrorType: errorType},
	}
}

func TestAnalyzePerformance_MasteryAt80(t *testing.T) {
	answers := []AnswerRecord{
		record(true, ErrorNone),
		record(true, ErrorNone),
		record(true, ErrorNone),
		record(true, ErrorNone),
		record(false, ErrorFactual),
	}

	perf := AnalyzePerformance(answers)

	if perf.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", perf.TotalQuestions)
	}
	if perf.CorrectAnswers != 4 {
		t.Errorf("CorrectAnswers = %d, want 4", perf.CorrectAnswers)
	}
	if perf.AccuracyPercent != 80 {
		t.Errorf("AccuracyPercent = %d, want 80", perf.AccuracyPercent)
	}
	if !perf.IsMastered {
		t.Error("IsMastered = false, want true at 80%")
	}
	if perf.MostCommonError != ErrorFactual {
		t.Errorf("MostCommonError = %q, want %q", perf.MostCommonError, ErrorFactual)
	}
}

func TestAnalyzePerformance_BelowMastery(t *testing.T) {
	answers := []AnswerRecord{
		record(true, ErrorNone),
		record(false, ErrorConceptual),
		record(false, ErrorConceptual),
	}

	perf := AnalyzePerformance(answers)

	if perf.AccuracyPercent != 33 {
		t.Errorf("AccuracyPercent = %d, want 33", perf.AccuracyPercent)
	}
	if perf.IsMastered {
		t.Error("IsMastered = true, want false")
	}
	if perf.ErrorCounts[ErrorConceptual] != 2 {
		t.Errorf("ErrorCounts[Conceptual] = %d, want 2", perf.ErrorCounts[ErrorConceptual])
	}
}

func TestAnalyzePerformance_TieBrokenByFirstSeen(t *testing.T) {
	answers := []AnswerRecord{
		record(false, ErrorGrammar),
		record(false, ErrorSpelling),
		record(false, ErrorSpelling),
		record(false, ErrorGrammar),
	}

	perf := AnalyzePerformance(answers)

	if perf.MostCommonError != ErrorGrammar {
		t.Errorf("MostCommonError = %q, want %q (first seen wins ties)", perf.MostCommonError, ErrorGrammar)
	}
}

func TestAnalyzePerformance_Empty(t *testing.T) {
	perf := AnalyzePerformance(nil)

	if perf.TotalQuestions != 0 || perf.AccuracyPercent != 0 {
		t.Errorf("empty input: got total=%d accuracy=%d, want zeros", perf.TotalQuestions, perf.AccuracyPercent)
	}
	if perf.IsMastered {
		t.Error("IsMastered = true for empty input, want false")
	}
}

func TestAnalyzePerformance_MissingErrorTypeDefaultsConceptual(t *testing.T) {
	answers := []AnswerRecord{
		record(false, ""),
	}

	perf := AnalyzePerformance(answers)

	if perf.MostCommonError != ErrorConceptual {
		t.Errorf("MostCommonError = %q, want %q", perf.MostCommonError, ErrorConceptual)
	}
}
