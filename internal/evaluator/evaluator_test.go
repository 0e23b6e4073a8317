package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mentora/internal/llm"
)

func TestEvaluateAnswer_CorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"is_correct": true,
			"score_percent": 95,
			"error_type": "None",
			"diff_html": "Photosynthesis converts light into chemical energy.",
			"complete_answer": "Photosynthesis converts light into chemical energy.",
			"feedback": "Exactly right.",
			"needs_resources": false
		}`),
	})
	e := New(mock, DefaultConfig())

	ev := e.EvaluateAnswer(context.Background(),
		"Photosynthesis converts light into chemical energy.",
		"Photosynthesis converts light energy into chemical energy.",
		"What does photosynthesis do?", "Photosynthesis")

	if !ev.IsCorrect {
		t.Fatal("IsCorrect = false, want true")
	}
	if ev.BubbleColor != "green" {
		t.Errorf("BubbleColor = %q, want green", ev.BubbleColor)
	}
	if ev.Options != nil {
		t.Errorf("Options = %v, want nil on correct answer", ev.Options)
	}
}

func TestEvaluateAnswer_IncorrectAttachesOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"is_correct": false,
			"score_percent": 30,
			"error_type": "Conceptual",
			"diff_html": "<del>respiration</del> <ins>photosynthesis</ins>",
			"complete_answer": "Photosynthesis converts light energy into chemical energy.",
			"feedback": "Close, but that describes the reverse process.",
			"needs_resources": true
		}`),
	})
	e := New(mock, DefaultConfig())

	ev := e.EvaluateAnswer(context.Background(), "respiration", "photosynthesis", "q", "c")

	if ev.IsCorrect {
		t.Fatal("IsCorrect = true, want false")
	}
	if ev.BubbleColor != "red" {
		t.Errorf("BubbleColor = %q, want red", ev.BubbleColor)
	}
	if len(ev.Options) != 2 || ev.Options[0] != OptionGotIt || ev.Options[1] != OptionExplain {
		t.Errorf("Options = %v, want [%q %q]", ev.Options, OptionGotIt, OptionExplain)
	}
}

func TestEvaluateAnswer_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := New(mock, DefaultConfig())

	ev := e.EvaluateAnswer(context.Background(), "my answer", "the expected answer", "q", "c")

	if ev.ScorePercent != 50 {
		t.Errorf("ScorePercent = %d, want 50", ev.ScorePercent)
	}
	if ev.ErrorType != ErrorConceptual {
		t.Errorf("ErrorType = %q, want %q", ev.ErrorType, ErrorConceptual)
	}
	if !ev.NeedsResources {
		t.Error("NeedsResources = false, want true")
	}
	if !strings.Contains(ev.DiffHTML, "<del>my answer</del>") || !strings.Contains(ev.DiffHTML, "<ins>the expected answer</ins>") {
		t.Errorf("DiffHTML = %q, want naive del/ins diff", ev.DiffHTML)
	}
	if ev.BubbleColor != "red" {
		t.Errorf("BubbleColor = %q, want red", ev.BubbleColor)
	}
}

func TestEvaluateAnswer_FallbackOnMalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	e := New(mock, DefaultConfig())

	ev := e.EvaluateAnswer(context.Background(), "a", "b", "q", "c")

	if ev.ScorePercent != 50 || ev.ErrorType != ErrorConceptual {
		t.Errorf("got score=%d errorType=%q, want fallback shape", ev.ScorePercent, ev.ErrorType)
	}
}

func TestFollowUpQuestion_UsesLLMResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question": "What happens to the oxygen produced?"}`),
	})
	e := New(mock, DefaultConfig())

	q := e.FollowUpQuestion(context.Background(), "ans", "q", "Photosynthesis", true)

	if q != "What happens to the oxygen produced?" {
		t.Errorf("FollowUpQuestion = %q, want LLM question", q)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "harder") {
		t.Error("correct answer should request a harder follow-up")
	}
}

func TestFollowUpQuestion_GenericOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	e := New(mock, DefaultConfig())

	q := e.FollowUpQuestion(context.Background(), "ans", "q", "c", false)

	if q != genericFollowUp {
		t.Errorf("FollowUpQuestion = %q, want generic prompt", q)
	}
}
