package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/mentora/internal/llm"
)

// Error type values returned in Evaluation.ErrorType.
const (
	ErrorSpelling   = "Spelling"
	ErrorGrammar    = "Grammar"
	ErrorConceptual = "Conceptual"
	ErrorFactual    = "Factual"
	ErrorIncomplete = "Incomplete"
	ErrorNone       = "None"
)

// Feedback options attached to an incorrect evaluation.
const (
	OptionGotIt   = "Got it"
	OptionExplain = "Explain"
)

// Evaluation is the scored, annotated verdict on one learner answer.
type Evaluation struct {
	IsCorrect      bool     `json:"is_correct"`
	ScorePercent   int      `json:"score_percent"`
	ErrorType      string   `json:"error_type"`
	DiffHTML       string   `json:"diff_html"`
	CompleteAnswer string   `json:"complete_answer"`
	Feedback       string   `json:"feedback"`
	BubbleColor    string   `json:"bubble_color"`
	NeedsResources bool     `json:"needs_resources"`
	Options        []string `json:"options,omitempty"`
}

// Config holds tuning parameters for the evaluator's LLM calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// Evaluator scores free-text answers via the LLM.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Evaluator backed by the given provider.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// evaluationInput is what the prompt template renders.
type evaluationInput struct {
	Question       string
	ExpectedAnswer string
	UserAnswer     string
	Concept        string
}

// EvaluateAnswer scores a learner's answer against the expected answer.
// It never returns an error: any upstream failure or schema violation
// degrades to a fixed low-confidence evaluation so the turn can proceed.
func (e *Evaluator) EvaluateAnswer(ctx context.Context, userAnswer, expectedAnswer, question, concept string) Evaluation {
	ctx = llm.WithPurpose(ctx, "answer-evaluation")

	userMsg, err := buildEvaluationMessage(evaluationInput{
		Question:       question,
		ExpectedAnswer: expectedAnswer,
		UserAnswer:     userAnswer,
		Concept:        concept,
	})
	if err != nil {
		return fallbackEvaluation(userAnswer, expectedAnswer)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return fallbackEvaluation(userAnswer, expectedAnswer)
	}

	var ev Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return fallbackEvaluation(userAnswer, expectedAnswer)
	}

	finalize(&ev)
	return ev
}

// FollowUpQuestion asks the LLM for a single follow-up question, harder if
// the learner was correct and easier otherwise. On failure it returns a
// generic clarifying prompt.
func (e *Evaluator) FollowUpQuestion(ctx context.Context, userAnswer, question, concept string, wasCorrect bool) string {
	ctx = llm.WithPurpose(ctx, "follow-up-question")

	direction := "easier, breaking the idea into a smaller step"
	if wasCorrect {
		direction = "slightly harder, pushing one level deeper"
	}

	userMsg := fmt.Sprintf(
		"Concept: %s\nOriginal question: %s\nLearner's answer: %s\n\nWrite one follow-up question that is %s.",
		concept, question, userAnswer, direction,
	)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: followUpSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      FollowUpSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return genericFollowUp
	}

	var out struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Question == "" {
		return genericFollowUp
	}
	return out.Question
}

const genericFollowUp = "Can you explain your reasoning in your own words?"

// finalize applies the deterministic post-processing the LLM is not
// trusted with: bubble color and the feedback options.
func finalize(ev *Evaluation) {
	if ev.IsCorrect {
		ev.BubbleColor = "green"
		ev.Options = nil
	} else {
		ev.BubbleColor = "red"
		ev.Options = []string{OptionGotIt, OptionExplain}
	}
}

// fallbackEvaluation is the fixed low-confidence verdict used when the
// upstream call fails. The diff naively strikes the learner's answer and
// inserts the expected one.
func fallbackEvaluation(userAnswer, expectedAnswer string) Evaluation {
	ev := Evaluation{
		IsCorrect:      false,
		ScorePercent:   50,
		ErrorType:      ErrorConceptual,
		DiffHTML:       fmt.Sprintf("<del>%s</del> <ins>%s</ins>", userAnswer, expectedAnswer),
		CompleteAnswer: expectedAnswer,
		Feedback:       "I couldn't fully check that one. Compare your answer with the expected one and see what differs.",
		NeedsResources: true,
	}
	finalize(&ev)
	return ev
}

const evaluationSystemPrompt = `You are a patient tutor grading a learner's free-text answer.

Score the answer on five dimensions: spelling, grammar, conceptual understanding, factual accuracy, and completeness. Then decide:
- is_correct: true only when the answer demonstrates the expected understanding, minor spelling or grammar slips allowed.
- score_percent: 0-100, how close the answer is overall.
- error_type: the single dominant error class, or None when correct.
- diff_html: the learner's answer with wrong spans wrapped in <del> and corrections in <ins>. Use no other markup.
- complete_answer: a full model answer.
- feedback: one or two warm, specific sentences. Never condescending.
- needs_resources: true when the learner shows a gap that supplementary material would help close.`

const followUpSystemPrompt = `You are a tutor writing a single follow-up question. Keep it to one sentence, answerable in free text, and anchored to the same concept.`

var evaluationUserTemplate = template.Must(template.New("evaluation").Parse(`Concept: {{.Concept}}
Question: {{.Question}}
Expected answer: {{.ExpectedAnswer}}
Learner's answer: {{.UserAnswer}}`))

func buildEvaluationMessage(in evaluationInput) (string, error) {
	var buf bytes.Buffer
	if err := evaluationUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
