package evaluator

import "github.com/abhisek/mentora/internal/llm"

// EvaluationSchema defines the JSON schema for LLM answer evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A scored verdict on a learner's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is substantively correct",
			},
			"score_percent": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How close the answer is to the expected answer, 0-100",
			},
			"error_type": map[string]any{
				"type":        "string",
				"enum":        []any{"Spelling", "Grammar", "Conceptual", "Factual", "Incomplete", "None"},
				"description": "The dominant error class. None for a correct answer.",
			},
			"diff_html": map[string]any{
				"type":        "string",
				"description": "The learner's answer with wrong spans wrapped in <del> and corrections in <ins>. No other markup.",
			},
			"complete_answer": map[string]any{
				"type":        "string",
				"description": "A full model answer to the question",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences explaining the verdict",
			},
			"needs_resources": map[string]any{
				"type":        "boolean",
				"description": "True when the learner would benefit from supplementary material",
			},
		},
		"required": []any{
			"is_correct", "score_percent", "error_type", "diff_html",
			"complete_answer", "feedback", "needs_resources",
		},
		"additionalProperties": false,
	},
}

// FollowUpSchema defines the JSON schema for follow-up question generation.
var FollowUpSchema = &llm.Schema{
	Name:        "follow-up-question",
	Description: "A single follow-up question for the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The follow-up question text, one sentence",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}
