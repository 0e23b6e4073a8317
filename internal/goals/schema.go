package goals

import "github.com/abhisek/mentora/internal/llm"

// GoalsSchema defines the JSON schema for LLM goal generation responses.
var GoalsSchema = &llm.Schema{
	Name:        "learning-goals",
	Description: "A progressive list of learning goals for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goals": map[string]any{
				"type":        "array",
				"minItems":    5,
				"maxItems":    7,
				"description": "5 to 7 goals ordered from foundational to advanced",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short goal title, at most eight words",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One sentence describing what the learner will be able to do",
						},
					},
					"required":             []any{"title", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"goals"},
		"additionalProperties": false,
	},
}

// QuestionsSchema defines the JSON schema for LLM question generation responses.
var QuestionsSchema = &llm.Schema{
	Name:        "goal-questions",
	Description: "A batch of free-text assessment questions for one learning goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, answerable in one or two sentences",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The expected answer used for grading",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium"},
							"description": "Question difficulty",
						},
					},
					"required":             []any{"question", "answer", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// RecommendationsSchema defines the JSON schema for study recommendations.
var RecommendationsSchema = &llm.Schema{
	Name:        "study-recommendations",
	Description: "Next-step study recommendations after a tutoring session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type":        "array",
				"minItems":    3,
				"maxItems":    5,
				"description": "3 to 5 concrete, actionable study recommendations",
				"items": map[string]any{
					"type": "string",
				},
			},
		},
		"required":             []any{"recommendations"},
		"additionalProperties": false,
	},
}
