package tutor

import "github.com/abhisek/linuxlearn/internal/llm"

// ExplanationSchema is the JSON shape every provider must answer with.
var ExplanationSchema = llm.NewSchema(
	"command-explanation",
	"Why a Linux command did not complete an exercise, and how to fix it",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "What the submitted command actually does and why it does not solve the exercise (2-4 sentences)",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One short, concrete nudge toward the right command",
			},
			"suggested_command": map[string]any{
				"type":        "string",
				"description": "A command to try next, or an empty string when the learner should work it out",
			},
		},
		"required":             []any{"explanation", "tip", "suggested_command"},
		"additionalProperties": false,
	},
)
