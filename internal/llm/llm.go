// Package llm sends the tutor's single-turn prompts to a hosted model and
// returns JSON checked against the prompt's schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers one Prompt. Every backend here, and every decorator,
// implements it.
type Provider interface {
	Generate(ctx context.Context, p Prompt) (*Reply, error)
	ModelID() string
}

// Prompt is a system instruction plus one user turn. The tutor never holds
// a conversation, so there is no message history.
type Prompt struct {
	System string
	User   string

	// Schema is required. Backends pass it to the model's native
	// structured output and check the reply against it.
	Schema *Schema

	MaxTokens int
	// Temperature is left to the provider default when zero.
	Temperature float64
}

// Reply is a schema-valid answer.
type Reply struct {
	JSON   json.RawMessage
	Model  string
	Tokens Tokens
}

// Tokens counts what one request consumed.
type Tokens struct {
	In  int
	Out int
}

func (t Tokens) Total() int { return t.In + t.Out }
