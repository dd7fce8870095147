package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChat(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func chatReply(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(content, finish))
	}
}

func TestOpenAI_Explanation(t *testing.T) {
	var sent struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat *struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Strict      bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	p := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		chatReply(explanationJSON, "stop")(w, r)
	})

	reply, err := p.Generate(context.Background(), explainPrompt(256))
	require.NoError(t, err)

	assert.JSONEq(t, explanationJSON, string(reply.JSON))
	assert.Equal(t, Tokens{In: 40, Out: 25}, reply.Tokens)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", reply.Model)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	require.Len(t, sent.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, sent.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, sent.Messages[1].Role)
	assert.Contains(t, sent.Messages[1].Content, "ls documents")
	require.NotNil(t, sent.ResponseFormat)
	assert.Equal(t, string(openai.ChatCompletionResponseFormatTypeJSONSchema), sent.ResponseFormat.Type)
	assert.Equal(t, "test-explanation", sent.ResponseFormat.JSONSchema.Name)
	assert.Equal(t, "Why a shell command missed", sent.ResponseFormat.JSONSchema.Description)
	assert.True(t, sent.ResponseFormat.JSONSchema.Strict)
}

func TestOpenAI_BadReplies(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		p := newTestChat(t, chatReply(`{"explanation":"cd ch`, "length"))
		_, err := p.Generate(context.Background(), explainPrompt(5))
		var mt *ErrMaxTokensExceeded
		assert.True(t, errors.As(err, &mt), "got %T (%v)", err, err)
	})

	t.Run("no choices", func(t *testing.T) {
		p := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
			body := chatCompletion("", "stop")
			body["choices"] = []any{}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(body)
		})
		_, err := p.Generate(context.Background(), explainPrompt(5))
		var inv *ErrInvalidResponse
		assert.True(t, errors.As(err, &inv), "got %T (%v)", err, err)
	})
}

func TestOpenAI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, func(t *testing.T, err error) {
			var rl *ErrRateLimit
			assert.True(t, errors.As(err, &rl), "got %T (%v)", err, err)
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var unavail *ErrProviderUnavailable
			require.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
			assert.False(t, unavail.Permanent())
		}},
		{"bad key", http.StatusUnauthorized, func(t *testing.T, err error) {
			var unavail *ErrProviderUnavailable
			require.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
			assert.True(t, unavail.Permanent())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestChat(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"type": "error", "message": tt.name},
				})
			})
			_, err := p.Generate(context.Background(), explainPrompt(10))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestOpenRouter_SharesChatBackend(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		chatReply(explanationJSON, "stop")(w, r)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouter(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku", BaseURL: server.URL + "/api/v1"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())

	_, err = p.Generate(context.Background(), explainPrompt(64))
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/chat/completions", path)
}

func TestNewChatProviders(t *testing.T) {
	p, err := NewOpenAI(OpenAIConfig{APIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())

	_, err = NewOpenAI(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err)

	// OpenAI aliases are not applied to OpenRouter model IDs.
	p, err = NewOpenRouter(OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	_, err = NewOpenRouter(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
	assert.Error(t, err)

	_, err = NewOpenRouter(OpenRouterConfig{APIKey: "sk-or-test"})
	assert.Error(t, err)
}
