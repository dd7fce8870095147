package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropic(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL), option.WithMaxRetries(0))
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(text, stop))
	}
}

func anthropicError(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": kind},
		})
	}
}

func explainPrompt(maxTokens int) Prompt {
	return Prompt{
		System:    "You are a patient Linux instructor.",
		User:      "I typed `ls documents` but the exercise wanted cd.",
		Schema:    explanationSchema(),
		MaxTokens: maxTokens,
	}
}

func TestAnthropic_Explanation(t *testing.T) {
	var sent struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		System    []struct {
			Text string `json:"text"`
		} `json:"system"`
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
		OutputConfig struct {
			Format struct {
				Type string `json:"type"`
			} `json:"format"`
		} `json:"output_config"`
	}
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		anthropicReply("```json\n"+explanationJSON+"\n```", "end_turn")(w, r)
	})

	reply, err := p.Generate(context.Background(), explainPrompt(256))
	require.NoError(t, err)

	assert.JSONEq(t, explanationJSON, string(reply.JSON))
	assert.Equal(t, Tokens{In: 50, Out: 30}, reply.Tokens)
	assert.Equal(t, 80, reply.Tokens.Total())
	assert.Equal(t, "claude-haiku-4-5-20251001", reply.Model)

	assert.Equal(t, "claude-haiku-4-5-20251001", sent.Model)
	assert.Equal(t, 256, sent.MaxTokens)
	require.Len(t, sent.System, 1)
	assert.Equal(t, "You are a patient Linux instructor.", sent.System[0].Text)
	require.Len(t, sent.Messages, 1)
	assert.Equal(t, "user", sent.Messages[0].Role)
	assert.Equal(t, "json_schema", sent.OutputConfig.Format.Type)
}

func TestAnthropic_BadReplies(t *testing.T) {
	t.Run("schema mismatch", func(t *testing.T) {
		p := newTestAnthropic(t, anthropicReply(`{"explanation":"only half"}`, "end_turn"))
		_, err := p.Generate(context.Background(), explainPrompt(64))
		var inv *ErrInvalidResponse
		assert.True(t, errors.As(err, &inv), "got %T (%v)", err, err)
	})

	t.Run("truncated", func(t *testing.T) {
		p := newTestAnthropic(t, anthropicReply(`{"explanation":"ls lis`, "max_tokens"))
		_, err := p.Generate(context.Background(), explainPrompt(8))
		var mt *ErrMaxTokensExceeded
		require.True(t, errors.As(err, &mt), "got %T (%v)", err, err)
		assert.Equal(t, `{"explanation":"ls lis`, string(mt.Content))
	})

	t.Run("no schema", func(t *testing.T) {
		p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not be sent")
		})
		_, err := p.Generate(context.Background(), Prompt{User: "x", MaxTokens: 8})
		assert.ErrorIs(t, err, errNoSchema)
	})
}

func TestAnthropic_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		kind      string
		permanent bool
	}{
		{"server error", http.StatusInternalServerError, "api_error", false},
		{"bad key", http.StatusUnauthorized, "authentication_error", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropic(t, anthropicError(tt.status, tt.kind))
			_, err := p.Generate(context.Background(), explainPrompt(10))
			var unavail *ErrProviderUnavailable
			require.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
			assert.Equal(t, tt.status, unavail.Status)
			assert.Equal(t, tt.permanent, unavail.Permanent())
		})
	}

	t.Run("rate limit", func(t *testing.T) {
		p := newTestAnthropic(t, anthropicError(http.StatusTooManyRequests, "rate_limit_error"))
		_, err := p.Generate(context.Background(), explainPrompt(10))
		var rl *ErrRateLimit
		assert.True(t, errors.As(err, &rl), "got %T (%v)", err, err)
	})
}

func TestNewAnthropic(t *testing.T) {
	p, err := NewAnthropic(AnthropicConfig{APIKey: "k", Model: "claude-sonnet"})
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-20250514", p.ModelID())

	p, err = NewAnthropic(AnthropicConfig{APIKey: "k", Model: "claude-opus-4-1"})
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-1", p.ModelID())

	_, err = NewAnthropic(AnthropicConfig{Model: "claude-haiku"})
	assert.Error(t, err)
}
