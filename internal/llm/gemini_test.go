package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGemini(context.Background(), GeminiConfig{APIKey: "test-key", Model: "gemini-flash"},
		&genai.ClientConfig{HTTPOptions: genai.HTTPOptions{BaseURL: server.URL + "/"}})
	require.NoError(t, err)
	return p
}

func geminiReply(text, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
				"finishReason": finish,
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 12, "candidatesTokenCount": 7, "totalTokenCount": 19},
			"modelVersion":  "gemini-2.5-flash",
		})
	}
}

func TestGemini_Explanation(t *testing.T) {
	var (
		path string
		sent struct {
			GenerationConfig struct {
				ResponseMIMEType   string         `json:"responseMimeType"`
				ResponseJSONSchema map[string]any `json:"responseJsonSchema"`
			} `json:"generationConfig"`
			SystemInstruction struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"systemInstruction"`
		}
	)
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		geminiReply(explanationJSON, "STOP")(w, r)
	})

	reply, err := p.Generate(context.Background(), explainPrompt(256))
	require.NoError(t, err)

	assert.JSONEq(t, explanationJSON, string(reply.JSON))
	assert.Equal(t, Tokens{In: 12, Out: 7}, reply.Tokens)
	assert.Equal(t, "gemini-2.5-flash", reply.Model)
	assert.True(t, strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent"), path)

	assert.Equal(t, "application/json", sent.GenerationConfig.ResponseMIMEType)
	assert.Equal(t, "object", sent.GenerationConfig.ResponseJSONSchema["type"])
	require.Len(t, sent.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a patient Linux instructor.", sent.SystemInstruction.Parts[0].Text)
}

func TestGemini_Truncated(t *testing.T) {
	p := newTestGemini(t, geminiReply(`{"explanation":"pw`, "MAX_TOKENS"))
	_, err := p.Generate(context.Background(), explainPrompt(4))
	var mt *ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &mt), "got %T (%v)", err, err)
}

func TestGemini_Errors(t *testing.T) {
	geminiError := func(status int, code string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": status, "message": code, "status": code},
			})
		}
	}

	t.Run("rate limit", func(t *testing.T) {
		p := newTestGemini(t, geminiError(http.StatusTooManyRequests, "RESOURCE_EXHAUSTED"))
		_, err := p.Generate(context.Background(), explainPrompt(10))
		var rl *ErrRateLimit
		assert.True(t, errors.As(err, &rl), "got %T (%v)", err, err)
	})

	t.Run("bad key", func(t *testing.T) {
		p := newTestGemini(t, geminiError(http.StatusForbidden, "PERMISSION_DENIED"))
		_, err := p.Generate(context.Background(), explainPrompt(10))
		var unavail *ErrProviderUnavailable
		require.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
		assert.True(t, unavail.Permanent())
	})
}

func TestNewGemini(t *testing.T) {
	p, err := NewGemini(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-lite"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash-lite", p.ModelID())

	p, err = NewGemini(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-2.0-flash"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", p.ModelID())

	_, err = NewGemini(context.Background(), GeminiConfig{Model: "gemini-flash"}, nil)
	assert.Error(t, err)
}
