package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

var openaiAliases = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// chatBackend speaks the Chat Completions API. OpenAI and OpenRouter both
// use it; only the base URL and model naming differ.
type chatBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns a Provider for OpenAI or any compatible endpoint set
// in cfg.BaseURL.
func NewOpenAI(cfg OpenAIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	return newChat(cfg.APIKey, cfg.BaseURL, modelAlias(cfg.Model, openaiAliases))
}

// NewOpenRouter returns a Provider for OpenRouter. Model IDs are sent as
// given, in OpenRouter's vendor/model form.
func NewOpenRouter(cfg OpenRouterConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultOpenRouterBaseURL
	}
	return newChat(cfg.APIKey, base, cfg.Model)
}

func newChat(key, baseURL, model string) (Provider, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	conf := openai.DefaultConfig(key)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	return &hosted{model: model, c: &chatBackend{client: openai.NewClientWithConfig(conf), model: model}}, nil
}

func (b *chatBackend) complete(ctx context.Context, p Prompt) (completion, error) {
	schema, err := json.Marshal(p.Schema.Definition)
	if err != nil {
		return completion{}, fmt.Errorf("marshal schema %s: %w", p.Schema.Name, err)
	}
	var msgs []openai.ChatCompletionMessage
	if p.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: p.User})

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               b.model,
		Messages:            msgs,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        p.Schema.Name,
				Description: p.Schema.Description,
				Schema:      json.RawMessage(schema),
				Strict:      true,
			},
		},
	})
	if err != nil {
		return completion{}, chatError(err)
	}
	if len(resp.Choices) == 0 {
		return completion{}, &ErrInvalidResponse{Err: fmt.Errorf("chat reply has no choices")}
	}
	choice := resp.Choices[0]
	return completion{
		text:      choice.Message.Content,
		model:     resp.Model,
		tokens:    Tokens{In: resp.Usage.PromptTokens, Out: resp.Usage.CompletionTokens},
		truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}

func chatError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}
	return classifyStatus(0, err)
}
