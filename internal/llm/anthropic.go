package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

type anthropicBackend struct {
	client anthropic.Client
	model  string
}

// NewAnthropic returns a Provider backed by the Messages API.
func NewAnthropic(cfg AnthropicConfig, opts ...option.RequestOption) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	model := modelAlias(cfg.Model, anthropicAliases)
	b := &anthropicBackend{
		client: anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)...),
		model:  model,
	}
	return &hosted{model: model, c: b}, nil
}

func (b *anthropicBackend) complete(ctx context.Context, p Prompt) (completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: int64(p.MaxTokens),
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(p.User))},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: p.Schema.Definition},
		},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}
	if p.Temperature > 0 {
		params.Temperature = anthropic.Float(p.Temperature)
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return completion{}, classifyStatus(apiErr.StatusCode, err)
		}
		return completion{}, classifyStatus(0, err)
	}

	out := completion{
		model:     string(msg.Model),
		tokens:    Tokens{In: int(msg.Usage.InputTokens), Out: int(msg.Usage.OutputTokens)},
		truncated: msg.StopReason == anthropic.StopReasonMaxTokens,
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.text = block.Text
			return out, nil
		}
	}
	return completion{}, &ErrInvalidResponse{Err: fmt.Errorf("anthropic reply has no text block")}
}
