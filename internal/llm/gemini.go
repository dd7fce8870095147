package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.5-flash",
	"gemini-lite":  "gemini-2.5-flash-lite",
	"gemini-pro":   "gemini-2.5-pro",
}

type geminiBackend struct {
	client *genai.Client
	model  string
}

// NewGemini returns a Provider backed by the Gemini API. cc may carry test
// overrides such as HTTPOptions; its key and backend are always set here.
func NewGemini(ctx context.Context, cfg GeminiConfig, cc *genai.ClientConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cc == nil {
		cc = &genai.ClientConfig{}
	}
	cc.APIKey = cfg.APIKey
	cc.Backend = genai.BackendGeminiAPI
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := modelAlias(cfg.Model, geminiAliases)
	return &hosted{model: model, c: &geminiBackend{client: client, model: model}}, nil
}

func (b *geminiBackend) complete(ctx context.Context, p Prompt) (completion, error) {
	conf := &genai.GenerateContentConfig{
		MaxOutputTokens:    int32(p.MaxTokens),
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: p.Schema.Definition,
	}
	if p.System != "" {
		conf.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	if p.Temperature > 0 {
		t := float32(p.Temperature)
		conf.Temperature = &t
	}

	res, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(p.User), conf)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return completion{}, classifyStatus(apiErr.Code, err)
		}
		return completion{}, classifyStatus(0, err)
	}

	out := completion{text: res.Text(), model: res.ModelVersion}
	if u := res.UsageMetadata; u != nil {
		out.tokens = Tokens{In: int(u.PromptTokenCount), Out: int(u.CandidatesTokenCount)}
	}
	if len(res.Candidates) > 0 {
		out.truncated = res.Candidates[0].FinishReason == genai.FinishReasonMaxTokens
	}
	return out, nil
}
