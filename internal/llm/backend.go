package llm

import (
	"context"
	"errors"
	"net/http"
)

// errNoSchema guards the one contract every backend relies on.
var errNoSchema = errors.New("llm: prompt has no schema")

// completion is what a backend got back before any checking.
type completion struct {
	text      string
	model     string
	tokens    Tokens
	truncated bool
}

// completer is the SDK-specific half of a provider: one prompt in, one
// completion out, SDK errors already classified.
type completer interface {
	complete(ctx context.Context, p Prompt) (completion, error)
}

// hosted turns a completer into a Provider. Fence stripping, truncation
// and the schema check live here so every SDK behaves the same.
type hosted struct {
	model string
	c     completer
}

func (h *hosted) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	if p.Schema == nil {
		return nil, errNoSchema
	}
	out, err := h.c.complete(ctx, p)
	if err != nil {
		return nil, err
	}
	body := extractJSON(out.text)
	if out.truncated {
		return nil, &ErrMaxTokensExceeded{Content: body}
	}
	if err := p.Schema.Check(body); err != nil {
		return nil, err
	}
	model := out.model
	if model == "" {
		model = h.model
	}
	return &Reply{JSON: body, Model: model, Tokens: out.tokens}, nil
}

func (h *hosted) ModelID() string { return h.model }

// classifyStatus maps an SDK error carrying an HTTP status to a typed
// error. status is 0 when the SDK error had none.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Status: status, Err: err}
}

// modelAlias resolves a short name from aliases, passing full IDs through.
func modelAlias(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
