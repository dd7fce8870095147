package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/linuxlearn/internal/logger"
)

// NewProvider builds the configured backend and wraps it so that a call
// passes through timeout, then retry, then logging.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropic(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAI(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGemini(ctx, cfg.Gemini, nil)
	case ProviderOpenRouter:
		base, err = NewOpenRouter(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return WithTimeout(WithRetry(WithLogging(base, log.With("provider", cfg.Provider)), cfg.Retry), cfg.Timeout), nil
}
