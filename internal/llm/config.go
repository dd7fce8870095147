package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which backend explains mistakes. Empty means
	// discover one from the standard API key variables.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single tutor request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with the cheap, fast model of every
// provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays the LINUXLEARN_* key, model and base URL variables
// on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Anthropic.APIKey, "LINUXLEARN_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "LINUXLEARN_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "LINUXLEARN_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "LINUXLEARN_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "LINUXLEARN_OPENAI_BASE_URL")

	setFromEnv(&cfg.Gemini.APIKey, "LINUXLEARN_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "LINUXLEARN_GEMINI_MODEL")

	setFromEnv(&cfg.OpenRouter.APIKey, "LINUXLEARN_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "LINUXLEARN_OPENROUTER_MODEL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "LINUXLEARN_OPENROUTER_BASE_URL")

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// discover picks the first provider whose standard API key variable is set,
// in the order Gemini, OpenAI, Anthropic, OpenRouter. Keys already present
// in cfg count too.
func discover(cfg *Config) bool {
	candidates := []struct {
		provider string
		env      string
		key      *string
	}{
		{ProviderGemini, "GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{ProviderOpenAI, "OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{ProviderAnthropic, "ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{ProviderOpenRouter, "OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
	}
	for _, c := range candidates {
		if *c.key != "" {
			cfg.Provider = c.provider
			return true
		}
	}
	for _, c := range candidates {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			*c.key = k
			return true
		}
	}
	return false
}

// Resolve builds the provider configuration from the application settings.
// An empty provider triggers discovery; ErrNotConfigured means the tutor
// stays off.
func Resolve(provider, model string, timeout time.Duration) (Config, error) {
	cfg := ConfigFromEnv()
	cfg.Provider = provider
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	if cfg.Provider == "" && !discover(&cfg) {
		return Config{}, ErrNotConfigured
	}
	if cfg.Provider != ProviderMock && cfg.keyFor() == "" {
		fillStandardKey(&cfg)
	}
	if model != "" {
		cfg.setModel(model)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fillStandardKey(cfg *Config) {
	switch cfg.Provider {
	case ProviderAnthropic:
		setFromEnv(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	case ProviderOpenAI:
		setFromEnv(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	case ProviderGemini:
		setFromEnv(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	case ProviderOpenRouter:
		setFromEnv(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")
	}
}

func (c Config) keyFor() string {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic.APIKey
	case ProviderOpenAI:
		return c.OpenAI.APIKey
	case ProviderGemini:
		return c.Gemini.APIKey
	case ProviderOpenRouter:
		return c.OpenRouter.APIKey
	}
	return ""
}

func (c *Config) setModel(model string) {
	switch c.Provider {
	case ProviderAnthropic:
		c.Anthropic.Model = model
	case ProviderOpenAI:
		c.OpenAI.Model = model
	case ProviderGemini:
		c.Gemini.Model = model
	case ProviderOpenRouter:
		c.OpenRouter.Model = model
	}
}

// Model returns the configured model name of the selected provider.
func (c Config) Model() string {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderGemini:
		return c.Gemini.Model
	case ProviderOpenRouter:
		return c.OpenRouter.Model
	}
	return c.Provider
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.keyFor() == "" {
			return fmt.Errorf("an API key is required for the %s provider (set LINUXLEARN_%s_API_KEY)",
				c.Provider, strings.ToUpper(c.Provider))
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
