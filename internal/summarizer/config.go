package summarizer

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

const defaultTimeout = 30 * time.Second

type Provider string

const (
	Gemini    Provider = "gemini"
	OpenAI    Provider = "openai"
	Anthropic Provider = "anthropic"
)

type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	BaseURL  string
}

// LoadConfigFromEnv never fails on a missing key: that is reported when a summary is requested.
func LoadConfigFromEnv() (*Config, error) {
	provider := Provider(os.Getenv("SUMMARIZER_PROVIDER"))
	if provider == "" {
		provider = Gemini
	}
	if provider != Gemini && provider != OpenAI && provider != Anthropic {
		return nil, fmt.Errorf(
			"invalid SUMMARIZER_PROVIDER environment variable value: %s, expected one of %v",
			provider,
			[]Provider{Gemini, OpenAI, Anthropic})
	}

	apiKey := os.Getenv("SUMMARIZER_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("SUMMARIZER_MODEL"),
		BaseURL:  os.Getenv("SUMMARIZER_BASE_URL"),
	}, nil
}

// New builds the configured Summarizer. Without an API key it returns one that fails
// every call with ErrNotConfigured.
func New(cfg Config) (Summarizer, error) {
	if cfg.APIKey == "" {
		slog.Warn("Summarizer API key not set, summaries will be unavailable", "provider", cfg.Provider)
		return unconfigured{}, nil
	}

	switch cfg.Provider {
	case Gemini, "":
		client, err := NewGeminiClient(cfg.BaseURL, cfg.APIKey, WithGeminiModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return &promptSummarizer{provider: string(Gemini), gen: client}, nil
	case OpenAI:
		return &promptSummarizer{provider: string(OpenAI), gen: NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model)}, nil
	case Anthropic:
		return &promptSummarizer{provider: string(Anthropic), gen: NewAnthropicClient(cfg.APIKey, cfg.BaseURL, cfg.Model)}, nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider: %q (valid: gemini, openai, anthropic)", cfg.Provider)
	}
}
