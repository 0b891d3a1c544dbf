package gateway

import (
	"context"
	"fmt"

	"github.com/omnitutor/omnitutor/internal/store"
)

// NewProvider creates a Provider from configuration.
// The base provider is wrapped with logging, retry, and timeout middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: openRouterBaseURL(cfg.OpenRouter),
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)
	bounded := WithTimeout(retried, cfg.Timeout)

	return bounded, nil
}

// NewProviderFromEnv builds a provider from OMNITUTOR_* env vars, falling
// back to probing the standard vendor key vars when no provider is set
// explicitly.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

func openRouterBaseURL(cfg OpenRouterConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return "https://openrouter.ai/api/v1"
}
