package ai

import (
	"context"
	"fmt"

	"github.com/shinyyama/omnicopy-backend/internal/config"
)

// NewTextGenerator picks the generator for cfg.LLMProvider. Calls are bounded only by
// the caller's context and the SDK defaults.
func NewTextGenerator(ctx context.Context, cfg *config.Config) (TextGenerator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini, "":
		return NewGeminiGenerator(ctx, cfg.APIKey(), cfg.GeminiModel, nil)
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.APIKey(), cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		return nil, &config.ConfigurationError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("has unsupported value %q", cfg.LLMProvider)}
	}
}
