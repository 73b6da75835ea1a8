package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/shinyyama/omnicopy-backend/internal/config"
)

func TestNewTextGenerator(t *testing.T) {
	ctx := context.Background()

	gen, err := NewTextGenerator(ctx, &config.Config{
		LLMProvider:  config.ProviderOpenAI,
		GeminiAPIKey: "gemini-key",
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("openai: %v", err)
	}
	if gen.Name() != "openai/gpt-4o-mini" {
		t.Fatalf("name=%q", gen.Name())
	}

	_, err = NewTextGenerator(ctx, &config.Config{LLMProvider: config.ProviderOpenAI, GeminiAPIKey: "gemini-key"})
	if err == nil {
		t.Fatal("openai must use its own key, not the gemini one")
	}

	_, err = NewTextGenerator(ctx, &config.Config{LLMProvider: "mistral", OpenAIAPIKey: "k"})
	var cerr *config.ConfigurationError
	if !errors.As(err, &cerr) || cerr.Key != "LLM_PROVIDER" {
		t.Fatalf("err=%v", err)
	}
}
