package config

import (
	"errors"
	"testing"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("HISTORY_BACKEND", "memory")
	t.Setenv("AUTH_DISABLED", "true")

	_, err := Load()
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigurationError, got %v", err)
	}
	if cerr.Key != "GEMINI_API_KEY" {
		t.Fatalf("key=%s", cerr.Key)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("HISTORY_BACKEND", "memory")
	t.Setenv("AUTH_DISABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.GeminiModel != "gemini-2.5-flash" || cfg.PromptVersion != "v3" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DefaultVendor != "OmniCopy AI Store" {
		t.Fatalf("vendor=%q", cfg.DefaultVendor)
	}
	if cfg.APIKey() != "test-key" {
		t.Fatalf("api key=%q", cfg.APIKey())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantKey string
	}{
		{"openai without key", Config{LLMProvider: "openai", GeminiAPIKey: "x", HistoryBackend: "memory", AuthDisabled: true}, "OPENAI_API_KEY"},
		{"unknown provider", Config{LLMProvider: "llama", HistoryBackend: "memory", AuthDisabled: true}, "LLM_PROVIDER"},
		{"firestore without project", Config{LLMProvider: "gemini", GeminiAPIKey: "x", HistoryBackend: "firestore", AuthDisabled: true}, "FIREBASE_PROJECT_ID"},
		{"mysql without user", Config{LLMProvider: "gemini", GeminiAPIKey: "x", HistoryBackend: "mysql", AuthDisabled: true}, "DB_USER"},
		{"auth without project", Config{LLMProvider: "gemini", GeminiAPIKey: "x", HistoryBackend: "memory"}, "FIREBASE_PROJECT_ID"},
		{"unknown backend", Config{LLMProvider: "gemini", GeminiAPIKey: "x", HistoryBackend: "redis", AuthDisabled: true}, "HISTORY_BACKEND"},
		{"ok", Config{LLMProvider: " Gemini ", GeminiAPIKey: "x", HistoryBackend: "MEMORY", AuthDisabled: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) || cerr.Key != tt.wantKey {
				t.Fatalf("err=%v want key %s", err, tt.wantKey)
			}
		})
	}
}

func TestLoadGenerationSkipsBackendKeys(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("HISTORY_BACKEND", "mysql")
	t.Setenv("DB_USER", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	cfg, err := LoadGeneration()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey() != "sk-test" || cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if _, err := Load(); err == nil {
		t.Fatal("full load must still reject the missing DB settings")
	}
}
