package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	BackendFirestore = "firestore"
	BackendMySQL     = "mysql"
	BackendMemory    = "memory"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	LLMProvider   string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	PromptVersion string `env:"PROMPT_VERSION" envDefault:"v3"`
	DefaultVendor string `env:"DEFAULT_VENDOR" envDefault:"OmniCopy AI Store"`

	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`
	GoogleCredentialsJSON   string `env:"GOOGLE_CREDENTIALS_JSON"`
	AuthDisabled            bool   `env:"AUTH_DISABLED" envDefault:"false"`

	HistoryBackend string `env:"HISTORY_BACKEND" envDefault:"firestore"`
	StorageBucket  string `env:"STORAGE_BUCKET"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	PersistTimeoutSeconds int `env:"PERSIST_TIMEOUT_SECONDS" envDefault:"10"`
	SaveWaitMillis        int `env:"SAVE_WAIT_MILLIS" envDefault:"2000"`
}

// ConfigurationError is fatal at startup: the process must not serve without it fixed.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Key, e.Reason)
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadGeneration is Load for tools that only call the model: backend and auth keys are not checked.
func LoadGeneration() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validateProvider(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the credentials and backend choices once, before anything is wired.
func (c *Config) Validate() error {
	if err := c.validateProvider(); err != nil {
		return err
	}
	c.HistoryBackend = strings.ToLower(strings.TrimSpace(c.HistoryBackend))

	switch c.HistoryBackend {
	case BackendFirestore:
		if c.FirebaseProjectID == "" {
			return &ConfigurationError{Key: "FIREBASE_PROJECT_ID", Reason: "is required by the firestore history backend"}
		}
	case BackendMySQL:
		required := []struct{ key, val string }{
			{"DB_USER", c.DBUser},
			{"DB_PASSWORD", c.DBPassword},
			{"DB_HOST", c.DBHost},
			{"DB_NAME", c.DBName},
		}
		for _, r := range required {
			if r.val == "" {
				return &ConfigurationError{Key: r.key, Reason: "is required by the mysql history backend"}
			}
		}
	case BackendMemory:
	default:
		return &ConfigurationError{Key: "HISTORY_BACKEND", Reason: fmt.Sprintf("has unsupported value %q", c.HistoryBackend)}
	}

	if !c.AuthDisabled && c.FirebaseProjectID == "" {
		return &ConfigurationError{Key: "FIREBASE_PROJECT_ID", Reason: "is required unless AUTH_DISABLED=true"}
	}
	if c.PersistTimeoutSeconds <= 0 {
		c.PersistTimeoutSeconds = 10
	}
	if c.SaveWaitMillis < 0 {
		c.SaveWaitMillis = 0
	}
	return nil
}

func (c *Config) validateProvider() error {
	c.LLMProvider = strings.ToLower(strings.TrimSpace(c.LLMProvider))
	switch c.LLMProvider {
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return &ConfigurationError{Key: "GEMINI_API_KEY", Reason: "is not set"}
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return &ConfigurationError{Key: "OPENAI_API_KEY", Reason: "is not set"}
		}
	default:
		return &ConfigurationError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("has unsupported value %q", c.LLMProvider)}
	}
	return nil
}

// APIKey returns the credential of the active provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}
