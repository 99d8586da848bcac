package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"

	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type InferenceConfig struct {
	Provider string
	Token    string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

type PostgresConfig struct {
	URL string
}

type StoreConfig struct {
	Driver   string
	Mongo    MongoConfig
	Postgres PostgresConfig
}

type Config struct {
	Inference     InferenceConfig
	Store         StoreConfig
	SessionSecret string
	ServerPort    string
	LogLevel      string
	CacheTTL      time.Duration
	PprofEnabled  bool
}

// Load reads the configuration from the environment. Credentials have no
// defaults and must be supplied for the selected provider and store.
func Load() (*Config, error) {
	cfg := &Config{
		Inference: InferenceConfig{
			Provider: strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderHuggingFace)),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			Model:    os.Getenv("LLM_MODEL"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverMongo)),
			Mongo: MongoConfig{
				URI:        os.Getenv("MONGO_URI"),
				Database:   os.Getenv("DB_NAME"),
				Collection: os.Getenv("COLLECTION_NAME"),
			},
			Postgres: PostgresConfig{
				URL: os.Getenv("POSTGRES_URL"),
			},
		},
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ServerPort:    getEnvOrDefault("PORT", "8080"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Inference.Timeout, err = getDuration("LLM_TIMEOUT", 90*time.Second); err != nil {
		return nil, err
	}
	if cfg.Store.Mongo.ConnectTimeout, err = getDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.PprofEnabled, err = getBool("PPROF_ENABLED", false); err != nil {
		return nil, err
	}

	switch cfg.Inference.Provider {
	case ProviderHuggingFace:
		cfg.Inference.Token = os.Getenv("HF_TOKEN")
	case ProviderGemini:
		cfg.Inference.Token = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first missing or unsupported setting.
func (c *Config) Validate() error {
	switch c.Inference.Provider {
	case ProviderHuggingFace:
		if c.Inference.Token == "" {
			return fmt.Errorf("HF_TOKEN environment variable is required")
		}
	case ProviderGemini:
		if c.Inference.Token == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q, use %q or %q", c.Inference.Provider, ProviderHuggingFace, ProviderGemini)
	}

	switch c.Store.Driver {
	case DriverMongo:
		missing := []string{}
		if c.Store.Mongo.URI == "" {
			missing = append(missing, "MONGO_URI")
		}
		if c.Store.Mongo.Database == "" {
			missing = append(missing, "DB_NAME")
		}
		if c.Store.Mongo.Collection == "" {
			missing = append(missing, "COLLECTION_NAME")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		}
	case DriverPostgres:
		if c.Store.Postgres.URL == "" {
			return fmt.Errorf("POSTGRES_URL environment variable is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
