package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// AI provider names. The provider decides which text-generation backend
// answers synthesis requests.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds all configuration for tarihce-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (passwords, API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"3000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// AllowedOriginsStr is a comma-separated origin allow-list for CORS.
	AllowedOriginsStr string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3001"`

	// AllowedOrigins is the parsed list from AllowedOriginsStr (not from config file).
	AllowedOrigins []string `yaml:"-"`

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Redis cache configuration (optional; empty host disables caching)
	Redis RedisConfig `yaml:"redis"`

	// AI generation backend configuration
	AI AIConfig `yaml:"ai"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"tarihce"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"tarihce"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// RedisConfig holds Redis cache configuration.
// An empty host means no cache backend; the service runs without it.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// AIConfig holds text-generation backend configuration.
//
// Provider selects the backend explicitly. When empty it is inferred from
// which API key is set: OpenAI when OPENAI_API_KEY is present, otherwise
// Anthropic. The inferred or explicit choice is validated at load time so a
// misconfigured deployment fails at startup rather than on the first miss.
type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:""`

	OpenAIAPIKey  string `yaml:"-" env:"OPENAI_API_KEY"` // Secret - not in YAML
	OpenAIModel   string `yaml:"openai_model" env:"OPENAI_MODEL" env-default:"gpt-4"`
	OpenAIBaseURL string `yaml:"openai_base_url" env:"OPENAI_BASE_URL" env-default:""`

	AnthropicAPIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"` // Secret - not in YAML
	AnthropicModel  string `yaml:"anthropic_model" env:"ANTHROPIC_MODEL" env-default:"claude-sonnet-4-20250514"`

	// RequestTimeoutSeconds bounds a single generation call. Generation is
	// slow; the ceiling is generous and retries are the caller's concern.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" env:"AI_REQUEST_TIMEOUT_SECONDS" env-default:"60"`
}

// Load reads configuration from config.yaml with environment variable overrides.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	cfg.AllowedOrigins = parseOrigins(cfg.AllowedOriginsStr)

	if err := cfg.AI.resolveProvider(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return cfg, nil
}

// resolveProvider fills in an inferred Provider when none is set and checks
// that the chosen backend has a credential.
func (c *AIConfig) resolveProvider() error {
	switch c.Provider {
	case "":
		// Infer from key presence: OpenAI wins when both are set.
		if c.OpenAIAPIKey != "" {
			c.Provider = ProviderOpenAI
		} else if c.AnthropicAPIKey != "" {
			c.Provider = ProviderAnthropic
		} else {
			return fmt.Errorf("no AI credential set: provide OPENAI_API_KEY or ANTHROPIC_API_KEY")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("AI_PROVIDER=openai but OPENAI_API_KEY is not set")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("AI_PROVIDER=anthropic but ANTHROPIC_API_KEY is not set")
		}
	default:
		return fmt.Errorf("unknown AI provider %q (want %q or %q)", c.Provider, ProviderOpenAI, ProviderAnthropic)
	}
	return nil
}

// parseOrigins splits a comma-separated origin list, trimming whitespace
// and dropping empty entries.
func parseOrigins(value string) []string {
	var origins []string
	for _, o := range strings.Split(value, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
