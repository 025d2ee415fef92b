package config

import (
	"flag"
	"fmt"
	"time"

	pkgRetry "github.com/avkozlov/analyzer-backend/internal/pkg/retry"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Model provider configuration
	ProviderCfg ProviderConfig

	// Request limits
	LimitsCfg LimitsConfig

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// ProviderConfig selects and configures the external model provider.
// It is read once at startup and treated as read-only afterwards.
type ProviderConfig struct {
	HTTPClientConfig `envPrefix:"LLM_"`

	Name string `env:"MODEL_PROVIDER" envDefault:"openai"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"o3-mini-2025-01-31"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-7-sonnet-20250219"`

	MaxTokens int `env:"MODEL_MAX_TOKENS" envDefault:"4096"`

	Retry pkgRetry.RetryConfig `envPrefix:"LLM_RETRY_"`
}

// APIKey returns the credential for the selected provider.
func (c *ProviderConfig) APIKey() string {
	if c.Name == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// Model returns the model name for the selected provider.
func (c *ProviderConfig) Model() string {
	if c.Name == ProviderAnthropic {
		return c.AnthropicModel
	}
	return c.OpenAIModel
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"180s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"180s"`
	// Url overrides the provider's default base URL (useful for proxies).
	Url string `env:"SERVICE_URL"`
}

// LimitsConfig holds request validation limits
type LimitsConfig struct {
	MaxProblemLength int `env:"MAX_PROBLEM_LENGTH" envDefault:"32768"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig checks startup invariants. A missing credential for the
// selected provider is fatal here, never per-request.
func validateConfig(cfg *Config) error {
	switch cfg.ProviderCfg.Name {
	case ProviderOpenAI:
		if !cfg.EnableMocks && cfg.ProviderCfg.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set when MODEL_PROVIDER is %q", ProviderOpenAI)
		}
	case ProviderAnthropic:
		if !cfg.EnableMocks && cfg.ProviderCfg.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY must be set when MODEL_PROVIDER is %q", ProviderAnthropic)
		}
	default:
		return fmt.Errorf("unsupported model provider: %q (must be %q or %q)",
			cfg.ProviderCfg.Name, ProviderOpenAI, ProviderAnthropic)
	}

	if cfg.LimitsCfg.MaxProblemLength < 1 {
		return fmt.Errorf("MAX_PROBLEM_LENGTH must be positive, got %d", cfg.LimitsCfg.MaxProblemLength)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
