// Package config loads environment configuration for the nameforge CLI.
//
// Values come from the process environment, with a .env file loaded
// first if one exists. Flags override these at the CLI boundary.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Config is the full environment surface of the CLI.
type Config struct {
	// Generation backend. Provider is "anthropic" or "claude" (the
	// Claude Code CLI).
	Provider        string `env:"NAMEFORGE_PROVIDER" envDefault:"anthropic"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	Model           string `env:"NAMEFORGE_MODEL"`
	SystemPrompt    string `env:"NAMEFORGE_SYSTEM_PROMPT"`

	// Resolution loop.
	MaxAttempts         int           `env:"NAMEFORGE_MAX_ATTEMPTS" envDefault:"5"`
	Alternatives        int           `env:"NAMEFORGE_ALTERNATIVES" envDefault:"5"`
	GenerationTimeout   time.Duration `env:"NAMEFORGE_GENERATION_TIMEOUT" envDefault:"60s"`
	AvailabilityTimeout time.Duration `env:"NAMEFORGE_AVAILABILITY_TIMEOUT" envDefault:"10s"`

	// Availability oracle. Oracle is "rdap" or "loopia".
	Oracle      string `env:"NAMEFORGE_ORACLE" envDefault:"rdap"`
	TLD         string `env:"NAMEFORGE_TLD" envDefault:"com"`
	RDAPBaseURL string `env:"NAMEFORGE_RDAP_URL"`

	// Loopia credentials, required when Oracle is "loopia".
	LoopiaUsername string `env:"LOOPIA_USERNAME"`
	LoopiaPassword string `env:"LOOPIA_PASSWORD"`

	// Logging.
	LogLevel string `env:"NAMEFORGE_LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment into a Config. A .env file in the working
// directory is loaded once per process; a missing file is not an error.
func Load() (*Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
