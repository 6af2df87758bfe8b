package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every externally supplied setting. Loaded once in main;
// values are read-only afterwards.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/orgregistry"`

	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret-please-change"`
	TokenTTL       time.Duration `env:"JWT_TTL" envDefault:"24h"`
	MinPasswordLen int           `env:"MIN_PASSWORD_LEN" envDefault:"6"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
