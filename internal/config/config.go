package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds the backend location. It is resolved once at process
// start and injected into the store; the store never reads the
// environment itself.
type Config struct {
	DatabaseDSN string `env:"DATABASE_URL"`
}

func ParseFlags() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	envDatabaseDSN := cfg.DatabaseDSN

	flag.StringVar(&cfg.DatabaseDSN, "d", "", "Database DSN (postgres:// URL or SQLite file path)")
	flag.Parse()

	if envDatabaseDSN != "" {
		cfg.DatabaseDSN = envDatabaseDSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database DSN cannot be empty: set DATABASE_URL or pass -d")
	}
	return nil
}
