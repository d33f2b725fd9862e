package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all process-wide configuration. It is loaded once at startup
// and passed down by injection; nothing reads the environment after Load.
type Config struct {
	Port      string
	DSN       string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment. Callers are expected to run
// godotenv.Load first if a .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     os.Getenv("PORT"),
		DSN:      os.Getenv("DSN"),
		TokenTTL: time.Hour,
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}
