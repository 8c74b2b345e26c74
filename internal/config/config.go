package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, read once from the environment
// and passed explicitly to whatever needs it.
type Config struct {
	Port          string // Listen port (default "5000")
	DatabaseURL   string // Postgres DSN
	SessionSecret string // Session cookie encryption secret
	MaxPageSize   int    // Upper bound for the list `limit` parameter (default 100)
}

func Load() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		MaxPageSize:   100,
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DatabaseURL == "" {
		// Fallback for local dev if not set
		cfg.DatabaseURL = "host=localhost user=postgres password=postgres dbname=greatblog port=5432 sslmode=disable"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "secret_key_change_me"
	}
	if v := os.Getenv("MAX_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxPageSize = n
		}
	}
	return cfg
}
