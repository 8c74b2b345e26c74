package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("MAX_PAGE_SIZE", "")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL default missing")
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "host=db user=u dbname=blog")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("MAX_PAGE_SIZE", "25")

	cfg := Load()
	if cfg.Port != "9999" || cfg.DatabaseURL != "host=db user=u dbname=blog" || cfg.SessionSecret != "s3cret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxPageSize != 25 {
		t.Errorf("MaxPageSize = %d, want 25", cfg.MaxPageSize)
	}
}

func TestLoad_BadMaxPageSize(t *testing.T) {
	t.Setenv("MAX_PAGE_SIZE", "not-a-number")
	if got := Load().MaxPageSize; got != 100 {
		t.Errorf("MaxPageSize = %d, want default 100", got)
	}
	t.Setenv("MAX_PAGE_SIZE", "-5")
	if got := Load().MaxPageSize; got != 100 {
		t.Errorf("MaxPageSize = %d, want default 100", got)
	}
}
