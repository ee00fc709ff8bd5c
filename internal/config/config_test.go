package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		if !errors.Is(err, ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "")
		t.Setenv("MACHINES_TABLE", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		t.Setenv("RATE_LIMIT_PER_SEC", "")
		t.Setenv("HEALTH_SCORE_CACHE_TTL_SECONDS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Fatalf("expected default port, got %q", cfg.Port)
		}
		if cfg.Tables.Machines != "machines" || cfg.Tables.HealthScoreLogs != "health_score_logs" || cfg.Tables.RentalRequests != "requests" {
			t.Fatalf("unexpected tables: %+v", cfg.Tables)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
			t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
		}
		if cfg.RateLimitPerSec != 10 || cfg.RateLimitBurst != 20 {
			t.Fatalf("unexpected rate limit: %v/%d", cfg.RateLimitPerSec, cfg.RateLimitBurst)
		}
		if cfg.HealthScoreTTL != 30*time.Second {
			t.Fatalf("unexpected ttl: %v", cfg.HealthScoreTTL)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
		t.Setenv("RATE_LIMIT_PER_SEC", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "not-a-number")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" {
			t.Fatalf("expected 9090, got %q", cfg.Port)
		}
		if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.test" {
			t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
		}
		if cfg.RateLimitPerSec != 2.5 || cfg.RateLimitBurst != 20 {
			t.Fatalf("unexpected rate limit: %v/%d", cfg.RateLimitPerSec, cfg.RateLimitBurst)
		}
	})
}
