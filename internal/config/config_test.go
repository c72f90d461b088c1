package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "topsecret")
	t.Setenv("DATABASE_DSN", "postgres://localhost/test?sslmode=disable")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.SessionCookieName != "webauth_session" {
		t.Fatalf("SessionCookieName = %q, want webauth_session", cfg.SessionCookieName)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("SessionTTL = %v, want 1h", cfg.SessionTTL)
	}
	if cfg.CookieSecure {
		t.Fatal("CookieSecure must default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("SESSION_COOKIE_NAME", "mycookie")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.SessionTTL != 15*time.Minute {
		t.Fatalf("SessionTTL = %v, want 15m", cfg.SessionTTL)
	}
	if cfg.SessionCookieName != "mycookie" {
		t.Fatalf("SessionCookieName = %q, want mycookie", cfg.SessionCookieName)
	}
	if !cfg.CookieSecure {
		t.Fatal("CookieSecure override not applied")
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DATABASE_DSN", "postgres://localhost/test?sslmode=disable")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without SESSION_SECRET")
	}
}

func TestLoadRequiresDatabaseDSN(t *testing.T) {
	t.Setenv("SESSION_SECRET", "topsecret")
	t.Setenv("DATABASE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_DSN")
	}
}

func TestBadIntFallsBackToDefault(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_TTL_MINUTES", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("SessionTTL = %v, want default 1h", cfg.SessionTTL)
	}
}
