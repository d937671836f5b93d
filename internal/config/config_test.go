package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected server port: %q", cfg.Server.Port)
	}
	if cfg.JWT.TokenExpiration != "168h" {
		t.Fatalf("unexpected token expiration: %q", cfg.JWT.TokenExpiration)
	}
	if cfg.Crawler.NavigationTimeout != "30s" {
		t.Fatalf("unexpected navigation timeout: %q", cfg.Crawler.NavigationTimeout)
	}
	if !cfg.Crawler.Headless {
		t.Fatal("expected headless crawling by default")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CRAWLER_NAVIGATION_TIMEOUT", "5s")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("env override for server port not applied: %q", cfg.Server.Port)
	}
	if cfg.Crawler.NavigationTimeout != "5s" {
		t.Fatalf("env override for navigation timeout not applied: %q", cfg.Crawler.NavigationTimeout)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Fatalf("env override for max open conns not applied: %d", cfg.Database.MaxOpenConns)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error when JWT secret is missing")
	}
}
