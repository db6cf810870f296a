package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gigboard/gigboard/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Fatalf("expected 24h token duration, got %v", cfg.TokenDuration)
	}
	if cfg.AllowedOrigin != "*" {
		t.Fatalf("unexpected allowed origin: %q", cfg.AllowedOrigin)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GIG_ADDR", ":9999")
	t.Setenv("GIG_ALLOWED_ORIGIN", "https://app.example.com")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("env override not applied: %q", cfg.Addr)
	}
	if cfg.AllowedOrigin != "https://app.example.com" {
		t.Fatalf("env override not applied: %q", cfg.AllowedOrigin)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "addr: \":7070\"\njwt_secret: filesecret\ndatabase_path: /tmp/test.db\nallowed_origin: https://file.example.com\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.JWTSecret != "filesecret" || cfg.AllowedOrigin != "https://file.example.com" {
		t.Fatalf("file values not applied: %#v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
