package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "STATIC_DIR", "STATIC_PREFIX", "SITE_TITLE", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr != ":8080" {
		t.Fatalf("ServerAddr = %q", cfg.ServerAddr)
	}
	if cfg.StaticDir != "static" || cfg.StaticPrefix != "/static" {
		t.Fatalf("StaticDir = %q, StaticPrefix = %q", cfg.StaticDir, cfg.StaticPrefix)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.Portfolio == nil || len(cfg.Portfolio.Projects) == 0 {
		t.Fatal("Portfolio not loaded")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://rolfe.dev,http://localhost:3000")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("SITE_TITLE", "Daniel Rolfe — Portfolio")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr != ":9090" {
		t.Fatalf("ServerAddr = %q", cfg.ServerAddr)
	}
	if want := []string{"https://rolfe.dev", "http://localhost:3000"}; !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.SiteTitle != "Daniel Rolfe — Portfolio" {
		t.Fatalf("SiteTitle = %q", cfg.SiteTitle)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	t.Setenv("STATIC_DIR", "")
	os.Unsetenv("STATIC_DIR")
	t.Setenv("SERVER_ADDR", ":7000")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("STATIC_DIR=public\nSERVER_ADDR=:1111\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StaticDir != "public" {
		t.Fatalf("StaticDir = %q, want value from file", cfg.StaticDir)
	}
	if cfg.ServerAddr != ":7000" {
		t.Fatalf("ServerAddr = %q, want environment to win over file", cfg.ServerAddr)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}
