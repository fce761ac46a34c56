package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("got %q", cfg.Server.Addr)
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Fatalf("got %v", cfg.Fetch.Timeout)
	}
	if cfg.RateLimit.RequestsPerMinute != 60 || cfg.RateLimit.Burst != 10 {
		t.Fatalf("got %+v", cfg.RateLimit)
	}
	if cfg.Storage.Dir == "" {
		t.Fatal("storage dir must have a default")
	}
}

func TestLoad_noFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("got %q", cfg.Server.Addr)
	}
}

func TestLoad_missingFileIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("got %q", cfg.Server.Addr)
	}
}

func TestLoad_yamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":8080"
  request_timeout: 45s
fetch:
  timeout: 10s
ratelimit:
  requests_per_minute: 120
  burst: 20
cors:
  allowed_origins:
    - "https://reader.example.com"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("got %q", cfg.Server.Addr)
	}
	if cfg.Fetch.Timeout != 10*time.Second {
		t.Fatalf("got %v", cfg.Fetch.Timeout)
	}
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Fatalf("got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://reader.example.com" {
		t.Fatalf("got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Server.MaxBodyBytes != 64*1024 {
		t.Fatalf("unset values must keep defaults, got %d", cfg.Server.MaxBodyBytes)
	}
}

func TestLoad_envOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":8080\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADDR", ":9090")
	t.Setenv("FETCH_TIMEOUT", "5s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("environment must win over file, got %q", cfg.Server.Addr)
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Fatalf("got %v", cfg.Fetch.Timeout)
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("want a parse error")
	}
}

func TestLoad_rejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "-1s")
	if _, err := Load(""); err == nil {
		t.Fatal("want a validation error for a negative fetch timeout")
	}
}
