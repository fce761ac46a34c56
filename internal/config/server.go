// Package config defines the application configuration and its loading rules.
// Values come from an optional YAML file overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "feeddeck/pkg/config"
)

// ServerConfig holds the full configuration of the aggregation service.
type ServerConfig struct {
	Server struct {
		Addr           string        `yaml:"addr"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	} `yaml:"server"`

	Fetch struct {
		// Timeout bounds a single feed fetch so one hanging transport call
		// cannot stall a refresh cycle indefinitely.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"fetch"`

	Storage struct {
		// Dir is the directory of the client-local key/value store.
		Dir string `yaml:"dir"`
	} `yaml:"storage"`

	RateLimit struct {
		RequestsPerMinute int `yaml:"requests_per_minute"`
		Burst             int `yaml:"burst"`
	} `yaml:"ratelimit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() ServerConfig {
	var cfg ServerConfig
	cfg.Server.Addr = ":3000"
	cfg.Server.RequestTimeout = 60 * time.Second
	cfg.Server.MaxBodyBytes = 64 * 1024
	cfg.Fetch.Timeout = 30 * time.Second
	cfg.Storage.Dir = defaultStorageDir()
	cfg.RateLimit.RequestsPerMinute = 60
	cfg.RateLimit.Burst = 10
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

// Load builds the configuration: defaults, then the YAML file at path (skipped
// when path is empty or the file does not exist), then environment overrides.
func Load(path string) (ServerConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from a CLI flag or env var, not user input
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.Server.Addr = pkgconfig.GetEnvString("ADDR", cfg.Server.Addr)
	cfg.Server.RequestTimeout = pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", cfg.Server.RequestTimeout)
	cfg.Fetch.Timeout = pkgconfig.GetEnvDuration("FETCH_TIMEOUT", cfg.Fetch.Timeout)
	cfg.Storage.Dir = pkgconfig.GetEnvString("STORAGE_DIR", cfg.Storage.Dir)
	cfg.RateLimit.RequestsPerMinute = pkgconfig.GetEnvInt("RATELIMIT_RPM", cfg.RateLimit.RequestsPerMinute)
	cfg.RateLimit.Burst = pkgconfig.GetEnvInt("RATELIMIT_BURST", cfg.RateLimit.Burst)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *ServerConfig) validate() error {
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}
	return nil
}

// defaultStorageDir resolves the per-user data directory for the feed store.
func defaultStorageDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".feeddeck"
	}
	return base + string(os.PathSeparator) + "feeddeck"
}
