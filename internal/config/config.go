// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds webutil API and CLI configuration.
type Config struct {
	// Server
	ListenAddr      string
	MetricsAddr     string // empty disables the metrics listener
	ShutdownTimeout time.Duration
	PostInterval    time.Duration // per-client POST throttle, 0 disables

	// Logging
	LogLevel  string
	LogFormat string

	// Clipboard provider selection: auto, native or osc52
	ClipboardMode string
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      envOr("LISTEN_ADDR", ":8090"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		PostInterval:    envDuration("POST_INTERVAL", 200*time.Millisecond),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		LogFormat:       envOr("LOG_FORMAT", "json"),
		ClipboardMode:   envOr("CLIPBOARD_MODE", "auto"),
	}
	if _, ok := os.LookupEnv("METRICS_ADDR"); !ok {
		cfg.MetricsAddr = ":9091"
	}

	switch cfg.ClipboardMode {
	case "auto", "native", "osc52":
	default:
		return nil, fmt.Errorf("CLIPBOARD_MODE must be auto, native or osc52, got %q", cfg.ClipboardMode)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	if cfg.PostInterval < 0 {
		return nil, fmt.Errorf("POST_INTERVAL must not be negative, got %s", cfg.PostInterval)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
