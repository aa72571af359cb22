// Package config provides environment-driven configuration for the degrees server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Dataset source kinds accepted in DATASET_SOURCE.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// DefaultDataDir is the CSV directory used when DATA_DIR is unset.
const DefaultDataDir = "large"

// Config holds all application configuration values.
type Config struct {
	DatasetSource string
	DataDir       string
	SQLitePath    string
	DatabaseURL   Secret

	Port        string
	ListenHost  string
	CORSOrigins []string

	LogLevel  string
	LogFormat string

	SearchTimeout  time.Duration
	SearchMaxDepth int

	RateLimit float64
	RateBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatasetSource: strings.ToLower(envOrDefault("DATASET_SOURCE", SourceCSV)),
		DataDir:       envOrDefault("DATA_DIR", DefaultDataDir),
		SQLitePath:    envOrDefault("SQLITE_PATH", ""),
		DatabaseURL:   Secret(envOrDefault("DATABASE_URL", "")),
		Port:          envOrDefault("PORT", "3030"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
	}

	timeout, err := time.ParseDuration(envOrDefault("SEARCH_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_TIMEOUT must be a duration (e.g. 10s): %w", err)
	}
	cfg.SearchTimeout = timeout

	maxDepth, err := strconv.Atoi(envOrDefault("SEARCH_MAX_DEPTH", "0"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_MAX_DEPTH must be an integer: %w", err)
	}
	cfg.SearchMaxDepth = maxDepth

	rateLimit, err := strconv.ParseFloat(envOrDefault("RATE_LIMIT", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT must be a number: %w", err)
	}
	cfg.RateLimit = rateLimit

	rateBurst, err := strconv.Atoi(envOrDefault("RATE_BURST", "200"))
	if err != nil {
		return nil, fmt.Errorf("RATE_BURST must be an integer: %w", err)
	}
	cfg.RateBurst = rateBurst

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
