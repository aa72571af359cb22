package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func (c *Config) validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return c.validateSearch()
}

func (c *Config) validateDataset() error {
	switch c.DatasetSource {
	case SourceCSV:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required when DATASET_SOURCE is csv")
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DATASET_SOURCE is sqlite")
		}
	case SourcePostgres:
		return c.validateDatabase()
	default:
		return fmt.Errorf("DATASET_SOURCE must be 'csv', 'sqlite' or 'postgres', got %q", c.DatasetSource)
	}

	return nil
}

func (c *Config) validateDatabase() error {
	if c.DatabaseURL.Value() == "" {
		return fmt.Errorf("DATABASE_URL is required when DATASET_SOURCE is postgres")
	}

	dbURL, err := url.Parse(c.DatabaseURL.Value())
	if err != nil {
		return fmt.Errorf("DATABASE_URL is not a valid URL: %w", err)
	}

	if dbURL.Scheme != "postgres" && dbURL.Scheme != "postgresql" {
		return fmt.Errorf("DATABASE_URL scheme must be postgres:// or postgresql://")
	}

	dbHost := dbURL.Hostname()
	if dbHost == "" {
		return fmt.Errorf("DATABASE_URL must include a host")
	}

	if !isLoopback(dbHost) && dbURL.Query().Get("sslmode") == "disable" {
		return fmt.Errorf("DATABASE_URL sslmode=disable is not allowed for non-local host %q", dbHost)
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Loopback for local use, wildcard for containers.
	if !isLoopback(c.ListenHost) && c.ListenHost != "0.0.0.0" && c.ListenHost != "::" {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard or glob characters, got %q", origin)
		}

		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'text', got %q", c.LogFormat)
	}

	return nil
}

func (c *Config) validateSearch() error {
	if c.SearchTimeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}

	if c.SearchMaxDepth < 0 {
		return fmt.Errorf("SEARCH_MAX_DEPTH must not be negative")
	}

	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}

	if c.RateBurst < 1 {
		return fmt.Errorf("RATE_BURST must be at least 1")
	}

	return nil
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
