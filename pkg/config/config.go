// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, pipeline, storage and middleware

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Pipeline contains article transformation configuration
	Pipeline PipelineConfig

	// Redirect contains navigation redirector configuration
	Redirect RedirectConfig

	// Cache contains ancillary cache configuration
	Cache CacheConfig

	// Storage contains preference storage configuration
	Storage StorageConfig

	// LogLevel is the logrus level name (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per minute per client IP
	RateLimit int
}

// PipelineConfig holds article transformation configuration
type PipelineConfig struct {
	// Origin is the absolute origin relative references resolve against
	Origin string

	// FetchTimeoutSeconds bounds the single article fetch attempt
	FetchTimeoutSeconds int
}

// RedirectConfig holds navigation redirector configuration
type RedirectConfig struct {
	// ContentHost is the host whose article pages are intercepted
	ContentHost string

	// ReaderBase is the reader view base address
	ReaderBase string
}

// CacheConfig holds in-memory cache configuration
type CacheConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// StorageConfig holds preference storage configuration
type StorageConfig struct {
	// SQLitePath is the blacklist database file path
	SQLitePath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Pipeline: PipelineConfig{
			Origin:              getEnvOrDefault("CONTENT_ORIGIN", "https://en.wikipedia.org"),
			FetchTimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
		},
		Redirect: RedirectConfig{
			ContentHost: getEnvOrDefault("CONTENT_HOST", "en.wikipedia.org"),
			ReaderBase:  getEnvOrDefault("READER_BASE", "/reader"),
		},
		Cache: CacheConfig{
			DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			CleanupInterval:   getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("PREFERENCES_DB", "preferences.db"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if !strings.HasPrefix(c.Pipeline.Origin, "http://") && !strings.HasPrefix(c.Pipeline.Origin, "https://") {
		return errors.New("content origin must be an absolute http(s) origin")
	}

	if strings.HasSuffix(c.Pipeline.Origin, "/") {
		return errors.New("content origin must not end with a slash")
	}

	if c.Pipeline.FetchTimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Redirect.ContentHost == "" {
		return errors.New("content host cannot be empty")
	}

	return nil
}
