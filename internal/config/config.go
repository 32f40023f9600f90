// Package config provides configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// minTokenLength is the shortest token the upstream will ever issue.
const minTokenLength = 10

// Config holds all configuration for the MCP server.
type Config struct {
	GraphQLEndpoint string        // GRAPHQL_ENDPOINT, default menuapi.DefaultEndpoint
	GraphQLToken    string        // GRAPHQL_TOKEN, required
	APITimeout      time.Duration // API_TIMEOUT_MS, default 30000ms (30s)
	RetryAttempts   int           // API_RETRY_ATTEMPTS, default 3
	RetryDelay      time.Duration // API_RETRY_DELAY_MS, default 1000ms (1s)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		GraphQLEndpoint: getEnvString("GRAPHQL_ENDPOINT", menuapi.DefaultEndpoint),
		GraphQLToken:    strings.TrimSpace(os.Getenv("GRAPHQL_TOKEN")),
		APITimeout:      getEnvDurationMs("API_TIMEOUT_MS", 30000),
		RetryAttempts:   getEnvInt("API_RETRY_ATTEMPTS", 3),
		RetryDelay:      getEnvDurationMs("API_RETRY_DELAY_MS", 1000),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// Validate checks the loaded configuration for startup-blocking
// problems. A missing or malformed token is not recoverable at
// runtime, so it fails here rather than on the first upstream call.
func (c *Config) Validate() error {
	if c.GraphQLEndpoint == "" {
		return fmt.Errorf("GRAPHQL_ENDPOINT must not be empty")
	}
	if c.GraphQLToken == "" {
		return fmt.Errorf("GRAPHQL_TOKEN is required")
	}
	if len(c.GraphQLToken) < minTokenLength {
		return fmt.Errorf("GRAPHQL_TOKEN must be at least %d characters", minTokenLength)
	}
	for _, r := range c.GraphQLToken {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("GRAPHQL_TOKEN must not contain whitespace or control characters")
		}
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("API_RETRY_ATTEMPTS must be at least 1")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("API_RETRY_DELAY_MS must not be negative")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT_MS must be positive")
	}
	return nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
