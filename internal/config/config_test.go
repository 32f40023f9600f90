package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

func validConfig() *Config {
	return &Config{
		GraphQLEndpoint: menuapi.DefaultEndpoint,
		GraphQLToken:    "abcdef0123456789",
		APITimeout:      30 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GRAPHQL_TOKEN", "  abcdef0123456789  ")

	cfg := Load()
	assert.Equal(t, menuapi.DefaultEndpoint, cfg.GraphQLEndpoint)
	assert.Equal(t, "abcdef0123456789", cfg.GraphQLToken, "token is trimmed")
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GRAPHQL_ENDPOINT", "https://api.example.com/graphql/")
	t.Setenv("GRAPHQL_TOKEN", "abcdef0123456789")
	t.Setenv("API_TIMEOUT_MS", "5000")
	t.Setenv("API_RETRY_ATTEMPTS", "5")
	t.Setenv("API_RETRY_DELAY_MS", "250")

	cfg := Load()
	assert.Equal(t, "https://api.example.com/graphql/", cfg.GraphQLEndpoint)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, 5, cfg.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
}

func TestValidate_TokenRules(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg.GraphQLToken = ""
	assert.ErrorContains(t, cfg.Validate(), "GRAPHQL_TOKEN is required")

	cfg.GraphQLToken = "short"
	assert.ErrorContains(t, cfg.Validate(), "at least 10 characters")

	cfg.GraphQLToken = "abcdef 0123456789"
	assert.ErrorContains(t, cfg.Validate(), "whitespace or control")

	cfg.GraphQLToken = "abcdef\t0123456789"
	assert.ErrorContains(t, cfg.Validate(), "whitespace or control")

	cfg.GraphQLToken = "abcdef\x000123456789"
	assert.ErrorContains(t, cfg.Validate(), "whitespace or control")
}

func TestValidate_NumericSanity(t *testing.T) {
	cfg := validConfig()
	cfg.RetryAttempts = 0
	assert.ErrorContains(t, cfg.Validate(), "API_RETRY_ATTEMPTS")

	cfg = validConfig()
	cfg.RetryDelay = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "API_RETRY_DELAY_MS")

	cfg = validConfig()
	cfg.APITimeout = 0
	assert.ErrorContains(t, cfg.Validate(), "API_TIMEOUT_MS")

	cfg = validConfig()
	cfg.GraphQLEndpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "GRAPHQL_ENDPOINT")
}
