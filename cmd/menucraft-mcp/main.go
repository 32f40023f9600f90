package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/menucraft/menucraft-mcp/internal/config"
	"github.com/menucraft/menucraft-mcp/internal/logging"
	"github.com/menucraft/menucraft-mcp/internal/mcp"
	"github.com/menucraft/menucraft-mcp/internal/mcp/tools"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Configuration is loaded from environment variables:
	// - GRAPHQL_ENDPOINT: upstream GraphQL URL (default http://localhost:8026/api/graphql/)
	// - GRAPHQL_TOKEN: auth token, required
	// - API_TIMEOUT_MS, API_RETRY_ATTEMPTS, API_RETRY_DELAY_MS
	// - LOG_LEVEL, LOG_FILE (see internal/config for all options)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	gateway := menuapi.New(
		menuapi.WithEndpoint(cfg.GraphQLEndpoint),
		menuapi.WithToken(cfg.GraphQLToken),
		menuapi.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
		menuapi.WithRetry(cfg.RetryAttempts, cfg.RetryDelay),
	)

	server, err := mcp.NewServer(&tools.Deps{
		Gateway: gateway,
		Config:  cfg,
	})
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}

	// Run the server with stdio transport
	slog.Info("starting menucraft MCP server on stdio", "endpoint", cfg.GraphQLEndpoint)
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
