// Package menuapi is a client for the restaurant-management GraphQL API.
// It wraps a single HTTP endpoint with token authentication, typed
// operations over the menu schema, and fixed-delay retries around
// transient failures.
package menuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultEndpoint is the default URL of the upstream GraphQL API.
const DefaultEndpoint = "http://localhost:8026/api/graphql/"

// Client is a restaurant-management GraphQL API client. It holds only
// endpoint and auth configuration and is safe for concurrent use.
type Client struct {
	endpoint      string
	token         string
	httpClient    *http.Client
	retryAttempts int
	retryDelay    time.Duration
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithEndpoint sets a custom GraphQL endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithToken sets the API auth token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetry sets the total attempt count and the fixed delay between
// attempts. Attempts below 1 are clamped to 1.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// New creates a new restaurant-management API client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:      DefaultEndpoint,
		httpClient:    http.DefaultClient,
		retryAttempts: 3,
		retryDelay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlErrorEntry struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage     `json:"data"`
	Errors []graphqlErrorEntry `json:"errors"`
}

// execute runs one GraphQL document with fixed-delay retries and decodes
// the data payload into out. The last attempt's error is propagated with
// the upstream message intact.
func (c *Client) execute(ctx context.Context, operation, document string, variables map[string]any, out any) error {
	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		lastErr = c.post(ctx, operation, document, variables, out)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}

		slog.Warn("graphql request failed",
			slog.String("operation", operation),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.retryAttempts),
			slog.String("error", lastErr.Error()),
		)
	}
	return lastErr
}

func (c *Client) post(ctx context.Context, operation, document string, variables map[string]any, out any) error {
	start := time.Now()

	body, err := json.Marshal(graphqlRequest{Query: document, Variables: variables})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(raw))}
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return &GraphQLError{Messages: messages}
	}

	if out != nil {
		if envelope.Data == nil {
			return missingField("data")
		}
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}

	slog.Debug("graphql request completed",
		slog.String("operation", operation),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}

// Ping runs a minimal query to verify connectivity and auth.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Typename string `json:"__typename"`
	}
	return c.execute(ctx, "ping", pingQuery, nil, &out)
}
