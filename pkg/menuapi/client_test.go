package menuapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing_SendsTokenHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": {"__typename": "Query"}}`))
	}))
	defer srv.Close()

	c := New(WithEndpoint(srv.URL), WithToken("abcdef1234567890"))
	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "token abcdef1234567890", gotAuth)
}

func TestExecute_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
			return
		}
		w.Write([]byte(`{"data": {"__typename": "Query"}}`))
	}))
	defer srv.Close()

	c := New(WithEndpoint(srv.URL), WithRetry(3, time.Millisecond))
	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestExecute_ExhaustsAttemptsAndKeepsLastError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("database on fire"))
	}))
	defer srv.Close()

	c := New(WithEndpoint(srv.URL), WithRetry(3, time.Millisecond))
	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database on fire", apiErr.Message)
}

func TestExecute_DoesNotRetryAuthFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid token"))
	}))
	defer srv.Close()

	c := New(WithEndpoint(srv.URL), WithRetry(3, time.Millisecond))
	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecute_DoesNotRetryGraphQLErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"data": null, "errors": [{"message": "duplicate name"}, {"message": "second"}]}`))
	}))
	defer srv.Close()

	c := New(WithEndpoint(srv.URL), WithRetry(3, time.Millisecond))
	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var gqlErr *GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.Equal(t, []string{"duplicate name", "second"}, gqlErr.Messages)
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestExecute_ContextCancelledDuringRetryDelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := New(WithEndpoint(srv.URL), WithRetry(3, time.Hour))

	done := make(chan error, 1)
	go func() { done <- c.Ping(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("ping did not return after cancellation")
	}
}

func TestRetryable_Classification(t *testing.T) {
	assert.True(t, retryable(&APIError{StatusCode: 500}))
	assert.True(t, retryable(&APIError{StatusCode: 503}))
	assert.True(t, retryable(errors.New("connection refused")))
	assert.False(t, retryable(&APIError{StatusCode: 401}))
	assert.False(t, retryable(&APIError{StatusCode: 400}))
	assert.False(t, retryable(&GraphQLError{Messages: []string{"x"}}))
	assert.False(t, retryable(missingField("data")))
}
