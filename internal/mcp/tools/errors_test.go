package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

func TestWrapUpstreamError_Classification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"nil stays nil", nil, ""},
		{"401 is auth", &menuapi.APIError{StatusCode: 401, Message: "unauthorized"}, ErrCodeAuthFailed},
		{"403 is auth", &menuapi.APIError{StatusCode: 403, Message: "forbidden"}, ErrCodeAuthFailed},
		{"404 is not found", &menuapi.APIError{StatusCode: 404, Message: "gone"}, ErrCodeNotFound},
		{"400 is upstream", &menuapi.APIError{StatusCode: 400, Message: "bad payload"}, ErrCodeUpstreamError},
		{"503 is network", &menuapi.APIError{StatusCode: 503, Message: "unavailable"}, ErrCodeNetworkError},
		{"wrapped sentinel is not found", fmt.Errorf("menu item x: %w", menuapi.ErrNotFound), ErrCodeNotFound},
		{"graphql not-found text", &menuapi.GraphQLError{Messages: []string{"MenuItem does not exist"}}, ErrCodeNotFound},
		{"graphql permission text", &menuapi.GraphQLError{Messages: []string{"permission denied"}}, ErrCodeAuthFailed},
		{"graphql business error", &menuapi.GraphQLError{Messages: []string{"duplicate name"}}, ErrCodeUpstreamError},
		{"deadline is timeout", context.DeadlineExceeded, ErrCodeTimeout},
		{"missing field is upstream", &menuapi.MissingFieldError{Path: "restaurant.settings.menu"}, ErrCodeUpstreamError},
		{"transport error is network", errors.New("connection refused"), ErrCodeNetworkError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := WrapUpstreamError(tc.err)
			if tc.err == nil {
				assert.NoError(t, wrapped)
				return
			}
			var coded *CodedError
			require.ErrorAs(t, wrapped, &coded)
			assert.Equal(t, tc.code, coded.Code)
		})
	}
}

func TestWrapUpstreamError_PreservesOriginalError(t *testing.T) {
	original := &menuapi.GraphQLError{Messages: []string{"database on fire"}}
	wrapped := WrapUpstreamError(original)

	assert.Contains(t, wrapped.Error(), "database on fire")
	var gqlErr *menuapi.GraphQLError
	assert.ErrorAs(t, wrapped, &gqlErr, "original error stays reachable via Unwrap")
}

func TestErrDependencyBlocked_JoinsEveryReason(t *testing.T) {
	err := ErrDependencyBlocked([]string{"[HARD_BLOCK] first", "[SOFT_BLOCK] second"})
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeDependencyBlocked, coded.Code)
}
