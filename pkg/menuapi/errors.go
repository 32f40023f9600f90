package menuapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the upstream resolves a lookup to null.
var ErrNotFound = errors.New("not found")

// APIError is an HTTP-level error from the upstream GraphQL endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// GraphQLError carries the error payload of a GraphQL response. The
// upstream messages are preserved verbatim so callers can classify and
// surface them.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// MissingFieldError reports a response that decoded cleanly but lacks a
// field the operation requires. A null where data was expected is an
// operation failure, never a silent success.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return "response missing " + e.Path
}

func missingField(path string) error {
	return &MissingFieldError{Path: path}
}

// retryable reports whether an error is worth another attempt. Transport
// failures and 5xx responses are transient; auth failures, client errors
// and GraphQL error payloads are not.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		return false
	}
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return false
	}
	return true
}
