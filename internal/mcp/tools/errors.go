package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/menucraft/menucraft-mcp/internal/validate"
	"github.com/menucraft/menucraft-mcp/pkg/menuapi"
)

// Error codes for MCP tool responses.
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAuthFailed        = "AUTH_FAILED"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
	ErrCodeDependencyBlocked = "DEPENDENCY_BLOCKED"
	ErrCodeTimeout           = "TIMEOUT"
)

// CodedError is an error with an associated error code. The original
// upstream message always survives in Cause.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapUpstreamError classifies a gateway error into a coded error with
// a friendlier message. The classification mirrors what users can act
// on: fix the token, wait out the network, or correct the request.
func WrapUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	coded := classify(err)
	slog.Warn("upstream API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)
	return coded
}

func classify(err error) *CodedError {
	if errors.Is(err, menuapi.ErrNotFound) {
		return &CodedError{Code: ErrCodeNotFound, Message: err.Error(), Cause: err}
	}

	var apiErr *menuapi.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return &CodedError{
				Code:    ErrCodeAuthFailed,
				Message: "authentication rejected by the upstream API; check GRAPHQL_TOKEN",
				Cause:   err,
			}
		case 404:
			return &CodedError{Code: ErrCodeNotFound, Message: apiErr.Message, Cause: err}
		}
		if apiErr.StatusCode >= 500 {
			return &CodedError{Code: ErrCodeNetworkError, Message: apiErr.Message, Cause: err}
		}
		return &CodedError{Code: ErrCodeUpstreamError, Message: apiErr.Message, Cause: err}
	}

	var gqlErr *menuapi.GraphQLError
	if errors.As(err, &gqlErr) {
		msg := gqlErr.Error()
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(lower, "permission") || strings.Contains(lower, "not authenticated") ||
			strings.Contains(lower, "unauthorized") || strings.Contains(lower, "invalid token"):
			return &CodedError{Code: ErrCodeAuthFailed, Message: msg, Cause: err}
		case strings.Contains(lower, "not found") || strings.Contains(lower, "does not exist") ||
			strings.Contains(lower, "no such"):
			return &CodedError{Code: ErrCodeNotFound, Message: msg, Cause: err}
		}
		return &CodedError{Code: ErrCodeUpstreamError, Message: msg, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "context deadline exceeded") {
		return &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}

	var missing *menuapi.MissingFieldError
	if errors.As(err, &missing) {
		return &CodedError{Code: ErrCodeUpstreamError, Message: missing.Error(), Cause: err}
	}

	return &CodedError{Code: ErrCodeNetworkError, Message: err.Error(), Cause: err}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// ErrValidation converts a failed validation result into an invalid
// input error carrying every collected field error.
func ErrValidation(res *validate.Result) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: strings.Join(res.Errors, "; "),
	}
}

// ErrDependencyBlocked creates a blocked-delete error from collected
// block reasons.
func ErrDependencyBlocked(reasons []string) error {
	return &CodedError{
		Code:    ErrCodeDependencyBlocked,
		Message: strings.Join(reasons, "; "),
	}
}
