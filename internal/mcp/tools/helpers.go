package tools

import (
	"fmt"
	"strings"
)

// equalUUID compares UUIDs the way the upstream does, ignoring case.
func equalUUID(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ErrNotFoundf creates a not-found error for a named resource.
func ErrNotFoundf(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}
