package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tour search and booking core.
// Handlers map these to HTTP status codes with errors.Is.
var (
	// ErrInvalidRequest indicates that a request failed validation before
	// any network call was made.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound indicates that the requested resource does not exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrUpstreamUnavailable indicates that the remote tour API could not be
	// reached or returned a server-side failure.
	ErrUpstreamUnavailable = errors.New("tour service unavailable")
)

// UpstreamError wraps an error returned while calling the remote tour API.
// It records the operation that failed and whether a retry may succeed.
type UpstreamError struct {
	// Op is the logical operation that failed (e.g., "filter-tours")
	Op string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the caller may retry the operation
	Retryable bool
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("tour api: %s failed", e.Op)
	}
	return fmt.Sprintf("tour api: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a non-retryable UpstreamError.
func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

// NewRetryableUpstreamError creates an UpstreamError that callers may retry.
func NewRetryableUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err, Retryable: true}
}
