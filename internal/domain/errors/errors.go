package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingCredentials = errors.New("provider credentials are not configured")
	ErrInvalidRequest     = errors.New("invalid request")
)

// ConfigurationError is fatal: the process must not start serving with it.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UpstreamError is a failed provider call. Status mirrors the provider's HTTP
// status, or 500 for transport failures.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream status %d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status to expose to callers.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status < http.StatusBadRequest || e.Status > 599 {
		return http.StatusInternalServerError
	}
	return e.Status
}
