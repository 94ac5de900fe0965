package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned for unknown and expired session ids alike;
// callers cannot tell whether an id ever existed.
var ErrSessionNotFound = errors.New("session not found")

// FetchError reports that background retrieval for a URL failed. It surfaces
// to the user instead of falling back to search.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Error fetching URL: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UpstreamError reports a failed LLM call. The provider message passes
// through unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConfigError reports a missing upstream credential.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }
