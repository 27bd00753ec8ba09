// ABOUTME: Custom error types for the article transformation pipeline
// ABOUTME: Maps the pipeline's failure taxonomy onto structured Go errors

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a network/transport error or non-success response
// while retrieving the article. Fetches are never retried.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the transport failed before a response
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch of %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch of %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a fetched document that produced no usable tree.
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse of %s produced no usable document: %v", e.URL, e.Err)
}

// Unwrap returns the underlying parser error, if any
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NoContentError represents the content locator exhausting its fallback
// chain without finding non-empty article content.
type NoContentError struct {
	URL string
}

// Error implements the error interface
func (e *NoContentError) Error() string {
	return fmt.Sprintf("no article content found in %s", e.URL)
}

// SanitizeEmptyError represents sanitization yielding empty output from
// non-empty input. This is a defensive terminal condition.
type SanitizeEmptyError struct {
	URL string
}

// Error implements the error interface
func (e *SanitizeEmptyError) Error() string {
	return fmt.Sprintf("sanitized content of %s is empty", e.URL)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsNoContent checks if an error is a NoContentError
func IsNoContent(err error) bool {
	var noContentErr *NoContentError
	return errors.As(err, &noContentErr)
}

// IsSanitizeEmpty checks if an error is a SanitizeEmptyError
func IsSanitizeEmpty(err error) bool {
	var sanErr *SanitizeEmptyError
	return errors.As(err, &sanErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
