// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrMissingData indicates a required top-level data table is absent.
	// This is the only fatal initialization error.
	ErrMissingData = errors.New("required data missing")

	// ErrSourceUnavailable indicates a data source could not be loaded or
	// returned an empty payload. Callers fall back to the next source.
	ErrSourceUnavailable = errors.New("data source unavailable")

	// ErrInvalidURL indicates a link href failed validation.
	ErrInvalidURL = errors.New("invalid url")

	// ErrUnitNotFound indicates a requested campus key is unknown.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrInvalidInput indicates a caller provided invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// SourceError wraps a data-source load failure with its source name.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error (source=%s): %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new source error.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Err:    err,
	}
}
