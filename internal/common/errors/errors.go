// Package errors provides standardized error handling for the comparator API.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Matching outcomes. Not-found is an expected negative result, never a
	// server fault.
	ErrCodeCollegeNotFound ErrorCode = "COLLEGE_NOT_FOUND"

	// Catalog integrity and lifecycle.
	ErrCodeMissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrCodeCatalogLoadFailed    ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogNotLoaded     ErrorCode = "CATALOG_NOT_LOADED"

	// Request input.
	ErrCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidPersonalization ErrorCode = "INVALID_PERSONALIZATION"

	// Infrastructure.
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewCollegeNotFoundError marks a query that matched no catalog record.
func NewCollegeNotFoundError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCollegeNotFound,
		Message:   fmt.Sprintf("College '%s' not found", query),
		Details:   fmt.Sprintf("query: %s", query),
		Retryable: false,
		Metadata:  map[string]interface{}{"query": query},
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingRequiredFieldError marks a catalog row missing name or city.
func NewMissingRequiredFieldError(field string, rowID int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingRequiredField,
		Message:   "Catalog record is missing a required field",
		Details:   fmt.Sprintf("field: %s, row: %d", field, rowID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a retryable catalog load error.
func NewCatalogLoadFailedError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Failed to load college catalog",
		Details:   fmt.Sprintf("source: %s, error: %s", source, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogNotLoadedError means no catalog has been loaded yet.
func NewCatalogNotLoadedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogNotLoaded,
		Message:   "Catalog not loaded",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError marks a malformed request body.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPersonalizationError marks preference input that would corrupt
// scoring (e.g. a negative budget).
func NewInvalidPersonalizationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPersonalization,
		Message:   "Invalid personalization",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query error.
func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error. Callers are
// expected to recompute rather than fail the request.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Comparison cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// CodeOf extracts the error code, or empty for foreign errors.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsNotFound reports whether err is the expected no-match outcome.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeCollegeNotFound
}

// IsInvalidInput reports whether err is a caller-side input problem.
func IsInvalidInput(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeInvalidRequest || code == ErrCodeInvalidPersonalization
}
