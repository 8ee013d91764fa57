// internal/common/errors/http.go
package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// HTTPHandler translates application errors into HTTP responses with a
// stable JSON shape.
type HTTPHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewHTTPHandler(logger Logger) *HTTPHandler {
	return &HTTPHandler{logger: logger}
}

type errorBody struct {
	Success bool      `json:"success"`
	Code    ErrorCode `json:"code"`
	Detail  string    `json:"detail"`
}

// WriteError maps err to a status code and writes the JSON error body.
// Expected negative results (not found, bad input) log at warn; everything
// else logs at error.
func (h *HTTPHandler) WriteError(w http.ResponseWriter, err error) {
	stdErr := h.normalizeError(err)
	status := StatusOf(stdErr.Code)

	fields := map[string]interface{}{
		"code":    stdErr.Code,
		"status":  status,
		"details": stdErr.Details,
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields)
	} else {
		h.logger.Warn("request rejected", fields)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Success: false,
		Code:    stdErr.Code,
		Detail:  stdErr.Message,
	})
}

// normalizeError ensures we always have a StandardError.
func (h *HTTPHandler) normalizeError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// StatusOf maps an error code to its HTTP status.
func StatusOf(code ErrorCode) int {
	switch code {
	case ErrCodeCollegeNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidRequest, ErrCodeInvalidPersonalization:
		return http.StatusBadRequest
	case ErrCodeCatalogNotLoaded:
		return http.StatusServiceUnavailable
	case ErrCodeMissingRequiredField:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
