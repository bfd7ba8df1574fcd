package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies generation failures. The chat engine treats all
// of them the same way (advance the fallback chain), but the class is
// logged so operators can tell a bad key from a slow model.
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "auth"
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeConnection ErrorType = "connection"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeModel      ErrorType = "model"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error is a classified generation failure.
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	parts := []string{string(e.Type)}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	parts = append(parts, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Cause)
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// ClassifyError categorizes a provider error into a structured *Error.
// Provider SDKs surface most failures as strings, so classification is
// substring based.
func ClassifyError(err error) *Error {
	if err == nil {
		return nil
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr
	}

	errStr := err.Error()
	lower := strings.ToLower(errStr)

	statusCode := 0
	for _, code := range []int{400, 401, 403, 404, 429, 500, 502, 503, 504} {
		if strings.Contains(errStr, fmt.Sprintf("%d", code)) {
			statusCode = code
			break
		}
	}

	newErr := func(t ErrorType, msg string) *Error {
		return &Error{Type: t, Message: msg, StatusCode: statusCode, Cause: err}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "deadline exceeded"):
		return newErr(ErrorTypeTimeout, "request timed out")
	case strings.Contains(errStr, "401") || strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "invalid api key"):
		return newErr(ErrorTypeAuth, "authentication failed")
	case strings.Contains(errStr, "429") || strings.Contains(lower, "rate limit"):
		return newErr(ErrorTypeRateLimit, "rate limited")
	case strings.Contains(lower, "model") && (strings.Contains(lower, "not found") ||
		strings.Contains(lower, "does not exist")):
		return newErr(ErrorTypeModel, "model not found")
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "connection reset"):
		return newErr(ErrorTypeConnection, "endpoint unreachable")
	}

	return newErr(ErrorTypeUnknown, "generation failed")
}
