package internal

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// HTTPError represents an HTTP error with all data needed for rendering.
// It implements the error interface and carries the structured data the
// error handler writes into the response.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// ErrorCode is an application-specific error code, e.g. "language_not_acceptable".
	ErrorCode string

	// RequestID is the request tracking ID.
	RequestID string

	// Code is the HTTP status code (e.g., 404, 406).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithErrorCode(code string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.ErrorCode = code
	}
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.RequestID = id
	}
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// Convenience constructors for the statuses negotiation can produce.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrNotAcceptable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotAcceptable, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

// LanguageStatus maps a negotiation failure to its HTTP status code.
// Errors outside the negotiate kinds map to 500.
func LanguageStatus(err error) int {
	kind, ok := negotiate.AsError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case negotiate.ErrBadRequest:
		return http.StatusBadRequest
	case negotiate.ErrNotAcceptable:
		return http.StatusNotAcceptable
	case negotiate.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// LanguageError converts a negotiation failure into an HTTPError.
// Returns nil for a nil error.
func LanguageError(err error, opts ...HTTPErrorOption) *HTTPError {
	if err == nil {
		return nil
	}
	if httpErr := AsHTTPError(err); httpErr != nil {
		return httpErr
	}

	code := LanguageStatus(err)
	errorCode := "language_negotiation_failed"
	switch code {
	case http.StatusBadRequest:
		errorCode = "language_bad_request"
	case http.StatusNotAcceptable:
		errorCode = "language_not_acceptable"
	case http.StatusNotFound:
		errorCode = "language_not_found"
	}

	opts = append([]HTTPErrorOption{WithError(err), WithErrorCode(errorCode)}, opts...)
	return NewHTTPError(code, http.StatusText(code), opts...)
}

// Helper functions for error inspection.

func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// AsHTTPError extracts the HTTPError from an error chain if present.
// Returns nil if the error is not an HTTPError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}
