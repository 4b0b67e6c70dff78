package middlewares

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/langneg/internal"
)

// PanicError represents a recovered panic.
type PanicError struct {
	Value any    // The panic value
	Stack []byte // Stack trace (nil if disabled)
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// TimeoutError represents a request timeout.
type TimeoutError struct {
	Duration time.Duration // The timeout that was exceeded
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %s", e.Duration)
}

// IsPanicError returns true if the error is a PanicError.
func IsPanicError(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// IsTimeoutError returns true if the error is a TimeoutError.
func IsTimeoutError(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// AsPanicError extracts the PanicError from an error if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsTimeoutError extracts the TimeoutError from an error if present.
func AsTimeoutError(err error) (*TimeoutError, bool) {
	var te *TimeoutError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// errorResponse is the JSON body written by ErrorHandler.
type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler returns an internal.ErrorHandler that renders errors as JSON.
//
// HTTPErrors keep their status; panics map to 500, timeouts to 504 and
// negotiation failures to 400, 404 or 406. Server errors are logged.
func ErrorHandler() internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		var httpErr *internal.HTTPError
		switch {
		case internal.IsHTTPError(err):
			httpErr = internal.AsHTTPError(err)
		case IsPanicError(err):
			httpErr = internal.ErrInternal(http.StatusText(http.StatusInternalServerError),
				internal.WithError(err), internal.WithErrorCode("internal_error"))
		case IsTimeoutError(err):
			httpErr = internal.NewHTTPError(http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout),
				internal.WithError(err), internal.WithErrorCode("timeout"))
		default:
			httpErr = internal.LanguageError(err)
		}

		if httpErr.RequestID == "" {
			httpErr.RequestID = GetRequestID(c)
		}
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Int("status", httpErr.Code), slog.Any("error", err))
		}

		code := httpErr.ErrorCode
		if code == "" {
			code = strings.ToLower(strings.ReplaceAll(httpErr.StatusText(), " ", "_"))
		}

		return c.JSON(httpErr.Code, errorResponse{
			Error:     code,
			Message:   httpErr.Message,
			RequestID: httpErr.RequestID,
		})
	}
}
