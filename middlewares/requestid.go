package middlewares

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/pkg/logger"
)

type requestIDKey struct{}

// maxRequestIDLength bounds IDs accepted from clients; longer ones are replaced.
const maxRequestIDLength = 128

// DefaultRequestIDHeaders are the headers checked (in order) for an existing request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Generator      func() string // defaults to time-ordered UUIDv7
	ResponseHeader string
	Headers        []string // checked in order
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders sets the headers to check for existing request IDs.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Headers = headers
	}
}

// WithRequestIDGenerator sets a custom ID generator function.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// WithRequestIDResponseHeader sets the response header name. Empty disables echoing.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

// RequestID tags each request with an ID: the first acceptable upstream header
// value, or a freshly generated one. The ID lands in the context (GetRequestID,
// RequestIDExtractor), in the response header and in language error bodies.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := RequestIDConfig{
		Headers:        DefaultRequestIDHeaders,
		Generator:      newRequestID,
		ResponseHeader: "X-Request-ID",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id := upstreamRequestID(c, cfg.Headers)
			if id == "" {
				id = cfg.Generator()
			}

			c.Set(requestIDKey{}, id)
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, id)
			}
			return next(c)
		}
	}
}

func upstreamRequestID(c internal.Context, headers []string) string {
	for _, h := range headers {
		if v := c.Header(h); v != "" {
			if !validRequestID(v) {
				return ""
			}
			return v
		}
	}
	return ""
}

// validRequestID accepts bounded printable ASCII, so IDs are safe to echo and log.
func validRequestID(id string) bool {
	if len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// GetRequestID returns the request ID, or "" when RequestID is not installed.
func GetRequestID(c internal.Context) string {
	id, _ := c.Get(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log records. Pass it to WithLogger.
func RequestIDExtractor() logger.ContextExtractor {
	return logger.Extract("request_id", func(ctx context.Context) (string, bool) {
		v, ok := ctx.Value(requestIDKey{}).(string)
		return v, ok
	})
}
