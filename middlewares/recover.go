package middlewares

import (
	"runtime"

	"github.com/dmitrymomot/langneg/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	StackSize         int  // Max stack trace size (default: 4096)
	DisablePrintStack bool // Disable stack trace capture and logging
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithRecoverDisablePrintStack disables stack capture.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover turns panics into a *PanicError for the App's error handler.
// Panics raised by synchronous language resolvers surface here as well,
// since negotiation runs on the handler goroutine.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := RecoverConfig{StackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				pe := &PanicError{Value: r}
				attrs := []any{"panic", r, "method", c.Request().Method, "path", c.Request().URL.Path}
				if !cfg.DisablePrintStack {
					pe.Stack = stack(cfg.StackSize)
					attrs = append(attrs, "stack", string(pe.Stack))
				}
				c.LogError("panic recovered", attrs...)
				err = pe
			}()

			return next(c)
		}
	}
}

func stack(size int) []byte {
	buf := make([]byte, size)
	return buf[:runtime.Stack(buf, false)]
}
