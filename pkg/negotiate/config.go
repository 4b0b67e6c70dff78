package negotiate

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Config is the resolution configuration of one server.
// It is immutable after New and safe for concurrent use by every request.
type Config struct {
	custom       Resolver
	weights      Weights
	urlPosition  int
	wildcard     langcode.Code
	hasURL       bool
	firstFailure bool
}

// Option configures a Config during construction.
type Option func(*Config) error

// New creates a Config. Without options every language has weight 0.0,
// so only custom, URL or wildcard sources can succeed.
func New(opts ...Option) (*Config, error) {
	c := &Config{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Config {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithWildcard sets the language used when every other source fails.
func WithWildcard(lang langcode.Code) Option {
	return func(c *Config) error {
		if !lang.IsValid() {
			return ErrInvalidCode
		}
		c.wildcard = lang
		return nil
	}
}

// WithURLSegment designates the path segment holding the language.
// Negative positions count from the end, -1 being the last segment.
func WithURLSegment(position int) Option {
	return func(c *Config) error {
		c.urlPosition = position
		c.hasURL = true
		return nil
	}
}

// WithResolver installs the highest-precedence resolver.
// A nil resolver, including a nil ResolverFunc or AsyncResolverFunc, fails with ErrNilResolver.
func WithResolver(r Resolver) Option {
	return func(c *Config) error {
		switch fn := r.(type) {
		case nil:
			return ErrNilResolver
		case ResolverFunc:
			if fn == nil {
				return ErrNilResolver
			}
		case AsyncResolverFunc:
			if fn == nil {
				return ErrNilResolver
			}
		}
		c.custom = r
		return nil
	}
}

// WithResolverFunc installs a synchronous custom resolver.
func WithResolverFunc(fn ResolverFunc) Option {
	return WithResolver(fn)
}

// WithAsyncResolver installs a custom resolver that may block and honors cancellation.
func WithAsyncResolver(fn AsyncResolverFunc) Option {
	return WithResolver(fn)
}

// WithWeight sets the support quality of one language.
// 0.0 and NaN mean unsupported. Infinite weights are rejected.
func WithWeight(lang langcode.Code, q float64) Option {
	return func(c *Config) error {
		if !lang.IsValid() {
			return ErrInvalidCode
		}
		if math.IsInf(q, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeight, lang, q)
		}
		c.weights.Set(lang, q)
		return nil
	}
}

// WithWeights sets the support quality of several languages.
func WithWeights(weights map[langcode.Code]float64) Option {
	return func(c *Config) error {
		for _, lang := range slices.Sorted(maps.Keys(weights)) {
			if err := WithWeight(lang, weights[lang])(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// ReportFirstFailure makes the chain surface the error of the first configured step
// that failed instead of the last one.
func ReportFirstFailure() Option {
	return func(c *Config) error {
		c.firstFailure = true
		return nil
	}
}

// Weight returns the support quality of lang.
func (c *Config) Weight(lang langcode.Code) float64 {
	return c.weights.Get(lang)
}

// Weights returns a copy of the support weights.
func (c *Config) Weights() Weights {
	return c.weights
}

// Wildcard returns the fallback language, if configured.
func (c *Config) Wildcard() (langcode.Code, bool) {
	return c.wildcard, c.wildcard.IsValid()
}

// URLSegment returns the language segment position, if configured.
func (c *Config) URLSegment() (int, bool) {
	return c.urlPosition, c.hasURL
}
