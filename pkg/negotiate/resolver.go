package negotiate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Resolver is an operator-supplied language source consulted before every other step.
// A returned Error kind (ErrNotFound, ...) reports a regular miss; any other error
// is treated as a failure of this step and the chain moves on.
type Resolver interface {
	ResolveLanguage(ctx context.Context, r *http.Request) (langcode.Code, error)
}

// ResolverFunc adapts a synchronous function. It runs inline on the request goroutine.
type ResolverFunc func(r *http.Request) (langcode.Code, error)

// ResolveLanguage implements Resolver.
func (f ResolverFunc) ResolveLanguage(_ context.Context, r *http.Request) (langcode.Code, error) {
	return f(r)
}

// AsyncResolverFunc adapts a function that may block on I/O, such as a store lookup.
// It runs in its own goroutine and is abandoned as soon as ctx is done,
// so cancelling the request never waits on it. The function should still honor ctx
// to release its resources.
type AsyncResolverFunc func(ctx context.Context, r *http.Request) (langcode.Code, error)

type resolved struct {
	err  error
	lang langcode.Code
}

// ResolveLanguage implements Resolver.
func (f AsyncResolverFunc) ResolveLanguage(ctx context.Context, r *http.Request) (langcode.Code, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	done := make(chan resolved, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- resolved{err: fmt.Errorf("%w: %v", ErrResolverPanic, p)}
			}
		}()
		lang, err := f(ctx, r)
		done <- resolved{lang: lang, err: err}
	}()

	select {
	case res := <-done:
		return res.lang, res.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Static returns a Resolver that always answers lang.
func Static(lang langcode.Code) Resolver {
	return ResolverFunc(func(*http.Request) (langcode.Code, error) {
		return lang, nil
	})
}
