package internal

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// DefaultLanguage is reported for requests that carry no negotiation state.
const DefaultLanguage = langcode.En

// LanguageResolver runs language negotiation for a request.
// *negotiate.Config implements it.
type LanguageResolver interface {
	ResolveResult(ctx context.Context, r *http.Request) (negotiate.Result, error)
}

// languageKey is the context key of the request's languageState.
type languageKey struct{}

// languageState is created once per request and computes the negotiation at most once,
// even when handlers ask for the language from several goroutines.
type languageState struct {
	resolver LanguageResolver
	err      error
	result   negotiate.Result
	once     sync.Once
	done     atomic.Bool
}

func (s *languageState) resolve(ctx context.Context, r *http.Request) (negotiate.Result, error) {
	s.once.Do(func() {
		s.result, s.err = s.resolver.ResolveResult(ctx, r)
		s.done.Store(true)
	})
	return s.result, s.err
}

// AttachLanguage installs lazy negotiation for the request behind c.
// Contexts created later for the same request share the outcome.
// If the request already carries negotiation state it is kept.
func AttachLanguage(c Context, resolver LanguageResolver) {
	if _, ok := c.Get(languageKey{}).(*languageState); ok {
		return
	}
	c.Set(languageKey{}, &languageState{resolver: resolver})
}

// ResolveLanguage returns the memoized negotiation result of the request behind c.
// The second return value is false when no negotiation state is attached.
func ResolveLanguage(c Context) (negotiate.Result, bool, error) {
	state, ok := c.Get(languageKey{}).(*languageState)
	if !ok {
		return negotiate.Result{}, false, nil
	}
	res, err := state.resolve(c.Context(), c.Request())
	return res, true, err
}

// PeekLanguage returns the negotiated language stored in ctx without triggering negotiation.
// It reports false while negotiation has not run or when it failed.
func PeekLanguage(ctx context.Context) (langcode.Code, bool) {
	res, ok, err := PeekLanguageResult(ctx)
	if !ok || err != nil {
		return 0, false
	}
	return res.Lang, true
}

// PeekLanguageResult is PeekLanguage with the full outcome, failure included.
// The second return value is false while negotiation has not run.
func PeekLanguageResult(ctx context.Context) (negotiate.Result, bool, error) {
	state, ok := ctx.Value(languageKey{}).(*languageState)
	if !ok || !state.done.Load() {
		return negotiate.Result{}, false, nil
	}
	return state.result, true, state.err
}
