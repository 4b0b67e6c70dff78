package negotiate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Source names the resolution step that produced a language.
type Source uint8

const (
	SourceCustom Source = iota + 1
	SourceURL
	SourceHeader
	SourceWildcard
)

func (s Source) String() string {
	switch s {
	case SourceCustom:
		return "custom"
	case SourceURL:
		return "url"
	case SourceHeader:
		return "header"
	case SourceWildcard:
		return "wildcard"
	default:
		return "none"
	}
}

// Result is a resolved language and the step that produced it.
type Result struct {
	Lang   langcode.Code
	Source Source
}

// Resolve returns the language for r. See ResolveResult.
func (c *Config) Resolve(ctx context.Context, r *http.Request) (langcode.Code, error) {
	res, err := c.ResolveResult(ctx, r)
	return res.Lang, err
}

// ResolveResult tries the custom resolver, the URL segment, the Accept-Language header
// and the wildcard in that order and returns the first success.
//
// Steps that are not configured are skipped and never contribute an error.
// When every step fails, the error of the last configured step is returned,
// or of the first one with ReportFirstFailure. A done ctx aborts the chain with ctx.Err().
func (c *Config) ResolveResult(ctx context.Context, r *http.Request) (Result, error) {
	var failure error
	fail := func(err error) {
		if failure == nil || !c.firstFailure {
			failure = err
		}
	}

	if c.custom != nil {
		lang, err := c.custom.ResolveLanguage(ctx, r)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		switch {
		case err != nil:
			if _, ok := AsError(err); !ok {
				err = fmt.Errorf("negotiate: custom resolver: %w", err)
			}
			fail(err)
		case !lang.IsValid():
			fail(fmt.Errorf("%w: custom resolver returned %d", ErrInvalidCode, lang))
		default:
			return Result{Lang: lang, Source: SourceCustom}, nil
		}
	}

	if c.hasURL {
		lang, err := FromPath(r.URL.Path, c.urlPosition)
		if err == nil {
			return Result{Lang: lang, Source: SourceURL}, nil
		}
		fail(err)
	}

	lang, err := DecideHeader(acceptLanguage(r), &c.weights)
	if err == nil {
		return Result{Lang: lang, Source: SourceHeader}, nil
	}
	fail(err)

	if c.wildcard.IsValid() {
		return Result{Lang: c.wildcard, Source: SourceWildcard}, nil
	}

	return Result{}, failure
}

// acceptLanguage returns the first Accept-Language value, DefaultAcceptLanguage if absent.
// A present but empty header stays empty.
func acceptLanguage(r *http.Request) string {
	if values := r.Header.Values("Accept-Language"); len(values) > 0 {
		return values[0]
	}
	return DefaultAcceptLanguage
}
