package negotiate

import (
	"iter"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Decide picks the best language from client preferences and server weights.
//
// Candidates with a 0.0 or NaN server weight are discarded before any comparison.
// The first remaining candidate becomes the incumbent. A later candidate replaces it when
//
//	(s1 - s2) / s1 < (q2 - q1) / q2
//
// where s is the server weight, q the client quality, 1 the incumbent and 2 the candidate.
// Equal trade-offs keep the incumbent. Division by a client quality of 0 follows IEEE
// rules; a NaN comparison is false, so it never replaces the incumbent.
//
// Returns ErrNotAcceptable when no candidate survives.
func Decide(prefs iter.Seq2[langcode.Code, float64], w *Weights) (langcode.Code, error) {
	var (
		best  langcode.Code
		bestQ float64
		found bool
	)

	for lang, q := range prefs {
		s2 := w.Get(lang)
		if !supported(s2) {
			continue
		}
		if !found {
			best, bestQ, found = lang, q, true
			continue
		}

		s1 := w.Get(best)
		if (s1-s2)/s1 < (q-bestQ)/q {
			best, bestQ = lang, q
		}
	}

	if !found {
		return 0, ErrNotAcceptable
	}
	return best, nil
}

// DecideHeader parses an Accept-Language value and decides against w.
func DecideHeader(header string, w *Weights) (langcode.Code, error) {
	return Decide(ParseAcceptLanguage(header), w)
}
