package negotiate

import (
	"strings"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// SplitPath returns the non-empty segments of a URL path.
// "/" and "" have no segments; "/a//b/" has two.
func SplitPath(path string) []string {
	var segments []string
	for s := range strings.SplitSeq(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// FromSegments parses the segment at position as a language code.
// Non-negative positions count from the start; -1 is the last segment, -2 the one before.
// A missing segment or one that is not a known code yields ErrNotFound.
func FromSegments(segments []string, position int) (langcode.Code, error) {
	idx := position
	if position < 0 {
		idx = len(segments) + position
	}
	if idx < 0 || idx >= len(segments) {
		return 0, ErrNotFound
	}

	lang, err := langcode.Parse(segments[idx])
	if err != nil {
		return 0, ErrNotFound
	}
	return lang, nil
}

// FromPath is FromSegments over SplitPath(path).
func FromPath(path string, position int) (langcode.Code, error) {
	return FromSegments(SplitPath(path), position)
}
