package negotiate

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// DefaultAcceptLanguage is used when a request carries no Accept-Language header.
const DefaultAcceptLanguage = "en"

// maxAcceptLanguageLength bounds the work done on oversized headers.
const maxAcceptLanguageLength = 4096

// Primary subtag in group 1, quality digits in group 2. Region subtags are matched and dropped.
var acceptLanguageToken = regexp.MustCompile(`(?:^|,| )(\w{1,3})(?:-\w{1,3})? ?(?:;q=([\d\.]+))?`)

// ParseAcceptLanguage yields (language, client quality) pairs in header order.
//
// A token without ";q=" or with unparsable digits gets quality 1.0.
// Tokens whose primary subtag is not a known code are skipped, so a header
// made of garbage yields an empty sequence rather than an error.
//
// Example:
//
//	for lang, q := range negotiate.ParseAcceptLanguage("en-US, de;q=0.2") {
//		// en 1.0, then de 0.2
//	}
func ParseAcceptLanguage(header string) iter.Seq2[langcode.Code, float64] {
	if len(header) > maxAcceptLanguageLength {
		header = truncateAcceptLanguage(header)
	}

	return func(yield func(langcode.Code, float64) bool) {
		for _, m := range acceptLanguageToken.FindAllStringSubmatch(header, -1) {
			lang, err := langcode.Parse(m[1])
			if err != nil {
				continue
			}
			if !yield(lang, parseQuality(m[2])) {
				return
			}
		}
	}
}

// truncateAcceptLanguage cuts an oversized header at the last token boundary
// within the limit, so no token is parsed from a partial value.
// A header with no boundary in range is dropped entirely.
func truncateAcceptLanguage(header string) string {
	idx := strings.LastIndexByte(header[:maxAcceptLanguageLength+1], ',')
	if idx < 0 {
		return ""
	}
	return header[:idx]
}

func parseQuality(s string) float64 {
	if s == "" {
		return 1.0
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1.0
	}
	return q
}
