package negotiate_test

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

type pref struct {
	lang langcode.Code
	q    float64
}

func collect(seq iter.Seq2[langcode.Code, float64]) []pref {
	var out []pref
	for lang, q := range seq {
		out = append(out, pref{lang: lang, q: q})
	}
	return out
}

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   []pref
	}{
		{
			name:   "single language",
			header: "en",
			want:   []pref{{langcode.En, 1.0}},
		},
		{
			name:   "region subtag is dropped",
			header: "en-US, de;q=0.2",
			want:   []pref{{langcode.En, 1.0}, {langcode.De, 0.2}},
		},
		{
			name:   "no space after comma",
			header: "de,es;q=0.5",
			want:   []pref{{langcode.De, 1.0}, {langcode.Es, 0.5}},
		},
		{
			name:   "browser style header",
			header: "fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7",
			want: []pref{
				{langcode.Fr, 1.0},
				{langcode.Fr, 0.9},
				{langcode.En, 0.8},
				{langcode.De, 0.7},
			},
		},
		{
			name:   "unknown tokens are skipped",
			header: "es,invalid",
			want:   []pref{{langcode.Es, 1.0}},
		},
		{
			name:   "explicit zero quality",
			header: "de;q=0",
			want:   []pref{{langcode.De, 0}},
		},
		{
			name:   "unparsable quality defaults to one",
			header: "pt;q=1.2.3",
			want:   []pref{{langcode.Pt, 1.0}},
		},
		{
			name:   "garbage yields nothing",
			header: "not a valid request",
		},
		{
			name:   "unknown code with quality",
			header: "xx;q=0.2",
		},
		{
			name:   "empty header",
			header: "",
		},
		{
			name:   "wildcard is not a code",
			header: "*",
		},
		{
			name:   "uppercase codes are not matched",
			header: "EN, de",
			want:   []pref{{langcode.De, 1.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, collect(negotiate.ParseAcceptLanguage(tt.header)))
		})
	}
}

func TestParseAcceptLanguageIsRepeatable(t *testing.T) {
	t.Parallel()

	seq := negotiate.ParseAcceptLanguage("en-US, de;q=0.2, es;q=0.7")
	first := collect(seq)
	require.Len(t, first, 3)
	require.Equal(t, first, collect(seq))
	require.Equal(t, first, collect(negotiate.ParseAcceptLanguage("en-US, de;q=0.2, es;q=0.7")))
}

func TestParseAcceptLanguageStopsEarly(t *testing.T) {
	t.Parallel()

	var seen []langcode.Code
	for lang := range negotiate.ParseAcceptLanguage("en, de, es, fr") {
		seen = append(seen, lang)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []langcode.Code{langcode.En, langcode.De}, seen)
}

func TestParseAcceptLanguageOversizedHeader(t *testing.T) {
	t.Parallel()

	header := "de" + strings.Repeat(",xx", 3000) + ",es"
	prefs := collect(negotiate.ParseAcceptLanguage(header))
	require.Equal(t, []pref{{langcode.De, 1.0}}, prefs)
}

func TestParseAcceptLanguageTruncatesAtTokenBoundary(t *testing.T) {
	t.Parallel()

	// ",de;q=0.5" starts at byte 4089 and straddles the 4096 byte limit.
	prefix := "en;q=1" + strings.Repeat(",xx", 1361)
	require.Len(t, prefix, 4089)

	prefs := collect(negotiate.ParseAcceptLanguage(prefix + ",de;q=0.5"))
	require.Equal(t, []pref{{langcode.En, 1.0}}, prefs)

	t.Run("single oversized token yields nothing", func(t *testing.T) {
		t.Parallel()

		prefs := collect(negotiate.ParseAcceptLanguage("de" + strings.Repeat("x", 5000)))
		require.Empty(t, prefs)
	})
}
