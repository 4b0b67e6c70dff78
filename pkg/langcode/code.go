package langcode

import (
	"fmt"
	"sort"
)

// Code identifies a language from the closed ISO 639-1 catalog.
// The zero value is not a valid code; it marks an unset language.
// Codes are ordered by their position in the catalog.
type Code uint8

var byString = func() map[string]Code {
	m := make(map[string]Code, Count)
	for i, e := range catalog {
		m[e.code] = Code(i + 1)
	}
	return m
}()

// Parse returns the Code for its lowercase two-letter form.
func Parse(s string) (Code, error) {
	if c, ok := byString[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCode, s)
}

// MustParse is like Parse but panics on an unknown code.
// Intended for package-level variables and tests.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid reports whether c belongs to the catalog.
func (c Code) IsValid() bool {
	return c > 0 && int(c) <= Count
}

// String returns the lowercase code, or an empty string for an invalid Code.
func (c Code) String() string {
	if !c.IsValid() {
		return ""
	}
	return catalog[c-1].code
}

// EnglishName returns the English display name.
func (c Code) EnglishName() string {
	if !c.IsValid() {
		return ""
	}
	return catalog[c-1].english
}

// NativeName returns the language's name for itself.
func (c Code) NativeName() string {
	if !c.IsValid() {
		return ""
	}
	return catalog[c-1].native
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCode
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It lets codes appear in JSON, YAML and environment configuration.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// All returns every known code in catalog order.
func All() []Code {
	codes := make([]Code, Count)
	for i := range codes {
		codes[i] = Code(i + 1)
	}
	return codes
}

// Strings returns every known code string sorted alphabetically.
func Strings() []string {
	out := make([]string, 0, Count)
	for _, e := range catalog {
		out = append(out, e.code)
	}
	sort.Strings(out)
	return out
}
