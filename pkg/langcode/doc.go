// Package langcode is the closed catalog of ISO 639-1 language codes used by the
// negotiation engine.
//
// Every Code carries its lowercase string form, an English display name and the
// language's native name:
//
//	c, err := langcode.Parse("de")
//	c.EnglishName() // "German"
//	c.NativeName()  // "Deutsch"
//
// Codes round-trip through Parse and String, implement encoding.TextMarshaler for
// use in configuration files, and convert to golang.org/x/text/language tags.
package langcode
