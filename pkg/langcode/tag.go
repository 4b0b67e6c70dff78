package langcode

import (
	"fmt"

	"golang.org/x/text/language"
)

// Tag converts c into a BCP 47 language tag.
// An invalid code yields language.Und.
func (c Code) Tag() language.Tag {
	if !c.IsValid() {
		return language.Und
	}
	tag, err := language.Parse(c.String())
	if err != nil {
		return language.Und
	}
	return tag
}

// FromTag returns the catalog code for the base language of tag.
// Region and script subtags are ignored, so "pt-BR" maps to Pt.
func FromTag(tag language.Tag) (Code, error) {
	base, conf := tag.Base()
	if conf == language.No {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCode, tag)
	}
	return Parse(base.String())
}
