package langcode

import "errors"

var (
	ErrUnknownCode = errors.New("langcode: unknown language code")
	ErrInvalidCode = errors.New("langcode: invalid code value")
)
