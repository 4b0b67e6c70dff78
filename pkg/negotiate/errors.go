package negotiate

import "errors"

// Error is a negotiation failure. It carries no payload beyond its kind,
// so callers compare with errors.Is(err, negotiate.ErrNotFound).
type Error uint8

const (
	// ErrBadRequest is reserved for header forms a stricter grammar would reject.
	// The built-in parser never returns it.
	ErrBadRequest Error = iota + 1
	// ErrNotAcceptable means no candidate met the server's support weights.
	ErrNotAcceptable
	// ErrNotFound means the designated URL segment is missing or not a known code.
	ErrNotFound
)

func (e Error) Error() string {
	switch e {
	case ErrBadRequest:
		return "negotiate: bad request"
	case ErrNotAcceptable:
		return "negotiate: not acceptable"
	case ErrNotFound:
		return "negotiate: not found"
	default:
		return "negotiate: unknown failure"
	}
}

// AsError extracts the negotiation failure kind from err, if any.
func AsError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return 0, false
}

var (
	ErrInvalidCode       = errors.New("negotiate: invalid language code")
	ErrInvalidWeight     = errors.New("negotiate: invalid support weight")
	ErrNilResolver       = errors.New("negotiate: resolver cannot be nil")
	ErrUnsupportedFormat = errors.New("negotiate: unsupported weights format")
	ErrResolverPanic     = errors.New("negotiate: resolver panicked")
)
