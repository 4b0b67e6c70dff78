package prefstore

import (
	"context"
	"errors"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

var (
	ErrNotFound       = errors.New("prefstore: preference not found")
	ErrInvalidSubject = errors.New("prefstore: subject cannot be empty")
	ErrInvalidCode    = errors.New("prefstore: invalid language code")
	ErrCorrupt        = errors.New("prefstore: stored value is not a language code")
)

// Store persists one preferred language per subject, e.g. a user or account ID.
type Store interface {
	// Get returns ErrNotFound when the subject has no preference.
	Get(ctx context.Context, subject string) (langcode.Code, error)
	Set(ctx context.Context, subject string, lang langcode.Code) error
	// Delete is a no-op for unknown subjects.
	Delete(ctx context.Context, subject string) error
}

func validate(subject string, lang langcode.Code) error {
	if subject == "" {
		return ErrInvalidSubject
	}
	if !lang.IsValid() {
		return ErrInvalidCode
	}
	return nil
}
