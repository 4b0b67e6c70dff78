package prefstore

import (
	"context"
	"sync"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// MemoryStore keeps preferences in process memory. Contents are lost on restart.
type MemoryStore struct {
	prefs map[string]langcode.Code
	mu    sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]langcode.Code)}
}

func (m *MemoryStore) Get(_ context.Context, subject string) (langcode.Code, error) {
	if subject == "" {
		return 0, ErrInvalidSubject
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	lang, ok := m.prefs[subject]
	if !ok {
		return 0, ErrNotFound
	}
	return lang, nil
}

func (m *MemoryStore) Set(_ context.Context, subject string, lang langcode.Code) error {
	if err := validate(subject, lang); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[subject] = lang
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, subject string) error {
	if subject == "" {
		return ErrInvalidSubject
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prefs, subject)
	return nil
}

// Len returns the number of stored preferences.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.prefs)
}

var _ Store = (*MemoryStore)(nil)
