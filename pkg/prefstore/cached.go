package prefstore

import (
	"container/list"
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// CachedStore is a read-through cache in front of another Store.
// Hits are kept for the TTL; misses are not cached. Concurrent lookups of
// the same subject share one backend call.
type CachedStore struct {
	store      Store
	items      map[string]*list.Element
	lru        *list.List
	group      singleflight.Group
	now        func() time.Time
	ttl        time.Duration
	maxEntries int
	gen        uint64 // bumped by every write; a stale load is not cached
	mu         sync.Mutex
}

type cacheEntry struct {
	expiresAt time.Time
	subject   string
	lang      langcode.Code
}

// CacheOption configures Cached.
type CacheOption func(*CachedStore)

// WithMaxEntries bounds the cache, evicting the least recently used subject. Zero is unbounded.
func WithMaxEntries(n int) CacheOption {
	return func(c *CachedStore) {
		if n >= 0 {
			c.maxEntries = n
		}
	}
}

// Cached wraps store with a cache whose entries live for ttl.
func Cached(store Store, ttl time.Duration, opts ...CacheOption) *CachedStore {
	c := &CachedStore{
		store: store,
		items: make(map[string]*list.Element),
		lru:   list.New(),
		now:   time.Now,
		ttl:   ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CachedStore) Get(ctx context.Context, subject string) (langcode.Code, error) {
	if subject == "" {
		return 0, ErrInvalidSubject
	}
	if lang, ok := c.lookup(subject); ok {
		return lang, nil
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	// The shared call must outlive any single caller's cancellation.
	v, err, _ := c.group.Do(subject, func() (any, error) {
		lang, err := c.store.Get(context.WithoutCancel(ctx), subject)
		if err != nil {
			return nil, err
		}
		c.put(subject, lang, gen)
		return lang, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(langcode.Code), nil
}

func (c *CachedStore) Set(ctx context.Context, subject string, lang langcode.Code) error {
	if err := c.store.Set(ctx, subject, lang); err != nil {
		return err
	}
	c.invalidate(subject)
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, subject string) error {
	if err := c.store.Delete(ctx, subject); err != nil {
		return err
	}
	c.invalidate(subject)
	return nil
}

// Len returns the number of cached entries, expired ones included.
func (c *CachedStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *CachedStore) lookup(subject string) (langcode.Code, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[subject]
	if !ok {
		return 0, false
	}
	e := elem.Value.(*cacheEntry)
	if !c.now().Before(e.expiresAt) {
		c.remove(elem)
		return 0, false
	}
	c.lru.MoveToFront(elem)
	return e.lang, true
}

func (c *CachedStore) put(subject string, lang langcode.Code, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.ttl <= 0 {
		return
	}

	expiresAt := c.now().Add(c.ttl)
	if elem, ok := c.items[subject]; ok {
		e := elem.Value.(*cacheEntry)
		e.lang, e.expiresAt = lang, expiresAt
		c.lru.MoveToFront(elem)
		return
	}

	if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		if oldest := c.lru.Back(); oldest != nil {
			c.remove(oldest)
		}
	}
	c.items[subject] = c.lru.PushFront(&cacheEntry{subject: subject, lang: lang, expiresAt: expiresAt})
}

func (c *CachedStore) invalidate(subject string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if elem, ok := c.items[subject]; ok {
		c.remove(elem)
	}
	c.group.Forget(subject)
}

// remove expects c.mu to be held.
func (c *CachedStore) remove(elem *list.Element) {
	c.lru.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).subject)
}

var _ Store = (*CachedStore)(nil)
