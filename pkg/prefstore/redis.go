package prefstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

const defaultKeyPrefix = "langneg:pref:"

// RedisStore keeps each preference as a string key holding the language code.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix replaces the default "langneg:pref:" prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithTTL expires preferences that were not written for d. Zero keeps them forever.
func WithTTL(d time.Duration) RedisOption {
	return func(s *RedisStore) {
		if d >= 0 {
			s.ttl = d
		}
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(subject string) string {
	return s.prefix + subject
}

func (s *RedisStore) Get(ctx context.Context, subject string) (langcode.Code, error) {
	if subject == "" {
		return 0, ErrInvalidSubject
	}

	val, err := s.client.Get(ctx, s.key(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("prefstore: redis get: %w", err)
	}

	lang, err := langcode.Parse(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, val)
	}
	return lang, nil
}

func (s *RedisStore) Set(ctx context.Context, subject string, lang langcode.Code) error {
	if err := validate(subject, lang); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(subject), lang.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("prefstore: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return ErrInvalidSubject
	}
	if err := s.client.Del(ctx, s.key(subject)).Err(); err != nil {
		return fmt.Errorf("prefstore: redis del: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
