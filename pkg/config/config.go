package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is wrapped around every env parsing failure.
var ErrParse = errors.New("config: failed to parse environment")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (a value of that type)
	mu         sync.Mutex
)

// EnvFiles are loaded once, before the first Load. Missing files are skipped and
// variables already set in the process environment are never overridden.
var EnvFiles = []string{".env"}

// Load fills dst from the environment using env and envDefault struct tags.
// The first successful load of each type is cached; later calls copy the cached value.
func Load[T any](dst *T) error {
	typ := reflect.TypeFor[T]()
	if v, ok := cache.Load(typ); ok {
		*dst = v.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok := cache.Load(typ); ok {
		*dst = v.(T)
		return nil
	}

	dotenvOnce.Do(loadEnvFiles)

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, typ, err)
	}
	cache.Store(typ, cfg)
	*dst = cfg
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](dst *T) {
	if err := Load(dst); err != nil {
		panic(err)
	}
}

func loadEnvFiles() {
	for _, name := range EnvFiles {
		// Missing files are normal outside development.
		// A malformed file surfaces as missing variables in env.Parse.
		_ = godotenv.Load(name)
	}
}

// reset drops cached values. Tests only.
func reset() {
	cache.Clear()
}
