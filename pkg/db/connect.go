package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func (c Config) poolConfig() (*pgxpool.Config, error) {
	if c.URL == "" {
		return nil, ErrEmptyConnectionURL
	}
	pc, err := pgxpool.ParseConfig(c.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	if c.MaxConns > 0 {
		pc.MaxConns = c.MaxConns
	}
	pc.MinConns = c.MinConns
	if c.HealthCheckPeriod > 0 {
		pc.HealthCheckPeriod = c.HealthCheckPeriod
	}
	if c.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = c.MaxConnIdleTime
	}
	if c.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = c.MaxConnLifetime
	}
	return pc, nil
}

// Connect opens a pool and pings it, retrying with a linear backoff.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (*pgxpool.Pool, error) {
	pc, err := cfg.poolConfig()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, pc)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		log.WarnContext(ctx, "postgres connection failed",
			slog.Int("attempt", i+1),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(time.Duration(i+1) * cfg.RetryInterval)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
		case <-t.C:
		}
	}

	return nil, errors.Join(ErrFailedToOpenDBConnection, lastErr)
}
