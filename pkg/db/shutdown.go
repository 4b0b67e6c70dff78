package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shutdown closes the pool. It fits langneg.ShutdownHook.
func Shutdown(pool *pgxpool.Pool) func(context.Context) error {
	return func(context.Context) error {
		pool.Close()
		return nil
	}
}
