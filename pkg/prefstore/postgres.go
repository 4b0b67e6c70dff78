package prefstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/langneg/pkg/db"
	"github.com/dmitrymomot/langneg/pkg/langcode"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates or upgrades the language_preferences table.
// Versions are tracked in table (db.Config.MigrationsTable).
func Migrate(ctx context.Context, pool *pgxpool.Pool, table string, log *slog.Logger) error {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	return db.Migrate(ctx, pool, sub, table, log)
}

// PostgresStore keeps preferences in the language_preferences table created by Migrate.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const (
	selectPreference = `SELECT language FROM language_preferences WHERE subject = $1`
	upsertPreference = `INSERT INTO language_preferences (subject, language, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (subject) DO UPDATE SET language = EXCLUDED.language, updated_at = EXCLUDED.updated_at`
	deletePreference = `DELETE FROM language_preferences WHERE subject = $1`
)

func (s *PostgresStore) Get(ctx context.Context, subject string) (langcode.Code, error) {
	if subject == "" {
		return 0, ErrInvalidSubject
	}

	var val string
	err := s.pool.QueryRow(ctx, selectPreference, subject).Scan(&val)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("prefstore: postgres select: %w", err)
	}

	lang, err := langcode.Parse(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, val)
	}
	return lang, nil
}

func (s *PostgresStore) Set(ctx context.Context, subject string, lang langcode.Code) error {
	if err := validate(subject, lang); err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, upsertPreference, subject, lang.String()); err != nil {
		return fmt.Errorf("prefstore: postgres upsert: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return ErrInvalidSubject
	}
	if _, err := s.pool.Exec(ctx, deletePreference, subject); err != nil {
		return fmt.Errorf("prefstore: postgres delete: %w", err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
