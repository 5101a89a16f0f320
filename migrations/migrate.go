// Package migrations owns the database schema. The three tables (users,
// despesas, metas) are created through embedded goose migrations, one SQL
// directory per supported dialect, and Migrate is safe to run on every
// process start.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialectDirs maps a goose dialect to its migration directory inside the
// embedded filesystem.
var dialectDirs = map[string]string{
	"sqlite3": "sqlite",
	"pgx":     "postgres",
}

// Migrate applies all pending migrations for the given dialect.
// Already-applied migrations are skipped, so repeated invocations are
// idempotent and never touch existing data.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
