package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/migrations"
)

// DB is the single database handle shared by all repositories. It is opened
// once at process start, injected into every repository, and closed at
// shutdown; database/sql scopes connection acquisition and release to each
// operation.
type DB struct {
	*sql.DB
	constraints ConstraintClassifier
	dialect     string
	logger      *logger.Logger
}

// NewConnect opens the database selected by the DSN: a PostgreSQL URI goes
// through the pgx driver, anything else is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate brings the schema up to date for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
