package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-sqlite3"

	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/logger"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	// _foreign_keys=on makes SQLite actually enforce the declared
	// despesas.user_id and metas.user_id references.
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:          conn,
		logger:      log,
		dialect:     "sqlite3",
		constraints: NewSQLiteConstraintClassifier(),
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for SQLite.
// It inspects the extended result code carried by sqlite3.Error.
type SQLiteConstraintClassifier struct{}

// NewSQLiteConstraintClassifier constructs a [SQLiteConstraintClassifier]
// ready for use.
func NewSQLiteConstraintClassifier() *SQLiteConstraintClassifier {
	return &SQLiteConstraintClassifier{}
}

// IsUniqueViolation implements [ConstraintClassifier].
func (c *SQLiteConstraintClassifier) IsUniqueViolation(err error) bool {
	return sqliteExtendedCode(err) == sqlite3.ErrConstraintUnique
}

// IsForeignKeyViolation implements [ConstraintClassifier].
func (c *SQLiteConstraintClassifier) IsForeignKeyViolation(err error) bool {
	return sqliteExtendedCode(err) == sqlite3.ErrConstraintForeignKey
}

func sqliteExtendedCode(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode
	}

	return 0
}
