// Package store implements the persistence layer: a single shared database
// handle (SQLite file by default, PostgreSQL by DSN) and one repository per
// table. Repositories translate driver errors into domain sentinels so the
// layers above never inspect driver types.
package store

import (
	"context"
	"fmt"

	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/logger"
)

// Storages aggregates every repository together with the database handle
// they share.
type Storages struct {
	DB *DB

	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository
	GoalRepository    GoalRepository
}

// NewStorages opens the database, brings the schema up to date, and wires
// all repositories onto the shared handle. A schema or connection failure is
// fatal at startup and is returned to the caller.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		ExpenseRepository: NewExpenseRepository(db, log),
		GoalRepository:    NewGoalRepository(db, log),
	}, nil
}

// Close releases the shared database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
