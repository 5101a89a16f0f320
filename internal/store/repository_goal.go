package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/models"
)

// goalRepository is the SQL-backed implementation of [GoalRepository].
// It owns all reads and writes against the "metas" table.
type goalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGoalRepository constructs a [GoalRepository] backed by the provided
// database connection and logger.
func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("creating goal repository")
	return &goalRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertGoal writes the monthly target for (goal.UserID, goal.Ano, goal.Mes).
// An existing row has its valor overwritten (created=false); otherwise a new
// row is inserted (created=true).
//
// The check-then-write pair runs inside a single transaction so concurrent
// upserts for the same triple cannot produce duplicates; the UNIQUE
// constraint on (user_id, ano, mes) is the storage-level backstop.
func (r *goalRepository) UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.UpsertGoal").Msg("error beginning transaction")
		return models.Goal{}, false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created := false

	var existingID int64
	row := tx.QueryRowContext(ctx, getGoalID, goal.UserID, goal.Ano, goal.Mes)
	err = row.Scan(&existingID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		insertRow := tx.QueryRowContext(ctx, createGoal, goal.UserID, goal.Ano, goal.Mes, goal.Valor)
		if err := insertRow.Scan(&goal.ID); err != nil {
			log.Err(err).Str("func", "*goalRepository.UpsertGoal").Msg("error inserting goal")
			return models.Goal{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		created = true

	case err != nil:
		log.Err(err).Str("func", "*goalRepository.UpsertGoal").Msg("error: scanning error")
		return models.Goal{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)

	default:
		if _, err := tx.ExecContext(ctx, updateGoalValor, goal.Valor, existingID); err != nil {
			log.Err(err).Str("func", "*goalRepository.UpsertGoal").Msg("error updating goal")
			return models.Goal{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		goal.ID = existingID
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*goalRepository.UpsertGoal").Msg("error committing transaction")
		return models.Goal{}, false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return goal, created, nil
}

// ListGoals returns every goal of userID as (ano, mes, valor) rows.
// A user with no goals yields an empty slice, not an error.
func (r *goalRepository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listGoals, userID)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.ListGoals").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		goal := models.Goal{UserID: userID}
		if err := rows.Scan(&goal.Ano, &goal.Mes, &goal.Valor); err != nil {
			log.Err(err).Str("func", "*goalRepository.ListGoals").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, nil
}

// GetGoal retrieves the goal for the exact (userID, ano, mes) triple.
// A miss is reported as [ErrGoalNotFound].
func (r *goalRepository) GetGoal(ctx context.Context, userID int64, ano, mes int) (models.Goal, error) {
	log := logger.FromContext(ctx)

	var goal models.Goal
	row := r.db.QueryRowContext(ctx, getGoal, userID, ano, mes)
	if err := row.Scan(&goal.ID, &goal.UserID, &goal.Ano, &goal.Mes, &goal.Valor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrGoalNotFound
		}

		log.Err(err).Str("func", "*goalRepository.GetGoal").Msg("error: scanning error")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return goal, nil
}
