package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/models"
)

// expenseRepository is the SQL-backed implementation of [ExpenseRepository].
// It owns all reads and writes against the "despesas" table.
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExpense inserts a new expense row and returns it with the
// server-assigned ID.
//
// Error handling:
//   - foreign-key violation on user_id → [ErrNoUserWasFound] (the service
//     pre-checks user existence; the constraint is the storage-level backstop).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExpense, expense.UserID, expense.Descricao, expense.Valor, expense.Data)

	var created models.Expense
	if err := row.Scan(&created.ID, &created.UserID, &created.Descricao, &created.Valor, &created.Data); err != nil {
		if r.db.constraints.IsForeignKeyViolation(err) {
			log.Err(err).Str("func", "*expenseRepository.CreateExpense").Int64("user_id", expense.UserID).Msg("owner does not exist")
			return models.Expense{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error: inserting expense failed")
		return models.Expense{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListExpenses returns every expense owned by userID in storage order.
// A user with no expenses yields an empty slice, not an error.
func (r *expenseRepository) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	return r.queryExpenses(ctx, listExpenses, userID)
}

// ListExpensesByDateRange returns the expenses of userID whose data falls in
// the half-open interval [from, to). Because dates are stored as ISO
// "YYYY-MM-DD" strings, lexicographic comparison in SQL matches calendar
// order and the (user_id, data) index serves the filter.
func (r *expenseRepository) ListExpensesByDateRange(ctx context.Context, userID int64, from, to string) ([]models.Expense, error) {
	return r.queryExpenses(ctx, listExpensesByDateRange, userID, from, to)
}

func (r *expenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.queryExpenses").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.Descricao, &expense.Valor, &expense.Data); err != nil {
			log.Err(err).Str("func", "*expenseRepository.queryExpenses").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return expenses, nil
}

// UpdateExpense applies a partial update to the expense identified by
// (update.ID, update.UserID) and returns the stored row afterwards. Nil
// fields keep their prior value; an update with no fields at all degrades to
// a plain fetch, leaving the row untouched.
//
// A missing row — including an existing expense owned by a different user —
// is reported as [ErrExpenseNotFound].
func (r *expenseRepository) UpdateExpense(ctx context.Context, update models.ExpenseUpdate) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if !update.Empty() {
		query, args, err := buildUpdateExpenseQuery(update)
		if err != nil {
			log.Err(err).Str("func", "*expenseRepository.UpdateExpense").Msg("error building update query")
			return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*expenseRepository.UpdateExpense").Msg("error executing update")
			return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return models.Expense{}, ErrExpenseNotFound
		}
	}

	return r.getExpenseByOwner(ctx, update.ID, update.UserID)
}

func (r *expenseRepository) getExpenseByOwner(ctx context.Context, id, userID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	var expense models.Expense
	row := r.db.QueryRowContext(ctx, getExpenseByOwner, id, userID)
	if err := row.Scan(&expense.ID, &expense.Descricao, &expense.Valor, &expense.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}

		log.Err(err).Str("func", "*expenseRepository.getExpenseByOwner").Msg("error: scanning error")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// DeleteExpense removes the expense identified by (id, userID).
// A missing row — or one owned by a different user — is reported as
// [ErrExpenseNotFound], never as a silent no-op.
func (r *expenseRepository) DeleteExpense(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpense, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.DeleteExpense").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
