package service

import (
	"context"
	"fmt"
	"time"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/store"
	"github.com/apereira/controle-gastos/models"
)

// expenseDateLayout is the ISO calendar-date form every expense date must
// parse as. time.Parse rejects out-of-range components (e.g. month 13 or
// February 30), so the check is a full calendar validation.
const expenseDateLayout = "2006-01-02"

// expenseService is the concrete implementation of ExpenseService. It owns
// the validation rules of the expense ledger and delegates persistence to an
// ExpenseRepository; user existence is pre-checked through a UserRepository
// with the storage-level foreign key as backstop.
type expenseService struct {
	expenseRepository store.ExpenseRepository
	userRepository    store.UserRepository

	logger *logger.Logger
}

// NewExpenseService constructs an [ExpenseService] wired to the given
// repositories.
func NewExpenseService(expenseRepository store.ExpenseRepository, userRepository store.UserRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// AddExpense validates and records a new expense.
//
// Validation order follows the API contract: the date must parse as a
// calendar date before user existence is checked, so a bad date yields
// ErrInvalidDate (400) even for an unknown user.
//
// Returns:
//   - ErrInvalidDataProvided if the description is empty.
//   - ErrInvalidDate if the date is not a calendar date in ISO form.
//   - store.ErrNoUserWasFound (wrapped) if the owning user does not exist.
func (s *expenseService) AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if expense.Descricao == "" {
		log.Error().Msg("empty expense description")
		return models.Expense{}, ErrInvalidDataProvided
	}

	if _, err := time.Parse(expenseDateLayout, expense.Data); err != nil {
		log.Err(err).Str("data", expense.Data).Msg("invalid expense date")
		return models.Expense{}, ErrInvalidDate
	}

	exists, err := s.userRepository.UserExists(ctx, expense.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", expense.UserID).Msg("user existence check failed")
		return models.Expense{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if !exists {
		return models.Expense{}, fmt.Errorf("expense owner: %w", store.ErrNoUserWasFound)
	}

	created, err := s.expenseRepository.CreateExpense(ctx, expense)
	if err != nil {
		log.Err(err).Int64("user_id", expense.UserID).Msg("expense creation ended with error")
		return models.Expense{}, fmt.Errorf("expense creation ended with error: %w", err)
	}

	return created, nil
}

// ListExpenses returns every expense of userID in storage order; a user
// with no expenses yields an empty slice.
func (s *expenseService) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	expenses, err := s.expenseRepository.ListExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses failed: %w", err)
	}

	return expenses, nil
}

// ListExpensesForMonth returns the expenses of userID dated inside
// (ano, mes) together with the arithmetic sum of their valores (0 when the
// month is empty). The month filter runs inside the storage query as a
// half-open range over the ISO date strings.
func (s *expenseService) ListExpensesForMonth(ctx context.Context, userID int64, ano, mes int) ([]models.Expense, float64, error) {
	if mes < 1 || mes > 12 {
		return nil, 0, ErrInvalidMonth
	}
	if ano < 1 {
		return nil, 0, ErrInvalidYear
	}

	from := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	expenses, err := s.expenseRepository.ListExpensesByDateRange(ctx, userID,
		from.Format(expenseDateLayout), to.Format(expenseDateLayout))
	if err != nil {
		return nil, 0, fmt.Errorf("listing month expenses failed: %w", err)
	}

	var total float64
	for _, expense := range expenses {
		total += expense.Valor
	}

	return expenses, total, nil
}

// UpdateExpense applies a partial update to a single expense: non-nil fields
// replace the stored values, nil fields keep them, and an update with no
// fields returns the row unchanged. An (id, user) mismatch surfaces as
// store.ErrExpenseNotFound exactly like a nonexistent row.
func (s *expenseService) UpdateExpense(ctx context.Context, update models.ExpenseUpdate) (models.Expense, error) {
	log := logger.FromContext(ctx)

	updated, err := s.expenseRepository.UpdateExpense(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.ID).Int64("user_id", update.UserID).Msg("expense update ended with error")
		return models.Expense{}, fmt.Errorf("expense update ended with error: %w", err)
	}

	return updated, nil
}

// RemoveExpense deletes the expense identified by (id, userID); a mismatch
// surfaces as store.ErrExpenseNotFound.
func (s *expenseService) RemoveExpense(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.expenseRepository.DeleteExpense(ctx, id, userID); err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", userID).Msg("expense removal ended with error")
		return fmt.Errorf("expense removal ended with error: %w", err)
	}

	return nil
}
