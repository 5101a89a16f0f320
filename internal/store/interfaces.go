package store

import (
	"context"

	"github.com/apereira/controle-gastos/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
}

type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	ListExpensesByDateRange(ctx context.Context, userID int64, from, to string) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, update models.ExpenseUpdate) (models.Expense, error)
	DeleteExpense(ctx context.Context, id, userID int64) error
}

type GoalRepository interface {
	UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, bool, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID int64, ano, mes int) (models.Goal, error)
}

// ConstraintClassifier recognises driver-specific constraint-violation errors
// so that repositories can translate them into domain sentinels without
// depending on a particular database driver.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err was caused by a UNIQUE
	// constraint violation.
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a FOREIGN KEY
	// constraint violation.
	IsForeignKeyViolation(err error) bool
}
