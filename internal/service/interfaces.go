package service

import (
	"context"

	"github.com/apereira/controle-gastos/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, identifier, senha string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

type ExpenseService interface {
	AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	ListExpensesForMonth(ctx context.Context, userID int64, ano, mes int) ([]models.Expense, float64, error)
	UpdateExpense(ctx context.Context, update models.ExpenseUpdate) (models.Expense, error)
	RemoveExpense(ctx context.Context, id, userID int64) error
}

type GoalService interface {
	UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, bool, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID int64, ano, mes int) (models.Goal, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
