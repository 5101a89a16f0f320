// Package service holds the business rules of the bookkeeping backend:
// registration and login, expense validation and aggregation, and goal
// upsert semantics. Services validate already-typed input and translate
// repository results into domain errors; they never retry and never touch
// the transport layer.
package service

import (
	"github.com/apereira/controle-gastos/internal/config"
	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/store"
)

type Services struct {
	AuthService    AuthService
	ExpenseService ExpenseService
	GoalService    GoalService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ExpenseService: NewExpenseService(storages.ExpenseRepository, storages.UserRepository, logger),
		GoalService:    NewGoalService(storages.GoalRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
