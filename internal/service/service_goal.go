package service

import (
	"context"
	"fmt"

	"github.com/apereira/controle-gastos/internal/logger"
	"github.com/apereira/controle-gastos/internal/store"
	"github.com/apereira/controle-gastos/models"
)

// goalService is the concrete implementation of GoalService. It validates
// the (ano, mes) coordinates of a monthly target and delegates the
// upsert/lookup semantics to a GoalRepository.
type goalService struct {
	goalRepository store.GoalRepository

	logger *logger.Logger
}

// NewGoalService constructs a [GoalService] wired to the given repository.
func NewGoalService(goalRepository store.GoalRepository, logger *logger.Logger) GoalService {
	return &goalService{
		goalRepository: goalRepository,
		logger:         logger,
	}
}

// UpsertGoal writes the monthly spending target for the goal's
// (user, ano, mes) triple. The second return value reports whether a new
// row was created (true) or an existing one overwritten (false).
//
// Mes is validated to 1..12 and ano to a positive number before any
// storage work.
func (s *goalService) UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, bool, error) {
	log := logger.FromContext(ctx)

	if goal.Mes < 1 || goal.Mes > 12 {
		return models.Goal{}, false, ErrInvalidMonth
	}
	if goal.Ano < 1 {
		return models.Goal{}, false, ErrInvalidYear
	}

	stored, created, err := s.goalRepository.UpsertGoal(ctx, goal)
	if err != nil {
		log.Err(err).Int64("user_id", goal.UserID).Int("ano", goal.Ano).Int("mes", goal.Mes).Msg("goal upsert ended with error")
		return models.Goal{}, false, fmt.Errorf("goal upsert ended with error: %w", err)
	}

	return stored, created, nil
}

// ListGoals returns every goal of userID; a user with no goals yields an
// empty slice.
func (s *goalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	goals, err := s.goalRepository.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals failed: %w", err)
	}

	return goals, nil
}

// GetGoal returns the goal for the exact (userID, ano, mes) triple; a miss
// surfaces as store.ErrGoalNotFound.
func (s *goalService) GetGoal(ctx context.Context, userID int64, ano, mes int) (models.Goal, error) {
	goal, err := s.goalRepository.GetGoal(ctx, userID, ano, mes)
	if err != nil {
		return models.Goal{}, fmt.Errorf("goal lookup ended with error: %w", err)
	}

	return goal, nil
}
