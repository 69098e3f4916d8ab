package service

import (
	"context"
	"errors"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/google/uuid"
)

// GoalService manages the user's active sleep goal.
type GoalService interface {
	// Get returns the active goal, with documented defaults applied when
	// none has been set.
	Get(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error)
	// Set replaces the active goal.
	Set(ctx context.Context, userID uuid.UUID, req *domain.SetSleepGoalRequest) (*domain.SleepGoal, error)
}

type goalService struct {
	goalRepo repository.SleepGoalRepository
	userRepo repository.UserRepository
}

func NewGoalService(goalRepo repository.SleepGoalRepository, userRepo repository.UserRepository) GoalService {
	return &goalService{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

func (s *goalService) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	goal, err := s.goalRepo.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSleepGoal(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) Set(ctx context.Context, userID uuid.UUID, req *domain.SetSleepGoalRequest) (*domain.SleepGoal, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	goal := &domain.SleepGoal{
		UserID:                  userID,
		TargetBedtime:           req.TargetBedtime,
		TargetWakeTime:          req.TargetWakeTime,
		TargetDurationMinutes:   req.TargetDurationMinutes,
		Consistency:             true,
		WeekendVariationMinutes: domain.DefaultGoalWeekendVariation,
		AdaptToLifestyle:        true,
	}
	if req.Consistency != nil {
		goal.Consistency = *req.Consistency
	}
	if req.WeekendVariationMinutes != nil {
		goal.WeekendVariationMinutes = *req.WeekendVariationMinutes
	}
	if req.AdaptToLifestyle != nil {
		goal.AdaptToLifestyle = *req.AdaptToLifestyle
	}

	if err := s.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// storedGoal fetches the goal the user explicitly set, or nil when none
// exists. The engine's debt and blending rules distinguish "no goal" from
// the display defaults the Get endpoint applies.
func storedGoal(ctx context.Context, repo repository.SleepGoalRepository, userID uuid.UUID) (*domain.SleepGoal, error) {
	goal, err := repo.GetByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}
