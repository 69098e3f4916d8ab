package repository

import (
	"context"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SleepGoalRepository interface {
	// GetByUser returns the user's active goal, or domain.ErrNotFound if
	// none has been set. Callers apply the documented defaults.
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error)
	// Upsert replaces the user's active goal.
	Upsert(ctx context.Context, goal *domain.SleepGoal) error
}

type sleepGoalRepository struct {
	db *gorm.DB
}

func NewSleepGoalRepository(db *gorm.DB) SleepGoalRepository {
	return &sleepGoalRepository{db: db}
}

func (r *sleepGoalRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error) {
	var goal domain.SleepGoal
	err := r.db.WithContext(ctx).First(&goal, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *sleepGoalRepository) Upsert(ctx context.Context, goal *domain.SleepGoal) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"target_bedtime", "target_wake_time", "target_duration_minutes",
				"consistency", "weekend_variation_minutes", "adapt_to_lifestyle",
				"updated_at",
			}),
		}).
		Create(goal).Error
}
