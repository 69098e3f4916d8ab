package repository

import (
	"context"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlarmRepository interface {
	Create(ctx context.Context, alarm *domain.Alarm) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error)
	// ListAdaptive returns all alarms eligible for the batch recompute:
	// smart-enabled and adaptive-enabled.
	ListAdaptive(ctx context.Context) ([]domain.Alarm, error)
	// Update saves the whole record. The embedded schedule is a single
	// JSON column, so a concurrent recompute can never mix fields from
	// two different schedules.
	Update(ctx context.Context, alarm *domain.Alarm) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type alarmRepository struct {
	db *gorm.DB
}

func NewAlarmRepository(db *gorm.DB) AlarmRepository {
	return &alarmRepository{db: db}
}

func (r *alarmRepository) Create(ctx context.Context, alarm *domain.Alarm) error {
	return r.db.WithContext(ctx).Create(alarm).Error
}

func (r *alarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error) {
	var alarm domain.Alarm
	err := r.db.WithContext(ctx).First(&alarm, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &alarm, nil
}

func (r *alarmRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error) {
	var alarms []domain.Alarm
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time ASC").
		Find(&alarms).Error
	if err != nil {
		return nil, err
	}
	return alarms, nil
}

func (r *alarmRepository) ListAdaptive(ctx context.Context) ([]domain.Alarm, error) {
	var alarms []domain.Alarm
	err := r.db.WithContext(ctx).
		Where("smart_enabled = ? AND adaptive_enabled = ?", true, true).
		Order("user_id").
		Find(&alarms).Error
	if err != nil {
		return nil, err
	}
	return alarms, nil
}

func (r *alarmRepository) Update(ctx context.Context, alarm *domain.Alarm) error {
	return r.db.WithContext(ctx).Save(alarm).Error
}

func (r *alarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Alarm{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
