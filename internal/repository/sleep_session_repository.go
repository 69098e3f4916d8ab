package repository

import (
	"context"
	"time"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepSessionRepository interface {
	Create(ctx context.Context, session *domain.SleepSession) error
	// ListRecent returns sessions from the trailing number of days,
	// newest first. May return fewer than the window holds.
	ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.SleepSession, error)
	// ListPage returns up to limit+1 sessions newest first for cursor
	// pagination.
	ListPage(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error)
	// HasOverlap reports whether any stored session intersects the
	// [bedtime, wakeTime) interval.
	HasOverlap(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (bool, error)
}

type sleepSessionRepository struct {
	db *gorm.DB
}

func NewSleepSessionRepository(db *gorm.DB) SleepSessionRepository {
	return &sleepSessionRepository{db: db}
}

func (r *sleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sleepSessionRepository) ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.SleepSession, error) {
	from := time.Now().UTC().AddDate(0, 0, -days)

	var sessions []domain.SleepSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND bedtime >= ?", userID, from).
		Order("bedtime DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sleepSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SleepSession{}).
		Where("user_id = ? AND bedtime < ? AND wake_time > ?", userID, wakeTime, bedtime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sleepSessionRepository) ListPage(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.SleepSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
