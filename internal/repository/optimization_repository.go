package repository

import (
	"context"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptimizationRepository is append-only by design: no update or delete is
// exposed. Corrections are new records.
type OptimizationRepository interface {
	Append(ctx context.Context, opt *domain.AlarmOptimization) error
	List(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) ([]domain.AlarmOptimization, error)
}

type optimizationRepository struct {
	db *gorm.DB
}

func NewOptimizationRepository(db *gorm.DB) OptimizationRepository {
	return &optimizationRepository{db: db}
}

func (r *optimizationRepository) Append(ctx context.Context, opt *domain.AlarmOptimization) error {
	return r.db.WithContext(ctx).Create(opt).Error
}

func (r *optimizationRepository) List(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) ([]domain.AlarmOptimization, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	if filter.AlarmID != nil {
		query = query.Where("alarm_id = ?", *filter.AlarmID)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.AlarmOptimization
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
