package service

import (
	"context"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/driftlab/wakewise/pkg/pagination"
	"github.com/google/uuid"
)

// OptimizationService is the append-only audit log of schedule changes a
// user accepted or rejected.
type OptimizationService interface {
	Record(ctx context.Context, userID uuid.UUID, req *domain.RecordOptimizationRequest) (*domain.AlarmOptimization, error)
	History(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) (*domain.OptimizationListResponse, error)
}

type optimizationService struct {
	optRepo   repository.OptimizationRepository
	alarmRepo repository.AlarmRepository
	userRepo  repository.UserRepository
}

func NewOptimizationService(
	optRepo repository.OptimizationRepository,
	alarmRepo repository.AlarmRepository,
	userRepo repository.UserRepository,
) OptimizationService {
	return &optimizationService{
		optRepo:   optRepo,
		alarmRepo: alarmRepo,
		userRepo:  userRepo,
	}
}

func (s *optimizationService) Record(ctx context.Context, userID uuid.UUID, req *domain.RecordOptimizationRequest) (*domain.AlarmOptimization, error) {
	// The alarm must exist and belong to the user.
	alarm, err := s.alarmRepo.GetByID(ctx, req.AlarmID)
	if err != nil {
		return nil, err
	}
	if alarm.UserID != userID {
		return nil, domain.ErrNotFound
	}

	opt := &domain.AlarmOptimization{
		AlarmID:          req.AlarmID,
		UserID:           userID,
		OptimizationType: req.OptimizationType,
		OldTime:          req.OldTime,
		NewTime:          req.NewTime,
		Reason:           req.Reason,
		EffectiveDate:    req.EffectiveDate,
		Accepted:         req.Accepted,
	}

	if err := s.optRepo.Append(ctx, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *optimizationService) History(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) (*domain.OptimizationListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.optRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.OptimizationListResponse{
		Data: records,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
