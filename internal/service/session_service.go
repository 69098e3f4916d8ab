package service

import (
	"context"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/driftlab/wakewise/pkg/pagination"
	"github.com/google/uuid"
)

// SessionService ingests and lists sleep sessions. Sessions arrive with
// duration and stage minutes already computed by the tracking device; the
// engine never does raw signal processing.
type SessionService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

type sessionService struct {
	sessionRepo repository.SleepSessionRepository
	userRepo    repository.UserRepository
}

func NewSessionService(sessionRepo repository.SleepSessionRepository, userRepo repository.UserRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func (s *sessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Duration can't exceed time in bed.
	inBed := int(req.WakeTime.Sub(req.Bedtime).Minutes())
	if req.SleepDuration > inBed {
		return nil, domain.ErrInvalidInput
	}

	hasOverlap, err := s.sessionRepo.HasOverlap(ctx, userID, req.Bedtime.UTC(), req.WakeTime.UTC())
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, domain.ErrConflict
	}

	session := &domain.SleepSession{
		UserID:        userID,
		Bedtime:       req.Bedtime.UTC(),
		WakeTime:      req.WakeTime.UTC(),
		SleepDuration: req.SleepDuration,
		DeepMinutes:   req.DeepMinutes,
		RemMinutes:    req.RemMinutes,
		LightMinutes:  req.LightMinutes,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	sessions, err := s.sessionRepo.ListPage(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(sessions) > limit
	if hasMore {
		sessions = sessions[:limit]
	}

	response := &domain.SleepSessionListResponse{
		Data: sessions,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
