package service

import (
	"context"
	"math"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/driftlab/wakewise/pkg/timeofday"
	"github.com/google/uuid"
)

const (
	// DefaultPatternWindowDays is the trailing window used when callers
	// don't specify one.
	DefaultPatternWindowDays = 14

	// MaxPatternWindowDays caps how far back the aggregator will look.
	MaxPatternWindowDays = 90
)

// PatternService reduces a window of sleep sessions into a SleepPattern.
type PatternService interface {
	// Compute aggregates the user's trailing sessions. Returns (nil, nil)
	// when no sessions exist: callers must treat a nil pattern as
	// "insufficient data" and skip optimization.
	Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepPattern, error)
}

type patternService struct {
	sessionRepo repository.SleepSessionRepository
	userRepo    repository.UserRepository
}

func NewPatternService(sessionRepo repository.SleepSessionRepository, userRepo repository.UserRepository) PatternService {
	return &patternService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func (s *patternService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepPattern, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = DefaultPatternWindowDays
	}
	if windowDays > MaxPatternWindowDays {
		windowDays = MaxPatternWindowDays
	}

	sessions, err := s.sessionRepo.ListRecent(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	return AggregatePattern(sessions), nil
}

// AggregatePattern computes the mean bedtime, wake time, and duration of a
// session window and classifies the chronotype. Bedtimes past midnight are
// treated as negative offsets before averaging so that a 23:30/00:30 pair
// averages to midnight rather than noon. Returns nil for an empty window.
func AggregatePattern(sessions []domain.SleepSession) *domain.SleepPattern {
	if len(sessions) == 0 {
		return nil
	}

	var bedtimeSum, wakeSum, durationSum float64
	for _, sess := range sessions {
		bedtimeSum += float64(timeofday.SignedOffset(sess.BedtimeMinutes()))
		wakeSum += float64(sess.WakeMinutes())
		durationSum += float64(sess.SleepDuration)
	}

	n := float64(len(sessions))
	signedBedtime := int(math.Round(bedtimeSum / n))
	avgWake := int(math.Round(wakeSum / n))
	avgDuration := int(math.Round(durationSum / n))

	return &domain.SleepPattern{
		AverageBedtime:       timeofday.Format(signedBedtime),
		AverageWakeTime:      timeofday.Format(avgWake),
		AverageSleepDuration: avgDuration,
		Chronotype:           domain.ClassifyChronotype(signedBedtime),
	}
}
