package service

import (
	"context"
	"fmt"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/driftlab/wakewise/pkg/timeofday"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// AnalysisWindowDays is the trailing window the orchestrator reads.
	AnalysisWindowDays = 30

	// Rule thresholds for generating recommendations.
	debtThresholdMinutes  = 60
	consistencyThreshold  = 70
	alignmentThreshold    = 60
	debtBedtimeAdjustment = -30
)

// AnalysisService composes the aggregator, calculator, and scorer into a
// full schedule analysis.
type AnalysisService interface {
	// Analyze returns (nil, nil) when the user has no sleep history;
	// callers translate that into "insufficient data", not an error.
	Analyze(ctx context.Context, userID uuid.UUID) (*domain.UserScheduleAnalysis, error)
}

type analysisService struct {
	sessionRepo repository.SleepSessionRepository
	alarmRepo   repository.AlarmRepository
	goalRepo    repository.SleepGoalRepository
	userRepo    repository.UserRepository
}

func NewAnalysisService(
	sessionRepo repository.SleepSessionRepository,
	alarmRepo repository.AlarmRepository,
	goalRepo repository.SleepGoalRepository,
	userRepo repository.UserRepository,
) AnalysisService {
	return &analysisService{
		sessionRepo: sessionRepo,
		alarmRepo:   alarmRepo,
		goalRepo:    goalRepo,
		userRepo:    userRepo,
	}
}

func (s *analysisService) Analyze(ctx context.Context, userID uuid.UUID) (*domain.UserScheduleAnalysis, error) {
	tracer := otel.Tracer("wakewise/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Analyze",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	sessions, err := s.sessionRepo.ListRecent(ctx, userID, AnalysisWindowDays)
	if err != nil {
		return nil, err
	}

	pattern := AggregatePattern(sessions)
	if pattern == nil {
		span.SetAttributes(attribute.Bool("analysis.insufficient_data", true))
		return nil, nil
	}

	alarms, err := s.alarmRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	goal, err := storedGoal(ctx, s.goalRepo, userID)
	if err != nil {
		return nil, err
	}

	analysis := &domain.UserScheduleAnalysis{
		SleepDebtMinutes:     SleepDebt(sessions, goal),
		AverageSleepDuration: pattern.AverageSleepDuration,
		SleepConsistency:     ConsistencyScore(sessions),
		ChronotypeAlignment:  ChronotypeAlignment(pattern, alarms),
		Pattern:              *pattern,
	}
	analysis.Recommendations = buildRecommendations(analysis, pattern)

	span.SetAttributes(
		attribute.Int("analysis.sleep_debt_minutes", analysis.SleepDebtMinutes),
		attribute.Float64("analysis.consistency", analysis.SleepConsistency),
		attribute.Float64("analysis.alignment", analysis.ChronotypeAlignment),
		attribute.Int("analysis.recommendations", len(analysis.Recommendations)),
	)

	return analysis, nil
}

// buildRecommendations evaluates three independent rules in fixed order:
// debt, consistency, alignment. Each may fire on its own; no dedup or
// re-ranking happens afterwards.
func buildRecommendations(analysis *domain.UserScheduleAnalysis, pattern *domain.SleepPattern) []domain.ScheduleRecommendation {
	recs := []domain.ScheduleRecommendation{}

	if analysis.SleepDebtMinutes > debtThresholdMinutes {
		recs = append(recs, domain.ScheduleRecommendation{
			Type: domain.RecommendationBedtimeEarlier,
			Description: fmt.Sprintf(
				"You've accumulated %d minutes of sleep debt this week. Move your bedtime 30 minutes earlier.",
				analysis.SleepDebtMinutes,
			),
			Impact:                domain.ImpactHigh,
			TimeAdjustmentMinutes: debtBedtimeAdjustment,
			ExpectedImprovement:   "Recovered sleep debt within a week",
		})
	}

	if analysis.SleepConsistency < consistencyThreshold {
		recs = append(recs, domain.ScheduleRecommendation{
			Type:                  domain.RecommendationWakeConsistent,
			Description:           "Your bed and wake times vary widely. Keeping them steady, even on weekends, improves sleep quality.",
			Impact:                domain.ImpactMedium,
			TimeAdjustmentMinutes: 0,
			ExpectedImprovement:   "More stable energy through the day",
		})
	}

	if analysis.ChronotypeAlignment < alignmentThreshold {
		if rec, ok := alignmentRecommendation(pattern); ok {
			recs = append(recs, rec)
		}
	}

	return recs
}

// alignmentRecommendation proposes shifting bedtime toward the chronotype
// ideal. The adjustment is half the raw gap: deliberate damping so one
// recommendation never asks for a drastic single-step change.
func alignmentRecommendation(pattern *domain.SleepPattern) (domain.ScheduleRecommendation, bool) {
	actual, err := timeofday.Parse(pattern.AverageBedtime)
	if err != nil {
		return domain.ScheduleRecommendation{}, false
	}
	ideal := domain.IdealTimingFor(pattern.Chronotype)

	gap := timeofday.SignedOffset(ideal.BedtimeMinutes) - timeofday.SignedOffset(actual)
	if gap == 0 {
		return domain.ScheduleRecommendation{}, false
	}

	adjustment := gap / 2
	recType := domain.RecommendationBedtimeLater
	direction := "later"
	if adjustment < 0 {
		recType = domain.RecommendationBedtimeEarlier
		direction = "earlier"
	}

	abs := adjustment
	if abs < 0 {
		abs = -abs
	}

	return domain.ScheduleRecommendation{
		Type: recType,
		Description: fmt.Sprintf(
			"Your %s chronotype suggests a bedtime around %s. Try shifting %d minutes %s.",
			pattern.Chronotype, timeofday.Format(ideal.BedtimeMinutes), abs, direction,
		),
		Impact:                domain.ImpactMedium,
		TimeAdjustmentMinutes: adjustment,
		ExpectedImprovement:   "Wake times better matched to your natural rhythm",
	}, true
}
