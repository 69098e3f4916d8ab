package service

import (
	"context"
	"math"
	"time"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/driftlab/wakewise/pkg/timeofday"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// goalBlendThresholdMinutes is how far a raw recommendation may drift
	// from the goal wake time before the consistency blend kicks in.
	goalBlendThresholdMinutes = 30

	// goalConfidencePenalty is the flat multiplier applied whenever the
	// consistency blend overrides a raw recommendation. It does not scale
	// with the size of the override; that is a deliberate simplification
	// carried over unchanged (see DESIGN.md).
	goalConfidencePenalty = 0.9

	seasonalShiftMinutes = 10
)

// ScheduleService owns smart alarms and the computation of their schedules.
type ScheduleService interface {
	CreateAlarm(ctx context.Context, userID uuid.UUID, req *domain.CreateAlarmRequest) (*domain.Alarm, error)
	GetAlarm(ctx context.Context, userID, alarmID uuid.UUID) (*domain.Alarm, error)
	ListAlarms(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error)
	// UpdateAlarm applies partial updates, recomputing the schedule only
	// when time, days, or smart_enabled changed.
	UpdateAlarm(ctx context.Context, userID, alarmID uuid.UUID, req *domain.UpdateAlarmRequest) (*domain.Alarm, error)
	DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error
	// RecomputeAll rescans every smart+adaptive alarm, used by the batch
	// job. Failures leave the previous schedule untouched and do not stop
	// the scan. Returns how many alarms were updated.
	RecomputeAll(ctx context.Context) (int, error)
}

type scheduleService struct {
	alarmRepo   repository.AlarmRepository
	userRepo    repository.UserRepository
	goalRepo    repository.SleepGoalRepository
	patterns    PatternService
	recommender CycleRecommender
	log         zerolog.Logger
	now         func() time.Time
}

func NewScheduleService(
	alarmRepo repository.AlarmRepository,
	userRepo repository.UserRepository,
	goalRepo repository.SleepGoalRepository,
	patterns PatternService,
	recommender CycleRecommender,
	log zerolog.Logger,
) ScheduleService {
	return &scheduleService{
		alarmRepo:   alarmRepo,
		userRepo:    userRepo,
		goalRepo:    goalRepo,
		patterns:    patterns,
		recommender: recommender,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) CreateAlarm(ctx context.Context, userID uuid.UUID, req *domain.CreateAlarmRequest) (*domain.Alarm, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	alarm := &domain.Alarm{
		UserID:             userID,
		Time:               req.Time,
		Label:              req.Label,
		Days:               req.Days,
		Enabled:            true,
		SmartEnabled:       req.SmartEnabled,
		WakeWindow:         30,
		AdaptiveEnabled:    req.AdaptiveEnabled,
		SleepGoalMinutes:   480,
		Consistency:        true,
		SeasonalAdjustment: req.SeasonalAdjustment,
	}
	if req.Enabled != nil {
		alarm.Enabled = *req.Enabled
	}
	if req.WakeWindow != nil {
		alarm.WakeWindow = *req.WakeWindow
	}
	if req.SleepGoalMinutes != nil {
		alarm.SleepGoalMinutes = *req.SleepGoalMinutes
	}
	if req.Consistency != nil {
		alarm.Consistency = *req.Consistency
	}

	// Smart-schedule computation is fail-open: alarm creation succeeds
	// even if the enhancement cannot be computed.
	if alarm.SmartEnabled {
		schedule, err := s.computeSchedule(ctx, alarm)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID.String()).
				Msg("smart schedule computation failed, using fallback")
			schedule = domain.FallbackSchedule(alarm.Time, s.now())
		}
		alarm.Schedule = schedule
	}

	if err := s.alarmRepo.Create(ctx, alarm); err != nil {
		return nil, err
	}
	return alarm, nil
}

func (s *scheduleService) GetAlarm(ctx context.Context, userID, alarmID uuid.UUID) (*domain.Alarm, error) {
	alarm, err := s.alarmRepo.GetByID(ctx, alarmID)
	if err != nil {
		return nil, err
	}
	if alarm.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return alarm, nil
}

func (s *scheduleService) ListAlarms(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.alarmRepo.ListByUser(ctx, userID)
}

func (s *scheduleService) UpdateAlarm(ctx context.Context, userID, alarmID uuid.UUID, req *domain.UpdateAlarmRequest) (*domain.Alarm, error) {
	alarm, err := s.GetAlarm(ctx, userID, alarmID)
	if err != nil {
		return nil, err
	}

	needsRecompute := false
	if req.Time != nil && *req.Time != alarm.Time {
		alarm.Time = *req.Time
		needsRecompute = true
	}
	if req.Days != nil {
		alarm.Days = req.Days
		needsRecompute = true
	}
	if req.SmartEnabled != nil && *req.SmartEnabled != alarm.SmartEnabled {
		alarm.SmartEnabled = *req.SmartEnabled
		needsRecompute = true
	}
	if req.Label != nil {
		alarm.Label = *req.Label
	}
	if req.Enabled != nil {
		alarm.Enabled = *req.Enabled
	}
	if req.WakeWindow != nil {
		alarm.WakeWindow = *req.WakeWindow
	}
	if req.AdaptiveEnabled != nil {
		alarm.AdaptiveEnabled = *req.AdaptiveEnabled
	}
	if req.SleepGoalMinutes != nil {
		alarm.SleepGoalMinutes = *req.SleepGoalMinutes
	}
	if req.Consistency != nil {
		alarm.Consistency = *req.Consistency
	}
	if req.SeasonalAdjustment != nil {
		alarm.SeasonalAdjustment = *req.SeasonalAdjustment
	}

	// A disabled smart alarm keeps its last schedule frozen; it is never
	// recomputed until smart scheduling is switched back on.
	if needsRecompute && alarm.SmartEnabled {
		schedule, err := s.computeSchedule(ctx, alarm)
		if err != nil {
			// Stale-but-valid beats absent: keep the previous schedule.
			s.log.Warn().Err(err).Str("alarm_id", alarmID.String()).
				Msg("schedule recompute failed, keeping previous schedule")
		} else {
			alarm.Schedule = schedule
		}
	}

	if err := s.alarmRepo.Update(ctx, alarm); err != nil {
		return nil, err
	}
	return alarm, nil
}

func (s *scheduleService) DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error {
	if _, err := s.GetAlarm(ctx, userID, alarmID); err != nil {
		return err
	}
	return s.alarmRepo.Delete(ctx, alarmID)
}

func (s *scheduleService) RecomputeAll(ctx context.Context) (int, error) {
	tracer := otel.Tracer("wakewise/schedule")
	ctx, span := tracer.Start(ctx, "ScheduleService.RecomputeAll")
	defer span.End()

	alarms, err := s.alarmRepo.ListAdaptive(ctx)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int("alarms.scanned", len(alarms)))

	updated := 0
	for i := range alarms {
		alarm := alarms[i]
		schedule, err := s.computeSchedule(ctx, &alarm)
		if err != nil {
			s.log.Warn().Err(err).Str("alarm_id", alarm.ID.String()).
				Msg("batch recompute failed for alarm, previous schedule retained")
			continue
		}
		alarm.Schedule = schedule
		if err := s.alarmRepo.Update(ctx, &alarm); err != nil {
			s.log.Error().Err(err).Str("alarm_id", alarm.ID.String()).
				Msg("failed to persist recomputed schedule")
			continue
		}
		updated++
	}

	span.SetAttributes(attribute.Int("alarms.updated", updated))
	return updated, nil
}

// computeSchedule runs the full recommendation pipeline for one alarm:
// aggregate the pattern, get a raw cycle recommendation, apply the optional
// seasonal shift, then blend against the user's sleep goal.
func (s *scheduleService) computeSchedule(ctx context.Context, alarm *domain.Alarm) (*domain.SmartSchedule, error) {
	tracer := otel.Tracer("wakewise/schedule")
	ctx, span := tracer.Start(ctx, "ScheduleService.computeSchedule",
		trace.WithAttributes(
			attribute.String("alarm.id", alarm.ID.String()),
			attribute.String("alarm.time", alarm.Time),
		),
	)
	defer span.End()

	pattern, err := s.patterns.Compute(ctx, alarm.UserID, DefaultPatternWindowDays)
	if err != nil {
		return nil, err
	}

	now := s.now()

	rec := s.recommender.Recommend(alarm, pattern)
	if rec == nil {
		return domain.FallbackSchedule(alarm.Time, now), nil
	}

	rec = applySeasonalShift(rec, alarm, now)

	goal, err := storedGoal(ctx, s.goalRepo, alarm.UserID)
	if err != nil {
		return nil, err
	}
	rec = applySleepGoal(rec, goal)

	span.SetAttributes(
		attribute.String("schedule.suggested", rec.RecommendedTime),
		attribute.Float64("schedule.confidence", rec.Confidence),
	)

	return &domain.SmartSchedule{
		OriginalTime:     alarm.Time,
		SuggestedTime:    rec.RecommendedTime,
		Confidence:       clamp01(rec.Confidence),
		Reason:           rec.Reason,
		SleepQuality:     rec.EstimatedSleepQuality,
		WakeUpDifficulty: rec.WakeUpDifficulty,
		LastUpdated:      now,
	}, nil
}

// applySleepGoal blends a raw recommendation toward the user's goal wake
// time. When the user favors consistency and the recommendation drifts more
// than 30 minutes from the goal, the suggested time becomes a weighted
// compromise (70% of the midpoint plus 30% of the goal) and confidence takes
// the flat penalty. Inside the threshold, or without a consistency goal, the
// recommendation passes through untouched.
func applySleepGoal(rec *domain.WakeRecommendation, goal *domain.SleepGoal) *domain.WakeRecommendation {
	if goal == nil || !goal.Consistency {
		return rec
	}

	targetMinutes, err := timeofday.Parse(goal.TargetWakeTime)
	if err != nil {
		return rec
	}
	recommendedMinutes, err := timeofday.Parse(rec.RecommendedTime)
	if err != nil {
		return rec
	}

	diff := targetMinutes - recommendedMinutes
	if diff < 0 {
		diff = -diff
	}
	if diff <= goalBlendThresholdMinutes {
		return rec
	}

	midpoint := float64(targetMinutes+recommendedMinutes) / 2
	adjusted := int(math.Round(midpoint*0.7 + float64(targetMinutes)*0.3))

	blended := *rec
	blended.RecommendedTime = timeofday.Format(adjusted)
	blended.Reason = rec.Reason + " Adjusted for sleep goal consistency."
	blended.Confidence = rec.Confidence * goalConfidencePenalty
	return &blended
}

// applySeasonalShift nudges the suggestion 10 minutes later in winter and
// 10 minutes earlier in summer for alarms that opted in.
func applySeasonalShift(rec *domain.WakeRecommendation, alarm *domain.Alarm, now time.Time) *domain.WakeRecommendation {
	if !alarm.SeasonalAdjustment {
		return rec
	}

	shift := 0
	switch now.Month() {
	case time.December, time.January, time.February:
		shift = seasonalShiftMinutes
	case time.June, time.July, time.August:
		shift = -seasonalShiftMinutes
	}
	if shift == 0 {
		return rec
	}

	minutes, err := timeofday.Parse(rec.RecommendedTime)
	if err != nil {
		return rec
	}

	shifted := *rec
	shifted.RecommendedTime = timeofday.Format(minutes + shift)
	if shift > 0 {
		shifted.Reason = rec.Reason + " Shifted 10 minutes later for darker winter mornings."
	} else {
		shifted.Reason = rec.Reason + " Shifted 10 minutes earlier for lighter summer mornings."
	}
	return &shifted
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
