package service

import (
	"testing"

	"github.com/driftlab/wakewise/internal/domain"
)

func cyclePattern(bedtime string, duration int) *domain.SleepPattern {
	return &domain.SleepPattern{
		AverageBedtime:       bedtime,
		AverageWakeTime:      "07:00",
		AverageSleepDuration: duration,
		Chronotype:           domain.ChronotypeNormal,
	}
}

func TestRecommendNilPattern(t *testing.T) {
	r := NewCycleRecommender()
	alarm := &domain.Alarm{Time: "07:00", WakeWindow: 30}
	if rec := r.Recommend(alarm, nil); rec != nil {
		t.Errorf("expected nil recommendation for nil pattern, got %+v", rec)
	}
}

func TestRecommendCycleBoundaryInsideWindow(t *testing.T) {
	r := NewCycleRecommender()

	// Bedtime 23:00 -> sleep onset 23:15. Cycle boundaries land at 00:45,
	// 02:15, 03:45, 05:15, 06:45, 08:15, ... The 07:00 alarm is 15 minutes
	// from the 06:45 boundary, inside the 30-minute window.
	alarm := &domain.Alarm{Time: "07:00", WakeWindow: 30}
	rec := r.Recommend(alarm, cyclePattern("23:00", 450))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "06:45" {
		t.Errorf("RecommendedTime = %q, want 06:45", rec.RecommendedTime)
	}
	if want := 0.9 - 0.2*15.0/30.0; rec.Confidence != want {
		t.Errorf("Confidence = %v, want %v", rec.Confidence, want)
	}
	if rec.WakeUpDifficulty != domain.WakeDifficultyEasy {
		t.Errorf("WakeUpDifficulty = %q, want easy", rec.WakeUpDifficulty)
	}
	if want := 450.0 / 480.0 * 10; rec.EstimatedSleepQuality != want {
		t.Errorf("EstimatedSleepQuality = %v, want %v", rec.EstimatedSleepQuality, want)
	}
}

func TestRecommendExactBoundaryScoresHighest(t *testing.T) {
	r := NewCycleRecommender()

	alarm := &domain.Alarm{Time: "06:45", WakeWindow: 30}
	rec := r.Recommend(alarm, cyclePattern("23:00", 480))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "06:45" {
		t.Errorf("RecommendedTime = %q, want 06:45", rec.RecommendedTime)
	}
	if rec.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", rec.Confidence)
	}
}

func TestRecommendNoBoundaryInsideWindow(t *testing.T) {
	r := NewCycleRecommender()

	// 07:30 sits exactly between the 06:45 and 08:15 boundaries, 45
	// minutes from each. Outside the window the configured time stands.
	alarm := &domain.Alarm{Time: "07:30", WakeWindow: 30}
	rec := r.Recommend(alarm, cyclePattern("23:00", 480))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "07:30" {
		t.Errorf("RecommendedTime = %q, want the configured 07:30", rec.RecommendedTime)
	}
	if rec.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", rec.Confidence)
	}
	if rec.WakeUpDifficulty != domain.WakeDifficultyHard {
		t.Errorf("WakeUpDifficulty = %q, want hard", rec.WakeUpDifficulty)
	}
}

func TestRecommendModerateDifficultyNearBoundary(t *testing.T) {
	r := NewCycleRecommender()

	// 07:20 is 35 minutes past the 06:45 boundary: too far to shift, close
	// enough that the wake-up should only be moderately rough.
	alarm := &domain.Alarm{Time: "07:20", WakeWindow: 30}
	rec := r.Recommend(alarm, cyclePattern("23:00", 480))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "07:20" {
		t.Errorf("RecommendedTime = %q, want 07:20", rec.RecommendedTime)
	}
	if rec.WakeUpDifficulty != domain.WakeDifficultyModerate {
		t.Errorf("WakeUpDifficulty = %q, want moderate", rec.WakeUpDifficulty)
	}
}

func TestRecommendWiderWindowReachesFurther(t *testing.T) {
	r := NewCycleRecommender()

	alarm := &domain.Alarm{Time: "07:30", WakeWindow: 60}
	rec := r.Recommend(alarm, cyclePattern("23:00", 480))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "06:45" {
		t.Errorf("RecommendedTime = %q, want 06:45", rec.RecommendedTime)
	}
	if want := 0.9 - 0.2*45.0/60.0; rec.Confidence != want {
		t.Errorf("Confidence = %v, want %v", rec.Confidence, want)
	}
}

func TestRecommendBedtimeAfterMidnight(t *testing.T) {
	r := NewCycleRecommender()

	// Bedtime 00:30 -> onset 00:45; four cycles end at 06:45.
	alarm := &domain.Alarm{Time: "07:00", WakeWindow: 30}
	rec := r.Recommend(alarm, cyclePattern("00:30", 390))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "06:45" {
		t.Errorf("RecommendedTime = %q, want 06:45", rec.RecommendedTime)
	}
}

func TestRecommendZeroWindowUsesDefault(t *testing.T) {
	r := NewCycleRecommender()

	alarm := &domain.Alarm{Time: "07:00"}
	rec := r.Recommend(alarm, cyclePattern("23:00", 480))
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.RecommendedTime != "06:45" {
		t.Errorf("RecommendedTime = %q, want 06:45 with the default window", rec.RecommendedTime)
	}
}

func TestEstimateQualityClamped(t *testing.T) {
	if q := estimateQuality(600); q != 10 {
		t.Errorf("estimateQuality(600) = %v, want clamped 10", q)
	}
	if q := estimateQuality(240); q != 5 {
		t.Errorf("estimateQuality(240) = %v, want 5", q)
	}
}
