package service

import (
	"fmt"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/pkg/timeofday"
)

const (
	sleepCycleMinutes     = 90
	fallAsleepLatency     = 15 // minutes from bedtime to sleep onset
	maxCycles             = 8
	defaultWakeWindow     = 30
	goodSleepReferenceMin = 480
)

// CycleRecommender proposes a raw wake time for an alarm given the user's
// sleep pattern. It is a capability interface so alternative strategies can
// be swapped without touching the blending logic layered on top.
type CycleRecommender interface {
	// Recommend returns nil when the pattern is nil (insufficient data).
	Recommend(alarm *domain.Alarm, pattern *domain.SleepPattern) *domain.WakeRecommendation
}

// NinetyMinuteCycleRecommender aligns wake times to ~90-minute sleep cycle
// boundaries, shifting within the alarm's wake window to avoid waking the
// user mid-deep-sleep.
type NinetyMinuteCycleRecommender struct{}

func NewCycleRecommender() CycleRecommender {
	return &NinetyMinuteCycleRecommender{}
}

func (r *NinetyMinuteCycleRecommender) Recommend(alarm *domain.Alarm, pattern *domain.SleepPattern) *domain.WakeRecommendation {
	if pattern == nil {
		return nil
	}

	alarmMinutes, err := timeofday.Parse(alarm.Time)
	if err != nil {
		return nil
	}
	bedtimeMinutes, err := timeofday.Parse(pattern.AverageBedtime)
	if err != nil {
		return nil
	}

	window := alarm.WakeWindow
	if window <= 0 {
		window = defaultWakeWindow
	}

	onset := bedtimeMinutes + fallAsleepLatency

	// Find the cycle boundary closest to the alarm time.
	bestDiff := -1
	bestCandidate := 0
	bestCycles := 0
	for k := 1; k <= maxCycles; k++ {
		candidate := timeofday.Normalize(onset + k*sleepCycleMinutes)
		diff := timeofday.CircularDiff(candidate, alarmMinutes)
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			bestCandidate = candidate
			bestCycles = k
		}
	}

	quality := estimateQuality(pattern.AverageSleepDuration)

	if bestDiff <= window {
		return &domain.WakeRecommendation{
			RecommendedTime: timeofday.Format(bestCandidate),
			Confidence:      cycleConfidence(bestDiff, window),
			Reason: fmt.Sprintf(
				"Waking at %s completes %d full sleep cycles from your usual %s bedtime.",
				timeofday.Format(bestCandidate), bestCycles, pattern.AverageBedtime,
			),
			EstimatedSleepQuality: quality,
			WakeUpDifficulty:      domain.WakeDifficultyEasy,
		}
	}

	// No boundary inside the window: keep the configured time but report
	// how rough the wake-up is likely to be.
	return &domain.WakeRecommendation{
		RecommendedTime: alarm.Time,
		Confidence:      0.5,
		Reason: fmt.Sprintf(
			"No sleep-cycle boundary within %d minutes of %s; keeping your configured time.",
			window, alarm.Time,
		),
		EstimatedSleepQuality: quality,
		WakeUpDifficulty:      difficultyFromBoundaryDistance(bestDiff),
	}
}

// cycleConfidence rewards suggestions that barely move the alarm: a
// boundary right on the configured time scores 0.9, one at the window edge
// scores 0.7.
func cycleConfidence(diff, window int) float64 {
	return 0.9 - 0.2*float64(diff)/float64(window)
}

func difficultyFromBoundaryDistance(diff int) domain.WakeDifficulty {
	switch {
	case diff <= 15:
		return domain.WakeDifficultyEasy
	case diff <= 35:
		return domain.WakeDifficultyModerate
	default:
		return domain.WakeDifficultyHard
	}
}

// estimateQuality maps average sleep duration against an 8-hour reference
// to a 0..10 scale.
func estimateQuality(avgDurationMinutes int) float64 {
	q := float64(avgDurationMinutes) / goodSleepReferenceMin * 10
	if q > 10 {
		return 10
	}
	if q < 0 {
		return 0
	}
	return q
}
