package service

import (
	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/pkg/timeofday"
)

const (
	// consistencyWindowSessions is how many trailing sessions both the
	// consistency score and sleep debt are computed over.
	consistencyWindowSessions = 7

	// maxVariance is the variance mapping to a zero consistency score:
	// 14400 = 120², i.e. a two-hour standard deviation.
	maxVariance = 14400.0
)

// ConsistencyScore maps the variance of bedtime and wake time across the
// trailing 7 sessions to [0,100]. Fewer than 7 sessions returns 0: sparse
// data cannot be assessed for consistency, and that is an explicit policy
// rather than a silently defaulted score.
func ConsistencyScore(sessions []domain.SleepSession) float64 {
	if len(sessions) < consistencyWindowSessions {
		return 0
	}
	window := sessions[:consistencyWindowSessions]

	bedtimes := make([]float64, len(window))
	wakes := make([]float64, len(window))
	for i, sess := range window {
		// Signed offsets keep a 23:50/00:10 bedtime pair close together.
		bedtimes[i] = float64(timeofday.SignedOffset(sess.BedtimeMinutes()))
		wakes[i] = float64(sess.WakeMinutes())
	}

	avgVariance := (variance(bedtimes) + variance(wakes)) / 2
	score := 100 - (avgVariance/maxVariance)*100
	if score < 0 {
		return 0
	}
	return score
}

// SleepDebt sums the per-session shortfall against the goal's target
// duration over the trailing 7 sessions. Surplus nights do not produce
// negative debt; each deficit is floored at zero. A nil goal means no debt.
func SleepDebt(sessions []domain.SleepSession, goal *domain.SleepGoal) int {
	if goal == nil {
		return 0
	}

	window := sessions
	if len(window) > consistencyWindowSessions {
		window = window[:consistencyWindowSessions]
	}

	debt := 0
	for _, sess := range window {
		if deficit := goal.TargetDurationMinutes - sess.SleepDuration; deficit > 0 {
			debt += deficit
		}
	}
	return debt
}

// variance is the population variance of the values.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}
