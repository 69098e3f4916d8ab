package service

import (
	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/pkg/timeofday"
)

const (
	// misalignmentRangeMinutes is the gap treated as complete
	// misalignment: 3 hours off the ideal scores zero.
	misalignmentRangeMinutes = 180

	// neutralAlignmentScore is returned when no enabled alarms exist:
	// insufficient signal, not a penalty.
	neutralAlignmentScore = 50
)

// ChronotypeAlignment scores how well a user's actual timing matches the
// ideal timing for their chronotype, 0..100. Two sub-scores are averaged
// unweighted: average enabled-alarm time vs. ideal wake time, and the
// pattern's average bedtime vs. ideal bedtime.
func ChronotypeAlignment(pattern *domain.SleepPattern, alarms []domain.Alarm) float64 {
	if pattern == nil {
		return neutralAlignmentScore
	}

	ideal := domain.IdealTimingFor(pattern.Chronotype)

	var enabledSum, enabledCount int
	for _, alarm := range alarms {
		if !alarm.Enabled {
			continue
		}
		minutes, err := timeofday.Parse(alarm.Time)
		if err != nil {
			continue
		}
		enabledSum += minutes
		enabledCount++
	}
	if enabledCount == 0 {
		return neutralAlignmentScore
	}

	avgAlarmMinutes := enabledSum / enabledCount
	wakeScore := alignmentSubScore(avgAlarmMinutes, ideal.WakeMinutes)

	bedtimeMinutes, err := timeofday.Parse(pattern.AverageBedtime)
	if err != nil {
		return neutralAlignmentScore
	}
	bedtimeScore := alignmentSubScore(bedtimeMinutes, ideal.BedtimeMinutes)

	return (wakeScore + bedtimeScore) / 2
}

// alignmentSubScore maps a minute gap to [0,100], with 180 minutes or more
// scoring zero. Distances are measured on the 24h circle so a 23:50 bedtime
// against a 00:10 ideal counts as 20 minutes, not 23 hours.
func alignmentSubScore(actual, ideal int) float64 {
	diff := float64(timeofday.CircularDiff(actual, ideal))
	score := 100 - (diff/misalignmentRangeMinutes)*100
	if score < 0 {
		return 0
	}
	return score
}
