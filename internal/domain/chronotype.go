package domain

// Chronotype classifies a user's circadian tendency from their average
// bedtime.
// @Description Circadian tendency derived from average bedtime.
type Chronotype string

const (
	ChronotypeExtremeEarly Chronotype = "extreme_early"
	ChronotypeEarly        Chronotype = "early"
	ChronotypeNormal       Chronotype = "normal"
	ChronotypeLate         Chronotype = "late"
	ChronotypeExtremeLate  Chronotype = "extreme_late"
)

// Bucket thresholds, expressed as signed minutes relative to midnight
// (negative = before midnight). A bedtime exactly on a boundary falls into
// the earlier bucket.
const (
	extremeEarlyThreshold = -180 // 21:00
	earlyThreshold        = -90  // 22:30
	normalThreshold       = -30  // 23:30
	lateThreshold         = 0    // 00:00
)

// ClassifyChronotype maps a signed average-bedtime offset (minutes relative
// to midnight) to a chronotype bucket.
func ClassifyChronotype(signedBedtime int) Chronotype {
	switch {
	case signedBedtime <= extremeEarlyThreshold:
		return ChronotypeExtremeEarly
	case signedBedtime <= earlyThreshold:
		return ChronotypeEarly
	case signedBedtime <= normalThreshold:
		return ChronotypeNormal
	case signedBedtime <= lateThreshold:
		return ChronotypeLate
	default:
		return ChronotypeExtremeLate
	}
}

// IdealTiming holds the reference bedtime and wake time for a chronotype,
// as minutes after midnight.
type IdealTiming struct {
	BedtimeMinutes int
	WakeMinutes    int
}

var idealTimings = map[Chronotype]IdealTiming{
	ChronotypeExtremeEarly: {BedtimeMinutes: 21 * 60, WakeMinutes: 5*60 + 30},
	ChronotypeEarly:        {BedtimeMinutes: 22 * 60, WakeMinutes: 6*60 + 30},
	ChronotypeNormal:       {BedtimeMinutes: 22*60 + 30, WakeMinutes: 7 * 60},
	ChronotypeLate:         {BedtimeMinutes: 23*60 + 30, WakeMinutes: 8*60 + 30},
	ChronotypeExtremeLate:  {BedtimeMinutes: 30, WakeMinutes: 9*60 + 30},
}

// IdealTimingFor returns the fixed ideal bedtime/wake time for a chronotype.
// Unknown values fall back to the normal chronotype.
func IdealTimingFor(c Chronotype) IdealTiming {
	if t, ok := idealTimings[c]; ok {
		return t
	}
	return idealTimings[ChronotypeNormal]
}

// SleepPattern summarizes a window of sleep sessions. It is recomputed on
// every analysis call and never persisted.
// @Description Aggregated sleep timing summary for a user.
type SleepPattern struct {
	// Average bedtime as HH:MM
	AverageBedtime string `json:"average_bedtime" example:"23:10"`
	// Average wake time as HH:MM
	AverageWakeTime string `json:"average_wake_time" example:"07:05"`
	// Average sleep duration in minutes
	AverageSleepDuration int `json:"average_sleep_duration" example:"455"`
	// Chronotype classified from average bedtime
	Chronotype Chronotype `json:"chronotype" example:"normal"`
}
