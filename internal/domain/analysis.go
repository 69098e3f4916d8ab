package domain

// RecommendationType categorizes a schedule recommendation.
type RecommendationType string

const (
	RecommendationBedtimeEarlier    RecommendationType = "bedtime_earlier"
	RecommendationBedtimeLater      RecommendationType = "bedtime_later"
	RecommendationWakeConsistent    RecommendationType = "wake_consistent"
	RecommendationSleepGoal         RecommendationType = "sleep_goal"
	RecommendationWeekendAdjustment RecommendationType = "weekend_adjustment"
)

// RecommendationImpact grades how much a recommendation is expected to help.
type RecommendationImpact string

const (
	ImpactLow    RecommendationImpact = "low"
	ImpactMedium RecommendationImpact = "medium"
	ImpactHigh   RecommendationImpact = "high"
)

// ScheduleRecommendation is one actionable schedule change.
// @Description A prioritized schedule change suggestion.
type ScheduleRecommendation struct {
	Type        RecommendationType   `json:"type" example:"bedtime_earlier"`
	Description string               `json:"description" example:"Move your bedtime 30 minutes earlier to recover sleep debt."`
	Impact      RecommendationImpact `json:"impact" example:"high"`
	// Signed minute adjustment; negative means earlier
	TimeAdjustmentMinutes int    `json:"time_adjustment_minutes" example:"-30"`
	ExpectedImprovement   string `json:"expected_improvement" example:"Reduced sleep debt within a week"`
}

// UserScheduleAnalysis is the full derived picture of a user's schedule.
// Recomputed on demand, never persisted.
// @Description Derived schedule health metrics and recommendations.
type UserScheduleAnalysis struct {
	// Accumulated sleep shortfall over the trailing week, minutes, >= 0
	SleepDebtMinutes int `json:"sleep_debt_minutes" example:"120"`
	// Average sleep duration in minutes over the analysis window
	AverageSleepDuration int `json:"average_sleep_duration" example:"430"`
	// Variance-derived stability of bed/wake times, 0..100
	SleepConsistency float64 `json:"sleep_consistency" example:"72.5"`
	// How well actual timing matches the chronotype ideal, 0..100
	ChronotypeAlignment float64 `json:"chronotype_alignment" example:"81.0"`
	// The pattern the analysis was derived from
	Pattern SleepPattern `json:"pattern"`
	// Action items in rule-evaluation order (debt, consistency, alignment)
	Recommendations []ScheduleRecommendation `json:"recommendations"`
}

// WakeRecommendation is the raw per-alarm proposal produced by a cycle
// recommender, before goal blending is applied.
type WakeRecommendation struct {
	RecommendedTime       string         `json:"recommended_time"` // HH:MM
	Confidence            float64        `json:"confidence"`       // 0..1
	Reason                string         `json:"reason"`
	EstimatedSleepQuality float64        `json:"estimated_sleep_quality"` // 0..10
	WakeUpDifficulty      WakeDifficulty `json:"wake_up_difficulty"`
}
