package domain

// ScheduleInsightsContext is the data bundle handed to the LLM when
// narrating a schedule analysis.
type ScheduleInsightsContext struct {
	Analysis UserScheduleAnalysis `json:"analysis"`
	Goal     SleepGoal            `json:"goal"`
	// Enabled alarms with their current smart schedules
	Alarms []Alarm `json:"alarms"`
}

// LLMInsightsOutput is the structured narrative returned by the LLM.
// @Description LLM-generated narrative about the user's schedule.
type LLMInsightsOutput struct {
	// 2-3 sentence summary of schedule health
	Summary string `json:"summary"`
	// Bullet observations about debt, consistency, and alignment
	Observations []string `json:"observations"`
	// Concrete behavioral suggestions
	Guidance []string `json:"guidance"`
}

// ScheduleInsightsResponse is the response body for the insights endpoint.
type ScheduleInsightsResponse struct {
	Analysis UserScheduleAnalysis `json:"analysis"`
	Insights LLMInsightsOutput    `json:"insights"`
}
