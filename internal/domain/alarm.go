package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WakeDifficulty estimates how hard waking at the suggested time will be.
type WakeDifficulty string

const (
	WakeDifficultyEasy     WakeDifficulty = "easy"
	WakeDifficultyModerate WakeDifficulty = "moderate"
	WakeDifficultyHard     WakeDifficulty = "hard"
)

// SmartSchedule is the engine's wake-time suggestion for one alarm. It is a
// value object replaced wholesale on every recomputation, never partially
// mutated.
// @Description Computed wake-time suggestion with confidence and rationale.
type SmartSchedule struct {
	// The alarm's configured time (HH:MM)
	OriginalTime string `json:"original_time" example:"07:00"`
	// The suggested wake time (HH:MM)
	SuggestedTime string `json:"suggested_time" example:"06:45"`
	// Confidence in the suggestion, 0..1
	Confidence float64 `json:"confidence" example:"0.85"`
	// Human-readable rationale for the suggestion
	Reason string `json:"reason" example:"Aligned to the end of a 90-minute sleep cycle."`
	// Estimated sleep quality at the suggested time, 0..10
	SleepQuality float64 `json:"sleep_quality" example:"7.5"`
	// Estimated wake-up difficulty
	WakeUpDifficulty WakeDifficulty `json:"wake_up_difficulty" example:"easy"`
	// When this schedule was computed
	LastUpdated time.Time `json:"last_updated"`
}

// FallbackSchedule is the degraded schedule used when no recommendation can
// be computed. The alarm keeps working; only the smart enhancement is absent.
func FallbackSchedule(originalTime string, now time.Time) *SmartSchedule {
	return &SmartSchedule{
		OriginalTime:     originalTime,
		SuggestedTime:    originalTime,
		Confidence:       0,
		Reason:           "No sleep data available",
		SleepQuality:     0,
		WakeUpDifficulty: WakeDifficultyModerate,
		LastUpdated:      now,
	}
}

// Alarm is a user's alarm with smart-scheduling settings. The embedded
// schedule is stored as a single JSON column so recomputation replaces it
// atomically.
type Alarm struct {
	ID      uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID                `gorm:"type:uuid;not null;index" json:"user_id"`
	Time    string                   `gorm:"type:varchar(5);not null" json:"time"` // HH:MM
	Label   string                   `gorm:"type:varchar(120);not null;default:''" json:"label"`
	Days    datatypes.JSONSlice[int] `gorm:"not null" json:"days"` // 0=Sunday..6=Saturday
	Enabled bool                     `gorm:"not null;default:true" json:"enabled"`

	SmartEnabled       bool `gorm:"not null;default:false" json:"smart_enabled"`
	WakeWindow         int  `gorm:"not null;default:30" json:"wake_window"` // minutes
	AdaptiveEnabled    bool `gorm:"not null;default:false" json:"adaptive_enabled"`
	SleepGoalMinutes   int  `gorm:"not null;default:480" json:"sleep_goal_minutes"`
	Consistency        bool `gorm:"not null;default:true" json:"consistency"`
	SeasonalAdjustment bool `gorm:"not null;default:false" json:"seasonal_adjustment"`

	Schedule *SmartSchedule `gorm:"type:jsonb;serializer:json" json:"smart_schedule,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Alarm) TableName() string {
	return "alarms"
}

// CreateAlarmRequest is the request body for creating a smart alarm.
// @Description Request payload for creating an alarm.
type CreateAlarmRequest struct {
	// Alarm time as HH:MM
	Time string `json:"time" validate:"required,hhmm" example:"07:00"`
	// Optional label
	Label string `json:"label" validate:"max=120" example:"Workday"`
	// Enabled days, 0=Sunday..6=Saturday
	Days []int `json:"days" validate:"required,min=1,max=7,dive,min=0,max=6" example:"1,2,3,4,5"`
	// Whether the alarm rings at all
	Enabled *bool `json:"enabled,omitempty"`
	// Whether smart scheduling is computed for this alarm
	SmartEnabled bool `json:"smart_enabled" example:"true"`
	// Tolerance in minutes for shifting the wake time (default 30)
	WakeWindow *int `json:"wake_window,omitempty" validate:"omitempty,min=5,max=120" example:"30"`
	// Whether the periodic batch job may keep adapting this alarm
	AdaptiveEnabled bool `json:"adaptive_enabled" example:"true"`
	// Per-alarm sleep target in minutes (default 480)
	SleepGoalMinutes *int `json:"sleep_goal_minutes,omitempty" validate:"omitempty,min=120,max=960" example:"480"`
	// Favor schedule consistency when blending with the sleep goal
	Consistency *bool `json:"consistency,omitempty"`
	// Apply a small seasonal shift to suggestions
	SeasonalAdjustment bool `json:"seasonal_adjustment" example:"false"`
}

// UpdateAlarmRequest is the request body for partially updating an alarm.
// The schedule is recomputed only when Time, Days, or SmartEnabled change.
type UpdateAlarmRequest struct {
	Time               *string `json:"time,omitempty" validate:"omitempty,hhmm"`
	Label              *string `json:"label,omitempty" validate:"omitempty,max=120"`
	Days               []int   `json:"days,omitempty" validate:"omitempty,min=1,max=7,dive,min=0,max=6"`
	Enabled            *bool   `json:"enabled,omitempty"`
	SmartEnabled       *bool   `json:"smart_enabled,omitempty"`
	WakeWindow         *int    `json:"wake_window,omitempty" validate:"omitempty,min=5,max=120"`
	AdaptiveEnabled    *bool   `json:"adaptive_enabled,omitempty"`
	SleepGoalMinutes   *int    `json:"sleep_goal_minutes,omitempty" validate:"omitempty,min=120,max=960"`
	Consistency        *bool   `json:"consistency,omitempty"`
	SeasonalAdjustment *bool   `json:"seasonal_adjustment,omitempty"`
}

// AlarmListResponse is the response body for listing a user's alarms.
type AlarmListResponse struct {
	Data []Alarm `json:"data"`
}
