package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default sleep goal applied when a user has not set one explicitly.
const (
	DefaultGoalBedtime          = "22:30"
	DefaultGoalWakeTime         = "07:00"
	DefaultGoalDurationMinutes  = 510
	DefaultGoalWeekendVariation = 60
)

// SleepGoal is a user's explicit sleep target. One active goal per user;
// setting a new one replaces the previous.
type SleepGoal struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TargetBedtime           string    `gorm:"type:varchar(5);not null" json:"target_bedtime"`   // HH:MM
	TargetWakeTime          string    `gorm:"type:varchar(5);not null" json:"target_wake_time"` // HH:MM
	TargetDurationMinutes   int       `gorm:"not null" json:"target_duration_minutes"`
	Consistency             bool      `gorm:"not null;default:true" json:"consistency"`
	WeekendVariationMinutes int       `gorm:"not null;default:60" json:"weekend_variation_minutes"`
	AdaptToLifestyle        bool      `gorm:"not null;default:true" json:"adapt_to_lifestyle"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepGoal) TableName() string {
	return "sleep_goals"
}

// DefaultSleepGoal returns the documented default goal for a user without
// an explicit one.
func DefaultSleepGoal(userID uuid.UUID) *SleepGoal {
	return &SleepGoal{
		UserID:                  userID,
		TargetBedtime:           DefaultGoalBedtime,
		TargetWakeTime:          DefaultGoalWakeTime,
		TargetDurationMinutes:   DefaultGoalDurationMinutes,
		Consistency:             true,
		WeekendVariationMinutes: DefaultGoalWeekendVariation,
		AdaptToLifestyle:        true,
	}
}

// SetSleepGoalRequest is the request body for setting the active sleep goal.
// @Description Request payload for replacing the user's sleep goal.
type SetSleepGoalRequest struct {
	// Target bedtime as HH:MM
	TargetBedtime string `json:"target_bedtime" validate:"required,hhmm" example:"22:30"`
	// Target wake time as HH:MM
	TargetWakeTime string `json:"target_wake_time" validate:"required,hhmm" example:"07:00"`
	// Target sleep duration in minutes
	TargetDurationMinutes int `json:"target_duration_minutes" validate:"required,min=120,max=960" example:"510"`
	// Favor consistent wake times over raw cycle recommendations
	Consistency *bool `json:"consistency,omitempty"`
	// Allowed weekend drift in minutes
	WeekendVariationMinutes *int `json:"weekend_variation_minutes,omitempty" validate:"omitempty,min=0,max=240" example:"60"`
	// Whether the goal should adapt to observed lifestyle
	AdaptToLifestyle *bool `json:"adapt_to_lifestyle,omitempty"`
}
