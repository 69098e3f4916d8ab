package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepSession is one recorded night of sleep. Sessions are immutable once
// recorded; the engine only reads a bounded trailing window of them. Stage
// minutes are optional and come pre-computed from the tracking device.
type SleepSession struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_sessions_user_bedtime" json:"user_id"`
	Bedtime       time.Time `gorm:"not null;index:idx_sleep_sessions_user_bedtime,sort:desc" json:"bedtime"`
	WakeTime      time.Time `gorm:"not null" json:"wake_time"`
	SleepDuration int       `gorm:"not null" json:"sleep_duration"` // minutes
	DeepMinutes   *int      `json:"deep_minutes,omitempty"`
	RemMinutes    *int      `json:"rem_minutes,omitempty"`
	LightMinutes  *int      `json:"light_minutes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// BedtimeMinutes returns the bedtime as minutes after midnight.
func (s *SleepSession) BedtimeMinutes() int {
	return s.Bedtime.Hour()*60 + s.Bedtime.Minute()
}

// WakeMinutes returns the wake time as minutes after midnight.
func (s *SleepSession) WakeMinutes() int {
	return s.WakeTime.Hour()*60 + s.WakeTime.Minute()
}

// CreateSleepSessionRequest is the request body for recording a sleep session.
// @Description Request payload for recording one night of sleep.
type CreateSleepSessionRequest struct {
	// Bedtime in RFC3339 format
	Bedtime time.Time `json:"bedtime" validate:"required" example:"2026-01-15T23:00:00Z"`
	// Wake time in RFC3339 format (must be after bedtime)
	WakeTime time.Time `json:"wake_time" validate:"required,gtfield=Bedtime" example:"2026-01-16T07:00:00Z"`
	// Actual sleep duration in minutes (may be less than time in bed)
	SleepDuration int  `json:"sleep_duration" validate:"required,min=1,max=1440" example:"460"`
	DeepMinutes   *int `json:"deep_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
	RemMinutes    *int `json:"rem_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
	LightMinutes  *int `json:"light_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
}

// SleepSessionListResponse is the response body for listing sleep sessions.
type SleepSessionListResponse struct {
	Data       []SleepSession     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}

// SleepSessionFilter contains filter parameters for listing sessions.
type SleepSessionFilter struct {
	Limit  int
	Cursor string
}
