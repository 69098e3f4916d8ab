package domain

import (
	"time"

	"github.com/google/uuid"
)

// OptimizationType categorizes why a schedule change was proposed.
type OptimizationType string

const (
	OptimizationCycleAlignment  OptimizationType = "cycle_alignment"
	OptimizationGoalConsistency OptimizationType = "goal_consistency"
	OptimizationChronotypeShift OptimizationType = "chronotype_shift"
	OptimizationSeasonalShift   OptimizationType = "seasonal_shift"
	OptimizationManual          OptimizationType = "manual"
)

// AlarmOptimization is one audit record of an applied or rejected schedule
// change. Records are append-only: corrections are new records, never
// mutations of old ones.
type AlarmOptimization struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AlarmID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"alarm_id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	OptimizationType OptimizationType `gorm:"type:varchar(32);not null" json:"optimization_type"`
	OldTime          string           `gorm:"type:varchar(5);not null" json:"old_time"` // HH:MM
	NewTime          string           `gorm:"type:varchar(5);not null" json:"new_time"` // HH:MM
	Reason           string           `gorm:"type:text;not null" json:"reason"`
	EffectiveDate    time.Time        `gorm:"not null" json:"effective_date"`
	Accepted         bool             `gorm:"not null" json:"accepted"`
	CreatedAt        time.Time        `gorm:"autoCreateTime;index" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AlarmOptimization) TableName() string {
	return "alarm_optimizations"
}

// RecordOptimizationRequest is the request body for recording an accepted or
// rejected schedule change.
// @Description Audit payload for one applied/rejected schedule change.
type RecordOptimizationRequest struct {
	AlarmID          uuid.UUID        `json:"alarm_id" validate:"required"`
	OptimizationType OptimizationType `json:"optimization_type" validate:"required,oneof=cycle_alignment goal_consistency chronotype_shift seasonal_shift manual"`
	OldTime          string           `json:"old_time" validate:"required,hhmm" example:"07:00"`
	NewTime          string           `json:"new_time" validate:"required,hhmm" example:"06:45"`
	Reason           string           `json:"reason" validate:"required,max=500"`
	EffectiveDate    time.Time        `json:"effective_date" validate:"required"`
	Accepted         bool             `json:"accepted"`
}

// OptimizationListResponse is the response body for optimization history.
type OptimizationListResponse struct {
	Data       []AlarmOptimization `json:"data"`
	Pagination PaginationResponse  `json:"pagination"`
}

// OptimizationFilter contains filter parameters for listing history.
type OptimizationFilter struct {
	AlarmID *uuid.UUID
	Limit   int
	Cursor  string
}
