package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity types accepted by the API. The calorie estimator and the
// steps contribution rule key off these exact names.
const (
	ActivityRunning  = "running"
	ActivityCycling  = "cycling"
	ActivityHiking   = "hiking"
	ActivityWalking  = "walking"
	ActivitySwimming = "swimming"
)

type Activity struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `gorm:"index" json:"user_id" example:"1"`
	TypeName       string         `json:"type_name" example:"walking"`
	Duration       int            `json:"duration" example:"30"`
	Distance       int            `json:"distance" example:"500"`
	CaloriesBurned int            `json:"calories_burned" example:"133"`
	ActivityDate   time.Time      `json:"activity_date" example:"2024-11-27T00:00:00Z"`
	Notes          string         `json:"notes" example:"morning walk"`
}

func IsValidActivityType(typeName string) bool {
	switch typeName {
	case ActivityRunning, ActivityCycling, ActivityHiking, ActivityWalking, ActivitySwimming:
		return true
	}
	return false
}
