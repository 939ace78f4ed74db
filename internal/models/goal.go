package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal types. CurrentValue accumulates a different activity field per type.
const (
	GoalSteps          = "steps"
	GoalDistance       = "distance"
	GoalCaloriesBurned = "calories burned"
	GoalDuration       = "duration"
)

type Goal struct {
	ID           uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt    time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID       uint           `gorm:"index" json:"user_id" example:"1"`
	TypeName     string         `json:"type_name" example:"distance"`
	TargetValue  int            `json:"target_value" example:"1000"`
	CurrentValue int            `json:"current_value" example:"500"`
	StartDate    time.Time      `json:"start_date" example:"2024-11-20T00:00:00Z"`
	EndDate      time.Time      `json:"end_date" example:"2024-11-30T00:00:00Z"`
	IsAchieved   bool           `json:"is_achieved" example:"false"`
}

func IsValidGoalType(typeName string) bool {
	switch typeName {
	case GoalSteps, GoalDistance, GoalCaloriesBurned, GoalDuration:
		return true
	}
	return false
}

// ContainsDate reports whether date falls inside the goal's
// [StartDate, EndDate] window, inclusive on both ends.
func (g *Goal) ContainsDate(date time.Time) bool {
	return !date.Before(g.StartDate) && !date.After(g.EndDate)
}
