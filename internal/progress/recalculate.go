package progress

import (
	"time"

	"fittrack/internal/models"
)

// ActivityReader is the slice of the activity repository the recalculation
// needs: every activity a user logged inside a date window.
type ActivityReader interface {
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error)
}

// RecalculateCurrentValue recomputes a goal's current value from scratch by
// summing the contribution of every owned activity whose date falls inside
// the goal's window. Used on goal create and update, where the window or
// type may have changed and an incremental delta would be unsafe.
func RecalculateCurrentValue(reader ActivityReader, goal *models.Goal) (int, error) {
	activities, err := reader.FindByUserIDAndDateRange(goal.UserID, goal.StartDate, goal.EndDate)
	if err != nil {
		return 0, err
	}

	currentValue := 0
	for i := range activities {
		contribution, err := Contribution(goal.TypeName, &activities[i])
		if err != nil {
			return 0, err
		}
		currentValue += contribution
	}
	return currentValue, nil
}
