package progress

import (
	"errors"
	"testing"
	"time"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

type stubActivityReader struct {
	activities []models.Activity
	err        error
}

func (s *stubActivityReader) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	var matched []models.Activity
	for _, a := range s.activities {
		if a.UserID == userID && !a.ActivityDate.Before(startDate) && !a.ActivityDate.After(endDate) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func november(day int) time.Time {
	return time.Date(2024, 11, day, 0, 0, 0, 0, time.UTC)
}

func TestRecalculateCurrentValue(t *testing.T) {
	reader := &stubActivityReader{activities: []models.Activity{
		{UserID: 1, TypeName: "walking", Duration: 30, Distance: 500, CaloriesBurned: 133, ActivityDate: november(27)},
		{UserID: 1, TypeName: "swimming", Duration: 45, Distance: 500, CaloriesBurned: 420, ActivityDate: november(28)},
		{UserID: 1, TypeName: "running", Duration: 60, Distance: 1000, CaloriesBurned: 686, ActivityDate: november(5)}, // outside window
		{UserID: 2, TypeName: "walking", Duration: 30, Distance: 900, CaloriesBurned: 133, ActivityDate: november(27)}, // other user
	}}

	tests := []struct {
		name     string
		goalType string
		expected int
	}{
		{name: "distance sums all matching activities", goalType: models.GoalDistance, expected: 1000},
		{name: "steps ignores swimming", goalType: models.GoalSteps, expected: 656},
		{name: "calories burned", goalType: models.GoalCaloriesBurned, expected: 553},
		{name: "duration", goalType: models.GoalDuration, expected: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := models.Goal{UserID: 1, TypeName: tt.goalType, StartDate: november(20), EndDate: november(30)}
			currentValue, err := RecalculateCurrentValue(reader, &goal)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, currentValue)
		})
	}
}

func TestRecalculateCurrentValueIncludesWindowBounds(t *testing.T) {
	reader := &stubActivityReader{activities: []models.Activity{
		{UserID: 1, TypeName: "cycling", Distance: 100, ActivityDate: november(20)},
		{UserID: 1, TypeName: "cycling", Distance: 200, ActivityDate: november(30)},
	}}
	goal := models.Goal{UserID: 1, TypeName: models.GoalDistance, StartDate: november(20), EndDate: november(30)}

	currentValue, err := RecalculateCurrentValue(reader, &goal)
	assert.NoError(t, err)
	assert.Equal(t, 300, currentValue)
}

func TestRecalculateCurrentValueEmptyWindow(t *testing.T) {
	goal := models.Goal{UserID: 1, TypeName: models.GoalDistance, StartDate: november(20), EndDate: november(30)}

	currentValue, err := RecalculateCurrentValue(&stubActivityReader{}, &goal)
	assert.NoError(t, err)
	assert.Equal(t, 0, currentValue)
}

func TestRecalculateCurrentValueReaderError(t *testing.T) {
	readErr := errors.New("database error")
	goal := models.Goal{UserID: 1, TypeName: models.GoalDistance, StartDate: november(20), EndDate: november(30)}

	_, err := RecalculateCurrentValue(&stubActivityReader{err: readErr}, &goal)
	assert.ErrorIs(t, err, readErr)
}

func TestRecalculateCurrentValueUnknownGoalType(t *testing.T) {
	reader := &stubActivityReader{activities: []models.Activity{
		{UserID: 1, TypeName: "walking", Distance: 500, ActivityDate: november(27)},
	}}
	goal := models.Goal{UserID: 1, TypeName: "streak", StartDate: november(20), EndDate: november(30)}

	_, err := RecalculateCurrentValue(reader, &goal)
	assert.ErrorIs(t, err, ErrUnknownGoalType)
}
