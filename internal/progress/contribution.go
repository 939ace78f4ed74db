package progress

import (
	"fmt"
	"math"

	"fittrack/internal/models"
)

// Average stride conversion: steps per unit of recorded distance.
const stepsPerDistanceUnit = 1.3123

// Contribution returns the amount a single activity adds to a goal of the
// given type. Both the incremental tracker and the full recalculation go
// through this function, so the two paths cannot drift apart.
func Contribution(goalType string, activity *models.Activity) (int, error) {
	switch goalType {
	case models.GoalSteps:
		// Only foot-based activities produce steps.
		switch activity.TypeName {
		case models.ActivityRunning, models.ActivityWalking, models.ActivityHiking:
			return int(math.Round(float64(activity.Distance) * stepsPerDistanceUnit)), nil
		}
		return 0, nil
	case models.GoalDistance:
		return activity.Distance, nil
	case models.GoalCaloriesBurned:
		return activity.CaloriesBurned, nil
	case models.GoalDuration:
		return activity.Duration, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGoalType, goalType)
}
