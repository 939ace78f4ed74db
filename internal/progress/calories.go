package progress

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrUnknownGoalType     = errors.New("unknown goal type")
)

// MET values per activity type, moderate effort averages.
var metValues = map[string]float64{
	"running":  9.8,
	"cycling":  7.5,
	"hiking":   6.0,
	"walking":  3.8,
	"swimming": 8.0,
}

// Calorie math assumes a fixed body weight until profiles carry one.
const assumedWeightKg = 70.0

// EstimateCalories returns the calories burned for an activity of the
// given type and duration in minutes: round(MET * weight * hours).
func EstimateCalories(typeName string, duration int) (int, error) {
	met, ok := metValues[typeName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivityType, typeName)
	}
	hours := float64(duration) / 60.0
	return int(math.Round(met * assumedWeightKg * hours)), nil
}
