package progress

import "fittrack/internal/models"

// The tracker adjusts goals in place by the delta a single activity
// mutation causes, instead of rescanning all activities per goal. The
// caller is responsible for loading the affected goals (locked inside the
// same transaction that writes the activity) and persisting them after.

func refresh(goal *models.Goal) {
	if goal.CurrentValue < 0 {
		goal.CurrentValue = 0
	}
	goal.IsAchieved = goal.CurrentValue >= goal.TargetValue
}

// ApplyActivityCreated adds the new activity's contribution to every goal.
// All goals passed in must have a window containing the activity's date.
func ApplyActivityCreated(goals []models.Goal, activity *models.Activity) error {
	for i := range goals {
		contribution, err := Contribution(goals[i].TypeName, activity)
		if err != nil {
			return err
		}
		goals[i].CurrentValue += contribution
		refresh(&goals[i])
	}
	return nil
}

// ApplyActivityUpdated moves each goal from the old activity's contribution
// to the new one's. Window membership is tested against the old and new
// activity dates independently, so an edit that moves the activity out of a
// goal's window subtracts without re-adding, and one that moves it in adds
// without subtracting. Goals containing neither date are left untouched.
func ApplyActivityUpdated(goals []models.Goal, oldActivity, newActivity *models.Activity) error {
	for i := range goals {
		goal := &goals[i]
		touched := false

		if goal.ContainsDate(oldActivity.ActivityDate) {
			contribution, err := Contribution(goal.TypeName, oldActivity)
			if err != nil {
				return err
			}
			goal.CurrentValue -= contribution
			touched = true
		}
		if goal.ContainsDate(newActivity.ActivityDate) {
			contribution, err := Contribution(goal.TypeName, newActivity)
			if err != nil {
				return err
			}
			goal.CurrentValue += contribution
			touched = true
		}
		if touched {
			refresh(goal)
		}
	}
	return nil
}

// ApplyActivityDeleted subtracts the deleted activity's contribution from
// every goal, flooring the current value at zero.
func ApplyActivityDeleted(goals []models.Goal, activity *models.Activity) error {
	for i := range goals {
		contribution, err := Contribution(goals[i].TypeName, activity)
		if err != nil {
			return err
		}
		goals[i].CurrentValue -= contribution
		refresh(&goals[i])
	}
	return nil
}
