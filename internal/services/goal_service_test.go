package services

import (
	"errors"
	"testing"

	"fittrack/internal/cache"
	"fittrack/internal/mocks"
	"fittrack/internal/models"
	"fittrack/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupGoalService() (*GoalService, *mocks.MockGoalRepository, *mocks.MockActivityRepository, *mocks.MockPageCache) {
	goalRepo := new(mocks.MockGoalRepository)
	activityRepo := new(mocks.MockActivityRepository)
	pageCache := new(mocks.MockPageCache)
	service := NewGoalService(mocks.FakeDB{}, goalRepo, activityRepo, pageCache)
	return service, goalRepo, activityRepo, pageCache
}

func TestGoalServiceCreateRecomputesCurrentValue(t *testing.T) {
	service, goalRepo, activityRepo, pageCache := setupGoalService()

	existing := []models.Activity{
		{UserID: 1, TypeName: "walking", Distance: 500, ActivityDate: november(27)},
		{UserID: 1, TypeName: "swimming", Distance: 500, ActivityDate: november(28)},
	}
	activityRepo.On("FindByUserIDAndDateRange", uint(1), november(20), november(30)).Return(existing, nil)
	goalRepo.On("Create", mock.AnythingOfType("*models.Goal")).Return(nil)
	pageCache.On("InvalidateUser", cache.KeyGoals, uint(1)).Return(nil)

	goal := models.Goal{UserID: 1, TypeName: models.GoalDistance, TargetValue: 1000, StartDate: november(20), EndDate: november(30)}
	require.NoError(t, service.Create(&goal))

	assert.Equal(t, 1000, goal.CurrentValue)
	assert.True(t, goal.IsAchieved)
	// A goal mutation leaves activity pages alone.
	pageCache.AssertNotCalled(t, "InvalidateUser", cache.KeyActivities, uint(1))
	goalRepo.AssertExpectations(t)
}

func TestGoalServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		goal     models.Goal
		expected error
	}{
		{
			name:     "unknown goal type",
			goal:     models.Goal{UserID: 1, TypeName: "streak", TargetValue: 100, StartDate: november(1), EndDate: november(10)},
			expected: progress.ErrUnknownGoalType,
		},
		{
			name:     "non-positive target",
			goal:     models.Goal{UserID: 1, TypeName: models.GoalSteps, TargetValue: 0, StartDate: november(1), EndDate: november(10)},
			expected: ErrInvalidTargetValue,
		},
		{
			name:     "inverted window",
			goal:     models.Goal{UserID: 1, TypeName: models.GoalSteps, TargetValue: 100, StartDate: november(10), EndDate: november(1)},
			expected: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, goalRepo, _, _ := setupGoalService()

			err := service.Create(&tt.goal)
			assert.ErrorIs(t, err, tt.expected)
			goalRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestGoalServiceUpdateRecomputesOverNewWindow(t *testing.T) {
	service, goalRepo, activityRepo, pageCache := setupGoalService()

	existing := models.Goal{ID: 3, UserID: 1, TypeName: models.GoalDistance, TargetValue: 1000, CurrentValue: 1000, IsAchieved: true, StartDate: november(20), EndDate: november(30)}
	goalRepo.On("FindForUpdate", uint(3)).Return(&existing, nil)

	// Narrowing the window drops one of the two counted activities.
	activityRepo.On("FindByUserIDAndDateRange", uint(1), november(20), november(27)).Return([]models.Activity{
		{UserID: 1, TypeName: "walking", Distance: 500, ActivityDate: november(27)},
	}, nil)

	var savedGoal models.Goal
	goalRepo.On("Update", mock.AnythingOfType("*models.Goal")).Run(func(args mock.Arguments) {
		savedGoal = *args.Get(0).(*models.Goal)
	}).Return(nil)
	pageCache.On("InvalidateUser", cache.KeyGoals, uint(1)).Return(nil)

	newEnd := november(27)
	updated, err := service.Update(&existing, UpdateGoalInput{EndDate: &newEnd})
	require.NoError(t, err)

	assert.Equal(t, 500, updated.CurrentValue)
	assert.False(t, updated.IsAchieved)
	assert.Equal(t, 500, savedGoal.CurrentValue)
	assert.Equal(t, 1000, existing.CurrentValue, "stored record stays untouched for the caller")
}

func TestGoalServiceUpdateRecomputesFromLockedRow(t *testing.T) {
	service, goalRepo, activityRepo, pageCache := setupGoalService()

	// The caller holds a copy loaded before an activity mutation committed;
	// the update must work from the row re-read under lock, not the copy.
	stale := models.Goal{ID: 3, UserID: 1, TypeName: models.GoalDistance, TargetValue: 1000, CurrentValue: 0, StartDate: november(20), EndDate: november(30)}
	locked := stale
	locked.StartDate = november(22)
	locked.CurrentValue = 400
	goalRepo.On("FindForUpdate", uint(3)).Return(&locked, nil)

	activityRepo.On("FindByUserIDAndDateRange", uint(1), november(22), november(30)).Return([]models.Activity{
		{UserID: 1, TypeName: "cycling", Distance: 400, ActivityDate: november(25)},
	}, nil)
	goalRepo.On("Update", mock.AnythingOfType("*models.Goal")).Return(nil)
	pageCache.On("InvalidateUser", cache.KeyGoals, uint(1)).Return(nil)

	newTarget := 300
	updated, err := service.Update(&stale, UpdateGoalInput{TargetValue: &newTarget})
	require.NoError(t, err)

	assert.Equal(t, november(22), updated.StartDate, "window comes from the locked row")
	assert.Equal(t, 400, updated.CurrentValue)
	assert.True(t, updated.IsAchieved)
	goalRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestGoalServiceUpdateWriteError(t *testing.T) {
	service, goalRepo, activityRepo, pageCache := setupGoalService()

	existing := models.Goal{ID: 3, UserID: 1, TypeName: models.GoalDistance, TargetValue: 1000, StartDate: november(20), EndDate: november(30)}
	goalRepo.On("FindForUpdate", uint(3)).Return(&existing, nil)
	activityRepo.On("FindByUserIDAndDateRange", uint(1), november(20), november(30)).Return([]models.Activity{}, nil)
	goalRepo.On("Update", mock.Anything).Return(errors.New("database error"))

	_, err := service.Update(&existing, UpdateGoalInput{})
	assert.Error(t, err)
	pageCache.AssertNotCalled(t, "InvalidateUser", mock.Anything, mock.Anything)
}

func TestGoalServiceDelete(t *testing.T) {
	service, goalRepo, _, pageCache := setupGoalService()

	goalRepo.On("Delete", uint(3)).Return(nil)
	pageCache.On("InvalidateUser", cache.KeyGoals, uint(1)).Return(nil)

	goal := models.Goal{ID: 3, UserID: 1}
	require.NoError(t, service.Delete(&goal))
	pageCache.AssertExpectations(t)
}

func TestGoalServiceListCacheMiss(t *testing.T) {
	service, goalRepo, _, pageCache := setupGoalService()

	goals := []models.Goal{{ID: 1, UserID: 1, TypeName: models.GoalSteps}}
	key := cache.PageKey(cache.KeyGoals, 1, 1, 10)
	pageCache.On("GetPage", key, mock.Anything).Return(false, nil)
	goalRepo.On("CountByUserID", uint(1)).Return(int64(1), nil)
	goalRepo.On("FindPageByUserID", uint(1), 10, 0).Return(goals, nil)
	pageCache.On("SetPage", key, mock.Anything).Return(nil)

	result, err := service.List(1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, goals, result.Data)
	assert.Equal(t, 1, result.TotalPages)
}

func TestGoalServiceListAchieved(t *testing.T) {
	service, goalRepo, _, _ := setupGoalService()

	achieved := []models.Goal{{ID: 2, UserID: 1, IsAchieved: true}}
	goalRepo.On("FindAchievedByUserID", uint(1)).Return(achieved, nil)

	goals, err := service.ListAchieved(1)
	require.NoError(t, err)
	assert.Equal(t, achieved, goals)
}
