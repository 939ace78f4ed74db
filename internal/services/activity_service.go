package services

import (
	"database/sql"
	"log"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/progress"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// transactor is the slice of *gorm.DB the services need: run a closure as
// one transaction, rolled back if the closure errors.
type transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// ActivityPage is the payload returned (and cached verbatim) for one page
// of a user's activities.
type ActivityPage struct {
	Data        []models.Activity `json:"data"`
	TotalItems  int64             `json:"total_items"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
	Limit       int               `json:"limit"`
}

// UpdateActivityInput carries the fields an update may change; nil means
// keep the stored value.
type UpdateActivityInput struct {
	TypeName     *string
	Duration     *int
	Distance     *int
	Notes        *string
	ActivityDate *time.Time
}

type ActivityService struct {
	db         transactor
	activities repository.ActivityRepository
	goals      repository.GoalRepository
	cache      cache.PageCache
}

// NewActivityService builds the activity orchestration layer. pageCache may
// be nil, in which case every list goes to the database.
func NewActivityService(db transactor, activities repository.ActivityRepository, goals repository.GoalRepository, pageCache cache.PageCache) *ActivityService {
	return &ActivityService{
		db:         db,
		activities: activities,
		goals:      goals,
		cache:      pageCache,
	}
}

// Create persists the activity and folds its contribution into every goal
// whose window contains the activity date, all in one transaction. Caches
// are invalidated only after the transaction commits.
func (s *ActivityService) Create(activity *models.Activity) error {
	calories, err := progress.EstimateCalories(activity.TypeName, activity.Duration)
	if err != nil {
		return err
	}
	activity.CaloriesBurned = calories

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.activities.WithTx(tx).Create(activity); err != nil {
			return err
		}
		goalRepo := s.goals.WithTx(tx)
		goals, err := goalRepo.FindMatchingGoals(activity.UserID, activity.ActivityDate)
		if err != nil {
			return err
		}
		if err := progress.ApplyActivityCreated(goals, activity); err != nil {
			return err
		}
		for i := range goals {
			if err := goalRepo.Update(&goals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCaches(activity.UserID)
	return nil
}

// Update applies the changed fields, recomputes calories, and moves every
// affected goal from the old contribution to the new one. Goals are matched
// against both the old and the new activity date, so moving an activity out
// of a window subtracts its contribution there and moving it into another
// window adds it there.
func (s *ActivityService) Update(existing *models.Activity, input UpdateActivityInput) (*models.Activity, error) {
	oldActivity := *existing
	updated := *existing
	if input.TypeName != nil {
		updated.TypeName = *input.TypeName
	}
	if input.Duration != nil {
		updated.Duration = *input.Duration
	}
	if input.Distance != nil {
		updated.Distance = *input.Distance
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	if input.ActivityDate != nil {
		updated.ActivityDate = *input.ActivityDate
	}

	calories, err := progress.EstimateCalories(updated.TypeName, updated.Duration)
	if err != nil {
		return nil, err
	}
	updated.CaloriesBurned = calories

	err = s.db.Transaction(func(tx *gorm.DB) error {
		goalRepo := s.goals.WithTx(tx)
		goals, err := goalRepo.FindMatchingGoals(updated.UserID, oldActivity.ActivityDate, updated.ActivityDate)
		if err != nil {
			return err
		}
		if err := progress.ApplyActivityUpdated(goals, &oldActivity, &updated); err != nil {
			return err
		}
		if err := s.activities.WithTx(tx).Update(&updated); err != nil {
			return err
		}
		for i := range goals {
			if err := goalRepo.Update(&goals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(updated.UserID)
	return &updated, nil
}

// Delete removes the activity and subtracts its contribution from every
// goal whose window contains it, flooring current values at zero.
func (s *ActivityService) Delete(activity *models.Activity) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		goalRepo := s.goals.WithTx(tx)
		goals, err := goalRepo.FindMatchingGoals(activity.UserID, activity.ActivityDate)
		if err != nil {
			return err
		}
		if err := progress.ApplyActivityDeleted(goals, activity); err != nil {
			return err
		}
		if err := s.activities.WithTx(tx).Delete(activity.ID); err != nil {
			return err
		}
		for i := range goals {
			if err := goalRepo.Update(&goals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCaches(activity.UserID)
	return nil
}

// List returns one page of the user's activities, read through the cache.
// A cache backend failure falls back to the database.
func (s *ActivityService) List(userID uint, page, limit int) (*ActivityPage, error) {
	page, limit = normalizePage(page, limit)
	key := cache.PageKey(cache.KeyActivities, userID, page, limit)

	if s.cache != nil {
		var cached ActivityPage
		hit, err := s.cache.GetPage(key, &cached)
		if err != nil {
			log.Printf("Cache read failed for %s, falling back to database: %v", key, err)
		} else if hit {
			return &cached, nil
		}
	}

	total, err := s.activities.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.FindPageByUserID(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	result := &ActivityPage{
		Data:        activities,
		TotalItems:  total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Limit:       limit,
	}
	if s.cache != nil {
		if err := s.cache.SetPage(key, result); err != nil {
			log.Printf("Failed to cache %s: %v", key, err)
		}
	}
	return result, nil
}

// An activity mutation can change both the activity pages and every goal's
// progress, so both namespaces are dropped.
func (s *ActivityService) invalidateCaches(userID uint) {
	if s.cache == nil {
		return
	}
	for _, prefix := range []string{cache.KeyActivities, cache.KeyGoals} {
		if err := s.cache.InvalidateUser(prefix, userID); err != nil {
			log.Printf("Failed to invalidate %s cache for user %d: %v", prefix, userID, err)
		}
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
