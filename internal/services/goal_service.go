package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/progress"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidTargetValue = errors.New("target value must be positive")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)

// GoalPage is the payload returned (and cached verbatim) for one page of a
// user's goals.
type GoalPage struct {
	Data        []models.Goal `json:"data"`
	TotalItems  int64         `json:"total_items"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
	Limit       int           `json:"limit"`
}

// UpdateGoalInput carries the fields an update may change; nil means keep
// the stored value.
type UpdateGoalInput struct {
	TypeName    *string
	TargetValue *int
	StartDate   *time.Time
	EndDate     *time.Time
}

type GoalService struct {
	db         transactor
	goals      repository.GoalRepository
	activities repository.ActivityRepository
	cache      cache.PageCache
}

func NewGoalService(db transactor, goals repository.GoalRepository, activities repository.ActivityRepository, pageCache cache.PageCache) *GoalService {
	return &GoalService{
		db:         db,
		goals:      goals,
		activities: activities,
		cache:      pageCache,
	}
}

func validateGoal(goal *models.Goal) error {
	if !models.IsValidGoalType(goal.TypeName) {
		return fmt.Errorf("%w: %q", progress.ErrUnknownGoalType, goal.TypeName)
	}
	if goal.TargetValue <= 0 {
		return ErrInvalidTargetValue
	}
	if goal.EndDate.Before(goal.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Create computes the goal's starting current value from the activities
// already inside its window, then persists it, in one transaction.
func (s *GoalService) Create(goal *models.Goal) error {
	if err := validateGoal(goal); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		currentValue, err := progress.RecalculateCurrentValue(s.activities.WithTx(tx), goal)
		if err != nil {
			return err
		}
		goal.CurrentValue = currentValue
		goal.IsAchieved = currentValue >= goal.TargetValue

		return s.goals.WithTx(tx).Create(goal)
	})
	if err != nil {
		return err
	}

	s.invalidateCache(goal.UserID)
	return nil
}

// Update applies the changed fields and recomputes the current value from
// scratch: a window or type change invalidates any incrementally tracked
// total, so the full recompute is the only safe path here. The goal row is
// re-read FOR UPDATE inside the transaction; activity mutations lock the
// same row through FindMatchingGoals, so a delta committed concurrently
// cannot be overwritten by a stale recompute.
func (s *GoalService) Update(existing *models.Goal, input UpdateGoalInput) (*models.Goal, error) {
	var updated models.Goal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		goalRepo := s.goals.WithTx(tx)
		current, err := goalRepo.FindForUpdate(existing.ID)
		if err != nil {
			return err
		}

		updated = *current
		if input.TypeName != nil {
			updated.TypeName = *input.TypeName
		}
		if input.TargetValue != nil {
			updated.TargetValue = *input.TargetValue
		}
		if input.StartDate != nil {
			updated.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			updated.EndDate = *input.EndDate
		}
		if err := validateGoal(&updated); err != nil {
			return err
		}

		currentValue, err := progress.RecalculateCurrentValue(s.activities.WithTx(tx), &updated)
		if err != nil {
			return err
		}
		updated.CurrentValue = currentValue
		updated.IsAchieved = currentValue >= updated.TargetValue

		return goalRepo.Update(&updated)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(updated.UserID)
	return &updated, nil
}

func (s *GoalService) Delete(goal *models.Goal) error {
	if err := s.goals.Delete(goal.ID); err != nil {
		return err
	}
	s.invalidateCache(goal.UserID)
	return nil
}

// List returns one page of the user's goals, read through the cache. A
// cache backend failure falls back to the database.
func (s *GoalService) List(userID uint, page, limit int) (*GoalPage, error) {
	page, limit = normalizePage(page, limit)
	key := cache.PageKey(cache.KeyGoals, userID, page, limit)

	if s.cache != nil {
		var cached GoalPage
		hit, err := s.cache.GetPage(key, &cached)
		if err != nil {
			log.Printf("Cache read failed for %s, falling back to database: %v", key, err)
		} else if hit {
			return &cached, nil
		}
	}

	total, err := s.goals.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.FindPageByUserID(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	result := &GoalPage{
		Data:        goals,
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

func (s *GoalService) ListAchieved(userID uint) ([]models.Goal, error) {
	return s.goals.FindAchievedByUserID(userID)
}

// Goal mutations leave activity pages untouched, so only the goals
// namespace is dropped.
func (s *GoalService) invalidateCache(userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUser(cache.KeyGoals, userID); err != nil {
		log.Printf("Failed to invalidate goals cache for user %d: %v", userID, err)
	}
}
