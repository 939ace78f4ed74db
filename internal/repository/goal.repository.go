package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository interface {
	Create(goal *models.Goal) error
	FindByID(id uint) (*models.Goal, error)
	FindForUpdate(id uint) (*models.Goal, error)
	FindPageByUserID(userID uint, limit, offset int) ([]models.Goal, error)
	CountByUserID(userID uint) (int64, error)
	FindAchievedByUserID(userID uint) ([]models.Goal, error)
	FindMatchingGoals(userID uint, dates ...time.Time) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) GoalRepository
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db}
}

func (r *goalRepository) WithTx(tx *gorm.DB) GoalRepository {
	return &goalRepository{db: tx}
}

func (r *goalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

func (r *goalRepository) FindByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// FindForUpdate loads one goal with its row locked FOR UPDATE. Activity
// mutations lock the same row through FindMatchingGoals, so a caller that
// rewrites the goal inside a transaction is serialized against them.
func (r *goalRepository) FindForUpdate(id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) FindPageByUserID(userID uint, limit, offset int) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&goals).Error
	return goals, err
}

func (r *goalRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Goal{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *goalRepository) FindAchievedByUserID(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("user_id = ? AND is_achieved = ?", userID, true).
		Order("updated_at DESC").
		Find(&goals).Error
	return goals, err
}

// FindMatchingGoals loads every goal of the user whose window contains any
// of the given dates. Rows are locked FOR UPDATE: this query only runs
// inside activity-mutation transactions, and the lock serializes concurrent
// delta writes against the same goals. Ordered by id to keep lock
// acquisition order stable across concurrent transactions.
func (r *goalRepository) FindMatchingGoals(userID uint, dates ...time.Time) ([]models.Goal, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	window := r.db.Where("start_date <= ? AND end_date >= ?", dates[0], dates[0])
	for _, date := range dates[1:] {
		window = window.Or("start_date <= ? AND end_date >= ?", date, date)
	}

	var goals []models.Goal
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Where(window).
		Order("id").
		Find(&goals).Error
	return goals, err
}

func (r *goalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

func (r *goalRepository) Delete(id uint) error {
	return r.db.Delete(&models.Goal{}, id).Error
}
