package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(id uint) (*models.Activity, error)
	FindPageByUserID(userID uint, limit, offset int) ([]models.Activity, error)
	CountByUserID(userID uint) (int64, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) ActivityRepository
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

// WithTx returns a repository bound to the given transaction, so activity
// writes and goal updates can share one unit of work.
func (r *activityRepository) WithTx(tx *gorm.DB) ActivityRepository {
	return &activityRepository{db: tx}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindPageByUserID(userID uint, limit, offset int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("activity_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *activityRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND activity_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("activity_date DESC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) Delete(id uint) error {
	return r.db.Delete(&models.Activity{}, id).Error
}
