package mocks

import (
	"database/sql"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// FakeDB runs the transaction closure directly; the repository mocks ignore
// the tx handle, so rollback behavior reduces to the closure's error.
type FakeDB struct{}

func (FakeDB) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByID(id uint) (*models.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindPageByUserID(userID uint, limit, offset int) ([]models.Activity, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) Update(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockActivityRepository) WithTx(tx *gorm.DB) repository.ActivityRepository {
	return m
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(goal *models.Goal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindByID(id uint) (*models.Goal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindForUpdate(id uint) (*models.Goal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindPageByUserID(userID uint, limit, offset int) ([]models.Goal, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGoalRepository) FindAchievedByUserID(userID uint) ([]models.Goal, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindMatchingGoals(userID uint, dates ...time.Time) ([]models.Goal, error) {
	args := m.Called(userID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) Update(goal *models.Goal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGoalRepository) WithTx(tx *gorm.DB) repository.GoalRepository {
	return m
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(user *models.User, profile *models.UserProfile) error {
	args := m.Called(user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

type MockPageCache struct {
	mock.Mock
}

func (m *MockPageCache) GetPage(key string, dest interface{}) (bool, error) {
	args := m.Called(key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockPageCache) SetPage(key string, payload interface{}) error {
	args := m.Called(key, payload)
	return args.Error(0)
}

func (m *MockPageCache) InvalidateUser(prefix string, userID uint) error {
	args := m.Called(prefix, userID)
	return args.Error(0)
}

func (m *MockPageCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
