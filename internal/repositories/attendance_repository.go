package repositories

import (
	"time"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

type AttendanceRepository struct{}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

func (r *AttendanceRepository) Create(db *gorm.DB, att *models.Attendance) error {
	return db.Create(att).Error
}

// Exists — есть ли отметка на (user, date, meal).
func (r *AttendanceRepository) Exists(db *gorm.DB, userID string, date time.Time, meal models.MealType) (bool, error) {
	var count int64
	err := db.Model(&models.Attendance{}).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, meal).
		Count(&count).Error
	return count > 0, err
}

// CountForUserDate — сколько отметок у пользователя за день (любое блюдо).
func (r *AttendanceRepository) CountForUserDate(db *gorm.DB, userID string, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Attendance{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	return count, err
}

// FindByUser — отметки пользователя, новые первыми.
func (r *AttendanceRepository) FindByUser(db *gorm.DB, userID string) ([]models.Attendance, error) {
	var records []models.Attendance
	err := db.Where("user_id = ?", userID).
		Order("date DESC, marked_at DESC").
		Find(&records).Error
	return records, err
}

// FindByUserSince — отметки пользователя начиная с даты (карточка за 30 дней).
func (r *AttendanceRepository) FindByUserSince(db *gorm.DB, userID string, since time.Time) ([]models.Attendance, error) {
	var records []models.Attendance
	err := db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC, marked_at DESC").
		Find(&records).Error
	return records, err
}

// FindAllWithUser — полная выгрузка с данными пользователя для CSV.
func (r *AttendanceRepository) FindAllWithUser(db *gorm.DB) ([]models.Attendance, error) {
	var records []models.Attendance
	err := db.Preload("User").
		Order("date DESC, marked_at DESC").
		Find(&records).Error
	return records, err
}
