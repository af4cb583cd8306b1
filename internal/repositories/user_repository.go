package repositories

import (
	"errors"
	"time"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UsernameExists / EmailExists — проверки уникальности; excludeID исключает
// самого пользователя при обновлении.
func (r *UserRepository) UsernameExists(db *gorm.DB, username, excludeID string) (bool, error) {
	var count int64
	q := db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) EmailExists(db *gorm.DB, email, excludeID string) (bool, error) {
	var count int64
	q := db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *UserRepository) Update(db *gorm.DB, user *models.User) error {
	result := db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(db *gorm.DB, userID string) error {
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login_at", time.Now()).Error
}

func (r *UserRepository) Delete(db *gorm.DB, userID string) error {
	result := db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserWithAttendanceCount — строка списка для админ-панели.
type UserWithAttendanceCount struct {
	models.User
	AttendanceCount int64
}

func (r *UserRepository) FindAllWithAttendanceCount(db *gorm.DB, limit, offset int) ([]UserWithAttendanceCount, int64, error) {
	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []UserWithAttendanceCount
	err := db.Model(&models.User{}).
		Select("users.*, (SELECT COUNT(*) FROM attendances a WHERE a.user_id = users.id) AS attendance_count").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

// UserExportRow — строка CSV-выгрузки с агрегатами по посещениям и подпискам.
type UserExportRow struct {
	models.User
	TotalAttendance    int64
	LastAttendanceDate *time.Time
	ActiveSubs         int64
}

func (r *UserRepository) FindAllForExport(db *gorm.DB) ([]UserExportRow, error) {
	var rows []UserExportRow
	err := db.Model(&models.User{}).
		Select(`users.*,
			(SELECT COUNT(*) FROM attendances a WHERE a.user_id = users.id) AS total_attendance,
			(SELECT MAX(a.date) FROM attendances a WHERE a.user_id = users.id) AS last_attendance_date,
			(SELECT COUNT(*) FROM user_subscriptions s WHERE s.user_id = users.id AND s.active) AS active_subs`).
		Order("username ASC").
		Find(&rows).Error
	return rows, err
}
