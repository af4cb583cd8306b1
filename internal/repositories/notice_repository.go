package repositories

import (
	"errors"
	"time"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNoticeNotFound = errors.New("notice not found")

type NoticeRepository struct{}

func NewNoticeRepository() *NoticeRepository {
	return &NoticeRepository{}
}

func (r *NoticeRepository) FindByID(db *gorm.DB, id string) (*models.PopupNotice, error) {
	var notice models.PopupNotice
	err := db.First(&notice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *NoticeRepository) FindAll(db *gorm.DB) ([]models.PopupNotice, error) {
	var notices []models.PopupNotice
	err := db.Order("priority DESC, created_at DESC").Find(&notices).Error
	return notices, err
}

// FindActiveForAudiences — включенные объявления в окне показа для заданных
// аудиторий, приоритетные первыми. Таргетинг по аудитории считает сервис.
func (r *NoticeRepository) FindActiveForAudiences(db *gorm.DB, now time.Time, audiences []models.TargetAudience) ([]models.PopupNotice, error) {
	var notices []models.PopupNotice
	err := db.Where("is_active = ? AND start_at <= ? AND end_at >= ?", true, now, now).
		Where("target_audience IN ?", audiences).
		Order("priority DESC, created_at DESC").
		Find(&notices).Error
	return notices, err
}

func (r *NoticeRepository) Create(db *gorm.DB, notice *models.PopupNotice) error {
	return db.Create(notice).Error
}

func (r *NoticeRepository) Update(db *gorm.DB, notice *models.PopupNotice) error {
	result := db.Save(notice)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoticeNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.PopupNotice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoticeNotFound
	}
	return nil
}
