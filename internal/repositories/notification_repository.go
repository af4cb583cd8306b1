package repositories

import (
	"errors"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(db *gorm.DB, n *models.Notification) error {
	return db.Create(n).Error
}

// FindByTarget — уведомления пользователя, новые первыми.
func (r *NotificationRepository) FindByTarget(db *gorm.DB, targetID string) ([]models.Notification, error) {
	var items []models.Notification
	err := db.Where("target_id = ?", targetID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// MarkRead помечает уведомление прочитанным; чужие id выглядят как not found.
func (r *NotificationRepository) MarkRead(db *gorm.DB, id, targetID string) error {
	result := db.Model(&models.Notification{}).
		Where("id = ? AND target_id = ?", id, targetID).
		Update("read_flag", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
