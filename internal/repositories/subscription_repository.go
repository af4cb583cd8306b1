package repositories

import (
	"errors"
	"time"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository struct{}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

// FindActiveByUser — последняя активная подписка пользователя с планом.
func (r *SubscriptionRepository) FindActiveByUser(db *gorm.DB, userID string) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := db.Preload("Plan").
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// FindActiveListByUser — все активные подписки (карточка пользователя).
func (r *SubscriptionRepository) FindActiveListByUser(db *gorm.DB, userID string) ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	err := db.Preload("Plan").
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) Create(db *gorm.DB, sub *models.UserSubscription) error {
	return db.Create(sub).Error
}

// DeactivateAllForUser гасит все активные подписки пользователя перед
// созданием новой. Возвращает число затронутых строк.
func (r *SubscriptionRepository) DeactivateAllForUser(db *gorm.DB, userID string) (int64, error) {
	result := db.Model(&models.UserSubscription{}).
		Where("user_id = ? AND active = ?", userID, true).
		Update("active", false)
	return result.RowsAffected, result.Error
}

// HasActive — есть ли у пользователя активная подписка.
func (r *SubscriptionRepository) HasActive(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.UserSubscription{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error
	return count > 0, err
}

// ExpireOverdue гасит подписки с истекшей датой окончания (фоновый воркер).
func (r *SubscriptionRepository) ExpireOverdue(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.UserSubscription{}).
		Where("active = ? AND end_date < ?", true, now).
		Update("active", false)
	return result.RowsAffected, result.Error
}
