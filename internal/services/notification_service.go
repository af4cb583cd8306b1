package services

import (
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
}

func NewNotificationService(notificationRepo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) GetOwn(db *gorm.DB, userID string) ([]models.Notification, error) {
	items, err := s.notificationRepo.FindByTarget(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *NotificationService) MarkRead(db *gorm.DB, id, userID string) error {
	if err := s.notificationRepo.MarkRead(db, id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
