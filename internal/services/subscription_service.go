package services

import (
	"time"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	subscriptionRepo *repositories.SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo *repositories.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptionRepo: subscriptionRepo}
}

// GetActiveSubscription — текущая активная подписка пользователя.
// Флаг active здесь не мутируется: просроченные подписки гасит либо
// одобрение новой оплаты, либо фоновый воркер.
func (s *SubscriptionService) GetActiveSubscription(db *gorm.DB, userID string) (*dto.SubscriptionItem, error) {
	sub, err := s.subscriptionRepo.FindActiveByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNoActiveSubscription
		}
		return nil, apperrors.InternalError(err)
	}

	item := dto.ToSubscriptionItem(sub)
	return &item, nil
}

// ExpireOverdue гасит подписки с end_date в прошлом (вызывается воркером).
func (s *SubscriptionService) ExpireOverdue(db *gorm.DB, now time.Time) (int64, error) {
	return s.subscriptionRepo.ExpireOverdue(db, truncateToDate(now))
}
