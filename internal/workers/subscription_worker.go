package workers

import (
	"context"
	"time"

	"messmet_backend/internal/logger"
	"messmet_backend/internal/services"

	"gorm.io/gorm"
)

// SubscriptionWorker снимает активность с просроченных подписок.
type SubscriptionWorker struct {
	db       *gorm.DB
	service  *services.SubscriptionService
	interval time.Duration
}

func NewSubscriptionWorker(db *gorm.DB, service *services.SubscriptionService, interval time.Duration) *SubscriptionWorker {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &SubscriptionWorker{
		db:       db,
		service:  service,
		interval: interval,
	}
}

// Start запускает фоновые задачи для подписок
func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.expireOverdueSubscriptions(ctx)
}

func (w *SubscriptionWorker) expireOverdueSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый проход сразу при старте, чтобы не ждать целый интервал.
	w.sweep()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SubscriptionWorker) sweep() {
	expired, err := w.service.ExpireOverdue(w.db, time.Now())
	logger.WorkerLog("subscription", "expire_overdue", err)
	if err == nil && expired > 0 {
		logger.Info("Deactivated expired subscriptions", "count", expired)
	}
}
