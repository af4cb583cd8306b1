package handlers

import (
	"messmet_backend/internal/services"
	"messmet_backend/internal/storage"
	"messmet_backend/internal/validator"
)

// AppHandlers содержит все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Plan         *PlanHandler
	Subscription *SubscriptionHandler
	Payment      *PaymentHandler
	Attendance   *AttendanceHandler
	Menu         *MenuHandler
	Feedback     *FeedbackHandler
	Notice       *NoticeHandler
	Notification *NotificationHandler
	Gallery      *GalleryHandler
	File         *FileHandler
}

// NewAppHandlers собирает обработчики поверх контейнера сервисов.
func NewAppHandlers(sc *services.ServiceContainer, st storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.AuthService),
		User:         NewUserHandler(base, sc.UserService, sc.UploadService),
		Plan:         NewPlanHandler(base, sc.PlanService),
		Subscription: NewSubscriptionHandler(base, sc.SubscriptionService),
		Payment:      NewPaymentHandler(base, sc.PaymentService, sc.UploadService),
		Attendance:   NewAttendanceHandler(base, sc.AttendanceService),
		Menu:         NewMenuHandler(base, sc.MenuService, sc.UploadService),
		Feedback:     NewFeedbackHandler(base, sc.FeedbackService),
		Notice:       NewNoticeHandler(base, sc.NoticeService),
		Notification: NewNotificationHandler(base, sc.NotificationService),
		Gallery:      NewGalleryHandler(base, sc.GalleryService, sc.UploadService),
		File:         NewFileHandler(base, st),
	}
}
