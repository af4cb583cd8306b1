package services

import (
	"messmet_backend/internal/config"
	"messmet_backend/internal/email"
	"messmet_backend/internal/imageprocessor"
	"messmet_backend/internal/repositories"
	"messmet_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         *AuthService
	UserService         *UserService
	PlanService         *PlanService
	SubscriptionService *SubscriptionService
	PaymentService      *PaymentService
	AttendanceService   *AttendanceService
	MenuService         *MenuService
	FeedbackService     *FeedbackService
	NoticeService       *NoticeService
	NotificationService *NotificationService
	GalleryService      *GalleryService
	UploadService       *UploadService
}

// NewServiceContainer собирает репозитории и сервисы с их зависимостями.
func NewServiceContainer(cfg *config.Config, st storage.Storage, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	planRepo := repositories.NewPlanRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()
	paymentRepo := repositories.NewPaymentRepository()
	attendanceRepo := repositories.NewAttendanceRepository()
	menuRepo := repositories.NewMenuRepository()
	feedbackRepo := repositories.NewFeedbackRepository()
	noticeRepo := repositories.NewNoticeRepository()
	notificationRepo := repositories.NewNotificationRepository()
	galleryRepo := repositories.NewGalleryRepository()

	processor := imageprocessor.NewProcessor(85)
	uploadService := NewUploadService(st, processor, cfg)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo),
		UserService:         NewUserService(userRepo, attendanceRepo, subscriptionRepo, paymentRepo),
		PlanService:         NewPlanService(planRepo),
		SubscriptionService: NewSubscriptionService(subscriptionRepo),
		PaymentService:      NewPaymentService(paymentRepo, planRepo, subscriptionRepo, userRepo, notificationRepo, emailProvider),
		AttendanceService:   NewAttendanceService(attendanceRepo, subscriptionRepo, userRepo),
		MenuService:         NewMenuService(menuRepo),
		FeedbackService:     NewFeedbackService(feedbackRepo),
		NoticeService:       NewNoticeService(noticeRepo, subscriptionRepo),
		NotificationService: NewNotificationService(notificationRepo),
		GalleryService:      NewGalleryService(galleryRepo, uploadService),
		UploadService:       uploadService,
	}
}
