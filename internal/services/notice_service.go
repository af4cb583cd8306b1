package services

import (
	"time"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NoticeService struct {
	noticeRepo       *repositories.NoticeRepository
	subscriptionRepo *repositories.SubscriptionRepository
}

func NewNoticeService(
	noticeRepo *repositories.NoticeRepository,
	subscriptionRepo *repositories.SubscriptionRepository,
) *NoticeService {
	return &NoticeService{
		noticeRepo:       noticeRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// AudiencesFor — аудитории, под которые подпадает пользователь.
// Аноним видит только "all".
func AudiencesFor(user *models.User, hasActiveSub bool) []models.TargetAudience {
	audiences := []models.TargetAudience{models.TargetAllUsers}
	if user == nil {
		return audiences
	}
	switch user.HostelStatus {
	case models.HostelStatusHosteller:
		audiences = append(audiences, models.TargetHostellers)
	case models.HostelStatusNonHosteller:
		audiences = append(audiences, models.TargetNonHostellers)
	}
	if hasActiveSub {
		audiences = append(audiences, models.TargetActiveSubscribers)
	}
	return audiences
}

// GetActiveNotices — объявления, видимые пользователю прямо сейчас.
// user == nil — анонимный запрос.
func (s *NoticeService) GetActiveNotices(db *gorm.DB, user *models.User) ([]models.PopupNotice, error) {
	hasActiveSub := false
	if user != nil {
		var err error
		hasActiveSub, err = s.subscriptionRepo.HasActive(db, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	notices, err := s.noticeRepo.FindActiveForAudiences(db, time.Now(), AudiencesFor(user, hasActiveSub))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notices, nil
}

// --- CRUD для персонала ---

func (s *NoticeService) ListNotices(db *gorm.DB) ([]models.PopupNotice, error) {
	notices, err := s.noticeRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notices, nil
}

func (s *NoticeService) CreateNotice(db *gorm.DB, creatorID string, req *dto.CreateNoticeRequest) (*models.PopupNotice, error) {
	audience := models.TargetAllUsers
	if req.TargetAudience != "" {
		audience = models.TargetAudience(req.TargetAudience)
	}

	notice := &models.PopupNotice{
		Title:          req.Title,
		Message:        req.Message,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		TargetAudience: audience,
		Priority:       req.Priority,
		IsActive:       true,
		CreatedByID:    &creatorID,
	}
	if req.IsActive != nil {
		notice.IsActive = *req.IsActive
	}

	if err := s.noticeRepo.Create(db, notice); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("notice created", "notice_id", notice.ID, "audience", audience)
	return notice, nil
}

func (s *NoticeService) UpdateNotice(db *gorm.DB, id string, req *dto.UpdateNoticeRequest) (*models.PopupNotice, error) {
	notice, err := s.noticeRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoticeNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Message != nil {
		notice.Message = *req.Message
	}
	if req.StartAt != nil {
		notice.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		notice.EndAt = *req.EndAt
	}
	if req.TargetAudience != nil {
		notice.TargetAudience = models.TargetAudience(*req.TargetAudience)
	}
	if req.Priority != nil {
		notice.Priority = *req.Priority
	}
	if req.IsActive != nil {
		notice.IsActive = *req.IsActive
	}

	if notice.EndAt.Before(notice.StartAt) {
		return nil, apperrors.NewBadRequestError("end_datetime cannot be before start_datetime")
	}

	if err := s.noticeRepo.Update(db, notice); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notice, nil
}

func (s *NoticeService) DeleteNotice(db *gorm.DB, id string) error {
	if err := s.noticeRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrNoticeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
