package services

import (
	"fmt"
	"time"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/email"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PaymentService struct {
	paymentRepo      *repositories.PaymentRepository
	planRepo         *repositories.PlanRepository
	subscriptionRepo *repositories.SubscriptionRepository
	userRepo         *repositories.UserRepository
	notificationRepo *repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	planRepo *repositories.PlanRepository,
	subscriptionRepo *repositories.SubscriptionRepository,
	userRepo *repositories.UserRepository,
	notificationRepo *repositories.NotificationRepository,
	emailProvider email.Provider,
) *PaymentService {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

// SubmitProof — чек оплаты: скриншот уже сохранен хендлером, здесь
// создается запись в статусе pending.
func (s *PaymentService) SubmitProof(db *gorm.DB, userID string, req *dto.SubmitPaymentRequest, screenshotPath string) (*dto.PaymentProofResponse, error) {
	plan, err := s.planRepo.FindByID(db, req.PlanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	proof := &models.PaymentProof{
		UserID:     userID,
		PlanID:     plan.ID,
		Screenshot: screenshotPath,
		Status:     models.ProofStatusPending,
		Note:       req.Note,
	}
	if err := s.paymentRepo.CreateProof(db, proof); err != nil {
		return nil, apperrors.InternalError(err)
	}

	proof.Plan = *plan
	logger.Info("payment proof submitted", "proof_id", proof.ID, "user_id", userID, "plan_id", plan.ID)

	resp := dto.ToPaymentProofResponse(proof)
	return &resp, nil
}

func (s *PaymentService) GetOwnProofs(db *gorm.DB, userID string) ([]dto.PaymentProofResponse, error) {
	proofs, err := s.paymentRepo.FindProofsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.PaymentProofResponse, 0, len(proofs))
	for i := range proofs {
		items = append(items, dto.ToPaymentProofResponse(&proofs[i]))
	}
	return items, nil
}

func (s *PaymentService) GetPaymentConfig(db *gorm.DB) (*dto.PaymentConfigResponse, error) {
	cfg, err := s.paymentRepo.GetPaymentConfig(db)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentConfigNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.PaymentConfigResponse{
		UPIID:     cfg.UPIID,
		GpayQR:    cfg.GpayQR,
		PhonepeQR: cfg.PhonepeQR,
		Note:      cfg.Note,
	}, nil
}

// SavePaymentConfig — get-or-create первой записи реквизитов. Поля и QR-коды
// обновляются только когда переданы, остальное сохраняет прежние значения.
func (s *PaymentService) SavePaymentConfig(db *gorm.DB, req *dto.SavePaymentConfigRequest, gpayQRPath, phonepeQRPath string) (*dto.PaymentConfigResponse, error) {
	cfg, err := s.paymentRepo.GetPaymentConfig(db)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrPaymentConfigNotFound) {
			return nil, apperrors.InternalError(err)
		}
		cfg = &models.PaymentConfig{}
	}

	if req.UPIID != "" {
		cfg.UPIID = req.UPIID
	}
	if req.Note != "" {
		cfg.Note = req.Note
	}
	if gpayQRPath != "" {
		cfg.GpayQR = gpayQRPath
	}
	if phonepeQRPath != "" {
		cfg.PhonepeQR = phonepeQRPath
	}

	if err := s.paymentRepo.SavePaymentConfig(db, cfg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("payment config saved", "upi_id", cfg.UPIID)

	return &dto.PaymentConfigResponse{
		UPIID:     cfg.UPIID,
		GpayQR:    cfg.GpayQR,
		PhonepeQR: cfg.PhonepeQR,
		Note:      cfg.Note,
	}, nil
}

// ListProofs — очередь проверки для персонала.
func (s *PaymentService) ListProofs(db *gorm.DB, status models.ProofStatus) ([]dto.AdminPaymentProofResponse, error) {
	proofs, err := s.paymentRepo.FindProofsByStatus(db, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.AdminPaymentProofResponse, 0, len(proofs))
	for i := range proofs {
		items = append(items, dto.ToAdminPaymentProofResponse(&proofs[i]))
	}
	return items, nil
}

// ReviewProof — проверка чека персоналом.
//
// Approve: уже одобренный чек не трогаем (no-op). Иначе: статус approved,
// reviewed_by/reviewed_at, txn_id если пуст, гасим все активные подписки
// пользователя и создаем новую от сегодняшней даты. Reject симметричен,
// но подписок не касается.
func (s *PaymentService) ReviewProof(db *gorm.DB, proofID, reviewerID string, req *dto.ReviewPaymentRequest) (*dto.SuccessResponse, error) {
	proof, err := s.paymentRepo.FindProofByID(db, proofID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProofNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()

	switch req.Action {
	case "approve":
		if proof.Status == models.ProofStatusApproved {
			resp := dto.Success("Payment already approved.")
			return &resp, nil
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			proof.Status = models.ProofStatusApproved
			proof.ReviewedByID = &reviewerID
			proof.ReviewedAt = &now
			if proof.TxnID == "" {
				proof.TxnID = fmt.Sprintf("TXN-%s-%d", shortID(proof.ID), now.Unix())
			}
			if req.Note != "" {
				proof.Note = req.Note
			}
			if err := s.paymentRepo.UpdateProof(tx, proof); err != nil {
				return err
			}

			if _, err := s.subscriptionRepo.DeactivateAllForUser(tx, proof.UserID); err != nil {
				return err
			}

			start := truncateToDate(now)
			sub := &models.UserSubscription{
				UserID:    proof.UserID,
				PlanID:    proof.PlanID,
				StartDate: start,
				EndDate:   proof.Plan.ComputeEndDate(start),
				Active:    true,
			}
			if err := s.subscriptionRepo.Create(tx, sub); err != nil {
				return err
			}

			return s.notificationRepo.Create(tx, &models.Notification{
				TargetID: proof.UserID,
				Message:  fmt.Sprintf("Your payment for %s was approved. Subscription active until %s.", proof.Plan.Title, sub.EndDate.Format("2006-01-02")),
			})
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		s.notifyByEmail(db, proof, email.TemplatePaymentApproved, "Payment approved")
		logger.Info("payment approved", "proof_id", proof.ID, "reviewer_id", reviewerID)

		resp := dto.Success("Payment approved and subscription activated.")
		return &resp, nil

	case "reject":
		if proof.Status == models.ProofStatusRejected {
			resp := dto.Success("Payment already rejected.")
			return &resp, nil
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			proof.Status = models.ProofStatusRejected
			proof.ReviewedByID = &reviewerID
			proof.ReviewedAt = &now
			if req.Note != "" {
				proof.Note = req.Note
			}
			if err := s.paymentRepo.UpdateProof(tx, proof); err != nil {
				return err
			}

			return s.notificationRepo.Create(tx, &models.Notification{
				TargetID: proof.UserID,
				Message:  fmt.Sprintf("Your payment for %s was rejected.", proof.Plan.Title),
			})
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		s.notifyByEmail(db, proof, email.TemplatePaymentRejected, "Payment rejected")
		logger.Info("payment rejected", "proof_id", proof.ID, "reviewer_id", reviewerID)

		resp := dto.Success("Payment rejected.")
		return &resp, nil

	default:
		return nil, apperrors.NewBadRequestError("Unknown review action: " + req.Action)
	}
}

// notifyByEmail — письмо о результате проверки, best-effort.
func (s *PaymentService) notifyByEmail(db *gorm.DB, proof *models.PaymentProof, template, subject string) {
	user, err := s.userRepo.FindByID(db, proof.UserID)
	if err != nil || user.Email == "" {
		return
	}

	data := email.TemplateData{
		"Name":     orDefault(user.FullName, user.Username),
		"PlanName": proof.Plan.Title,
		"TxnID":    proof.TxnID,
		"Note":     proof.Note,
	}
	if proof.ReviewedAt != nil {
		start := truncateToDate(*proof.ReviewedAt)
		data["StartDate"] = start.Format("2006-01-02")
		data["EndDate"] = proof.Plan.ComputeEndDate(start).Format("2006-01-02")
	}

	if err := s.emailProvider.SendTemplate([]string{user.Email}, subject, template, data); err != nil {
		logger.WithError(err).Warn("failed to send payment review email", "proof_id", proof.ID)
	}
}

func (s *PaymentService) CreateVisitorPayment(db *gorm.DB, req *dto.VisitorPaymentRequest, screenshotPath string) (*models.VisitorPayment, error) {
	payment := &models.VisitorPayment{
		Name:       req.Name,
		MobileNo:   req.MobileNo,
		Amount:     req.Amount,
		MealType:   models.MealType(req.MealType),
		Screenshot: screenshotPath,
		Note:       req.Note,
	}
	if err := s.paymentRepo.CreateVisitorPayment(db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
