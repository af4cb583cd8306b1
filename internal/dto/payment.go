package dto

import (
	"time"

	"messmet_backend/internal/models"
)

// SubmitPaymentRequest — multipart-форма, скриншот идет отдельным файлом.
type SubmitPaymentRequest struct {
	PlanID string `form:"plan_id" validate:"required,uuid4"`
	Note   string `form:"note" validate:"omitempty,max=500"`
}

type ReviewPaymentRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}

type VisitorPaymentRequest struct {
	Name     string  `form:"name" validate:"required,max=100"`
	MobileNo string  `form:"mobile_no" validate:"omitempty,is-mobile-no"`
	Amount   float64 `form:"amount" validate:"required,gt=0"`
	MealType string  `form:"meal_type" validate:"required,is-meal-type"`
	Note     string  `form:"note" validate:"omitempty,max=500"`
}

type PaymentProofResponse struct {
	ID         string     `json:"id"`
	PlanID     string     `json:"plan_id"`
	PlanTitle  string     `json:"plan_title"`
	Screenshot string     `json:"screenshot"`
	Status     string     `json:"status"`
	TxnID      string     `json:"txn_id"`
	Note       string     `json:"note"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToPaymentProofResponse(p *models.PaymentProof) PaymentProofResponse {
	return PaymentProofResponse{
		ID:         p.ID,
		PlanID:     p.PlanID,
		PlanTitle:  p.Plan.Title,
		Screenshot: p.Screenshot,
		Status:     string(p.Status),
		TxnID:      p.TxnID,
		Note:       p.Note,
		ReviewedAt: p.ReviewedAt,
		CreatedAt:  p.CreatedAt,
	}
}

// AdminPaymentProofResponse дополняет ответ данными плательщика.
type AdminPaymentProofResponse struct {
	PaymentProofResponse
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func ToAdminPaymentProofResponse(p *models.PaymentProof) AdminPaymentProofResponse {
	return AdminPaymentProofResponse{
		PaymentProofResponse: ToPaymentProofResponse(p),
		UserID:               p.UserID,
		Username:             p.User.Username,
		FullName:             p.User.FullName,
	}
}

// SavePaymentConfigRequest — multipart-форма, QR-коды идут отдельными файлами.
// Пустые поля не затирают сохраненные значения.
type SavePaymentConfigRequest struct {
	UPIID string `form:"upi_id" validate:"omitempty,max=100"`
	Note  string `form:"note" validate:"omitempty,max=500"`
}

type PaymentConfigResponse struct {
	UPIID     string `json:"upi_id"`
	GpayQR    string `json:"gpay_qr"`
	PhonepeQR string `json:"phonepe_qr"`
	Note      string `json:"note"`
}
