package models

import "time"

type PaymentProof struct {
	BaseModel
	UserID       string      `gorm:"not null;index" json:"user_id"`
	PlanID       string      `gorm:"not null;index" json:"plan_id"`
	Screenshot   string      `gorm:"not null" json:"screenshot"`
	Status       ProofStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	TxnID        string      `json:"txn_id"`
	Note         string      `json:"note"`
	ReviewedByID *string     `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time  `json:"reviewed_at,omitempty"`

	// Relations
	Plan SubscriptionPlan `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"plan"`
	User User             `gorm:"foreignKey:UserID" json:"-"`
}

// VisitorPayment — разовая оплата гостя без аккаунта.
type VisitorPayment struct {
	BaseModel
	Name       string   `gorm:"not null" json:"name"`
	MobileNo   string   `json:"mobile_no"`
	Amount     float64  `gorm:"not null" json:"amount"`
	MealType   MealType `gorm:"type:varchar(20);not null" json:"meal_type"`
	Screenshot string   `gorm:"not null" json:"screenshot"`
	Note       string   `json:"note"`
}

// PaymentConfig — реквизиты для ручной оплаты (UPI, QR-коды).
// Используется первая запись.
type PaymentConfig struct {
	BaseModel
	UPIID     string `json:"upi_id"`
	GpayQR    string `json:"gpay_qr"`
	PhonepeQR string `json:"phonepe_qr"`
	Note      string `json:"note"`
}
