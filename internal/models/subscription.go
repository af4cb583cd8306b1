package models

import "time"

type UserSubscription struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	PlanID    string    `gorm:"not null;index" json:"plan_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Active    bool      `gorm:"default:true;index" json:"active"`

	// Relations
	Plan SubscriptionPlan `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"plan"`
}
