package models

import "time"

// PopupNotice — объявление с окном показа и целевой аудиторией.
// Видимость вычисляется на каждый запрос, без кеширования.
type PopupNotice struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	Message        string         `gorm:"not null" json:"message"`
	StartAt        time.Time      `gorm:"not null" json:"start_datetime"`
	EndAt          time.Time      `gorm:"not null" json:"end_datetime"`
	TargetAudience TargetAudience `gorm:"type:varchar(30);default:'all'" json:"target_audience"`
	Priority       int            `gorm:"default:0" json:"priority"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedByID    *string        `json:"created_by,omitempty"`
}

// ActiveWithin: объявление включено и now попадает в [StartAt, EndAt].
func (n *PopupNotice) ActiveWithin(now time.Time) bool {
	return n.IsActive && !now.Before(n.StartAt) && !now.After(n.EndAt)
}

// Notification — персональное уведомление пользователю
// (создается при проверке оплаты).
type Notification struct {
	BaseModel
	TargetID string `gorm:"not null;index" json:"target_id"`
	Message  string `gorm:"not null" json:"message"`
	ReadFlag bool   `gorm:"default:false" json:"read_flag"`

	// Relations
	Target User `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE" json:"-"`
}
