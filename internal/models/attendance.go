package models

import "time"

// Attendance — отметка посещения: одна на (user, date, meal_type).
// Уникальный индекс дублирует проверку на уровне приложения и закрывает
// гонку при одновременных отметках.
type Attendance struct {
	BaseModel
	UserID   string    `gorm:"not null;uniqueIndex:idx_attendance_user_date_meal" json:"user_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date_meal" json:"date"`
	MealType MealType  `gorm:"type:varchar(20);not null;uniqueIndex:idx_attendance_user_date_meal" json:"meal_type"`
	MarkedAt time.Time `gorm:"default:now()" json:"marked_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
