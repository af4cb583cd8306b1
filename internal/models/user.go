package models

import "time"

type User struct {
	BaseModel
	Username     string       `gorm:"uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	FullName     string       `json:"full_name"`
	MobileNo     string       `gorm:"index" json:"mobile_no"`
	ProfileImage string       `json:"profile_image"`
	HostelStatus HostelStatus `gorm:"type:varchar(20);default:'non_hosteller'" json:"hostel_status"`
	Role         UserRole     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	IsActive     bool         `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`

	// Relations
	Subscriptions []UserSubscription `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PaymentProofs []PaymentProof     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Attendances   []Attendance       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsStaff — доступ к админ-операциям (staff или admin).
func (u *User) IsStaff() bool {
	return IsStaffRole(u.Role)
}

// IsSuperuser — admin соответствует superuser исходной системы:
// такого пользователя нельзя удалить.
func (u *User) IsSuperuser() bool {
	return u.Role == UserRoleAdmin
}
