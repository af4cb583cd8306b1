package dto

import (
	"time"

	"messmet_backend/internal/models"
)

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"required,max=100"`
	MobileNo     string `json:"mobile_no" validate:"omitempty,is-mobile-no"`
	HostelStatus string `json:"hostel_status" validate:"omitempty,is-hostel-status"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse — публичное представление пользователя (без хеша пароля).
type UserResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	MobileNo     string     `json:"mobile_no"`
	ProfileImage string     `json:"profile_image"`
	HostelStatus string     `json:"hostel_status"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		MobileNo:     u.MobileNo,
		ProfileImage: u.ProfileImage,
		HostelStatus: string(u.HostelStatus),
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	MobileNo     *string `json:"mobile_no" validate:"omitempty,is-mobile-no"`
	HostelStatus *string `json:"hostel_status" validate:"omitempty,is-hostel-status"`
}
