package dto

import (
	"time"

	"messmet_backend/internal/models"
)

type AdminCreateUserRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"omitempty,max=100"`
	MobileNo     string `json:"mobile_no" validate:"omitempty,is-mobile-no"`
	HostelStatus string `json:"hostel_status" validate:"omitempty,is-hostel-status"`
	Role         string `json:"role" validate:"omitempty,oneof=student staff admin"`
}

type AdminUpdateUserRequest struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	FullName     *string `json:"full_name" validate:"omitempty,max=100"`
	MobileNo     *string `json:"mobile_no" validate:"omitempty,is-mobile-no"`
	HostelStatus *string `json:"hostel_status" validate:"omitempty,is-hostel-status"`
	Role         *string `json:"role" validate:"omitempty,oneof=student staff admin"`
	IsActive     *bool   `json:"is_active"`
	Password     *string `json:"password" validate:"omitempty,min=8"`
}

// UserListItem — строка списка пользователей с числом посещений.
type UserListItem struct {
	UserResponse
	AttendanceCount int64 `json:"attendance_count"`
}

type UserListResponse struct {
	Items      []UserListItem `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// UserDetailsResponse — карточка пользователя для персонала: посещения за
// последние 30 дней и активные подписки.
type UserDetailsResponse struct {
	User                UserResponse         `json:"user"`
	RecentAttendance    []AttendanceItem     `json:"recent_attendance"`
	ActiveSubscriptions []SubscriptionItem   `json:"active_subscriptions"`
	PendingProofs       []PaymentProofResponse `json:"pending_proofs"`
}

type AttendanceItem struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
	MarkedAt string `json:"marked_at"`
}

func ToAttendanceItem(a *models.Attendance) AttendanceItem {
	return AttendanceItem{
		ID:       a.ID,
		Date:     a.Date.Format("2006-01-02"),
		MealType: string(a.MealType),
		MarkedAt: a.MarkedAt.Format(time.RFC3339),
	}
}

type SubscriptionItem struct {
	ID        string   `json:"id"`
	PlanID    string   `json:"plan_id"`
	PlanTitle string   `json:"plan_title"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Active    bool     `json:"active"`
	Meals     []string `json:"meals"`
}

func ToSubscriptionItem(s *models.UserSubscription) SubscriptionItem {
	meals := make([]string, 0, 3)
	for _, m := range s.Plan.Meals() {
		meals = append(meals, string(m))
	}
	return SubscriptionItem{
		ID:        s.ID,
		PlanID:    s.PlanID,
		PlanTitle: s.Plan.Title,
		StartDate: s.StartDate.Format("2006-01-02"),
		EndDate:   s.EndDate.Format("2006-01-02"),
		Active:    s.Active,
		Meals:     meals,
	}
}
