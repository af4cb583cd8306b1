package dto

type MarkAttendanceRequest struct {
	MealType string `json:"meal_type" validate:"required,is-meal-type"`
}

type AdminMarkAttendanceRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

type AdminMarkAttendanceResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Marked  []string `json:"marked"` // проставленные блюда
}
