package dto

import "time"

type CreateNoticeRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Message        string    `json:"message" validate:"required"`
	StartAt        time.Time `json:"start_datetime" validate:"required"`
	EndAt          time.Time `json:"end_datetime" validate:"required,gtfield=StartAt"`
	TargetAudience string    `json:"target_audience" validate:"omitempty,is-target-audience"`
	Priority       int       `json:"priority"`
	IsActive       *bool     `json:"is_active"`
}

type UpdateNoticeRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=200"`
	Message        *string    `json:"message"`
	StartAt        *time.Time `json:"start_datetime"`
	EndAt          *time.Time `json:"end_datetime"`
	TargetAudience *string    `json:"target_audience" validate:"omitempty,is-target-audience"`
	Priority       *int       `json:"priority"`
	IsActive       *bool      `json:"is_active"`
}
