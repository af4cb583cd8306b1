package dto

type CreatePlanRequest struct {
	Title         string   `json:"title" validate:"required,max=100"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	BillingPeriod string   `json:"billing_period" validate:"required,is-billing-period"`
	Features      string   `json:"features"`
	IncludedMeals []string `json:"included_meals" validate:"required,min=1,dive,is-meal-type"`
	IsActive      *bool    `json:"is_active"`
}

type UpdatePlanRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=100"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	BillingPeriod *string  `json:"billing_period" validate:"omitempty,is-billing-period"`
	Features      *string  `json:"features"`
	IncludedMeals []string `json:"included_meals" validate:"omitempty,min=1,dive,is-meal-type"`
	IsActive      *bool    `json:"is_active"`
}
