package dto

import "messmet_backend/internal/models"

type FeedbackRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type MealFeedbackRequest struct {
	MealType       string `json:"meal_type" validate:"required,is-meal-type"`
	MealDate       string `json:"meal_date" validate:"omitempty,datetime=2006-01-02"` // пусто = сегодня
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	TasteRating    *int   `json:"taste_rating" validate:"omitempty,is-rating"`
	QuantityRating *int   `json:"quantity_rating" validate:"omitempty,is-rating"`
	HygieneRating  *int   `json:"hygiene_rating" validate:"omitempty,is-rating"`
	Comments       string `json:"comments" validate:"omitempty,max=2000"`
	IsAnonymous    bool   `json:"is_anonymous"`
}

type VisitorFeedbackRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	MealType string `json:"meal_type" validate:"required,is-meal-type"`
	MealDate string `json:"meal_date" validate:"omitempty,datetime=2006-01-02"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comments string `json:"comments" validate:"omitempty,max=2000"`
}

// MealFeedbackFilter — query-фильтры списка отзывов для персонала.
type MealFeedbackFilter struct {
	MealType  string `form:"meal_type" validate:"omitempty,is-meal-type"`
	DateFrom  string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
	RatingMin int    `form:"rating_min" validate:"omitempty,min=1,max=5"`
	Page      int    `form:"page"`
}

// MealFeedbackStats — сводка по отзывам за выборку.
type MealFeedbackStats struct {
	Total     int64   `json:"total"`
	AvgRating float64 `json:"avg_rating"`
	Today     int64   `json:"today"`
	Low       int64   `json:"low"` // rating <= 2
}

type MealFeedbackItem struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"` // "Anonymous" при is_anonymous
	MealType      string  `json:"meal_type"`
	MealDate      string  `json:"meal_date"`
	Rating        int     `json:"rating"`
	OverallRating float64 `json:"overall_rating"`
	Comments      string  `json:"comments"`
	CreatedAt     string  `json:"created_at"`
}

type MealFeedbackListResponse struct {
	Items      []MealFeedbackItem `json:"items"`
	Stats      MealFeedbackStats  `json:"stats"`
	Pagination Pagination         `json:"pagination"`
}

// ToMealFeedbackItem скрывает автора анонимного отзыва.
func ToMealFeedbackItem(f *models.MealFeedback) MealFeedbackItem {
	username := f.User.Username
	if f.IsAnonymous {
		username = "Anonymous"
	}
	return MealFeedbackItem{
		ID:            f.ID,
		Username:      username,
		MealType:      string(f.MealType),
		MealDate:      f.MealDate.Format("2006-01-02"),
		Rating:        f.Rating,
		OverallRating: f.OverallRating(),
		Comments:      f.Comments,
		CreatedAt:     f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
