package models

import "time"

type Feedback struct {
	BaseModel
	UserID  string `gorm:"not null;index" json:"user_id"`
	Message string `gorm:"not null" json:"message"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// MealFeedback — оценка конкретного приема пищи, одна на
// (user, meal_type, meal_date).
type MealFeedback struct {
	BaseModel
	UserID         string    `gorm:"not null;uniqueIndex:idx_meal_feedback_user_meal_date" json:"user_id"`
	MealType       MealType  `gorm:"type:varchar(20);not null;uniqueIndex:idx_meal_feedback_user_meal_date" json:"meal_type"`
	MealDate       time.Time `gorm:"type:date;not null;uniqueIndex:idx_meal_feedback_user_meal_date" json:"meal_date"`
	Rating         int       `gorm:"not null" json:"rating"` // 1-5
	TasteRating    *int      `json:"taste_rating,omitempty"`
	QuantityRating *int      `json:"quantity_rating,omitempty"`
	HygieneRating  *int      `json:"hygiene_rating,omitempty"`
	Comments       string    `json:"comments"`
	IsAnonymous    bool      `gorm:"default:false" json:"is_anonymous"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// OverallRating — среднее из выставленных оценок, округленное до 0.1.
func (f *MealFeedback) OverallRating() float64 {
	sum := f.Rating
	n := 1
	for _, r := range []*int{f.TasteRating, f.QuantityRating, f.HygieneRating} {
		if r != nil {
			sum += *r
			n++
		}
	}
	return float64(int(float64(sum)/float64(n)*10+0.5)) / 10
}

// VisitorFeedback — отзыв гостя без аккаунта.
type VisitorFeedback struct {
	BaseModel
	Name     string    `gorm:"not null" json:"name"`
	MealType MealType  `gorm:"type:varchar(20);not null" json:"meal_type"`
	MealDate time.Time `gorm:"type:date;not null" json:"meal_date"`
	Rating   int       `gorm:"not null" json:"rating"`
	Comments string    `json:"comments"`
}
