package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	BaseModel
	Title         string         `gorm:"not null" json:"title"`
	Price         float64        `gorm:"not null" json:"price"`
	BillingPeriod BillingPeriod  `gorm:"type:varchar(20);not null;default:'monthly'" json:"billing_period"`
	Features      string         `json:"features"`
	IncludedMeals datatypes.JSON `gorm:"type:jsonb" json:"included_meals"` // ["breakfast", "lunch", ...]
	IsActive      bool           `gorm:"default:true" json:"is_active"`
}

// ComputeEndDate считает дату окончания подписки фиксированным смещением,
// а не календарным месяцем: 30/90/365 дней. Неизвестный период - 30 дней.
func (p *SubscriptionPlan) ComputeEndDate(start time.Time) time.Time {
	switch p.BillingPeriod {
	case BillingPeriodMonthly:
		return start.AddDate(0, 0, 30)
	case BillingPeriodQuarterly:
		return start.AddDate(0, 0, 90)
	case BillingPeriodYearly:
		return start.AddDate(0, 0, 365)
	default:
		return start.AddDate(0, 0, 30)
	}
}

// Meals разбирает jsonb-колонку included_meals.
func (p *SubscriptionPlan) Meals() []MealType {
	var raw []string
	if len(p.IncludedMeals) == 0 {
		return nil
	}
	if err := json.Unmarshal(p.IncludedMeals, &raw); err != nil {
		return nil
	}
	meals := make([]MealType, 0, len(raw))
	for _, m := range raw {
		meals = append(meals, MealType(m))
	}
	return meals
}

// IncludesMeal проверяет, входит ли блюдо в план.
func (p *SubscriptionPlan) IncludesMeal(meal MealType) bool {
	for _, m := range p.Meals() {
		if m == meal {
			return true
		}
	}
	return false
}

// MealsJSON упаковывает список блюд в значение для jsonb-колонки.
func MealsJSON(meals []MealType) datatypes.JSON {
	if meals == nil {
		meals = []MealType{}
	}
	b, _ := json.Marshal(meals)
	return datatypes.JSON(b)
}
