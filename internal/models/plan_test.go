package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEndDate(t *testing.T) {
	start := date(2024, time.January, 1)

	tests := []struct {
		name   string
		period BillingPeriod
		want   time.Time
	}{
		{"monthly - 30 дней", BillingPeriodMonthly, date(2024, time.January, 31)},
		{"quarterly - 90 дней", BillingPeriodQuarterly, date(2024, time.March, 31)},
		{"yearly - 365 дней", BillingPeriodYearly, date(2024, time.December, 31)},
		{"неизвестный период - 30 дней", BillingPeriod("weekly"), date(2024, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &SubscriptionPlan{BillingPeriod: tt.period}
			assert.Equal(t, tt.want, plan.ComputeEndDate(start))
		})
	}
}

func TestIncludesMeal(t *testing.T) {
	plan := &SubscriptionPlan{
		IncludedMeals: MealsJSON([]MealType{MealBreakfast, MealLunch}),
	}

	assert.True(t, plan.IncludesMeal(MealBreakfast))
	assert.True(t, plan.IncludesMeal(MealLunch))
	assert.False(t, plan.IncludesMeal(MealDinner))
}

func TestIncludesMeal_EmptyOrBroken(t *testing.T) {
	empty := &SubscriptionPlan{}
	assert.False(t, empty.IncludesMeal(MealLunch))

	broken := &SubscriptionPlan{IncludedMeals: []byte(`{not json`)}
	assert.False(t, broken.IncludesMeal(MealLunch))
	assert.Nil(t, broken.Meals())
}

func TestMealsJSON_Roundtrip(t *testing.T) {
	plan := &SubscriptionPlan{
		IncludedMeals: MealsJSON([]MealType{MealDinner}),
	}
	assert.Equal(t, []MealType{MealDinner}, plan.Meals())

	// nil упаковывается в пустой список, а не в null
	assert.Equal(t, `[]`, string(MealsJSON(nil)))
}
