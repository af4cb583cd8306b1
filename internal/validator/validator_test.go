package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mealTypeDTO struct {
	MealType string `json:"meal_type" validate:"required,is-meal-type"`
}

type planDTO struct {
	Period string `json:"period" validate:"omitempty,is-billing-period"`
}

type profileDTO struct {
	HostelStatus string `json:"hostel_status" validate:"omitempty,is-hostel-status"`
	MobileNumber string `json:"mobile_number" validate:"omitempty,is-mobile-no"`
}

type noticeDTO struct {
	Audience string `json:"target_audience" validate:"required,is-target-audience"`
}

type feedbackDTO struct {
	Rating int `json:"rating" validate:"required,is-rating"`
}

type reviewDTO struct {
	Status string `json:"status" validate:"required,is-proof-status"`
}

func TestCustomRules(t *testing.T) {
	v := New()

	t.Run("MealType", func(t *testing.T) {
		for _, mt := range []string{"breakfast", "lunch", "dinner"} {
			assert.NoError(t, v.Validate(&mealTypeDTO{MealType: mt}), mt)
		}
		err := v.Validate(&mealTypeDTO{MealType: "brunch"})
		require.Error(t, err)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "Must be one of: breakfast, lunch, dinner", vErr.Errors["meal_type"])
	})

	t.Run("BillingPeriod", func(t *testing.T) {
		for _, p := range []string{"monthly", "quarterly", "yearly"} {
			assert.NoError(t, v.Validate(&planDTO{Period: p}), p)
		}
		// Пустое значение пропускает omitempty
		assert.NoError(t, v.Validate(&planDTO{}))
		assert.Error(t, v.Validate(&planDTO{Period: "weekly"}))
	})

	t.Run("HostelStatus", func(t *testing.T) {
		assert.NoError(t, v.Validate(&profileDTO{HostelStatus: "hosteller"}))
		assert.NoError(t, v.Validate(&profileDTO{HostelStatus: "non_hosteller"}))
		assert.Error(t, v.Validate(&profileDTO{HostelStatus: "day_scholar"}))
	})

	t.Run("MobileNo", func(t *testing.T) {
		assert.NoError(t, v.Validate(&profileDTO{MobileNumber: "+7 (777) 123-45-67"}))
		assert.NoError(t, v.Validate(&profileDTO{MobileNumber: "87771234567"}))
		assert.Error(t, v.Validate(&profileDTO{MobileNumber: "12345"}), "слишком короткий")
		assert.Error(t, v.Validate(&profileDTO{MobileNumber: "not-a-number"}))
	})

	t.Run("TargetAudience", func(t *testing.T) {
		for _, a := range []string{"all", "hostellers", "non_hostellers", "active_subscribers"} {
			assert.NoError(t, v.Validate(&noticeDTO{Audience: a}), a)
		}
		assert.Error(t, v.Validate(&noticeDTO{Audience: "everyone"}))
	})

	t.Run("Rating", func(t *testing.T) {
		for r := 1; r <= 5; r++ {
			assert.NoError(t, v.Validate(&feedbackDTO{Rating: r}))
		}
		assert.Error(t, v.Validate(&feedbackDTO{Rating: 6}))
		assert.Error(t, v.Validate(&feedbackDTO{Rating: -1}))
	})

	t.Run("ProofStatus", func(t *testing.T) {
		for _, s := range []string{"pending", "approved", "rejected"} {
			assert.NoError(t, v.Validate(&reviewDTO{Status: s}), s)
		}
		assert.Error(t, v.Validate(&reviewDTO{Status: "declined"}))
	})
}

func TestJSONTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&mealTypeDTO{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// В карте ошибок должно быть json-имя поля, а не имя поля структуры.
	assert.Contains(t, vErr.Errors, "meal_type")
	assert.NotContains(t, vErr.Errors, "MealType")
	assert.Equal(t, "This field is required", vErr.Errors["meal_type"])
}
