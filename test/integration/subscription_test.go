package integration_test

import (
	"net/http"
	"testing"
	"time"

	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/internal/services"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestGetActiveSubscription - своя активная подписка с планом
func TestGetActiveSubscription(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, student := helpers.CreateAndLoginUser(t, ts, tx, "sub_student", "sub_student@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Квартальный", 8000, models.BillingPeriodQuarterly, []models.MealType{models.MealLunch, models.MealDinner})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/me/subscription", token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Квартальный")
	assert.Contains(t, bodyStr, `"active":true`)
}

// TestGetActiveSubscription_None - без подписки 404
func TestGetActiveSubscription_None(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "sub_student2", "sub_student2@test.com", "password123", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/me/subscription", token, nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "No active subscription")
}

// TestExpireOverdueSubscriptions - просроченная подписка гасится воркером
func TestExpireOverdueSubscriptions(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, student := helpers.CreateAndLoginUser(t, ts, tx, "sub_student3", "sub_student3@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Истекший", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})

	expired := helpers.CreateActiveSubscription(t, tx, student.ID, plan)
	assert.NoError(t, tx.Model(&models.UserSubscription{}).Where("id = ?", expired.ID).Updates(map[string]interface{}{
		"start_date": time.Now().AddDate(0, 0, -60),
		"end_date":   time.Now().AddDate(0, 0, -30),
	}).Error)

	_, current := helpers.CreateAndLoginUser(t, ts, tx, "sub_student4", "sub_student4@test.com", "password123", models.UserRoleStudent)
	fresh := helpers.CreateActiveSubscription(t, tx, current.ID, plan)

	service := services.NewSubscriptionService(repositories.NewSubscriptionRepository())
	count, err := service.ExpireOverdue(tx, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var gone models.UserSubscription
	assert.NoError(t, tx.First(&gone, "id = ?", expired.ID).Error)
	assert.False(t, gone.Active)

	var alive models.UserSubscription
	assert.NoError(t, tx.First(&alive, "id = ?", fresh.ID).Error)
	assert.True(t, alive.Active)
}
