package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestListActivePlans - публичный список показывает только активные планы
func TestListActivePlans(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreatePlan(t, tx, "Активный план", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	hidden := helpers.CreatePlan(t, tx, "Скрытый план", 5000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	err := tx.Model(&models.SubscriptionPlan{}).Where("id = ?", hidden.ID).Update("is_active", false).Error
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/plans", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Активный план")
	assert.NotContains(t, bodyStr, "Скрытый план")
}

// TestCreatePlan_AdminOnly - студент не может создавать планы
func TestCreatePlan_AdminOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "plan_student", "plan_student@test.com", "password123", models.UserRoleStudent)
	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "plan_staff", "plan_staff@test.com", "password123", models.UserRoleStaff)

	planBody := map[string]interface{}{
		"title":          "Полный пансион",
		"price":          9000,
		"billing_period": "quarterly",
		"included_meals": []string{"breakfast", "lunch", "dinner"},
	}

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/admin/plans", studentToken, planBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/plans", staffToken, planBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Полный пансион")

	var created models.SubscriptionPlan
	err := json.Unmarshal([]byte(bodyStr), &created)
	assert.NoError(t, err)
	assert.True(t, created.IncludesMeal(models.MealDinner))
}

// TestCreatePlan_InvalidMealType - валидация списка блюд
func TestCreatePlan_InvalidMealType(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "plan_staff2", "plan_staff2@test.com", "password123", models.UserRoleStaff)

	planBody := map[string]interface{}{
		"title":          "Неправильный план",
		"price":          1000,
		"billing_period": "monthly",
		"included_meals": []string{"brunch"},
	}

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/admin/plans", staffToken, planBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestUpdatePlan - частичное обновление не трогает остальные поля
func TestUpdatePlan(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "plan_staff3", "plan_staff3@test.com", "password123", models.UserRoleStaff)
	plan := helpers.CreatePlan(t, tx, "Обед", 2000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})

	updateBody := map[string]interface{}{
		"price": 2500,
	}
	res, bodyStr := ts.SendRequest(t, tx, "PUT", "/api/v1/admin/plans/"+plan.ID, staffToken, updateBody)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "2500")
	assert.Contains(t, bodyStr, "Обед")
}

// TestDeletePlan_CascadesToDependents - удаление плана уносит подписки и чеки
func TestDeletePlan_CascadesToDependents(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "plan_staff5", "plan_staff5@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "plan_student2", "plan_student2@test.com", "password123", models.UserRoleStudent)

	plan := helpers.CreatePlan(t, tx, "Обреченный план", 3500, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)
	helpers.CreatePendingProof(t, tx, student.ID, plan.ID)

	res, bodyStr := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/plans/"+plan.ID, staffToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	// Зависимые строки снесены каскадом FK, ошибок нет
	var subs, proofs int64
	assert.NoError(t, tx.Model(&models.UserSubscription{}).Where("plan_id = ?", plan.ID).Count(&subs).Error)
	assert.NoError(t, tx.Model(&models.PaymentProof{}).Where("plan_id = ?", plan.ID).Count(&proofs).Error)
	assert.EqualValues(t, 0, subs)
	assert.EqualValues(t, 0, proofs)
}

// TestDeletePlan_NotFound
func TestDeletePlan_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "plan_staff4", "plan_staff4@test.com", "password123", models.UserRoleStaff)

	res, _ := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/plans/00000000-0000-0000-0000-000000000000", staffToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
