package integration_test

import (
	"net/http"
	"testing"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

var fakeScreenshot = []byte("not-a-real-png-but-good-enough")

// TestSubmitPaymentProof - студент отправляет чек и видит его в своем списке
func TestSubmitPaymentProof(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "pay_student", "pay_student@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})

	res, bodyStr := ts.SendMultipart(t, tx, "POST", "/api/v1/payments", token,
		map[string]string{"plan_id": plan.ID, "note": "оплатил через GPay"},
		"screenshot", "receipt.png", fakeScreenshot)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"status":"pending"`)
	assert.Contains(t, bodyStr, plan.ID)

	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/payments", token, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, `"status":"pending"`)
}

// TestSubmitPaymentProof_NoScreenshot - без файла запрос отклоняется
func TestSubmitPaymentProof_NoScreenshot(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "pay_student2", "pay_student2@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Ужины", 2500, models.BillingPeriodMonthly, []models.MealType{models.MealDinner})

	res, bodyStr := ts.SendForm(t, tx, "POST", "/api/v1/payments", token,
		map[string]string{"plan_id": plan.ID})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "screenshot file is required")
}

// TestApprovePayment - одобрение активирует подписку и гасит старую
func TestApprovePayment(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "pay_staff", "pay_staff@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "pay_student3", "pay_student3@test.com", "password123", models.UserRoleStudent)

	oldPlan := helpers.CreatePlan(t, tx, "Старый план", 2000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	newPlan := helpers.CreatePlan(t, tx, "Новый план", 4000, models.BillingPeriodQuarterly, []models.MealType{models.MealLunch, models.MealDinner})

	oldSub := helpers.CreateActiveSubscription(t, tx, student.ID, oldPlan)
	proof := helpers.CreatePendingProof(t, tx, student.ID, newPlan.ID)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/payments/"+proof.ID+"/review", staffToken,
		map[string]interface{}{"action": "approve"})

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Payment approved and subscription activated.")

	// Старая подписка погашена
	var old models.UserSubscription
	assert.NoError(t, tx.First(&old, "id = ?", oldSub.ID).Error)
	assert.False(t, old.Active)

	// Новая подписка активна и привязана к новому плану
	var fresh models.UserSubscription
	assert.NoError(t, tx.First(&fresh, "user_id = ? AND active = ?", student.ID, true).Error)
	assert.Equal(t, newPlan.ID, fresh.PlanID)

	// Чек получил статус, рецензента и TxnID
	var reviewed models.PaymentProof
	assert.NoError(t, tx.First(&reviewed, "id = ?", proof.ID).Error)
	assert.Equal(t, models.ProofStatusApproved, reviewed.Status)
	assert.NotNil(t, reviewed.ReviewedByID)
	assert.NotEmpty(t, reviewed.TxnID)

	// Студенту создано уведомление
	var notifCount int64
	tx.Model(&models.Notification{}).Where("target_id = ?", student.ID).Count(&notifCount)
	assert.Equal(t, int64(1), notifCount)
}

// TestApprovePayment_AlreadyApproved - повторное одобрение не плодит подписок
func TestApprovePayment_AlreadyApproved(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "pay_staff2", "pay_staff2@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "pay_student4", "pay_student4@test.com", "password123", models.UserRoleStudent)

	plan := helpers.CreatePlan(t, tx, "План", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	proof := helpers.CreatePendingProof(t, tx, student.ID, plan.ID)

	reviewBody := map[string]interface{}{"action": "approve"}
	path := "/api/v1/admin/payments/" + proof.ID + "/review"

	res, _ := ts.SendRequest(t, tx, "POST", path, staffToken, reviewBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, "POST", path, staffToken, reviewBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Payment already approved.")

	var subCount int64
	tx.Model(&models.UserSubscription{}).Where("user_id = ?", student.ID).Count(&subCount)
	assert.Equal(t, int64(1), subCount)
}

// TestRejectPayment - отклонение не создает подписку
func TestRejectPayment(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "pay_staff3", "pay_staff3@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "pay_student5", "pay_student5@test.com", "password123", models.UserRoleStudent)

	plan := helpers.CreatePlan(t, tx, "План Б", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	proof := helpers.CreatePendingProof(t, tx, student.ID, plan.ID)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/payments/"+proof.ID+"/review", staffToken,
		map[string]interface{}{"action": "reject", "note": "скриншот нечитаемый"})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Payment rejected.")

	var subCount int64
	tx.Model(&models.UserSubscription{}).Where("user_id = ?", student.ID).Count(&subCount)
	assert.Equal(t, int64(0), subCount)
}

// TestReviewPayment_StudentForbidden - студент не имеет доступа к проверке
func TestReviewPayment_StudentForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	studentToken, student := helpers.CreateAndLoginUser(t, ts, tx, "pay_student6", "pay_student6@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "План В", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	proof := helpers.CreatePendingProof(t, tx, student.ID, plan.ID)

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/admin/payments/"+proof.ID+"/review", studentToken,
		map[string]interface{}{"action": "approve"})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestVisitorPayment - гость платит без аккаунта
func TestVisitorPayment(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendMultipart(t, tx, "POST", "/api/v1/visitor/payments", "",
		map[string]string{
			"name":      "Гость Иванов",
			"amount":    "150",
			"meal_type": "lunch",
		},
		"screenshot", "receipt.png", fakeScreenshot)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Гость Иванов")
}

// TestSavePaymentConfig - персонал ведет реквизиты, публичный GET их отдает
func TestSavePaymentConfig(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "paycfg_staff", "paycfg_staff@test.com", "password123", models.UserRoleStaff)

	res, bodyStr := ts.SendMultipart(t, tx, "PUT", "/api/v1/admin/payments/config", staffToken,
		map[string]string{"upi_id": "mess@upi"},
		"gpay_qr", "gpay.png", fakeScreenshot)

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "mess@upi")

	// Повторное сохранение дополняет ту же запись, не создавая вторую
	res, bodyStr = ts.SendForm(t, tx, "PUT", "/api/v1/admin/payments/config", staffToken,
		map[string]string{"note": "Оплата до 5 числа"})

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "mess@upi")
	assert.Contains(t, bodyStr, "Оплата до 5 числа")

	var count int64
	assert.NoError(t, tx.Model(&models.PaymentConfig{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Реквизиты публичные
	getRes, getBody := ts.SendRequest(t, tx, "GET", "/api/v1/payments/config", "", nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBody, "mess@upi")
	assert.Contains(t, getBody, "payments/qr/")
}

// TestSavePaymentConfig_StaffOnly
func TestSavePaymentConfig_StaffOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "paycfg_student", "paycfg_student@test.com", "password123", models.UserRoleStudent)

	res, _ := ts.SendForm(t, tx, "PUT", "/api/v1/admin/payments/config", studentToken,
		map[string]string{"upi_id": "hacker@upi"})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
