package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestMarkAttendance - отметка по активной подписке
func TestMarkAttendance(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, student := helpers.CreateAndLoginUser(t, ts, tx, "att_student", "att_student@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/attendance/mark", token,
		map[string]interface{}{"meal_type": "lunch"})

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"meal_type":"lunch"`)

	// Отметка видна в своей истории
	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/attendance", token, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, `"meal_type":"lunch"`)
}

// TestMarkAttendance_MealNotInPlan - блюдо вне плана дает 403
func TestMarkAttendance_MealNotInPlan(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, student := helpers.CreateAndLoginUser(t, ts, tx, "att_student2", "att_student2@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Только обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/attendance/mark", token,
		map[string]interface{}{"meal_type": "dinner"})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Meal not allowed")
}

// TestMarkAttendance_NoSubscription - без подписки любой прием пищи запрещен
func TestMarkAttendance_NoSubscription(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginUser(t, ts, tx, "att_student3", "att_student3@test.com", "password123", models.UserRoleStudent)

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/attendance/mark", token,
		map[string]interface{}{"meal_type": "lunch"})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestMarkAttendance_Duplicate - повторная отметка того же блюда дает 409
func TestMarkAttendance_Duplicate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, student := helpers.CreateAndLoginUser(t, ts, tx, "att_student4", "att_student4@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)

	body := map[string]interface{}{"meal_type": "lunch"}

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/attendance/mark", token, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/attendance/mark", token, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already marked")
}

// TestAdminBulkMark - персонал проставляет студенту все блюда плана
func TestAdminBulkMark(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "att_staff", "att_staff@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "att_student5", "att_student5@test.com", "password123", models.UserRoleStudent)

	plan := helpers.CreatePlan(t, tx, "Полный пансион", 9000, models.BillingPeriodMonthly,
		[]models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/attendance/mark", staffToken,
		map[string]interface{}{"user_id": student.ID})

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "breakfast")
	assert.Contains(t, bodyStr, "lunch")
	assert.Contains(t, bodyStr, "dinner")

	var count int64
	tx.Model(&models.Attendance{}).Where("user_id = ?", student.ID).Count(&count)
	assert.Equal(t, int64(3), count)

	// Повторный вызов в тот же день - конфликт
	res, _ = ts.SendRequest(t, tx, "POST", "/api/v1/admin/attendance/mark", staffToken,
		map[string]interface{}{"user_id": student.ID})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

// TestAdminBulkMark_StaffTarget - персоналу отметки не проставляются
func TestAdminBulkMark_StaffTarget(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, staff := helpers.CreateAndLoginUser(t, ts, tx, "att_staff2", "att_staff2@test.com", "password123", models.UserRoleStaff)

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/admin/attendance/mark", staffToken,
		map[string]interface{}{"user_id": staff.ID})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestExportAttendanceCSV - выгрузка с фиксированным заголовком
func TestExportAttendanceCSV(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "att_staff3", "att_staff3@test.com", "password123", models.UserRoleStaff)
	token, student := helpers.CreateAndLoginUser(t, ts, tx, "att_student6", "att_student6@test.com", "password123", models.UserRoleStudent)
	plan := helpers.CreatePlan(t, tx, "Обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/attendance/mark", token,
		map[string]interface{}{"meal_type": "lunch"})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	csvRes, csvBody := ts.SendRequest(t, tx, "GET", "/api/v1/admin/export/attendance.csv", staffToken, nil)

	assert.Equal(t, http.StatusOK, csvRes.StatusCode)
	assert.Equal(t, "text/csv", csvRes.Header.Get("Content-Type"))
	assert.Contains(t, csvRes.Header.Get("Content-Disposition"), "attendance_export.csv")

	lines := strings.Split(strings.TrimSpace(csvBody), "\n")
	assert.Equal(t, "User ID,Username,Full Name,Email,Date,Meal Type,Marked At,Weekday", strings.TrimSpace(lines[0]))
	assert.Contains(t, csvBody, "att_student6")
	assert.Contains(t, csvBody, "lunch")
}
