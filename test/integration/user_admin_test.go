package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAdminListUsers - список с числом посещений
func TestAdminListUsers(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "adm_staff", "adm_staff@test.com", "password123", models.UserRoleStaff)
	helpers.CreateAndLoginUser(t, ts, tx, "adm_student", "adm_student@test.com", "password123", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/admin/users", staffToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "adm_student")
	assert.Contains(t, bodyStr, `"attendance_count"`)
	assert.Contains(t, bodyStr, `"pagination"`)
}

// TestAdminCreateUser - персонал заводит сотрудника
func TestAdminCreateUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "adm_staff2", "adm_staff2@test.com", "password123", models.UserRoleStaff)

	createBody := map[string]interface{}{
		"username":  "new_cook",
		"email":     "cook@test.com",
		"password":  "cook_password1",
		"full_name": "Повар Петров",
		"role":      "staff",
	}

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/users", staffToken, createBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "new_cook")
	assert.Contains(t, bodyStr, `"role":"staff"`)

	// Новый сотрудник может войти
	loginRes, _ := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "",
		map[string]interface{}{"username": "new_cook", "password": "cook_password1"})
	assert.Equal(t, http.StatusOK, loginRes.StatusCode)
}

// TestAdminUserDetails - карточка с подписками и непроверенными чеками
func TestAdminUserDetails(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "adm_staff3", "adm_staff3@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "adm_student2", "adm_student2@test.com", "password123", models.UserRoleStudent)

	plan := helpers.CreatePlan(t, tx, "Обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, student.ID, plan)
	helpers.CreatePendingProof(t, tx, student.ID, plan.ID)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/admin/users/"+student.ID, staffToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "adm_student2")
	assert.Contains(t, bodyStr, `"active_subscriptions"`)
	assert.Contains(t, bodyStr, "Обеды")
	assert.Contains(t, bodyStr, `"pending_proofs"`)
}

// TestAdminDeleteUser_Guards - нельзя удалить admin и самого себя
func TestAdminDeleteUser_Guards(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, staff := helpers.CreateAndLoginUser(t, ts, tx, "adm_staff4", "adm_staff4@test.com", "password123", models.UserRoleStaff)
	_, admin := helpers.CreateAndLoginUser(t, ts, tx, "adm_admin", "adm_admin@test.com", "password123", models.UserRoleAdmin)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "adm_student3", "adm_student3@test.com", "password123", models.UserRoleStudent)

	// Суперпользователя удалить нельзя
	res, bodyStr := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/users/"+admin.ID, staffToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "superuser")

	// Себя удалить нельзя
	res, _ = ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/users/"+staff.ID, staffToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Обычного студента - можно
	res, bodyStr = ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/users/"+student.ID, staffToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "User deleted successfully")
}

// TestAdminUpdateUser - смена роли и деактивация
func TestAdminUpdateUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "adm_staff5", "adm_staff5@test.com", "password123", models.UserRoleStaff)
	_, student := helpers.CreateAndLoginUser(t, ts, tx, "adm_student4", "adm_student4@test.com", "password123", models.UserRoleStudent)

	updateBody := map[string]interface{}{
		"role":      "staff",
		"is_active": false,
	}
	res, bodyStr := ts.SendRequest(t, tx, "PUT", "/api/v1/admin/users/"+student.ID, staffToken, updateBody)

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"role":"staff"`)
	assert.Contains(t, bodyStr, `"is_active":false`)
}

// TestExportUsersCSV - выгрузка пользователей с фиксированным заголовком
func TestExportUsersCSV(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "adm_staff6", "adm_staff6@test.com", "password123", models.UserRoleStaff)
	helpers.CreateAndLoginUser(t, ts, tx, "adm_student5", "adm_student5@test.com", "password123", models.UserRoleStudent)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/admin/export/users.csv", staffToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	lines := strings.Split(strings.TrimSpace(bodyStr), "\n")
	assert.Equal(t,
		"ID,Username,Email,Full Name,Mobile Number,Is Active,Is Staff,Date Joined,Last Login,Total Attendance,Last Attendance Date,Active Subscriptions",
		strings.TrimSpace(lines[0]))
	assert.Contains(t, bodyStr, "adm_student5")
	// Телефон не указан - подставляется заглушка
	assert.Contains(t, bodyStr, "Not provided")
}
