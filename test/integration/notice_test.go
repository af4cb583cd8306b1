package integration_test

import (
	"net/http"
	"testing"
	"time"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestActiveNotices_Targeting - таргетинг по статусу проживания и подписке
func TestActiveNotices_Targeting(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, staff := helpers.CreateAndLoginUser(t, ts, tx, "notice_staff", "notice_staff@test.com", "password123", models.UserRoleStaff)

	helpers.CreateNotice(t, tx, "Для всех", models.TargetAllUsers, staff.ID)
	helpers.CreateNotice(t, tx, "Для общежития", models.TargetHostellers, staff.ID)
	helpers.CreateNotice(t, tx, "Для подписчиков", models.TargetActiveSubscribers, staff.ID)

	// Аноним видит только "all"
	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/notices/active", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Для всех")
	assert.NotContains(t, bodyStr, "Для общежития")
	assert.NotContains(t, bodyStr, "Для подписчиков")

	// Хостелер с активной подпиской видит все три
	hostelToken, hosteller := helpers.CreateAndLoginUser(t, ts, tx, "notice_hosteller", "notice_hosteller@test.com", "password123", models.UserRoleStudent)
	assert.NoError(t, tx.Model(&models.User{}).Where("id = ?", hosteller.ID).
		Update("hostel_status", models.HostelStatusHosteller).Error)
	plan := helpers.CreatePlan(t, tx, "Обеды", 3000, models.BillingPeriodMonthly, []models.MealType{models.MealLunch})
	helpers.CreateActiveSubscription(t, tx, hosteller.ID, plan)

	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/notices/active", hostelToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Для всех")
	assert.Contains(t, bodyStr, "Для общежития")
	assert.Contains(t, bodyStr, "Для подписчиков")
}

// TestActiveNotices_Window - объявления вне окна показа не видны
func TestActiveNotices_Window(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, staff := helpers.CreateAndLoginUser(t, ts, tx, "notice_staff2", "notice_staff2@test.com", "password123", models.UserRoleStaff)

	expired := helpers.CreateNotice(t, tx, "Прошедшее", models.TargetAllUsers, staff.ID)
	assert.NoError(t, tx.Model(&models.PopupNotice{}).Where("id = ?", expired.ID).Updates(map[string]interface{}{
		"start_at": time.Now().Add(-48 * time.Hour),
		"end_at":   time.Now().Add(-24 * time.Hour),
	}).Error)

	disabled := helpers.CreateNotice(t, tx, "Выключенное", models.TargetAllUsers, staff.ID)
	assert.NoError(t, tx.Model(&models.PopupNotice{}).Where("id = ?", disabled.ID).
		Update("is_active", false).Error)

	helpers.CreateNotice(t, tx, "Текущее", models.TargetAllUsers, staff.ID)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/notices/active", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Текущее")
	assert.NotContains(t, bodyStr, "Прошедшее")
	assert.NotContains(t, bodyStr, "Выключенное")
}

// TestCreateNotice - создание персоналом
func TestCreateNotice(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "notice_staff3", "notice_staff3@test.com", "password123", models.UserRoleStaff)

	now := time.Now()
	noticeBody := map[string]interface{}{
		"title":           "Меню обновлено",
		"message":         "С понедельника новое меню",
		"start_datetime":  now.Format(time.RFC3339),
		"end_datetime":    now.Add(72 * time.Hour).Format(time.RFC3339),
		"target_audience": "all",
		"priority":        5,
	}

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/admin/notices", staffToken, noticeBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Меню обновлено")
}

// TestCreateNotice_EndBeforeStart - конец окна раньше начала отклоняется
func TestCreateNotice_EndBeforeStart(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "notice_staff4", "notice_staff4@test.com", "password123", models.UserRoleStaff)

	now := time.Now()
	noticeBody := map[string]interface{}{
		"title":          "Сломанное окно",
		"message":        "end < start",
		"start_datetime": now.Format(time.RFC3339),
		"end_datetime":   now.Add(-time.Hour).Format(time.RFC3339),
	}

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/admin/notices", staffToken, noticeBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestNoticeAdmin_StudentForbidden
func TestNoticeAdmin_StudentForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "notice_student", "notice_student@test.com", "password123", models.UserRoleStudent)

	res, _ := ts.SendRequest(t, tx, "GET", "/api/v1/admin/notices", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
