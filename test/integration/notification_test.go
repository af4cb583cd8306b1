package integration_test

import (
	"net/http"
	"testing"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestNotifications_ListAndMarkRead - свои уведомления и отметка о прочтении
func TestNotifications_ListAndMarkRead(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, student := helpers.CreateAndLoginUser(t, ts, tx, "ntf_student", "ntf_student@test.com", "password123", models.UserRoleStudent)

	notif := &models.Notification{TargetID: student.ID, Message: "Оплата подтверждена"}
	assert.NoError(t, tx.Create(notif).Error)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/me/notifications", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Оплата подтверждена")
	assert.Contains(t, bodyStr, `"read_flag":false`)

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/me/notifications/"+notif.ID+"/read", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Notification marked as read")

	var updated models.Notification
	assert.NoError(t, tx.First(&updated, "id = ?", notif.ID).Error)
	assert.True(t, updated.ReadFlag)
}

// TestNotifications_ForeignMarkRead - чужое уведомление прочитать нельзя
func TestNotifications_ForeignMarkRead(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateAndLoginUser(t, ts, tx, "ntf_owner", "ntf_owner@test.com", "password123", models.UserRoleStudent)
	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "ntf_stranger", "ntf_stranger@test.com", "password123", models.UserRoleStudent)

	notif := &models.Notification{TargetID: owner.ID, Message: "Личное"}
	assert.NoError(t, tx.Create(notif).Error)

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/me/notifications/"+notif.ID+"/read", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var unchanged models.Notification
	assert.NoError(t, tx.First(&unchanged, "id = ?", notif.ID).Error)
	assert.False(t, unchanged.ReadFlag)
}
