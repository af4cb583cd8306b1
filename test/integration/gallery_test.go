package integration_test

import (
	"net/http"
	"testing"

	"messmet_backend/internal/models"
	"messmet_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// PNG 1x1, валидный для декодера миниатюр
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// TestCarouselImage_CreateAndList - карусель: staff создает, публика видит
func TestCarouselImage_CreateAndList(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "gal_staff", "gal_staff@test.com", "password123", models.UserRoleStaff)

	res, bodyStr := ts.SendMultipart(t, tx, "POST", "/api/v1/admin/gallery/carousel", staffToken,
		map[string]string{"title": "Наш зал", "description": "Обеденный зал", "order": "1"},
		"image", "hall.png", tinyPNG)

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Наш зал")

	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/gallery/carousel", "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, "Наш зал")
}

// TestCarouselImage_RequiresImage - карусель без картинки не создается
func TestCarouselImage_RequiresImage(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "gal_staff2", "gal_staff2@test.com", "password123", models.UserRoleStaff)

	res, bodyStr := ts.SendForm(t, tx, "POST", "/api/v1/admin/gallery/carousel", staffToken,
		map[string]string{"title": "Без картинки"})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "image file is required")
}

// TestStaffRecord_NoImageAllowed - запись о сотруднике может быть без фото
func TestStaffRecord_NoImageAllowed(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "gal_staff3", "gal_staff3@test.com", "password123", models.UserRoleStaff)

	res, bodyStr := ts.SendForm(t, tx, "POST", "/api/v1/admin/gallery/staff", staffToken,
		map[string]string{"name": "Повар Иванова", "role": "Шеф-повар"})

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, "Повар Иванова")

	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/site/staff", "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBody, "Шеф-повар")
}

// TestGalleryDelete - удаление убирает запись из публичного списка
func TestGalleryDelete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "gal_staff4", "gal_staff4@test.com", "password123", models.UserRoleStaff)

	food := &models.FoodImage{Title: "Плов", Image: "food/plov.png", IsActive: true}
	assert.NoError(t, tx.Create(food).Error)

	res, bodyStr := ts.SendRequest(t, tx, "DELETE", "/api/v1/admin/gallery/food/"+food.ID, staffToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Food image deleted successfully")

	listRes, listBody := ts.SendRequest(t, tx, "GET", "/api/v1/gallery/food", "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.NotContains(t, listBody, "Плов")
}

// TestGalleryAdmin_PublicForbidden - мутации галереи закрыты от студентов
func TestGalleryAdmin_PublicForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	studentToken, _ := helpers.CreateAndLoginUser(t, ts, tx, "gal_student", "gal_student@test.com", "password123", models.UserRoleStudent)

	res, _ := ts.SendForm(t, tx, "POST", "/api/v1/admin/gallery/staff", studentToken,
		map[string]string{"name": "Кто-то"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
