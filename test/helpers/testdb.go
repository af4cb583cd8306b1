package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"messmet_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя в транзакции с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}
	if user.HostelStatus == "" {
		user.HostelStatus = models.HostelStatusNonHosteller
	}
	user.IsActive = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Username, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, username, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: password, // Сырой пароль, CreateUser захеширует
		FullName:     "Test " + username,
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"username": username,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	// Восстанавливаем сырой пароль для повторных логинов в тестах
	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreatePlan создает активный план подписки
func CreatePlan(t *testing.T, db *gorm.DB, title string, price float64, period models.BillingPeriod, meals []models.MealType) *models.SubscriptionPlan {
	plan := &models.SubscriptionPlan{
		Title:         title,
		Price:         price,
		BillingPeriod: period,
		IncludedMeals: models.MealsJSON(meals),
		IsActive:      true,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("Не удалось создать план %s: %v", title, err)
	}
	return plan
}

// CreateActiveSubscription выдает пользователю активную подписку на план
func CreateActiveSubscription(t *testing.T, db *gorm.DB, userID string, plan *models.SubscriptionPlan) *models.UserSubscription {
	start := time.Now().Truncate(24 * time.Hour)
	sub := &models.UserSubscription{
		UserID:    userID,
		PlanID:    plan.ID,
		StartDate: start,
		EndDate:   plan.ComputeEndDate(start),
		Active:    true,
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Не удалось создать подписку: %v", err)
	}
	return sub
}

// CreatePendingProof создает непроверенный платеж
func CreatePendingProof(t *testing.T, db *gorm.DB, userID, planID string) *models.PaymentProof {
	proof := &models.PaymentProof{
		UserID:     userID,
		PlanID:     planID,
		Screenshot: "payments/test.png",
		Status:     models.ProofStatusPending,
	}
	if err := db.Create(proof).Error; err != nil {
		t.Fatalf("Не удалось создать платеж: %v", err)
	}
	return proof
}

// CreateNotice создает активное объявление с окном показа вокруг текущего момента
func CreateNotice(t *testing.T, db *gorm.DB, title string, audience models.TargetAudience, createdBy string) *models.PopupNotice {
	now := time.Now()
	notice := &models.PopupNotice{
		Title:          title,
		Message:        "Test message",
		TargetAudience: audience,
		Priority:       1,
		StartAt:        now.Add(-time.Hour),
		EndAt:          now.Add(time.Hour),
		IsActive:       true,
		CreatedByID:    &createdBy,
	}
	if err := db.Create(notice).Error; err != nil {
		t.Fatalf("Не удалось создать объявление: %v", err)
	}
	return notice
}
