package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"messmet_backend/internal/models"
)

var mobileRe = regexp.MustCompile(`^[0-9+\-()\s]{8,15}$`)

// registerCustomRules регистрирует все кастомные функции валидации
// в переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила — приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go
	mustRegister("is-meal-type", validateMealType)
	mustRegister("is-billing-period", validateBillingPeriod)
	mustRegister("is-hostel-status", validateHostelStatus)
	mustRegister("is-proof-status", validateProofStatus)
	mustRegister("is-target-audience", validateTargetAudience)

	// Прочие доменные правила
	mustRegister("is-rating", validateRating)
	mustRegister("is-mobile-no", validateMobileNo)
}

// --- Функции валидации ---

func validateMealType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch models.MealType(value) {
	case models.MealBreakfast, models.MealLunch, models.MealDinner:
		return true
	default:
		return false
	}
}

func validateBillingPeriod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BillingPeriod(value) {
	case models.BillingPeriodMonthly, models.BillingPeriodQuarterly, models.BillingPeriodYearly:
		return true
	default:
		return false
	}
}

func validateHostelStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.HostelStatus(value) {
	case models.HostelStatusHosteller, models.HostelStatusNonHosteller:
		return true
	default:
		return false
	}
}

func validateProofStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProofStatus(value) {
	case models.ProofStatusPending, models.ProofStatusApproved, models.ProofStatusRejected:
		return true
	default:
		return false
	}
}

func validateTargetAudience(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.TargetAudience(value) {
	case models.TargetAllUsers, models.TargetHostellers, models.TargetNonHostellers, models.TargetActiveSubscribers:
		return true
	default:
		return false
	}
}

func validateRating(fl validator.FieldLevel) bool {
	value := fl.Field().Int()
	if value == 0 {
		return true // optional-поля с нулевым значением пропускаем
	}
	return value >= 1 && value <= 5
}

func validateMobileNo(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return mobileRe.MatchString(value)
}
