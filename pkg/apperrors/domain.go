package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок бизнес-логики
столовой: планы, подписки, оплаты, посещаемость, объявления.
*/

// =========================================================================
// Фабричные функции (оборачивают ошибки репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// =========================================================================
// Предопределенные переменные (частые, статичные ошибки)
// =========================================================================

// --- Auth & Users ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

// ErrCannotDeleteSuperuser - admin соответствует superuser, его нельзя удалить.
var ErrCannotDeleteSuperuser = New(
	CodeForbidden,
	"users",
	"Cannot delete superuser",
	http.StatusForbidden,
)

// ErrCannotDeleteSelf - пользователь не может удалить собственный аккаунт.
var ErrCannotDeleteSelf = New(
	CodeForbidden,
	"users",
	"Cannot delete your own account",
	http.StatusForbidden,
)

var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"users",
	"Username already exists",
	http.StatusConflict,
)

var ErrEmailTaken = New(
	CodeAlreadyExists,
	"users",
	"Email already exists",
	http.StatusConflict,
)

// --- Subscriptions & Payments ---

// ErrNoActiveSubscription - у пользователя нет активной подписки.
var ErrNoActiveSubscription = New(
	CodeNotFound,
	"subscription",
	"No active subscription",
	http.StatusNotFound,
)

// Повторная проверка чека не ошибка: ReviewProof отвечает no-op сообщением,
// как делает оригинальный поток одобрения.

// --- Attendance ---

// ErrMealNotAllowed - блюдо не входит в активный план пользователя.
var ErrMealNotAllowed = New(
	CodeMealNotAllowed,
	"attendance",
	"Meal not allowed for your plan",
	http.StatusForbidden,
)

// ErrAttendanceAlreadyMarked - отметка на (user, date, meal) уже есть.
var ErrAttendanceAlreadyMarked = New(
	CodeConflict,
	"attendance",
	"Attendance already marked",
	http.StatusConflict,
)

// ErrAttendanceExistsToday - у пользователя уже есть отметки за сегодня
// (массовое проставление админом).
var ErrAttendanceExistsToday = New(
	CodeConflict,
	"attendance",
	"Attendance already marked for today",
	http.StatusConflict,
)

// --- Feedback ---

// ErrMealFeedbackExists - отзыв на (user, meal_type, meal_date) уже есть.
var ErrMealFeedbackExists = New(
	CodeAlreadyExists,
	"feedback",
	"Feedback for this meal has already been submitted",
	http.StatusConflict,
)

// --- Uploads & Files ---

// ErrFileTooLarge - файл превышает максимальный размер для одного запроса.
var ErrFileTooLarge = New(
	CodeValidationFailed,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME-тип файла не разрешен.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
