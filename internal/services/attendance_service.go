package services

import (
	"time"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AttendanceService struct {
	attendanceRepo   *repositories.AttendanceRepository
	subscriptionRepo *repositories.SubscriptionRepository
	userRepo         *repositories.UserRepository
}

func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	subscriptionRepo *repositories.SubscriptionRepository,
	userRepo *repositories.UserRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo:   attendanceRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Mark — отметка посещения на сегодня.
//
// Без активной подписки разрешенных блюд нет, поэтому любая отметка дает
// "meal not allowed". Повторная отметка того же блюда — конфликт; гонку
// двух одновременных запросов закрывает уникальный индекс.
func (s *AttendanceService) Mark(db *gorm.DB, userID string, meal models.MealType) (*dto.AttendanceItem, error) {
	sub, err := s.subscriptionRepo.FindActiveByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrMealNotAllowed
		}
		return nil, apperrors.InternalError(err)
	}

	if !sub.Plan.IncludesMeal(meal) {
		return nil, apperrors.ErrMealNotAllowed
	}

	today := truncateToDate(time.Now())

	exists, err := s.attendanceRepo.Exists(db, userID, today, meal)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAttendanceAlreadyMarked
	}

	att := &models.Attendance{
		UserID:   userID,
		Date:     today,
		MealType: meal,
		MarkedAt: time.Now(),
	}
	if err := s.attendanceRepo.Create(db, att); err != nil {
		// Параллельная отметка успела первой
		return nil, apperrors.ErrAttendanceAlreadyMarked.WithError(err)
	}

	logger.Info("attendance marked", "user_id", userID, "meal", meal)

	item := dto.ToAttendanceItem(att)
	return &item, nil
}

func (s *AttendanceService) GetOwn(db *gorm.DB, userID string) ([]dto.AttendanceItem, error) {
	records, err := s.attendanceRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.AttendanceItem, 0, len(records))
	for i := range records {
		items = append(items, dto.ToAttendanceItem(&records[i]))
	}
	return items, nil
}

// AdminBulkMark проставляет пользователю все блюда его плана за сегодня.
// Недоступно для персонала (у них нет подписок), требует активную подписку
// и отсутствие любых отметок за день.
func (s *AttendanceService) AdminBulkMark(db *gorm.DB, targetUserID string) (*dto.AdminMarkAttendanceResponse, error) {
	user, err := s.userRepo.FindByID(db, targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.IsStaff() {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	sub, err := s.subscriptionRepo.FindActiveByUser(db, targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNoActiveSubscription
		}
		return nil, apperrors.InternalError(err)
	}

	today := truncateToDate(time.Now())
	count, err := s.attendanceRepo.CountForUserDate(db, targetUserID, today)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrAttendanceExistsToday
	}

	meals := sub.Plan.Meals()
	marked := make([]string, 0, len(meals))
	err = db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, meal := range meals {
			att := &models.Attendance{
				UserID:   targetUserID,
				Date:     today,
				MealType: meal,
				MarkedAt: now,
			}
			if err := s.attendanceRepo.Create(tx, att); err != nil {
				return err
			}
			marked = append(marked, string(meal))
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("attendance bulk marked", "user_id", targetUserID, "meals", marked)

	return &dto.AdminMarkAttendanceResponse{
		Success: true,
		Message: "Attendance marked successfully",
		Marked:  marked,
	}, nil
}

// AttendanceCSVHeader — порядок колонок фиксирован.
var AttendanceCSVHeader = []string{
	"User ID", "Username", "Full Name", "Email", "Date",
	"Meal Type", "Marked At", "Weekday",
}

// ExportAttendanceCSV собирает строки выгрузки посещаемости.
func (s *AttendanceService) ExportAttendanceCSV(db *gorm.DB) ([][]string, error) {
	records, err := s.attendanceRepo.FindAllWithUser(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, AttendanceCSVHeader)
	for i := range records {
		a := &records[i]
		rows = append(rows, []string{
			a.UserID,
			a.User.Username,
			orDefault(a.User.FullName, "Not provided"),
			orDefault(a.User.Email, "Not provided"),
			a.Date.Format("2006-01-02"),
			string(a.MealType),
			a.MarkedAt.Format("2006-01-02 15:04:05"),
			a.Date.Weekday().String(),
		})
	}
	return rows, nil
}
