package services

import (
	"fmt"
	"time"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const mealFeedbackPageSize = 20

type FeedbackService struct {
	feedbackRepo *repositories.FeedbackRepository
}

func NewFeedbackService(feedbackRepo *repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) Create(db *gorm.DB, userID string, req *dto.FeedbackRequest) (*models.Feedback, error) {
	f := &models.Feedback{
		UserID:  userID,
		Message: req.Message,
	}
	if err := s.feedbackRepo.Create(db, f); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return f, nil
}

// CreateMealFeedback — один отзыв на (user, meal_type, meal_date).
// Дата по умолчанию — сегодня.
func (s *FeedbackService) CreateMealFeedback(db *gorm.DB, userID string, req *dto.MealFeedbackRequest) (*dto.MealFeedbackItem, error) {
	mealDate, err := parseDateOrToday(req.MealDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid meal_date")
	}
	meal := models.MealType(req.MealType)

	exists, err := s.feedbackRepo.MealFeedbackExists(db, userID, meal, mealDate)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrMealFeedbackExists
	}

	f := &models.MealFeedback{
		UserID:         userID,
		MealType:       meal,
		MealDate:       mealDate,
		Rating:         req.Rating,
		TasteRating:    req.TasteRating,
		QuantityRating: req.QuantityRating,
		HygieneRating:  req.HygieneRating,
		Comments:       req.Comments,
		IsAnonymous:    req.IsAnonymous,
	}
	if err := s.feedbackRepo.CreateMealFeedback(db, f); err != nil {
		// Уникальный индекс закрыл гонку
		return nil, apperrors.ErrMealFeedbackExists.WithError(err)
	}

	item := dto.ToMealFeedbackItem(f)
	return &item, nil
}

func (s *FeedbackService) CreateVisitorFeedback(db *gorm.DB, req *dto.VisitorFeedbackRequest) (*models.VisitorFeedback, error) {
	mealDate, err := parseDateOrToday(req.MealDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid meal_date")
	}

	f := &models.VisitorFeedback{
		Name:     req.Name,
		MealType: models.MealType(req.MealType),
		MealDate: mealDate,
		Rating:   req.Rating,
		Comments: req.Comments,
	}
	if err := s.feedbackRepo.CreateVisitorFeedback(db, f); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return f, nil
}

// ListMealFeedback — страница отзывов со сводкой для персонала.
func (s *FeedbackService) ListMealFeedback(db *gorm.DB, req *dto.MealFeedbackFilter) (*dto.MealFeedbackListResponse, error) {
	filter := repositories.MealFeedbackFilter{
		MealType:  models.MealType(req.MealType),
		RatingMin: req.RatingMin,
		Page:      req.Page,
		PageSize:  mealFeedbackPageSize,
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if req.DateFrom != "" {
		t, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date_from")
		}
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date_to")
		}
		filter.DateTo = &t
	}

	items, total, err := s.feedbackRepo.FindMealFeedback(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats, err := s.feedbackRepo.GetMealFeedbackStats(db, filter, truncateToDate(time.Now()))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MealFeedbackListResponse{
		Items: make([]dto.MealFeedbackItem, 0, len(items)),
		Stats: dto.MealFeedbackStats{
			Total:     stats.Total,
			AvgRating: stats.AvgRating,
			Today:     stats.Today,
			Low:       stats.Low,
		},
		Pagination: dto.Pagination{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.ToMealFeedbackItem(&items[i]))
	}
	return resp, nil
}

// MealFeedbackCSVHeader — порядок колонок фиксирован.
var MealFeedbackCSVHeader = []string{
	"ID", "User ID", "Username", "Full Name", "Meal Type", "Meal Date",
	"Overall Rating", "Taste Rating", "Quantity Rating", "Hygiene Rating",
	"Comments", "Is Anonymous", "Created At", "Updated At",
}

// ExportMealFeedbackCSV собирает строки выгрузки отзывов. Авторы анонимных
// отзывов скрываются и в выгрузке.
func (s *FeedbackService) ExportMealFeedbackCSV(db *gorm.DB) ([][]string, error) {
	items, err := s.feedbackRepo.FindAllMealFeedbackWithUser(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, MealFeedbackCSVHeader)
	for i := range items {
		f := &items[i]
		username := f.User.Username
		fullName := f.User.FullName
		if f.IsAnonymous {
			username = "Anonymous"
			fullName = "Anonymous"
		}
		rows = append(rows, []string{
			f.ID,
			f.UserID,
			username,
			fullName,
			string(f.MealType),
			f.MealDate.Format("2006-01-02"),
			fmt.Sprintf("%d", f.Rating),
			formatNullableInt(f.TasteRating),
			formatNullableInt(f.QuantityRating),
			formatNullableInt(f.HygieneRating),
			orDefault(f.Comments, "No comments"),
			yesNo(f.IsAnonymous),
			f.CreatedAt.Format("2006-01-02 15:04:05"),
			f.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}

func formatNullableInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		return truncateToDate(time.Now()), nil
	}
	return time.Parse("2006-01-02", s)
}
