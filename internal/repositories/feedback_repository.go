package repositories

import (
	"time"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository struct{}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(db *gorm.DB, f *models.Feedback) error {
	return db.Create(f).Error
}

func (r *FeedbackRepository) CreateMealFeedback(db *gorm.DB, f *models.MealFeedback) error {
	return db.Create(f).Error
}

// MealFeedbackExists — есть ли отзыв на (user, meal_type, meal_date).
func (r *FeedbackRepository) MealFeedbackExists(db *gorm.DB, userID string, meal models.MealType, date time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.MealFeedback{}).
		Where("user_id = ? AND meal_type = ? AND meal_date = ?", userID, meal, date).
		Count(&count).Error
	return count > 0, err
}

func (r *FeedbackRepository) CreateVisitorFeedback(db *gorm.DB, f *models.VisitorFeedback) error {
	return db.Create(f).Error
}

// MealFeedbackFilter — критерии выборки отзывов для персонала.
type MealFeedbackFilter struct {
	MealType  models.MealType
	DateFrom  *time.Time
	DateTo    *time.Time
	RatingMin int
	Page      int
	PageSize  int
}

func (f MealFeedbackFilter) apply(q *gorm.DB) *gorm.DB {
	if f.MealType != "" {
		q = q.Where("meal_type = ?", f.MealType)
	}
	if f.DateFrom != nil {
		q = q.Where("meal_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("meal_date <= ?", *f.DateTo)
	}
	if f.RatingMin > 0 {
		q = q.Where("rating >= ?", f.RatingMin)
	}
	return q
}

// FindMealFeedback — страница отзывов с общим числом по фильтру.
func (r *FeedbackRepository) FindMealFeedback(db *gorm.DB, filter MealFeedbackFilter) ([]models.MealFeedback, int64, error) {
	q := filter.apply(db.Model(&models.MealFeedback{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MealFeedback
	offset := (filter.Page - 1) * filter.PageSize
	err := filter.apply(db.Preload("User")).
		Order("created_at DESC").
		Limit(filter.PageSize).Offset(offset).
		Find(&items).Error
	return items, total, err
}

// MealFeedbackStats — сводка по отфильтрованной выборке.
type MealFeedbackStats struct {
	Total     int64
	AvgRating float64
	Today     int64
	Low       int64
}

func (r *FeedbackRepository) GetMealFeedbackStats(db *gorm.DB, filter MealFeedbackFilter, today time.Time) (*MealFeedbackStats, error) {
	var stats MealFeedbackStats

	base := func() *gorm.DB { return filter.apply(db.Model(&models.MealFeedback{})) }

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if stats.Total > 0 {
		if err := base().Select("AVG(rating)").Scan(&stats.AvgRating).Error; err != nil {
			return nil, err
		}
	}
	if err := base().Where("meal_date = ?", today).Count(&stats.Today).Error; err != nil {
		return nil, err
	}
	if err := base().Where("rating <= ?", 2).Count(&stats.Low).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// FindAllMealFeedbackWithUser — полная выгрузка для CSV.
func (r *FeedbackRepository) FindAllMealFeedbackWithUser(db *gorm.DB) ([]models.MealFeedback, error) {
	var items []models.MealFeedback
	err := db.Preload("User").
		Order("meal_date DESC, created_at DESC").
		Find(&items).Error
	return items, err
}
