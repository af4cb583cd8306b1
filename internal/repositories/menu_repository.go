package repositories

import (
	"errors"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMenuNotFound = errors.New("monthly menu not found")

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) FindByMonthYear(db *gorm.DB, month, year int) (*models.MonthlyMenu, error) {
	var menu models.MonthlyMenu
	err := db.First(&menu, "month = ? AND year = ?", month, year).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(db *gorm.DB, menu *models.MonthlyMenu) error {
	return db.Create(menu).Error
}

func (r *MenuRepository) Update(db *gorm.DB, menu *models.MonthlyMenu) error {
	return db.Save(menu).Error
}
