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

type MenuService struct {
	menuRepo *repositories.MenuRepository
}

func NewMenuService(menuRepo *repositories.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// GetCurrentMenu — меню текущего месяца или not found.
func (s *MenuService) GetCurrentMenu(db *gorm.DB) (*models.MonthlyMenu, error) {
	now := time.Now()
	menu, err := s.menuRepo.FindByMonthYear(db, int(now.Month()), now.Year())
	if err != nil {
		if apperrors.Is(err, repositories.ErrMenuNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return menu, nil
}

// UpsertMenu — загрузка меню: существующая запись (month, year) обновляется
// на месте, пустые пути файлов не затирают прежние.
func (s *MenuService) UpsertMenu(db *gorm.DB, req *dto.UploadMenuRequest, filePath, imagePath string) (*models.MonthlyMenu, error) {
	menu, err := s.menuRepo.FindByMonthYear(db, req.Month, req.Year)
	if err != nil && !apperrors.Is(err, repositories.ErrMenuNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if menu == nil {
		menu = &models.MonthlyMenu{
			Month: req.Month,
			Year:  req.Year,
		}
	}

	if filePath != "" {
		menu.FilePath = filePath
	}
	if imagePath != "" {
		menu.ImagePath = imagePath
	}
	menu.Text = req.Text

	if menu.ID == "" {
		err = s.menuRepo.Create(db, menu)
	} else {
		err = s.menuRepo.Update(db, menu)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("monthly menu saved", "month", menu.Month, "year", menu.Year)
	return menu, nil
}
