package services

import (
	"context"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// GalleryService — витрина сайта: карусель, фото блюд, персонал, владельцы.
type GalleryService struct {
	galleryRepo *repositories.GalleryRepository
	uploads     *UploadService
}

func NewGalleryService(galleryRepo *repositories.GalleryRepository, uploads *UploadService) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		uploads:     uploads,
	}
}

func (s *GalleryService) wrapNotFound(err error) error {
	if apperrors.Is(err, repositories.ErrGalleryRecordNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

// --- Carousel ---

func (s *GalleryService) ListCarousel(db *gorm.DB) ([]models.CarouselImage, error) {
	items, err := s.galleryRepo.FindActiveCarousel(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *GalleryService) CreateCarousel(db *gorm.DB, req *dto.CarouselImageRequest, imagePath string) (*models.CarouselImage, error) {
	img := &models.CarouselImage{
		Title:       req.Title,
		Image:       imagePath,
		Description: req.Description,
		IsActive:    true,
		Order:       req.Order,
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if err := s.galleryRepo.SaveCarousel(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) UpdateCarousel(db *gorm.DB, id string, req *dto.CarouselImageRequest, imagePath string) (*models.CarouselImage, error) {
	img, err := s.galleryRepo.FindCarouselByID(db, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	img.Title = req.Title
	img.Description = req.Description
	img.Order = req.Order
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if imagePath != "" {
		img.Image = imagePath
	}

	if err := s.galleryRepo.SaveCarousel(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) DeleteCarousel(ctx context.Context, db *gorm.DB, id string) error {
	img, err := s.galleryRepo.FindCarouselByID(db, id)
	if err != nil {
		return s.wrapNotFound(err)
	}
	if err := s.galleryRepo.DeleteCarousel(db, id); err != nil {
		return s.wrapNotFound(err)
	}
	s.uploads.Delete(ctx, img.Image)
	return nil
}

// --- Food ---

func (s *GalleryService) ListFood(db *gorm.DB) ([]models.FoodImage, error) {
	items, err := s.galleryRepo.FindActiveFood(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *GalleryService) CreateFood(db *gorm.DB, req *dto.FoodImageRequest, imagePath string) (*models.FoodImage, error) {
	img := &models.FoodImage{
		Title:    req.Title,
		Image:    imagePath,
		IsActive: true,
		Order:    req.Order,
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if err := s.galleryRepo.SaveFood(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) UpdateFood(db *gorm.DB, id string, req *dto.FoodImageRequest, imagePath string) (*models.FoodImage, error) {
	img, err := s.galleryRepo.FindFoodByID(db, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	img.Title = req.Title
	img.Order = req.Order
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if imagePath != "" {
		img.Image = imagePath
	}

	if err := s.galleryRepo.SaveFood(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) DeleteFood(ctx context.Context, db *gorm.DB, id string) error {
	img, err := s.galleryRepo.FindFoodByID(db, id)
	if err != nil {
		return s.wrapNotFound(err)
	}
	if err := s.galleryRepo.DeleteFood(db, id); err != nil {
		return s.wrapNotFound(err)
	}
	s.uploads.Delete(ctx, img.Image)
	return nil
}

// --- Staff ---

func (s *GalleryService) ListStaff(db *gorm.DB) ([]models.StaffImage, error) {
	items, err := s.galleryRepo.FindActiveStaff(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *GalleryService) CreateStaff(db *gorm.DB, req *dto.StaffImageRequest, imagePath string) (*models.StaffImage, error) {
	img := &models.StaffImage{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Image:       imagePath,
		IsActive:    true,
		Order:       req.Order,
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if err := s.galleryRepo.SaveStaff(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) UpdateStaff(db *gorm.DB, id string, req *dto.StaffImageRequest, imagePath string) (*models.StaffImage, error) {
	img, err := s.galleryRepo.FindStaffByID(db, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	img.Name = req.Name
	img.Role = req.Role
	img.Description = req.Description
	img.Order = req.Order
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if imagePath != "" {
		img.Image = imagePath
	}

	if err := s.galleryRepo.SaveStaff(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) DeleteStaff(ctx context.Context, db *gorm.DB, id string) error {
	img, err := s.galleryRepo.FindStaffByID(db, id)
	if err != nil {
		return s.wrapNotFound(err)
	}
	if err := s.galleryRepo.DeleteStaff(db, id); err != nil {
		return s.wrapNotFound(err)
	}
	s.uploads.Delete(ctx, img.Image)
	return nil
}

// --- Owners ---

func (s *GalleryService) ListOwners(db *gorm.DB) ([]models.OwnerImage, error) {
	items, err := s.galleryRepo.FindActiveOwners(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *GalleryService) CreateOwner(db *gorm.DB, req *dto.OwnerImageRequest, imagePath string) (*models.OwnerImage, error) {
	img := &models.OwnerImage{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Image:       imagePath,
		IsActive:    true,
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if err := s.galleryRepo.SaveOwner(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) UpdateOwner(db *gorm.DB, id string, req *dto.OwnerImageRequest, imagePath string) (*models.OwnerImage, error) {
	img, err := s.galleryRepo.FindOwnerByID(db, id)
	if err != nil {
		return nil, s.wrapNotFound(err)
	}

	img.Name = req.Name
	img.Title = req.Title
	img.Description = req.Description
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if imagePath != "" {
		img.Image = imagePath
	}

	if err := s.galleryRepo.SaveOwner(db, img); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return img, nil
}

func (s *GalleryService) DeleteOwner(ctx context.Context, db *gorm.DB, id string) error {
	img, err := s.galleryRepo.FindOwnerByID(db, id)
	if err != nil {
		return s.wrapNotFound(err)
	}
	if err := s.galleryRepo.DeleteOwner(db, id); err != nil {
		return s.wrapNotFound(err)
	}
	s.uploads.Delete(ctx, img.Image)
	return nil
}
