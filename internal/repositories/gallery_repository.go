package repositories

import (
	"errors"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGalleryRecordNotFound = errors.New("gallery record not found")

// GalleryRepository обслуживает четыре витринные таблицы. CRUD у них
// одинаковый, поэтому методы обобщены через дженерик-хелперы.
type GalleryRepository struct{}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{}
}

func findGalleryByID[T any](db *gorm.DB, id string) (*T, error) {
	var record T
	err := db.First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func findActiveOrdered[T any](db *gorm.DB, orderExpr string) ([]T, error) {
	var records []T
	err := db.Where("is_active = ?", true).Order(orderExpr).Find(&records).Error
	return records, err
}

func deleteGalleryByID[T any](db *gorm.DB, id string) error {
	var model T
	result := db.Where("id = ?", id).Delete(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryRecordNotFound
	}
	return nil
}

// --- Carousel ---

func (r *GalleryRepository) FindActiveCarousel(db *gorm.DB) ([]models.CarouselImage, error) {
	return findActiveOrdered[models.CarouselImage](db, "display_order ASC, created_at ASC")
}

func (r *GalleryRepository) FindCarouselByID(db *gorm.DB, id string) (*models.CarouselImage, error) {
	return findGalleryByID[models.CarouselImage](db, id)
}

func (r *GalleryRepository) SaveCarousel(db *gorm.DB, img *models.CarouselImage) error {
	return db.Save(img).Error
}

func (r *GalleryRepository) DeleteCarousel(db *gorm.DB, id string) error {
	return deleteGalleryByID[models.CarouselImage](db, id)
}

// --- Food ---

func (r *GalleryRepository) FindActiveFood(db *gorm.DB) ([]models.FoodImage, error) {
	return findActiveOrdered[models.FoodImage](db, "display_order ASC, created_at ASC")
}

func (r *GalleryRepository) FindFoodByID(db *gorm.DB, id string) (*models.FoodImage, error) {
	return findGalleryByID[models.FoodImage](db, id)
}

func (r *GalleryRepository) SaveFood(db *gorm.DB, img *models.FoodImage) error {
	return db.Save(img).Error
}

func (r *GalleryRepository) DeleteFood(db *gorm.DB, id string) error {
	return deleteGalleryByID[models.FoodImage](db, id)
}

// --- Staff ---

func (r *GalleryRepository) FindActiveStaff(db *gorm.DB) ([]models.StaffImage, error) {
	return findActiveOrdered[models.StaffImage](db, "display_order ASC, created_at ASC")
}

func (r *GalleryRepository) FindStaffByID(db *gorm.DB, id string) (*models.StaffImage, error) {
	return findGalleryByID[models.StaffImage](db, id)
}

func (r *GalleryRepository) SaveStaff(db *gorm.DB, img *models.StaffImage) error {
	return db.Save(img).Error
}

func (r *GalleryRepository) DeleteStaff(db *gorm.DB, id string) error {
	return deleteGalleryByID[models.StaffImage](db, id)
}

// --- Owners ---

func (r *GalleryRepository) FindActiveOwners(db *gorm.DB) ([]models.OwnerImage, error) {
	return findActiveOrdered[models.OwnerImage](db, "created_at ASC")
}

func (r *GalleryRepository) FindOwnerByID(db *gorm.DB, id string) (*models.OwnerImage, error) {
	return findGalleryByID[models.OwnerImage](db, id)
}

func (r *GalleryRepository) SaveOwner(db *gorm.DB, img *models.OwnerImage) error {
	return db.Save(img).Error
}

func (r *GalleryRepository) DeleteOwner(db *gorm.DB, id string) error {
	return deleteGalleryByID[models.OwnerImage](db, id)
}
