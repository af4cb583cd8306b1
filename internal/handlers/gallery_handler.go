package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/services"
	"messmet_backend/internal/storage"
	"messmet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// GalleryHandler — витрина сайта: публичные списки и staff CRUD.
type GalleryHandler struct {
	*BaseHandler
	galleryService *services.GalleryService
	uploadService  *services.UploadService
}

func NewGalleryHandler(base *BaseHandler, galleryService *services.GalleryService, uploadService *services.UploadService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
		uploadService:  uploadService,
	}
}

func (h *GalleryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gallery := rg.Group("/gallery")
	{
		gallery.GET("/carousel", h.ListCarousel)
		gallery.GET("/food", h.ListFood)
	}

	site := rg.Group("/site")
	{
		site.GET("/staff", h.ListStaff)
		site.GET("/owners", h.ListOwners)
	}

	admin := rg.Group("/admin/gallery")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.POST("/carousel", h.CreateCarousel)
		admin.PUT("/carousel/:id", h.UpdateCarousel)
		admin.DELETE("/carousel/:id", h.DeleteCarousel)

		admin.POST("/food", h.CreateFood)
		admin.PUT("/food/:id", h.UpdateFood)
		admin.DELETE("/food/:id", h.DeleteFood)

		admin.POST("/staff", h.CreateStaff)
		admin.PUT("/staff/:id", h.UpdateStaff)
		admin.DELETE("/staff/:id", h.DeleteStaff)

		admin.POST("/owners", h.CreateOwner)
		admin.PUT("/owners/:id", h.UpdateOwner)
		admin.DELETE("/owners/:id", h.DeleteOwner)
	}
}

// storeImage сохраняет картинку с миниатюрой. required=false допускает
// форму без файла (обновление без замены картинки).
func (h *GalleryHandler) storeImage(c *gin.Context, category string, required bool) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		if !required {
			return "", true
		}
		h.HandleServiceError(c, apperrors.NewBadRequestError("image file is required"))
		return "", false
	}

	path, err := h.uploadService.StoreImageWithThumbnail(c.Request.Context(), fh, category)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", false
	}
	return path, true
}

// --- Carousel ---

func (h *GalleryHandler) ListCarousel(c *gin.Context) {
	db := h.GetDB(c)

	items, err := h.galleryService.ListCarousel(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) CreateCarousel(c *gin.Context) {
	var req dto.CarouselImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryCarousel, true)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.CreateCarousel(db, &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) UpdateCarousel(c *gin.Context) {
	var req dto.CarouselImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryCarousel, false)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.UpdateCarousel(db, c.Param("id"), &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) DeleteCarousel(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.galleryService.DeleteCarousel(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Carousel image deleted successfully"))
}

// --- Food ---

func (h *GalleryHandler) ListFood(c *gin.Context) {
	db := h.GetDB(c)

	items, err := h.galleryService.ListFood(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) CreateFood(c *gin.Context) {
	var req dto.FoodImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryFood, true)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.CreateFood(db, &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) UpdateFood(c *gin.Context) {
	var req dto.FoodImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryFood, false)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.UpdateFood(db, c.Param("id"), &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) DeleteFood(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.galleryService.DeleteFood(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Food image deleted successfully"))
}

// --- Staff ---

func (h *GalleryHandler) ListStaff(c *gin.Context) {
	db := h.GetDB(c)

	items, err := h.galleryService.ListStaff(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) CreateStaff(c *gin.Context) {
	var req dto.StaffImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryStaff, false)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.CreateStaff(db, &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) UpdateStaff(c *gin.Context) {
	var req dto.StaffImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryStaff, false)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.UpdateStaff(db, c.Param("id"), &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) DeleteStaff(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.galleryService.DeleteStaff(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Staff record deleted successfully"))
}

// --- Owners ---

func (h *GalleryHandler) ListOwners(c *gin.Context) {
	db := h.GetDB(c)

	items, err := h.galleryService.ListOwners(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) CreateOwner(c *gin.Context) {
	var req dto.OwnerImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryOwners, false)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.CreateOwner(db, &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) UpdateOwner(c *gin.Context) {
	var req dto.OwnerImageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	path, ok := h.storeImage(c, storage.CategoryOwners, false)
	if !ok {
		return
	}

	db := h.GetDB(c)
	item, err := h.galleryService.UpdateOwner(db, c.Param("id"), &req, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) DeleteOwner(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.galleryService.DeleteOwner(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Owner record deleted successfully"))
}
