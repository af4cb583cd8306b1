package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/services"
	"messmet_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	*BaseHandler
	menuService   *services.MenuService
	uploadService *services.UploadService
}

func NewMenuHandler(base *BaseHandler, menuService *services.MenuService, uploadService *services.UploadService) *MenuHandler {
	return &MenuHandler{
		BaseHandler:   base,
		menuService:   menuService,
		uploadService: uploadService,
	}
}

func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu/current", h.GetCurrentMenu)

	admin := rg.Group("/admin/menu")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.POST("", h.UploadMenu)
	}
}

func (h *MenuHandler) GetCurrentMenu(c *gin.Context) {
	db := h.GetDB(c)

	menu, err := h.menuService.GetCurrentMenu(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// UploadMenu — загрузка меню месяца: file и image опциональны,
// повторная загрузка обновляет запись.
func (h *MenuHandler) UploadMenu(c *gin.Context) {
	var req dto.UploadMenuRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	filePath, ok := h.storeOptional(c, "file")
	if !ok {
		return
	}
	imagePath, ok := h.storeOptional(c, "image")
	if !ok {
		return
	}

	db := h.GetDB(c)

	menu, err := h.menuService.UpsertMenu(db, &req, filePath, imagePath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// storeOptional сохраняет часть формы, если она есть. Возвращает путь и
// флаг успеха; отсутствие файла - не ошибка.
func (h *MenuHandler) storeOptional(c *gin.Context, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Часть формы опциональна
		return "", true
	}

	path, err := h.uploadService.Store(c.Request.Context(), fh, storage.CategoryMenus)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", false
	}
	return path, true
}
