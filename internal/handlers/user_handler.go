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

// UserHandler обслуживает и личный профиль, и управление пользователями
// из админ-панели.
type UserHandler struct {
	*BaseHandler
	userService   *services.UserService
	uploadService *services.UploadService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, uploadService *services.UploadService) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		userService:   userService,
		uploadService: uploadService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
		me.PUT("/profile-image", h.UpdateProfileImage)
	}

	admin := rg.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.GET("", h.ListUsers)
		admin.GET("/:userId", h.GetUserDetails)
		admin.POST("", h.CreateUser)
		admin.PUT("/:userId", h.UpdateUser)
		admin.DELETE("/:userId", h.DeleteUser)
	}

	export := rg.Group("/admin/export")
	export.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		export.GET("/users.csv", h.ExportUsersCSV)
	}
}

// --- Профиль ---

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfileImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("image file is required"))
		return
	}

	path, err := h.uploadService.Store(c.Request.Context(), fh, storage.CategoryProfiles)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateProfileImage(db, userID, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// --- Админ-панель ---

func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	users, err := h.userService.ListUsers(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserDetails(c *gin.Context) {
	db := h.GetDB(c)

	details, err := h.userService.GetUserDetails(db, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.CreateUser(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateUser(db, c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteUser(db, c.Param("userId"), actorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("User deleted successfully"))
}

func (h *UserHandler) ExportUsersCSV(c *gin.Context) {
	db := h.GetDB(c)

	rows, err := h.userService.ExportUsersCSV(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.WriteCSV(c, "users_export.csv", rows)
}
