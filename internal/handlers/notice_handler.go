package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/internal/services"
	"messmet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	*BaseHandler
	noticeService *services.NoticeService
	userRepo      *repositories.UserRepository
}

func NewNoticeHandler(base *BaseHandler, noticeService *services.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler:   base,
		noticeService: noticeService,
		userRepo:      repositories.NewUserRepository(),
	}
}

func (h *NoticeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Таргетинг зависит от того, кто спрашивает, поэтому auth опциональный
	rg.GET("/notices/active", middleware.OptionalAuthMiddleware(), h.GetActiveNotices)

	admin := rg.Group("/admin/notices")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.GET("", h.ListNotices)
		admin.POST("", h.CreateNotice)
		admin.PUT("/:noticeId", h.UpdateNotice)
		admin.DELETE("/:noticeId", h.DeleteNotice)
	}
}

func (h *NoticeHandler) GetActiveNotices(c *gin.Context) {
	db := h.GetDB(c)

	var user *models.User
	if userID := middleware.GetUserID(c); userID != "" {
		u, err := h.userRepo.FindByID(db, userID)
		if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
		user = u
	}

	notices, err := h.noticeService.GetActiveNotices(db, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) ListNotices(c *gin.Context) {
	db := h.GetDB(c)

	notices, err := h.noticeService.ListNotices(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	creatorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	notice, err := h.noticeService.CreateNotice(db, creatorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notice)
}

func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	var req dto.UpdateNoticeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	notice, err := h.noticeService.UpdateNotice(db, c.Param("noticeId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.noticeService.DeleteNotice(db, c.Param("noticeId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Notice deleted successfully"))
}
