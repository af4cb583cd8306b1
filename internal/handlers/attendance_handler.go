package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/models"
	"messmet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	*BaseHandler
	attendanceService *services.AttendanceService
}

func NewAttendanceHandler(base *BaseHandler, attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler:       base,
		attendanceService: attendanceService,
	}
}

func (h *AttendanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attendance := rg.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.POST("/mark", h.Mark)
		attendance.GET("", h.GetOwn)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.POST("/attendance/mark", h.AdminBulkMark)
		admin.GET("/export/attendance.csv", h.ExportCSV)
	}
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	record, err := h.attendanceService.Mark(db, userID, models.MealType(req.MealType))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *AttendanceHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	records, err := h.attendanceService.GetOwn(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) AdminBulkMark(c *gin.Context) {
	var req dto.AdminMarkAttendanceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.attendanceService.AdminBulkMark(db, req.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AttendanceHandler) ExportCSV(c *gin.Context) {
	db := h.GetDB(c)

	rows, err := h.attendanceService.ExportAttendanceCSV(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.WriteCSV(c, "attendance_export.csv", rows)
}
