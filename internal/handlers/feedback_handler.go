package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/feedback", h.CreateFeedback)
		authed.POST("/meal-feedback", h.CreateMealFeedback)
	}

	rg.POST("/visitor/feedback", h.CreateVisitorFeedback)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.GET("/meal-feedback", h.ListMealFeedback)
		admin.GET("/export/meal-feedback.csv", h.ExportCSV)
	}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	feedback, err := h.feedbackService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) CreateMealFeedback(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.MealFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	feedback, err := h.feedbackService.CreateMealFeedback(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) CreateVisitorFeedback(c *gin.Context) {
	var req dto.VisitorFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	feedback, err := h.feedbackService.CreateVisitorFeedback(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) ListMealFeedback(c *gin.Context) {
	var filter dto.MealFeedbackFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	db := h.GetDB(c)

	result, err := h.feedbackService.ListMealFeedback(db, &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FeedbackHandler) ExportCSV(c *gin.Context) {
	db := h.GetDB(c)

	rows, err := h.feedbackService.ExportMealFeedbackCSV(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.WriteCSV(c, "meal_feedback_export.csv", rows)
}
