package handlers

import (
	"net/http"

	"messmet_backend/internal/dto"
	"messmet_backend/internal/middleware"
	"messmet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	*BaseHandler
	planService *services.PlanService
}

func NewPlanHandler(base *BaseHandler, planService *services.PlanService) *PlanHandler {
	return &PlanHandler{
		BaseHandler: base,
		planService: planService,
	}
}

func (h *PlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Каталог публичный
	plans := rg.Group("/plans")
	{
		plans.GET("", h.ListActivePlans)
		plans.GET("/:planId", h.GetPlan)
	}

	admin := rg.Group("/admin/plans")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		admin.GET("", h.ListAllPlans)
		admin.POST("", h.CreatePlan)
		admin.PUT("/:planId", h.UpdatePlan)
		admin.DELETE("/:planId", h.DeletePlan)
	}
}

func (h *PlanHandler) ListActivePlans(c *gin.Context) {
	db := h.GetDB(c)

	plans, err := h.planService.GetActivePlans(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	db := h.GetDB(c)

	plan, err := h.planService.GetPlan(db, c.Param("planId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ListAllPlans(c *gin.Context) {
	db := h.GetDB(c)

	plans, err := h.planService.GetAllPlans(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	plan, err := h.planService.CreatePlan(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req dto.UpdatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	plan, err := h.planService.UpdatePlan(db, c.Param("planId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.planService.DeletePlan(db, c.Param("planId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Plan deleted successfully"))
}
