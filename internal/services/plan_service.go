package services

import (
	"messmet_backend/internal/dto"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PlanService struct {
	planRepo *repositories.PlanRepository
}

func NewPlanService(planRepo *repositories.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// GetActivePlans — публичный каталог.
func (s *PlanService) GetActivePlans(db *gorm.DB) ([]models.SubscriptionPlan, error) {
	plans, err := s.planRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plans, nil
}

func (s *PlanService) GetAllPlans(db *gorm.DB) ([]models.SubscriptionPlan, error) {
	plans, err := s.planRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plans, nil
}

func (s *PlanService) GetPlan(db *gorm.DB, id string) (*models.SubscriptionPlan, error) {
	plan, err := s.planRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *PlanService) CreatePlan(db *gorm.DB, req *dto.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	meals := make([]models.MealType, 0, len(req.IncludedMeals))
	for _, m := range req.IncludedMeals {
		meals = append(meals, models.MealType(m))
	}

	plan := &models.SubscriptionPlan{
		Title:         req.Title,
		Price:         req.Price,
		BillingPeriod: models.BillingPeriod(req.BillingPeriod),
		Features:      req.Features,
		IncludedMeals: models.MealsJSON(meals),
		IsActive:      true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Create(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("plan created", "plan_id", plan.ID, "title", plan.Title)
	return plan, nil
}

func (s *PlanService) UpdatePlan(db *gorm.DB, id string, req *dto.UpdatePlanRequest) (*models.SubscriptionPlan, error) {
	plan, err := s.planRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.BillingPeriod != nil {
		plan.BillingPeriod = models.BillingPeriod(*req.BillingPeriod)
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}
	if req.IncludedMeals != nil {
		meals := make([]models.MealType, 0, len(req.IncludedMeals))
		for _, m := range req.IncludedMeals {
			meals = append(meals, models.MealType(m))
		}
		plan.IncludedMeals = models.MealsJSON(meals)
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Update(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

// DeletePlan удаляет план; подписки и чеки уходят каскадом.
func (s *PlanService) DeletePlan(db *gorm.DB, id string) error {
	if err := s.planRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	logger.Info("plan deleted", "plan_id", id)
	return nil
}
