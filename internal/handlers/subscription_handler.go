package handlers

import (
	"net/http"

	"messmet_backend/internal/middleware"
	"messmet_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/subscription", h.GetActiveSubscription)
	}
}

func (h *SubscriptionHandler) GetActiveSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	sub, err := h.subscriptionService.GetActiveSubscription(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}
