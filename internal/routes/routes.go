package routes

import (
	"messmet_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Plan.RegisterRoutes(api)
		appHandlers.Subscription.RegisterRoutes(api)
		appHandlers.Payment.RegisterRoutes(api)
		appHandlers.Attendance.RegisterRoutes(api)
		appHandlers.Menu.RegisterRoutes(api)
		appHandlers.Feedback.RegisterRoutes(api)
		appHandlers.Notice.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Gallery.RegisterRoutes(api)
		appHandlers.File.RegisterRoutes(api)
	}
}
