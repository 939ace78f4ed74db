package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController, activityRepo repository.ActivityRepository) {
	activityRoutes := router.Group("/activities")
	activityRoutes.Use(middleware.AuthMiddleware())
	{
		activityRoutes.GET("/", activityController.ListActivities)
		activityRoutes.POST("/", activityController.CreateActivity)
		activityRoutes.PUT("/:id", middleware.ActivityOwner(activityRepo), activityController.UpdateActivity)
		activityRoutes.DELETE("/:id", middleware.ActivityOwner(activityRepo), activityController.DeleteActivity)
	}
}
