package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterGoalRoutes(router *gin.Engine, goalController *controllers.GoalController, goalRepo repository.GoalRepository) {
	goalRoutes := router.Group("/goals")
	goalRoutes.Use(middleware.AuthMiddleware())
	{
		goalRoutes.GET("/", goalController.ListGoals)
		goalRoutes.POST("/", goalController.CreateGoal)
		goalRoutes.GET("/achieved", goalController.ListAchievedGoals)
		goalRoutes.GET("/:id", middleware.GoalOwner(goalRepo), goalController.GetGoalByID)
		goalRoutes.PUT("/:id", middleware.GoalOwner(goalRepo), goalController.UpdateGoal)
		goalRoutes.DELETE("/:id", middleware.GoalOwner(goalRepo), goalController.DeleteGoal)
	}
}
