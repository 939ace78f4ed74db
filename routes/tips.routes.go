package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTipsRoutes(router *gin.Engine, tipsController *controllers.TipsController) {
	tipsRoutes := router.Group("/tips")
	tipsRoutes.Use(middleware.AuthMiddleware())
	{
		tipsRoutes.POST("/", tipsController.GetExerciseTips)
	}
}
