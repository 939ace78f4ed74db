package main

import (
	"log"
	"os"

	"fittrack/database"
	"fittrack/docs"
	"fittrack/internal/cache"
	"fittrack/internal/controllers"
	"fittrack/internal/gemini"
	"fittrack/internal/repository"
	"fittrack/internal/services"
	"fittrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "FitTrack API"
	docs.SwaggerInfo.Description = "Fitness tracking API: activities, goals and automatic goal progress."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is best effort: without it every list query hits the database.
	var pageCache cache.PageCache
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without cache: %v", err)
	} else {
		pageCache = redisClient
		defer redisClient.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	goalRepo := repository.NewGoalRepository(database.DB)

	// Initialize services
	activityService := services.NewActivityService(database.DB, activityRepo, goalRepo, pageCache)
	goalService := services.NewGoalService(database.DB, goalRepo, activityRepo, pageCache)

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	oauthController := controllers.NewOauthController(userRepo)
	activityController := controllers.NewActivityController(activityService)
	goalController := controllers.NewGoalController(goalService)
	profileController := controllers.NewUserProfileController(profileRepo, userRepo, pageCache)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FitTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController, oauthController)
	routes.RegisterActivityRoutes(router, activityController, activityRepo)
	routes.RegisterGoalRoutes(router, goalController, goalRepo)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterSwaggerRoutes(router)

	// The coaching endpoint needs a Gemini API key; without one the rest of
	// the API still serves.
	if coach, err := gemini.NewClient(); err != nil {
		log.Printf("Warning: exercise tips disabled: %v", err)
	} else {
		routes.RegisterTipsRoutes(router, controllers.NewTipsController(coach))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
