package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/activi-backend/middleware"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", SaveProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Activity catalog - reads are public, writes require authentication
	activityGroup := router.Group("/activity-types")
	{
		activityGroup.GET("", ListActivityTypes)
		activityGroup.GET("/name/:name", GetActivityTypeByName)
		activityGroup.POST("", middleware.AuthMiddleware(), CreateActivityType)
		activityGroup.PUT("/reorder", middleware.AuthMiddleware(), ReorderActivityTypes)
		activityGroup.PUT("/:id", middleware.AuthMiddleware(), UpdateActivityType)
		activityGroup.DELETE("/:id", middleware.AuthMiddleware(), DeleteActivityType)
	}

	// Content proxies - identity-independent
	router.GET("/syllables", GetSyllables)
	soyVisualGroup := router.Group("/soyvisual")
	{
		soyVisualGroup.GET("/search", SearchResources)
		soyVisualGroup.GET("/image", GetImage)
	}
}
