package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/activi-backend/api/v1"
	"github.com/activi-backend/config"
	"github.com/activi-backend/database"
	"github.com/activi-backend/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize database connection and schema
	database.Initialize()

	// Seed the default activity catalog (idempotent)
	activityService := services.NewActivityService()
	if err := activityService.SeedDefaultActivityTypes(); err != nil {
		log.Fatalf("Failed to seed activity catalog: %v", err)
	}
	log.Println("✅ Activity catalog seeded")

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register routes at the root, matching the client's expectations
	v1.RegisterRoutes(router.Group(""))

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 Activi backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
