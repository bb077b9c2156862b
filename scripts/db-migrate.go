package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/activi-backend/database"
	"github.com/activi-backend/services"
)

// One-shot schema migration plus catalog seed. Run with:
//
//	go run scripts/db-migrate.go
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := database.NewDBConnection("primary", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	if err := conn.Migrate(); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	// The repositories work through the global pool
	database.DB = conn.DB

	if err := services.NewActivityService().SeedDefaultActivityTypes(); err != nil {
		log.Fatalf("Failed to seed activity catalog: %v", err)
	}

	log.Println("✅ Migration and seed completed")
}
