package main

import (
	"log"

	"github.com/joho/godotenv"

	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/router"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside dev)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	// 2. Database Connection + Migration
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connection established")
	log.Println("Using database file:", cfg.DBPath)

	// 3. Seed sample jobs once, before the server accepts requests
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed jobs:", err)
	}

	// 4. Setup Router
	r := router.New(cfg, db)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
