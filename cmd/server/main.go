package main

import (
	"log"

	"flagit/internal/auth"
	"flagit/internal/config"
	"flagit/internal/db"
	"flagit/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	r := gin.Default()
	router.RegisterRoutes(r, gdb, auth.NewCredentialVerifier(gdb))

	log.Printf("FlagIt server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
