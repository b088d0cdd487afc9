package main

import (
	"log"
	"os"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/http"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.InitializeTimezone()

	// Initialize database connection
	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	// API only, no alert scheduler
	server := http.NewServer(port)

	log.Printf("MedEquip HTTP Server starting on port %s", port)
	log.Println("Available endpoints:")
	log.Println("  GET    /health")
	log.Println("  POST   /auth/login")
	log.Println("  GET    /equipment")
	log.Println("  GET    /maintenance")
	log.Println("  GET    /alerts")
	log.Println("  GET    /dashboard/equipment-status")

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}
