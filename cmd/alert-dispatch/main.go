package main

import (
	"log"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/services"

	"github.com/joho/godotenv"
)

// Runs the due-alert check once and exits. Useful for external schedulers
// and for verifying messaging credentials.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.InitializeTimezone()

	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	service := services.NewAlertDispatchService()
	count, err := service.CheckAndSendDueAlerts()
	if err != nil {
		log.Fatalf("Alert dispatch failed: %v", err)
	}

	log.Printf("Alert dispatch finished, %d alerts processed", count)
}
