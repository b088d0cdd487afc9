package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/http"
	"medequip_server/internal/services"
	"medequip_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	// Print attractive banner
	colors.PrintBanner()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	} else {
		colors.PrintSuccess("Environment configuration loaded from .env file")
	}

	// Initialize application timezone before anything schedules work
	config.InitializeTimezone()

	// Initialize database connection
	colors.PrintInfo("Initializing database connection...")
	if err := db.Initialize(); err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	colors.PrintHeader("MEDEQUIP SERVER INITIALIZATION")
	colors.PrintServer("🌐", "HTTP Server configured for port %s (REST API Access)", httpPort)
	colors.PrintSuccess("Database connection established successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	errorChan := make(chan error, 1)

	// Start the daily alert dispatcher in a goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		colors.PrintInfo("Starting maintenance alert scheduler...")
		services.StartAlertScheduler(ctx)
	}()

	// Start HTTP Server in a goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		httpServer := http.NewServer(httpPort)
		colors.PrintInfo("Starting HTTP Server for REST API...")

		colors.PrintSubHeader("Available REST API Endpoints")
		colors.PrintEndpoint("POST", "/auth/login", "User authentication")
		colors.PrintEndpoint("POST", "/auth/register", "User registration")
		colors.PrintEndpoint("GET", "/auth/me", "Get user profile")
		colors.PrintEndpoint("GET", "/equipment", "List equipment")
		colors.PrintEndpoint("POST", "/equipment", "Register new equipment")
		colors.PrintEndpoint("GET", "/maintenance", "List maintenance records")
		colors.PrintEndpoint("POST", "/maintenance", "Register maintenance")
		colors.PrintEndpoint("GET", "/alerts", "List alerts")
		colors.PrintEndpoint("GET", "/alerts/pending", "List upcoming pending alerts")
		colors.PrintEndpoint("GET", "/dashboard/equipment-status", "Equipment status breakdown")
		colors.PrintEndpoint("GET", "/dashboard/maintenance-by-month", "Monthly maintenance statistics")
		colors.PrintEndpoint("GET", "/dashboard/maintenance-costs", "Maintenance cost statistics")
		colors.PrintEndpoint("GET", "/dashboard/maintenance-frequency", "Most maintained equipment")

		colors.PrintSubHeader("WebSocket Connection")
		colors.PrintEndpoint("GET", "/ws", "Real-time alert events")

		if err := httpServer.Start(); err != nil {
			errorChan <- fmt.Errorf("HTTP server error: %v", err)
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errorChan:
		colors.PrintError("Server startup failed: %v", err)
		return
	case <-quit:
		cancel()
		colors.PrintShutdown()
		return
	}
}
