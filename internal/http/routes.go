package http

import (
	"net/http"

	"medequip_server/internal/http/controllers"
	"medequip_server/internal/http/middleware"
	"medequip_server/internal/ws"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	equipmentController := controllers.NewEquipmentController()
	maintenanceController := controllers.NewMaintenanceController()
	alertController := controllers.NewAlertController()
	dashboardController := controllers.NewDashboardController()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// WebSocket endpoint for real-time alert events
	router.GET("/ws", ws.HandleAlertFeed)

	// Public authentication routes (no middleware)
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected authentication routes
	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware())
	{
		authProtected.GET("/me", authController.Me)
		authProtected.POST("/logout", authController.Logout)
	}

	equipment := router.Group("/equipment")
	equipment.Use(middleware.AuthMiddleware())
	{
		equipment.GET("", equipmentController.GetEquipments)
		equipment.GET("/:id", equipmentController.GetEquipment)
		equipment.POST("", equipmentController.CreateEquipment)
		equipment.PUT("/:id", equipmentController.UpdateEquipment)
		equipment.DELETE("/:id", equipmentController.DeleteEquipment)
		equipment.POST("/search-info", equipmentController.SearchEquipmentInfo)
	}

	maintenance := router.Group("/maintenance")
	maintenance.Use(middleware.AuthMiddleware())
	{
		maintenance.GET("", maintenanceController.GetMaintenances)
		maintenance.GET("/:id", maintenanceController.GetMaintenance)
		maintenance.POST("", maintenanceController.CreateMaintenance)
		maintenance.PUT("/:id", maintenanceController.UpdateMaintenance)
		maintenance.DELETE("/:id", maintenanceController.DeleteMaintenance)
		maintenance.GET("/equipment/:id", maintenanceController.GetMaintenanceByEquipment)
	}

	alerts := router.Group("/alerts")
	alerts.Use(middleware.AuthMiddleware())
	{
		alerts.GET("", alertController.GetAlerts)
		alerts.GET("/pending", alertController.GetPendingAlerts)
		alerts.GET("/:id", alertController.GetAlert)
		alerts.POST("", alertController.CreateAlert)
		alerts.PUT("/:id", alertController.UpdateAlert)
		alerts.DELETE("/:id", alertController.DeleteAlert)
		alerts.GET("/equipment/:id", alertController.GetAlertsByEquipment)
	}

	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/equipment-status", dashboardController.GetEquipmentStatusStats)
		dashboard.GET("/maintenance-by-month", dashboardController.GetMaintenanceByMonth)
		dashboard.GET("/maintenance-costs", dashboardController.GetMaintenanceCosts)
		dashboard.GET("/maintenance-frequency", dashboardController.GetMaintenanceFrequency)
	}
}
