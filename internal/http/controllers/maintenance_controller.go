package controllers

import (
	"net/http"
	"strconv"

	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/services"
	"medequip_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MaintenanceController handles maintenance-related HTTP requests
type MaintenanceController struct {
	service *services.MaintenanceService
}

// NewMaintenanceController creates a new maintenance controller
func NewMaintenanceController() *MaintenanceController {
	return &MaintenanceController{service: services.NewMaintenanceService()}
}

// GetMaintenances returns all maintenance records, with optional filters on
// type, status and equipment
func (mc *MaintenanceController) GetMaintenances(c *gin.Context) {
	query := db.GetDB().Model(&models.Maintenance{})

	if maintenanceType := c.Query("type"); maintenanceType != "" {
		query = query.Where("type = ?", maintenanceType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if equipmentID := c.Query("equipment_id"); equipmentID != "" {
		query = query.Where("equipment_id = ?", equipmentID)
	}

	var maintenance []models.Maintenance
	if err := query.Order("execution_date DESC").Preload("Equipment").Find(&maintenance).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance records retrieved successfully",
		Data:    maintenance,
		Count:   len(maintenance),
	})
}

// GetMaintenance returns a single maintenance record with its equipment and
// linked alerts
func (mc *MaintenanceController) GetMaintenance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Maintenance ID must be a valid number",
		})
		return
	}

	var maintenance models.Maintenance
	if err := db.GetDB().Preload("Equipment").Preload("Alerts").First(&maintenance, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Success: false,
				Error:   "Not Found",
				Message: "Maintenance record not found",
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance record retrieved successfully",
		Data:    maintenance,
	})
}

// CreateMaintenance registers a maintenance event for an equipment
func (mc *MaintenanceController) CreateMaintenance(c *gin.Context) {
	var maintenance models.Maintenance
	if err := c.ShouldBindJSON(&maintenance); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	if userID := c.GetUint("user_id"); userID != 0 {
		maintenance.CreatedBy = &userID
	}

	if err := mc.service.Create(&maintenance); err != nil {
		respondServiceError(c, err)
		return
	}

	colors.PrintSuccess("Maintenance created: ID=%d, Equipment=%d", maintenance.ID, maintenance.EquipmentID)
	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Maintenance registered successfully",
		Data:    maintenance,
	})
}

// UpdateMaintenance updates a maintenance record
func (mc *MaintenanceController) UpdateMaintenance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Maintenance ID must be a valid number",
		})
		return
	}

	var updateData models.Maintenance
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	maintenance, err := mc.service.Update(uint(id), &updateData)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance updated successfully",
		Data:    maintenance,
	})
}

// DeleteMaintenance removes a maintenance record and its linked alerts
func (mc *MaintenanceController) DeleteMaintenance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Maintenance ID must be a valid number",
		})
		return
	}

	if err := mc.service.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance deleted successfully",
	})
}

// GetMaintenanceByEquipment returns the maintenance history of one equipment
func (mc *MaintenanceController) GetMaintenanceByEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Equipment ID must be a valid number",
		})
		return
	}

	var maintenance []models.Maintenance
	if err := db.GetDB().Where("equipment_id = ?", uint(id)).Order("execution_date DESC").Find(&maintenance).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance records retrieved successfully",
		Data:    maintenance,
		Count:   len(maintenance),
	})
}
