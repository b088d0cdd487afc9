package controllers

import (
	"net/http"
	"strconv"

	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AlertController handles alert-related HTTP requests
type AlertController struct {
	service *services.AlertService
}

// NewAlertController creates a new alert controller
func NewAlertController() *AlertController {
	return &AlertController{service: services.NewAlertService()}
}

// GetAlerts returns all alerts, with optional filters on type, status and
// equipment
func (ac *AlertController) GetAlerts(c *gin.Context) {
	query := db.GetDB().Model(&models.Alert{})

	if alertType := c.Query("type"); alertType != "" {
		query = query.Where("type = ?", alertType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if equipmentID := c.Query("equipment_id"); equipmentID != "" {
		query = query.Where("equipment_id = ?", equipmentID)
	}

	var alerts []models.Alert
	if err := query.Order("due_date ASC").Preload("Equipment").Find(&alerts).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Alerts retrieved successfully",
		Data:    alerts,
		Count:   len(alerts),
	})
}

// GetPendingAlerts returns pending alerts due inside the upcoming window
func (ac *AlertController) GetPendingAlerts(c *gin.Context) {
	alerts, err := ac.service.ListPendingInWindow()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Pending alerts retrieved successfully",
		Data:    alerts,
		Count:   len(alerts),
	})
}

// GetAlert returns a single alert with its equipment and maintenance
func (ac *AlertController) GetAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Alert ID must be a valid number",
		})
		return
	}

	var alert models.Alert
	if err := db.GetDB().Preload("Equipment").Preload("Maintenance").First(&alert, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Success: false,
				Error:   "Not Found",
				Message: "Alert not found",
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Alert retrieved successfully",
		Data:    alert,
	})
}

// CreateAlert creates a manual alert for an equipment
func (ac *AlertController) CreateAlert(c *gin.Context) {
	var alert models.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	if err := ac.service.Create(&alert); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Alert created successfully",
		Data:    alert,
	})
}

// UpdateAlertRequest carries the mutable alert fields
type UpdateAlertRequest struct {
	Status  models.AlertStatus `json:"status"`
	Message string             `json:"message"`
}

// UpdateAlert updates the status or message of an alert
func (ac *AlertController) UpdateAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Alert ID must be a valid number",
		})
		return
	}

	var req UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	alert, err := ac.service.Update(uint(id), req.Status, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Alert updated successfully",
		Data:    alert,
	})
}

// DeleteAlert removes an alert
func (ac *AlertController) DeleteAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Alert ID must be a valid number",
		})
		return
	}

	if err := ac.service.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Alert deleted successfully",
	})
}

// GetAlertsByEquipment returns the alerts of one equipment
func (ac *AlertController) GetAlertsByEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Equipment ID must be a valid number",
		})
		return
	}

	var alerts []models.Alert
	if err := db.GetDB().Where("equipment_id = ?", uint(id)).Order("due_date ASC").Find(&alerts).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Alerts retrieved successfully",
		Data:    alerts,
		Count:   len(alerts),
	})
}
