package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/services"
	"medequip_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EquipmentController handles equipment-related HTTP requests
type EquipmentController struct {
	service *services.EquipmentService
}

// NewEquipmentController creates a new equipment controller
func NewEquipmentController() *EquipmentController {
	return &EquipmentController{service: services.NewEquipmentService()}
}

// GetEquipments returns all equipment, with optional filters on status, unit,
// city and a free-text search over serial number, brand and model
func (ec *EquipmentController) GetEquipments(c *gin.Context) {
	query := db.GetDB().Model(&models.Equipment{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if unit := c.Query("unit"); unit != "" {
		query = query.Where("unit = ?", unit)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("lower(serial_number) LIKE ? OR lower(brand) LIKE ? OR lower(model) LIKE ?",
			pattern, pattern, pattern)
	}

	var equipment []models.Equipment
	if err := query.Order("updated_at DESC").Find(&equipment).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Equipment retrieved successfully",
		Data:    equipment,
		Count:   len(equipment),
	})
}

// GetEquipment returns a single equipment with its maintenance history and
// pending alerts
func (ec *EquipmentController) GetEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Equipment ID must be a valid number",
		})
		return
	}

	var equipment models.Equipment
	err = db.GetDB().
		Preload("Maintenances", func(db *gorm.DB) *gorm.DB {
			return db.Order("execution_date DESC")
		}).
		Preload("Alerts", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.AlertStatusPending).Order("due_date ASC")
		}).
		First(&equipment, uint(id)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Success: false,
				Error:   "Not Found",
				Message: "Equipment not found",
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Equipment retrieved successfully",
		Data:    equipment,
	})
}

// CreateEquipment creates a new equipment record
func (ec *EquipmentController) CreateEquipment(c *gin.Context) {
	var equipment models.Equipment
	if err := c.ShouldBindJSON(&equipment); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	if userID := c.GetUint("user_id"); userID != 0 {
		equipment.CreatedBy = &userID
	}

	if err := ec.service.Create(&equipment); err != nil {
		respondServiceError(c, err)
		return
	}

	colors.PrintSuccess("Equipment created: ID=%d, Serial=%s", equipment.ID, equipment.SerialNumber)
	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Equipment created successfully",
		Data:    equipment,
	})
}

// UpdateEquipment updates an existing equipment record
func (ec *EquipmentController) UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Equipment ID must be a valid number",
		})
		return
	}

	var updateData models.Equipment
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	equipment, err := ec.service.Update(uint(id), &updateData)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Equipment updated successfully",
		Data:    equipment,
	})
}

// DeleteEquipment deletes an equipment record without maintenance history
func (ec *EquipmentController) DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Equipment ID must be a valid number",
		})
		return
	}

	if err := ec.service.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Equipment deleted successfully",
	})
}

// SearchInfoRequest represents the automatic lookup request body
type SearchInfoRequest struct {
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
}

// SearchEquipmentInfo returns image/manual/description suggestions for a
// brand and model. Placeholder data until an external lookup is wired.
func (ec *EquipmentController) SearchEquipmentInfo(c *gin.Context) {
	var req SearchInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return
	}

	brand := strings.ToLower(req.Brand)
	model := strings.ToLower(req.Model)

	c.JSON(http.StatusOK, gin.H{
		"image_url":   fmt.Sprintf("https://example.com/images/%s-%s.jpg", brand, model),
		"manual_url":  fmt.Sprintf("https://example.com/manuals/%s-%s.pdf", brand, model),
		"description": fmt.Sprintf("Medical equipment %s, model %s.", req.Brand, req.Model),
	})
}
