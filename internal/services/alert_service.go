package services

import (
	"errors"
	"time"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/ws"

	"gorm.io/gorm"
)

// AlertService owns alert creation with referenced-id validation, manual
// status updates and the fixed pending-window query
type AlertService struct{}

// NewAlertService creates a new alert service
func NewAlertService() *AlertService {
	return &AlertService{}
}

// Create validates the referenced equipment (required) and maintenance
// (optional) before inserting the alert
func (s *AlertService) Create(alert *models.Alert) error {
	database := db.GetDB()

	if alert.EquipmentID == 0 {
		return validationError("equipment_id is required")
	}
	if alert.Type != models.AlertTypeMaintenance && alert.Type != models.AlertTypeWarranty {
		return validationError("type must be maintenance or warranty")
	}
	if alert.DueDate.IsZero() {
		return validationError("due_date is required")
	}

	var equipment models.Equipment
	if err := database.First(&equipment, alert.EquipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("equipment not found")
		}
		return err
	}

	if alert.MaintenanceID != nil {
		var maintenance models.Maintenance
		if err := database.First(&maintenance, *alert.MaintenanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundError("maintenance record not found")
			}
			return err
		}
	}

	if alert.Status == "" {
		alert.Status = models.AlertStatusPending
	}

	if err := database.Create(alert).Error; err != nil {
		return err
	}
	ws.BroadcastAlertEvent(ws.AlertEventCreated, alert)
	return nil
}

// Update changes the alert's status and/or message only
func (s *AlertService) Update(id uint, status models.AlertStatus, message string) (*models.Alert, error) {
	database := db.GetDB()

	var alert models.Alert
	if err := database.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("alert not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if status != "" {
		updates["status"] = status
	}
	if message != "" {
		updates["message"] = message
	}
	if len(updates) > 0 {
		if err := database.Model(&alert).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	event := ws.AlertEventUpdated
	if status == models.AlertStatusCanceled {
		event = ws.AlertEventCanceled
	}
	ws.BroadcastAlertEvent(event, &alert)

	return &alert, nil
}

// Delete removes an alert
func (s *AlertService) Delete(id uint) error {
	database := db.GetDB()

	var alert models.Alert
	if err := database.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("alert not found")
		}
		return err
	}

	return database.Delete(&alert).Error
}

// PendingWindow returns the fixed two-day lookahead: start of today through
// end of tomorrow, in the application timezone
func PendingWindow() (time.Time, time.Time) {
	now := config.GetCurrentTime()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, config.GetLocation())
	end := start.Add(48*time.Hour - time.Second)
	return start, end
}

// TomorrowWindow returns the single day the dispatcher looks at
func TomorrowWindow() (time.Time, time.Time) {
	now := config.GetCurrentTime()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, config.GetLocation()).Add(24 * time.Hour)
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}

// ListPendingInWindow returns pending alerts due within the two-day window
func (s *AlertService) ListPendingInWindow() ([]models.Alert, error) {
	database := db.GetDB()
	start, end := PendingWindow()

	var alerts []models.Alert
	err := database.
		Where("status = ? AND due_date >= ? AND due_date <= ?", models.AlertStatusPending, start, end).
		Order("due_date ASC").
		Preload("Equipment").
		Find(&alerts).Error
	return alerts, err
}
