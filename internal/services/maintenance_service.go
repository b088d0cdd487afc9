package services

import (
	"errors"
	"fmt"
	"time"

	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/ws"

	"gorm.io/gorm"
)

// MaintenanceService owns the compound maintenance mutations: the equipment
// status sync and the linked maintenance-due alert lifecycle
type MaintenanceService struct{}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService() *MaintenanceService {
	return &MaintenanceService{}
}

// Create inserts a maintenance record, syncs the equipment status and, when a
// next-due date is given, creates the linked pending alert in one transaction
func (s *MaintenanceService) Create(maintenance *models.Maintenance) error {
	database := db.GetDB()

	if maintenance.EquipmentID == 0 {
		return validationError("equipment_id is required")
	}
	if maintenance.Type != models.MaintenanceTypePreventive && maintenance.Type != models.MaintenanceTypeCorrective {
		return validationError("type must be preventive or corrective")
	}
	if maintenance.ExecutionDate.IsZero() {
		return validationError("execution_date is required")
	}

	var equipment models.Equipment
	if err := database.First(&equipment, maintenance.EquipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("equipment not found")
		}
		return err
	}

	if maintenance.Status == "" {
		maintenance.Status = models.MaintenanceStatusScheduled
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(maintenance).Error; err != nil {
			return err
		}

		if err := s.syncEquipmentStatus(tx, &equipment, maintenance.Status); err != nil {
			return err
		}

		if maintenance.NextMaintenanceDate != nil {
			alert := models.Alert{
				EquipmentID:   maintenance.EquipmentID,
				MaintenanceID: &maintenance.ID,
				Type:          models.AlertTypeMaintenance,
				Status:        models.AlertStatusPending,
				DueDate:       *maintenance.NextMaintenanceDate,
				Message:       maintenanceAlertMessage(maintenance.Type, &equipment),
			}
			if err := tx.Create(&alert).Error; err != nil {
				return err
			}
			ws.BroadcastAlertEvent(ws.AlertEventCreated, &alert)
		}
		return nil
	})
}

// Update applies the changes, syncs the equipment status on a status
// transition and upserts or cancels the linked alert in one transaction
func (s *MaintenanceService) Update(id uint, in *models.Maintenance) (*models.Maintenance, error) {
	database := db.GetDB()

	var existing models.Maintenance
	if err := database.Preload("Equipment").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("maintenance record not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"next_maintenance_date": in.NextMaintenanceDate,
		"service_time":          in.ServiceTime,
		"cost":                  in.Cost,
	}
	if in.Type != "" {
		updates["type"] = in.Type
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}
	if !in.ExecutionDate.IsZero() {
		updates["execution_date"] = in.ExecutionDate
	}
	if in.Technician != "" {
		updates["technician"] = in.Technician
	}
	if in.ReplacedParts != "" {
		updates["replaced_parts"] = in.ReplacedParts
	}
	if in.ServiceDescription != "" {
		updates["service_description"] = in.ServiceDescription
	}
	if in.AdditionalNotes != "" {
		updates["additional_notes"] = in.AdditionalNotes
	}

	effectiveType := existing.Type
	if in.Type != "" {
		effectiveType = in.Type
	}
	previousStatus := existing.Status

	err := database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}

		if in.Status != "" && in.Status != previousStatus {
			if err := s.syncEquipmentStatus(tx, existing.Equipment, in.Status); err != nil {
				return err
			}
		}

		if in.NextMaintenanceDate != nil {
			return s.upsertMaintenanceAlert(tx, &existing, effectiveType, in.NextMaintenanceDate)
		}

		// Next-due date removed: cancel any pending linked alert, never delete it
		result := tx.Model(&models.Alert{}).
			Where("maintenance_id = ? AND type = ? AND status = ?", id, models.AlertTypeMaintenance, models.AlertStatusPending).
			Update("status", models.AlertStatusCanceled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			var canceled []models.Alert
			if err := tx.Where("maintenance_id = ? AND status = ?", id, models.AlertStatusCanceled).Find(&canceled).Error; err == nil {
				for i := range canceled {
					ws.BroadcastAlertEvent(ws.AlertEventCanceled, &canceled[i])
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated models.Maintenance
	if err := database.Preload("Equipment").First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the maintenance record and its linked alerts in one transaction
func (s *MaintenanceService) Delete(id uint) error {
	database := db.GetDB()

	var maintenance models.Maintenance
	if err := database.First(&maintenance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("maintenance record not found")
		}
		return err
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("maintenance_id = ?", id).Delete(&models.Alert{}).Error; err != nil {
			return err
		}
		return tx.Delete(&maintenance).Error
	})
}

// syncEquipmentStatus mirrors a maintenance status change onto the equipment:
// completing a maintenance releases the equipment, starting one occupies it
func (s *MaintenanceService) syncEquipmentStatus(tx *gorm.DB, equipment *models.Equipment, status models.MaintenanceStatus) error {
	if equipment == nil {
		return nil
	}
	if status == models.MaintenanceStatusCompleted && equipment.Status == models.EquipmentStatusMaintenance {
		return tx.Model(equipment).Update("status", models.EquipmentStatusActive).Error
	}
	if status == models.MaintenanceStatusInProgress && equipment.Status == models.EquipmentStatusActive {
		return tx.Model(equipment).Update("status", models.EquipmentStatusMaintenance).Error
	}
	return nil
}

// upsertMaintenanceAlert keeps exactly one maintenance-due alert per
// maintenance record, pointed at the current next-due date
func (s *MaintenanceService) upsertMaintenanceAlert(tx *gorm.DB, maintenance *models.Maintenance, maintenanceType models.MaintenanceType, dueDate *time.Time) error {
	message := maintenanceAlertMessage(maintenanceType, maintenance.Equipment)

	var alert models.Alert
	err := tx.Where("maintenance_id = ? AND type = ?", maintenance.ID, models.AlertTypeMaintenance).First(&alert).Error
	if err == nil {
		if err := tx.Model(&alert).Updates(map[string]interface{}{
			"due_date": *dueDate,
			"message":  message,
		}).Error; err != nil {
			return err
		}
		ws.BroadcastAlertEvent(ws.AlertEventUpdated, &alert)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	alert = models.Alert{
		EquipmentID:   maintenance.EquipmentID,
		MaintenanceID: &maintenance.ID,
		Type:          models.AlertTypeMaintenance,
		Status:        models.AlertStatusPending,
		DueDate:       *dueDate,
		Message:       message,
	}
	if err := tx.Create(&alert).Error; err != nil {
		return err
	}
	ws.BroadcastAlertEvent(ws.AlertEventCreated, &alert)
	return nil
}

func maintenanceAlertMessage(maintenanceType models.MaintenanceType, equipment *models.Equipment) string {
	label := "Corrective"
	if maintenanceType == models.MaintenanceTypePreventive {
		label = "Preventive"
	}
	return fmt.Sprintf("%s maintenance scheduled for equipment %s %s (%s).",
		label, equipment.Brand, equipment.Model, equipment.SerialNumber)
}
