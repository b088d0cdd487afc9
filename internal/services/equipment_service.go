package services

import (
	"errors"
	"fmt"

	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/ws"

	"gorm.io/gorm"
)

// EquipmentService owns the compound equipment mutations: create/update with
// the warranty alert upsert, and the strict delete
type EquipmentService struct{}

// NewEquipmentService creates a new equipment service
func NewEquipmentService() *EquipmentService {
	return &EquipmentService{}
}

// Create inserts a new equipment record and, when a warranty date is set,
// its warranty-expiry alert in the same transaction
func (s *EquipmentService) Create(equipment *models.Equipment) error {
	database := db.GetDB()

	if equipment.SerialNumber == "" {
		return validationError("serial number is required")
	}
	if equipment.Brand == "" {
		return validationError("brand is required")
	}
	if equipment.Status == "" {
		equipment.Status = models.EquipmentStatusActive
	}
	if !models.IsValidEquipmentStatus(equipment.Status) {
		return validationError(fmt.Sprintf("invalid equipment status %q", equipment.Status))
	}

	var count int64
	if err := database.Model(&models.Equipment{}).Where("serial_number = ?", equipment.SerialNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return conflictError("equipment with this serial number already exists")
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(equipment).Error; err != nil {
			return err
		}
		if equipment.WarrantyUntil != nil {
			return s.upsertWarrantyAlert(tx, equipment)
		}
		return nil
	})
}

// Update applies the changes and keeps the single warranty alert in sync,
// all in one transaction
func (s *EquipmentService) Update(id uint, in *models.Equipment) (*models.Equipment, error) {
	database := db.GetDB()

	var equipment models.Equipment
	if err := database.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("equipment not found")
		}
		return nil, err
	}

	if in.SerialNumber != "" && in.SerialNumber != equipment.SerialNumber {
		var count int64
		if err := database.Model(&models.Equipment{}).Where("serial_number = ? AND id <> ?", in.SerialNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, conflictError("equipment with this serial number already exists")
		}
	}
	if in.Status != "" && !models.IsValidEquipmentStatus(in.Status) {
		return nil, validationError(fmt.Sprintf("invalid equipment status %q", in.Status))
	}

	updates := map[string]interface{}{
		"acquisition_date": in.AcquisitionDate,
		"warranty_until":   in.WarrantyUntil,
	}
	if in.SerialNumber != "" {
		updates["serial_number"] = in.SerialNumber
	}
	if in.Brand != "" {
		updates["brand"] = in.Brand
	}
	if in.Model != "" {
		updates["model"] = in.Model
	}
	if in.Unit != "" {
		updates["unit"] = in.Unit
	}
	if in.City != "" {
		updates["city"] = in.City
	}
	if in.InvoiceNumber != "" {
		updates["invoice_number"] = in.InvoiceNumber
	}
	if in.SupportPhone != "" {
		updates["support_phone"] = in.SupportPhone
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}
	if in.ImageURL != "" {
		updates["image_url"] = in.ImageURL
	}
	if in.ManualURL != "" {
		updates["manual_url"] = in.ManualURL
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&equipment).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.First(&equipment, id).Error; err != nil {
			return err
		}
		if equipment.WarrantyUntil != nil {
			return s.upsertWarrantyAlert(tx, &equipment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &equipment, nil
}

// Delete removes the equipment and its alerts. Equipment with maintenance
// history cannot be deleted.
func (s *EquipmentService) Delete(id uint) error {
	database := db.GetDB()

	var equipment models.Equipment
	if err := database.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError("equipment not found")
		}
		return err
	}

	var maintenanceCount int64
	if err := database.Model(&models.Maintenance{}).Where("equipment_id = ?", id).Count(&maintenanceCount).Error; err != nil {
		return err
	}
	if maintenanceCount > 0 {
		return conflictError("cannot delete equipment with associated maintenance records")
	}

	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&models.Alert{}).Error; err != nil {
			return err
		}
		return tx.Delete(&equipment).Error
	})
}

// upsertWarrantyAlert keeps exactly one warranty-expiry alert per equipment,
// pointed at the current warranty date
func (s *EquipmentService) upsertWarrantyAlert(tx *gorm.DB, equipment *models.Equipment) error {
	message := fmt.Sprintf("The warranty for equipment %s %s (%s) expires on this date.",
		equipment.Brand, equipment.Model, equipment.SerialNumber)

	var alert models.Alert
	err := tx.Where("equipment_id = ? AND type = ?", equipment.ID, models.AlertTypeWarranty).First(&alert).Error
	if err == nil {
		return tx.Model(&alert).Updates(map[string]interface{}{
			"due_date": *equipment.WarrantyUntil,
			"message":  message,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	alert = models.Alert{
		EquipmentID: equipment.ID,
		Type:        models.AlertTypeWarranty,
		Status:      models.AlertStatusPending,
		DueDate:     *equipment.WarrantyUntil,
		Message:     message,
	}
	if err := tx.Create(&alert).Error; err != nil {
		return err
	}
	ws.BroadcastAlertEvent(ws.AlertEventCreated, &alert)
	return nil
}
