package services

import (
	"testing"
	"time"

	"medequip_server/internal/db"
	"medequip_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentCreateValidation(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	tests := []struct {
		name      string
		equipment models.Equipment
	}{
		{
			name:      "missing serial number",
			equipment: models.Equipment{Brand: "GE"},
		},
		{
			name:      "missing brand",
			equipment: models.Equipment{SerialNumber: "SN-100"},
		},
		{
			name:      "unknown status",
			equipment: models.Equipment{SerialNumber: "SN-101", Brand: "GE", Status: "broken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(&tt.equipment)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestEquipmentCreateSerialConflict(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	createTestEquipment(t, "SN-200")

	duplicate := models.Equipment{SerialNumber: "SN-200", Brand: "Siemens"}
	err := service.Create(&duplicate)
	require.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.GetDB().Model(&models.Equipment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEquipmentCreateWithWarrantyCreatesAlert(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	warranty := daysFromNow(180)
	equipment := models.Equipment{
		SerialNumber:  "SN-300",
		Brand:         "Drager",
		Model:         "Evita V600",
		WarrantyUntil: &warranty,
	}
	require.NoError(t, service.Create(&equipment))

	var alert models.Alert
	require.NoError(t, db.GetDB().Where("equipment_id = ?", equipment.ID).First(&alert).Error)
	assert.Equal(t, models.AlertTypeWarranty, alert.Type)
	assert.Equal(t, models.AlertStatusPending, alert.Status)
	assert.WithinDuration(t, warranty, alert.DueDate, time.Second)
	assert.Contains(t, alert.Message, "SN-300")
}

func TestEquipmentUpdateMovesWarrantyAlert(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	warranty := daysFromNow(180)
	equipment := models.Equipment{
		SerialNumber:  "SN-310",
		Brand:         "Drager",
		WarrantyUntil: &warranty,
	}
	require.NoError(t, service.Create(&equipment))

	newWarranty := daysFromNow(365)
	_, err := service.Update(equipment.ID, &models.Equipment{WarrantyUntil: &newWarranty})
	require.NoError(t, err)

	// Still a single warranty alert, pointed at the new date
	assert.Equal(t, int64(1), countAlerts(t, "equipment_id = ? AND type = ?", equipment.ID, models.AlertTypeWarranty))

	var alert models.Alert
	require.NoError(t, db.GetDB().Where("equipment_id = ?", equipment.ID).First(&alert).Error)
	assert.WithinDuration(t, newWarranty, alert.DueDate, time.Second)
}

func TestEquipmentUpdateSerialConflict(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	createTestEquipment(t, "SN-320")
	other := createTestEquipment(t, "SN-321")

	_, err := service.Update(other.ID, &models.Equipment{SerialNumber: "SN-320"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEquipmentUpdateNotFound(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	_, err := service.Update(9999, &models.Equipment{Brand: "GE"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipmentDeleteRejectedWithMaintenanceHistory(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	equipment := createTestEquipment(t, "SN-400")
	maintenance := models.Maintenance{
		EquipmentID:   equipment.ID,
		Type:          models.MaintenanceTypePreventive,
		Status:        models.MaintenanceStatusCompleted,
		ExecutionDate: daysFromNow(-30),
	}
	require.NoError(t, db.GetDB().Create(&maintenance).Error)

	err := service.Delete(equipment.ID)
	require.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.GetDB().Model(&models.Equipment{}).Where("id = ?", equipment.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEquipmentDeleteRemovesAlerts(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	warranty := daysFromNow(90)
	equipment := models.Equipment{
		SerialNumber:  "SN-410",
		Brand:         "GE",
		WarrantyUntil: &warranty,
	}
	require.NoError(t, service.Create(&equipment))
	require.Equal(t, int64(1), countAlerts(t, "equipment_id = ?", equipment.ID))

	require.NoError(t, service.Delete(equipment.ID))

	assert.Equal(t, int64(0), countAlerts(t, "equipment_id = ?", equipment.ID))
}

func TestEquipmentDeleteNotFound(t *testing.T) {
	setupTestDB(t)
	service := NewEquipmentService()

	assert.ErrorIs(t, service.Delete(9999), ErrNotFound)
}
