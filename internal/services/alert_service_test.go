package services

import (
	"testing"
	"time"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertCreateValidation(t *testing.T) {
	setupTestDB(t)
	service := NewAlertService()
	equipment := createTestEquipment(t, "SN-600")

	tests := []struct {
		name    string
		alert   models.Alert
		wantErr error
	}{
		{
			name:    "missing equipment",
			alert:   models.Alert{Type: models.AlertTypeMaintenance, DueDate: daysFromNow(1)},
			wantErr: ErrValidation,
		},
		{
			name:    "unknown type",
			alert:   models.Alert{EquipmentID: equipment.ID, Type: "recall", DueDate: daysFromNow(1)},
			wantErr: ErrValidation,
		},
		{
			name:    "missing due date",
			alert:   models.Alert{EquipmentID: equipment.ID, Type: models.AlertTypeMaintenance},
			wantErr: ErrValidation,
		},
		{
			name:    "equipment does not exist",
			alert:   models.Alert{EquipmentID: 9999, Type: models.AlertTypeMaintenance, DueDate: daysFromNow(1)},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(&tt.alert)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAlertCreateDefaultsToPending(t *testing.T) {
	setupTestDB(t)
	service := NewAlertService()
	equipment := createTestEquipment(t, "SN-610")

	alert := models.Alert{
		EquipmentID: equipment.ID,
		Type:        models.AlertTypeMaintenance,
		DueDate:     daysFromNow(5),
	}
	require.NoError(t, service.Create(&alert))
	assert.Equal(t, models.AlertStatusPending, alert.Status)
}

func TestAlertUpdateStatus(t *testing.T) {
	setupTestDB(t)
	service := NewAlertService()
	equipment := createTestEquipment(t, "SN-620")

	alert := models.Alert{
		EquipmentID: equipment.ID,
		Type:        models.AlertTypeMaintenance,
		DueDate:     daysFromNow(5),
	}
	require.NoError(t, service.Create(&alert))

	updated, err := service.Update(alert.ID, models.AlertStatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCompleted, updated.Status)

	_, err = service.Update(9999, models.AlertStatusCompleted, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingWindowSpansTodayAndTomorrow(t *testing.T) {
	require.NoError(t, config.InitializeTimezone())

	start, end := PendingWindow()
	now := config.GetCurrentTime()

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, now.Day(), start.Day())
	assert.Equal(t, 48*time.Hour-time.Second, end.Sub(start))
}

func TestTomorrowWindowIsSingleDay(t *testing.T) {
	require.NoError(t, config.InitializeTimezone())

	start, end := TomorrowWindow()
	pendingStart, _ := PendingWindow()

	assert.Equal(t, 24*time.Hour, start.Sub(pendingStart))
	assert.Equal(t, 24*time.Hour-time.Second, end.Sub(start))
}

func TestListPendingInWindow(t *testing.T) {
	setupTestDB(t)
	service := NewAlertService()
	equipment := createTestEquipment(t, "SN-630")

	seed := []models.Alert{
		{EquipmentID: equipment.ID, Type: models.AlertTypeMaintenance, Status: models.AlertStatusPending, DueDate: daysFromNow(1)},
		{EquipmentID: equipment.ID, Type: models.AlertTypeMaintenance, Status: models.AlertStatusPending, DueDate: daysFromNow(0)},
		// Outside the two-day window
		{EquipmentID: equipment.ID, Type: models.AlertTypeMaintenance, Status: models.AlertStatusPending, DueDate: daysFromNow(3)},
		{EquipmentID: equipment.ID, Type: models.AlertTypeMaintenance, Status: models.AlertStatusPending, DueDate: daysFromNow(-1)},
		// In the window but not pending
		{EquipmentID: equipment.ID, Type: models.AlertTypeMaintenance, Status: models.AlertStatusCanceled, DueDate: daysFromNow(1)},
	}
	for i := range seed {
		require.NoError(t, db.GetDB().Create(&seed[i]).Error)
	}

	alerts, err := service.ListPendingInWindow()
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// Ordered by due date, equipment preloaded
	assert.True(t, alerts[0].DueDate.Before(alerts[1].DueDate))
	require.NotNil(t, alerts[0].Equipment)
	assert.Equal(t, "SN-630", alerts[0].Equipment.SerialNumber)
}
