package http

import (
	"fmt"
	"net/http"
	"testing"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMaintenance(t *testing.T, equipmentID uint, maintenanceType models.MaintenanceType, daysAgo int, cost float64) {
	t.Helper()

	maintenance := models.Maintenance{
		EquipmentID:   equipmentID,
		Type:          maintenanceType,
		Status:        models.MaintenanceStatusCompleted,
		ExecutionDate: testDate(-daysAgo),
		Cost:          &cost,
	}
	require.NoError(t, db.GetDB().Create(&maintenance).Error)
}

func TestEquipmentStatusStats(t *testing.T) {
	router := setupTestRouter(t)
	token := authToken(t)

	seedEquipment(t, "SN-4000")
	seedEquipment(t, "SN-4001")
	inactive := seedEquipment(t, "SN-4002")
	require.NoError(t, db.GetDB().Model(inactive).Update("status", models.EquipmentStatusInactive).Error)

	recorder := doRequest(t, router, "GET", "/dashboard/equipment-status", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])

	counts := map[string]float64{}
	for _, entry := range data["by_status"].([]interface{}) {
		row := entry.(map[string]interface{})
		counts[row["status"].(string)] = row["count"].(float64)
	}
	assert.Equal(t, float64(2), counts["active"])
	assert.Equal(t, float64(1), counts["inactive"])
}

func TestMaintenanceByMonth(t *testing.T) {
	router := setupTestRouter(t)
	token := authToken(t)
	equipment := seedEquipment(t, "SN-4100")

	// Two records this month
	seedMaintenance(t, equipment.ID, models.MaintenanceTypePreventive, 0, 100)
	seedMaintenance(t, equipment.ID, models.MaintenanceTypeCorrective, 0, 250)

	year := config.GetCurrentTime().Year()
	recorder := doRequest(t, router, "GET", fmt.Sprintf("/dashboard/maintenance-by-month?year=%d", year), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(year), data["year"])

	months := data["months"].([]interface{})
	require.Len(t, months, 12)

	currentMonth := months[int(config.GetCurrentTime().Month())-1].(map[string]interface{})
	assert.Equal(t, float64(2), currentMonth["total"])
	assert.Equal(t, float64(1), currentMonth["preventive"])
	assert.Equal(t, float64(1), currentMonth["corrective"])
	assert.Equal(t, float64(350), currentMonth["cost"])

	t.Run("invalid year", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/dashboard/maintenance-by-month?year=abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestMaintenanceCosts(t *testing.T) {
	router := setupTestRouter(t)
	token := authToken(t)
	equipment := seedEquipment(t, "SN-4200")

	seedMaintenance(t, equipment.ID, models.MaintenanceTypePreventive, 5, 100)
	seedMaintenance(t, equipment.ID, models.MaintenanceTypeCorrective, 10, 300)
	// Outside the one-month period
	seedMaintenance(t, equipment.ID, models.MaintenanceTypeCorrective, 120, 900)

	recorder := doRequest(t, router, "GET", "/dashboard/maintenance-costs?period=month", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(400), data["total_cost"])
	assert.Equal(t, float64(200), data["average_cost"])
	assert.Equal(t, float64(300), data["max_cost"])
	assert.Equal(t, float64(100), data["preventive_cost"])
	assert.Equal(t, float64(300), data["corrective_cost"])

	t.Run("year period includes older records", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/dashboard/maintenance-costs?period=year", token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(1300), data["total_cost"])
	})

	t.Run("invalid period", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/dashboard/maintenance-costs?period=decade", token, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestMaintenanceFrequency(t *testing.T) {
	router := setupTestRouter(t)
	token := authToken(t)

	busy := seedEquipment(t, "SN-4300")
	quiet := seedEquipment(t, "SN-4301")

	seedMaintenance(t, busy.ID, models.MaintenanceTypeCorrective, 5, 100)
	seedMaintenance(t, busy.ID, models.MaintenanceTypeCorrective, 15, 200)
	seedMaintenance(t, busy.ID, models.MaintenanceTypePreventive, 25, 50)
	seedMaintenance(t, quiet.ID, models.MaintenanceTypePreventive, 5, 80)

	recorder := doRequest(t, router, "GET", "/dashboard/maintenance-frequency", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)

	top := data[0].(map[string]interface{})
	assert.Equal(t, "SN-4300", top["serial_number"])
	assert.Equal(t, float64(3), top["maintenance_count"])
	assert.Equal(t, float64(350), top["total_cost"])

	t.Run("limit", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/dashboard/maintenance-frequency?limit=1", token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/dashboard/maintenance-frequency?limit=0", token, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
