package services

import (
	"testing"
	"time"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global connection at a fresh in-memory database
func setupTestDB(t *testing.T) {
	t.Helper()

	require.NoError(t, config.InitializeTimezone())

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db.DB = database
	require.NoError(t, db.RunMigrations())
}

func createTestEquipment(t *testing.T, serial string) *models.Equipment {
	t.Helper()

	equipment := &models.Equipment{
		SerialNumber: serial,
		Brand:        "Philips",
		Model:        "IntelliVue MX40",
		Unit:         "ICU",
		City:         "Sao Paulo",
		Status:       models.EquipmentStatusActive,
	}
	require.NoError(t, db.GetDB().Create(equipment).Error)
	return equipment
}

// daysFromNow returns noon N days out in the application timezone
func daysFromNow(days int) time.Time {
	now := config.GetCurrentTime()
	day := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, config.GetLocation())
	return day.AddDate(0, 0, days)
}

func countAlerts(t *testing.T, where string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.GetDB().Model(&models.Alert{}).Where(where, args...).Count(&count).Error)
	return count
}
