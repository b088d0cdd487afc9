package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testUserCounter int

// setupTestRouter builds a router backed by a fresh in-memory database
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, config.InitializeTimezone())

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db.DB = database
	require.NoError(t, db.RunMigrations())

	router := gin.New()
	SetupRoutes(router)
	return router
}

// authToken creates a user directly and returns a valid bearer token
func authToken(t *testing.T) string {
	t.Helper()

	testUserCounter++
	user := models.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("tester%d@hospital.org", testUserCounter),
		Password: "password123",
		Role:     models.UserRoleAdmin,
	}
	require.NoError(t, db.GetDB().Create(&user).Error)

	token, err := utils.GenerateJWT(&user)
	require.NoError(t, err)
	return token
}

// doRequest performs a JSON request against the router, optionally authenticated
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func seedEquipment(t *testing.T, serial string) *models.Equipment {
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

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}

// testDate returns noon N days out in the application timezone
func testDate(days int) time.Time {
	now := config.GetCurrentTime()
	day := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, config.GetLocation())
	return day.AddDate(0, 0, days)
}
