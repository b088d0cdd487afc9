package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the aggregated statistics endpoints
type DashboardController struct{}

// NewDashboardController creates a new dashboard controller
func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// StatusCount is one slice of the equipment status breakdown
type StatusCount struct {
	Status models.EquipmentStatus `json:"status"`
	Count  int64                  `json:"count"`
}

// GetEquipmentStatusStats returns the equipment count grouped by status
func (dc *DashboardController) GetEquipmentStatusStats(c *gin.Context) {
	var stats []StatusCount
	err := db.GetDB().Model(&models.Equipment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var total int64
	for _, s := range stats {
		total += s.Count
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Equipment status statistics retrieved successfully",
		Data: gin.H{
			"total":     total,
			"by_status": stats,
		},
	})
}

// MonthlyMaintenance is one month of the yearly breakdown
type MonthlyMaintenance struct {
	Month      int     `json:"month"`
	Preventive int64   `json:"preventive"`
	Corrective int64   `json:"corrective"`
	Total      int64   `json:"total"`
	Cost       float64 `json:"cost"`
}

// GetMaintenanceByMonth returns maintenance counts and costs per month for a
// year. Defaults to the current year.
func (dc *DashboardController) GetMaintenanceByMonth(c *gin.Context) {
	year := config.GetCurrentTime().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Success: false,
				Error:   "Validation Error",
				Message: "Year must be a valid number",
			})
			return
		}
		year = parsed
	}

	loc := config.GetLocation()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)

	var records []models.Maintenance
	err := db.GetDB().
		Where("execution_date >= ? AND execution_date < ?", start, end).
		Find(&records).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	months := make([]MonthlyMaintenance, 12)
	for i := range months {
		months[i].Month = i + 1
	}
	for _, m := range records {
		idx := int(m.ExecutionDate.In(loc).Month()) - 1
		months[idx].Total++
		switch m.Type {
		case models.MaintenanceTypePreventive:
			months[idx].Preventive++
		case models.MaintenanceTypeCorrective:
			months[idx].Corrective++
		}
		if m.Cost != nil {
			months[idx].Cost += *m.Cost
		}
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Monthly maintenance statistics retrieved successfully",
		Data: gin.H{
			"year":   year,
			"months": months,
		},
	})
}

// periodStart maps a period name to the beginning of its range
func periodStart(period string) (time.Time, bool) {
	now := config.GetCurrentTime()
	switch period {
	case "month":
		return now.AddDate(0, -1, 0), true
	case "quarter":
		return now.AddDate(0, -3, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// GetMaintenanceCosts returns cost totals for a rolling period, split by
// maintenance type
func (dc *DashboardController) GetMaintenanceCosts(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	start, ok := periodStart(period)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Validation Error",
			Message: "Period must be one of: month, quarter, year",
		})
		return
	}

	var records []models.Maintenance
	err := db.GetDB().
		Where("execution_date >= ? AND cost IS NOT NULL", start).
		Find(&records).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var total, preventive, corrective, max float64
	for _, m := range records {
		cost := *m.Cost
		total += cost
		if cost > max {
			max = cost
		}
		switch m.Type {
		case models.MaintenanceTypePreventive:
			preventive += cost
		case models.MaintenanceTypeCorrective:
			corrective += cost
		}
	}

	var average float64
	if len(records) > 0 {
		average = total / float64(len(records))
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance cost statistics retrieved successfully",
		Data: gin.H{
			"period":          period,
			"total_cost":      total,
			"average_cost":    average,
			"max_cost":        max,
			"preventive_cost": preventive,
			"corrective_cost": corrective,
			"record_count":    len(records),
		},
	})
}

// EquipmentFrequency is one row of the most-maintained ranking
type EquipmentFrequency struct {
	EquipmentID      uint    `json:"equipment_id"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	SerialNumber     string  `json:"serial_number"`
	MaintenanceCount int64   `json:"maintenance_count"`
	TotalCost        float64 `json:"total_cost"`
}

// GetMaintenanceFrequency ranks equipment by how often it needed maintenance
func (dc *DashboardController) GetMaintenanceFrequency(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Success: false,
				Error:   "Validation Error",
				Message: "Limit must be a positive number",
			})
			return
		}
		limit = parsed
	}

	var records []models.Maintenance
	if err := db.GetDB().Preload("Equipment").Find(&records).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	byEquipment := make(map[uint]*EquipmentFrequency)
	for _, m := range records {
		row, ok := byEquipment[m.EquipmentID]
		if !ok {
			row = &EquipmentFrequency{EquipmentID: m.EquipmentID}
			if m.Equipment != nil {
				row.Brand = m.Equipment.Brand
				row.Model = m.Equipment.Model
				row.SerialNumber = m.Equipment.SerialNumber
			}
			byEquipment[m.EquipmentID] = row
		}
		row.MaintenanceCount++
		if m.Cost != nil {
			row.TotalCost += *m.Cost
		}
	}

	ranking := make([]EquipmentFrequency, 0, len(byEquipment))
	for _, row := range byEquipment {
		ranking = append(ranking, *row)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].MaintenanceCount != ranking[j].MaintenanceCount {
			return ranking[i].MaintenanceCount > ranking[j].MaintenanceCount
		}
		return ranking[i].EquipmentID < ranking[j].EquipmentID
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Maintenance frequency statistics retrieved successfully",
		Data:    ranking,
		Count:   len(ranking),
	})
}
