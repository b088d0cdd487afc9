package models

import (
	"time"
)

// EquipmentStatus represents the equipment status enum
type EquipmentStatus string

const (
	EquipmentStatusActive      EquipmentStatus = "active"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusInactive    EquipmentStatus = "inactive"
)

// Equipment represents a piece of medical equipment under management
type Equipment struct {
	ID              uint            `json:"id" gorm:"primarykey"`
	SerialNumber    string          `json:"serial_number" gorm:"uniqueIndex;not null;size:100"`
	InvoiceNumber   string          `json:"invoice_number" gorm:"size:100"`
	Brand           string          `json:"brand" gorm:"size:100;not null"`
	Model           string          `json:"model" gorm:"size:100"`
	Unit            string          `json:"unit" gorm:"size:100"`
	City            string          `json:"city" gorm:"size:100"`
	SupportPhone    string          `json:"support_phone" gorm:"size:20"`
	Status          EquipmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	AcquisitionDate *time.Time      `json:"acquisition_date"`
	WarrantyUntil   *time.Time      `json:"warranty_until"`
	ImageURL        string          `json:"image_url" gorm:"type:text"`
	ManualURL       string          `json:"manual_url" gorm:"type:text"`
	Description     string          `json:"description" gorm:"type:text"`
	CreatedBy       *uint           `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Maintenances []Maintenance `json:"maintenances,omitempty" gorm:"foreignKey:EquipmentID"`
	Alerts       []Alert       `json:"alerts,omitempty" gorm:"foreignKey:EquipmentID"`
}

// TableName specifies the table name for Equipment model
func (Equipment) TableName() string {
	return "equipment"
}

// IsValidStatus checks whether the given value is a known equipment status
func IsValidEquipmentStatus(status EquipmentStatus) bool {
	switch status {
	case EquipmentStatusActive, EquipmentStatusMaintenance, EquipmentStatusInactive:
		return true
	}
	return false
}
