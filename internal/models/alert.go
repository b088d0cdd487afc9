package models

import (
	"time"
)

// AlertType represents the alert type enum
type AlertType string

const (
	AlertTypeMaintenance AlertType = "maintenance"
	AlertTypeWarranty    AlertType = "warranty"
)

// AlertStatus represents the alert lifecycle status enum
type AlertStatus string

const (
	AlertStatusPending   AlertStatus = "pending"
	AlertStatusSent      AlertStatus = "sent"
	AlertStatusCompleted AlertStatus = "completed"
	AlertStatusCanceled  AlertStatus = "canceled"
)

// Alert represents a scheduled reminder tied to an equipment and
// optionally to the maintenance record that produced it
type Alert struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	EquipmentID   uint        `json:"equipment_id" gorm:"not null;index"`
	MaintenanceID *uint       `json:"maintenance_id" gorm:"index"`
	Type          AlertType   `json:"type" gorm:"type:varchar(20);not null"`
	Status        AlertStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	DueDate       time.Time   `json:"due_date"`
	Message       string      `json:"message" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Relationships
	Equipment   *Equipment   `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
	Maintenance *Maintenance `json:"maintenance,omitempty" gorm:"foreignKey:MaintenanceID"`
}

// TableName specifies the table name for Alert model
func (Alert) TableName() string {
	return "alerts"
}
