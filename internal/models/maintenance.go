package models

import (
	"time"
)

// MaintenanceType represents the maintenance type enum
type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "preventive"
	MaintenanceTypeCorrective MaintenanceType = "corrective"
)

// MaintenanceStatus represents the maintenance status enum
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCanceled   MaintenanceStatus = "canceled"
)

// Maintenance represents a preventive or corrective service event
// performed on a piece of equipment
type Maintenance struct {
	ID                  uint              `json:"id" gorm:"primarykey"`
	EquipmentID         uint              `json:"equipment_id" gorm:"not null;index"`
	Type                MaintenanceType   `json:"type" gorm:"type:varchar(20);not null"`
	Status              MaintenanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	ExecutionDate       time.Time         `json:"execution_date"`
	NextMaintenanceDate *time.Time        `json:"next_maintenance_date"`
	Technician          string            `json:"technician" gorm:"size:100"`
	ServiceTime         *int              `json:"service_time"`
	Cost                *float64          `json:"cost"`
	ReplacedParts       string            `json:"replaced_parts" gorm:"type:text"`
	ServiceDescription  string            `json:"service_description" gorm:"type:text"`
	AdditionalNotes     string            `json:"additional_notes" gorm:"type:text"`
	CreatedBy           *uint             `json:"created_by"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`

	// Relationships
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
	Alerts    []Alert    `json:"alerts,omitempty" gorm:"foreignKey:MaintenanceID"`
}

// TableName specifies the table name for Maintenance model
func (Maintenance) TableName() string {
	return "maintenance"
}
