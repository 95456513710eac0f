package models

import "time"

// TheatreUnit represents the theatre_units table
// A unit groups operating theatres within a hospital (e.g. Main Theatres, Day Surgery Unit)
type TheatreUnit struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	UnitCode   string    `gorm:"size:50;not null" json:"unit_code"`
	UnitName   string    `gorm:"size:100;not null" json:"unit_name"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for TheatreUnit model
func (TheatreUnit) TableName() string {
	return "theatre_units"
}

// Theatre represents the theatres table: one operating theatre within a unit
type Theatre struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index" json:"hospital_id"`
	UnitID      uint      `gorm:"not null;index" json:"unit_id"`
	TheatreCode string    `gorm:"size:50;not null" json:"theatre_code"`
	TheatreName string    `gorm:"size:100;not null" json:"theatre_name"`
	Status      string    `gorm:"type:enum('available','maintenance','closed');default:'available'" json:"status"`
	OpensAt     string    `gorm:"size:5;default:'08:00'" json:"opens_at"`
	ClosesAt    string    `gorm:"size:5;default:'20:00'" json:"closes_at"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	// Relationships
	Hospital Hospital    `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Unit     TheatreUnit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

// TableName specifies the table name for Theatre model
func (Theatre) TableName() string {
	return "theatres"
}

// Theatre status values
const (
	TheatreAvailable   = "available"
	TheatreMaintenance = "maintenance"
	TheatreClosed      = "closed"
)
