package models

import "time"

// Surgeon represents the surgeons table (consultant surgeons)
// Each surgeon belongs to one specialty within a hospital
type Surgeon struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HospitalID    uint      `gorm:"not null;index" json:"hospital_id"`
	FullName      string    `gorm:"size:100;not null" json:"full_name"`
	Initials      string    `gorm:"size:10" json:"initials"`
	SpecialtyName string    `gorm:"size:100;not null;index" json:"specialty_name"`
	Grade         string    `gorm:"type:enum('consultant','associate_specialist','registrar');default:'consultant'" json:"grade"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Surgeon model
func (Surgeon) TableName() string {
	return "surgeons"
}

// Anaesthetist represents the anaesthetists table
type Anaesthetist struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Initials   string    `gorm:"size:10" json:"initials"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Anaesthetist model
func (Anaesthetist) TableName() string {
	return "anaesthetists"
}
