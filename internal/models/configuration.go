package models

import (
	"strings"
	"time"
)

// TheatreConfiguration represents the theatre_configurations table
// One row per theatre; holds the priority-ordered specialty assignments that
// decide which specialty runs the theatre on a given day
type TheatreConfiguration struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index" json:"hospital_id"`
	UnitID      uint      `gorm:"not null;index" json:"unit_id"`
	TheatreID   uint      `gorm:"not null;uniqueIndex" json:"theatre_id"`
	TheatreName string    `gorm:"size:100" json:"theatre_name"`
	UnitName    string    `gorm:"size:100" json:"unit_name"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	// Relationships
	Theatre     Theatre               `gorm:"foreignKey:TheatreID" json:"theatre,omitempty"`
	Assignments []SpecialtyAssignment `gorm:"foreignKey:ConfigurationID" json:"assignments,omitempty"`
}

// TableName specifies the table name for TheatreConfiguration model
func (TheatreConfiguration) TableName() string {
	return "theatre_configurations"
}

// SpecialtyAssignment represents the specialty_assignments table
// Priority 1 is the highest. An empty DaysOfWeek means the assignment is
// eligible on every day of the week.
type SpecialtyAssignment struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ConfigurationID uint   `gorm:"not null;index" json:"configuration_id"`
	SpecialtyName   string `gorm:"size:100;not null" json:"specialty_name"`
	SubspecialtyName string `gorm:"size:100" json:"subspecialty_name,omitempty"`
	Priority        int    `gorm:"not null;default:1" json:"priority"`
	DaysOfWeek      string `gorm:"size:100" json:"days_of_week,omitempty"` // comma-separated weekday names

	// Relationships
	SessionPreferences []SessionTypePreference `gorm:"foreignKey:AssignmentID" json:"session_preferences,omitempty"`
}

// TableName specifies the table name for SpecialtyAssignment model
func (SpecialtyAssignment) TableName() string {
	return "specialty_assignments"
}

// ActiveOn reports whether the assignment is eligible on the given weekday.
// An empty DaysOfWeek set means every day.
func (a *SpecialtyAssignment) ActiveOn(day time.Weekday) bool {
	if strings.TrimSpace(a.DaysOfWeek) == "" {
		return true
	}
	for _, name := range strings.Split(a.DaysOfWeek, ",") {
		if strings.EqualFold(strings.TrimSpace(name), day.String()) {
			return true
		}
	}
	return false
}

// SessionTypePreference represents the session_type_preferences table
// Determines which session tier a specialty prefers to run in a theatre
type SessionTypePreference struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AssignmentID uint   `gorm:"not null;index" json:"assignment_id"`
	SessionType  string `gorm:"size:50;not null" json:"session_type"`
	Priority     int    `gorm:"not null;default:1" json:"priority"`
}

// TableName specifies the table name for SessionTypePreference model
func (SessionTypePreference) TableName() string {
	return "session_type_preferences"
}
