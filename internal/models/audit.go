package models

import "time"

// AuditLog represents the audit_logs table
// Tracks authentication events and schedule generation runs. HospitalID is
// set when the action concerns one hospital, nil for account-level events.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	HospitalID *uint     `gorm:"index" json:"hospital_id,omitempty"`
	Action     string    `gorm:"size:100;not null" json:"action"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
