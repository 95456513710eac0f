package models

import "time"

// User roles. Admins manage every hospital and trigger generation runs;
// schedulers work the lists for their assigned hospitals; clinicians have
// read-only access to their own lists.
const (
	RoleAdmin     = "admin"
	RoleScheduler = "scheduler"
	RoleClinician = "clinician"
)

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	JobTitle     string    `gorm:"size:100" json:"job_title,omitempty"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         string    `gorm:"type:enum('admin','scheduler','clinician');default:'clinician'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
