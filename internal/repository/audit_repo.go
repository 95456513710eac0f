package repository

import (
	"theatre-scheduling-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates an account-level audit log entry
func (r *AuditRepository) CreateAuditLog(userID *uint, action string, details string) error {
	log := &models.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	return r.db.Create(log).Error
}

// CreateHospitalAuditLog creates an audit log entry scoped to one hospital,
// used for schedule generation runs
func (r *AuditRepository) CreateHospitalAuditLog(userID *uint, hospitalID uint, action string, details string) error {
	log := &models.AuditLog{
		UserID:     userID,
		HospitalID: &hospitalID,
		Action:     action,
		Details:    details,
	}
	return r.db.Create(log).Error
}
