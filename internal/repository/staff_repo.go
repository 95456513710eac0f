package repository

import (
	"theatre-scheduling-backend/internal/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Consultants loads the active consultant surgeons for a specialty within a
// hospital. Matching is by exact specialty name; input order is stable so
// surgeon selection stays deterministic.
func (r *StaffRepository) Consultants(hospitalID uint, specialty string) ([]models.Surgeon, error) {
	var surgeons []models.Surgeon
	err := r.db.Where("hospital_id = ? AND specialty_name = ? AND is_active = ?", hospitalID, specialty, true).
		Order("id ASC").
		Find(&surgeons).Error
	return surgeons, err
}

// Anaesthetists loads all active anaesthetists for a hospital
func (r *StaffRepository) Anaesthetists(hospitalID uint) ([]models.Anaesthetist, error) {
	var anaesthetists []models.Anaesthetist
	err := r.db.Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Order("id ASC").
		Find(&anaesthetists).Error
	return anaesthetists, err
}
