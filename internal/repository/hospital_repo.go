package repository

import (
	"theatre-scheduling-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetAllHospitals retrieves all active hospitals
func (r *HospitalRepository) GetAllHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetHospitalsByUserID retrieves hospitals accessible by a specific user
// Joins with user_hospitals table to filter by user access
func (r *HospitalRepository) GetHospitalsByUserID(userID uint) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.
		Joins("INNER JOIN user_hospitals ON user_hospitals.hospital_id = hospitals.id").
		Where("user_hospitals.user_id = ? AND hospitals.is_active = ?", userID, true).
		Order("hospitals.name ASC").
		Find(&hospitals).Error
	return hospitals, err
}
