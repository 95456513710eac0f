package repository

import (
	"errors"

	"theatre-scheduling-backend/internal/models"

	"gorm.io/gorm"
)

type TheatreRepository struct {
	db *gorm.DB
}

func NewTheatreRepo(db *gorm.DB) *TheatreRepository {
	return &TheatreRepository{db: db}
}

// TheatreConfigurations loads the active theatre configurations for a
// hospital with their specialty assignments and session preferences,
// ordered so a generation run walks theatres in a fixed order.
func (r *TheatreRepository) TheatreConfigurations(hospitalID uint) ([]models.TheatreConfiguration, error) {
	var configs []models.TheatreConfiguration
	err := r.db.Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("specialty_assignments.priority ASC, specialty_assignments.id ASC")
		}).
		Preload("Assignments.SessionPreferences").
		Order("theatre_id ASC").
		Find(&configs).Error
	return configs, err
}

// Theatres loads all active theatres for a hospital
func (r *TheatreRepository) Theatres(hospitalID uint) ([]models.Theatre, error) {
	var theatres []models.Theatre
	err := r.db.Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Preload("Unit").
		Order("theatre_code ASC").
		Find(&theatres).Error
	return theatres, err
}

// TheatreUnits loads all active units for a hospital
func (r *TheatreRepository) TheatreUnits(hospitalID uint) ([]models.TheatreUnit, error) {
	var units []models.TheatreUnit
	err := r.db.Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Order("unit_code ASC").
		Find(&units).Error
	return units, err
}

// GetTheatreByID retrieves a theatre by ID
func (r *TheatreRepository) GetTheatreByID(id uint) (*models.Theatre, error) {
	var theatre models.Theatre
	err := r.db.Where("id = ? AND is_active = ?", id, true).
		Preload("Unit").
		Preload("Hospital").
		First(&theatre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("theatre not found")
		}
		return nil, err
	}
	return &theatre, nil
}

// GetConfigurationByTheatreID retrieves the configuration for one theatre
func (r *TheatreRepository) GetConfigurationByTheatreID(theatreID uint) (*models.TheatreConfiguration, error) {
	var cfg models.TheatreConfiguration
	err := r.db.Where("theatre_id = ? AND is_active = ?", theatreID, true).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("specialty_assignments.priority ASC, specialty_assignments.id ASC")
		}).
		Preload("Assignments.SessionPreferences").
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("theatre configuration not found")
		}
		return nil, err
	}
	return &cfg, nil
}
