package repository

import (
	"errors"
	"time"

	"theatre-scheduling-backend/internal/models"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// CreateRun persists a generation run record
func (r *ScheduleRepository) CreateRun(run *models.ScheduleRun) error {
	return r.db.Create(run).Error
}

// SaveSessionList persists one session list with its cases
func (r *ScheduleRepository) SaveSessionList(list *models.SessionList) error {
	return r.db.Create(list).Error
}

// UpdateRunTotals writes the final counters once all lists are saved
func (r *ScheduleRepository) UpdateRunTotals(runID uint, totalLists, totalCases int) error {
	return r.db.Model(&models.ScheduleRun{}).
		Where("id = ?", runID).
		Updates(map[string]interface{}{
			"total_lists": totalLists,
			"total_cases": totalCases,
		}).Error
}

// GetRunByUID retrieves a run by its UUID
func (r *ScheduleRepository) GetRunByUID(runUID string) (*models.ScheduleRun, error) {
	var run models.ScheduleRun
	err := r.db.Where("run_uid = ?", runUID).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("schedule run not found")
		}
		return nil, err
	}
	return &run, nil
}

// GetSessionLists retrieves persisted session lists for a hospital within a
// date range, newest run first
func (r *ScheduleRepository) GetSessionLists(hospitalID uint, from, to time.Time) ([]models.SessionList, error) {
	var lists []models.SessionList
	err := r.db.Where("hospital_id = ? AND date >= ? AND date <= ?", hospitalID, from, to).
		Preload("Cases", func(db *gorm.DB) *gorm.DB {
			return db.Order("surgical_cases.ordinal ASC")
		}).
		Order("date ASC, theatre_id ASC").
		Find(&lists).Error
	return lists, err
}

// GetSessionListByID retrieves one session list with its cases in order
func (r *ScheduleRepository) GetSessionListByID(id uint) (*models.SessionList, error) {
	var list models.SessionList
	err := r.db.Where("id = ?", id).
		Preload("Cases", func(db *gorm.DB) *gorm.DB {
			return db.Order("surgical_cases.ordinal ASC")
		}).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("session list not found")
		}
		return nil, err
	}
	return &list, nil
}
