package repository

import (
	"theatre-scheduling-backend/internal/models"

	"gorm.io/gorm"
)

type WaitingListRepository struct {
	db *gorm.DB
}

func NewWaitingListRepo(db *gorm.DB) *WaitingListRepository {
	return &WaitingListRepository{db: db}
}

// PendingProcedures loads the unscheduled waiting-list entries for a
// specialty (or all specialties when the filter is empty), pre-sorted by
// priority tier (Urgent first) then by descending waiting days, the order
// the selection walk expects.
func (r *WaitingListRepository) PendingProcedures(hospitalID uint, specialty string) ([]models.WaitingListEntry, error) {
	var entries []models.WaitingListEntry
	query := r.db.Where("hospital_id = ? AND is_scheduled = ?", hospitalID, false)
	if specialty != "" {
		query = query.Where("specialty_name = ?", specialty)
	}
	err := query.
		Order("FIELD(priority_tier, 'Urgent', 'Expedited', 'Routine', 'Planned'), waiting_days DESC").
		Find(&entries).Error
	return entries, err
}

// PendingBySurgeon loads unscheduled entries owned by one consultant
func (r *WaitingListRepository) PendingBySurgeon(hospitalID, surgeonID uint) ([]models.WaitingListEntry, error) {
	var entries []models.WaitingListEntry
	err := r.db.Where("hospital_id = ? AND surgeon_id = ? AND is_scheduled = ?", hospitalID, surgeonID, false).
		Order("FIELD(priority_tier, 'Urgent', 'Expedited', 'Routine', 'Planned'), waiting_days DESC").
		Find(&entries).Error
	return entries, err
}

// MarkScheduled flips the scheduled flag on the consumed entries and links
// them to the session list they were packed into. Called by the schedule
// service after a run; the engine itself never writes back.
func (r *WaitingListRepository) MarkScheduled(entryIDs []uint, sessionListID uint) error {
	if len(entryIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.WaitingListEntry{}).
		Where("id IN ?", entryIDs).
		Updates(map[string]interface{}{
			"is_scheduled":    true,
			"session_list_id": sessionListID,
		}).Error
}
