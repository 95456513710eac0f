package models

import "time"

// Priority tiers for waiting list entries, highest urgency first
const (
	PriorityUrgent    = "Urgent"
	PriorityExpedited = "Expedited"
	PriorityRoutine   = "Routine"
	PriorityPlanned   = "Planned"
)

// PriorityRank maps a priority tier to its sort rank (lower = more urgent).
// Unknown tiers sort after Planned.
func PriorityRank(tier string) int {
	switch tier {
	case PriorityUrgent:
		return 0
	case PriorityExpedited:
		return 1
	case PriorityRoutine:
		return 2
	case PriorityPlanned:
		return 3
	}
	return 4
}

// WaitingListEntry represents the waiting_list table: one pending surgical
// procedure awaiting a theatre slot. The scheduling engine only reads these;
// IsScheduled and SessionListID are committed by the schedule service after a
// generation run.
type WaitingListEntry struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	HospitalID       uint       `gorm:"not null;index" json:"hospital_id"`
	PatientName      string     `gorm:"size:100;not null" json:"patient_name"`
	PatientNumber    string     `gorm:"size:50" json:"patient_number"`
	ProcedureName    string     `gorm:"size:255;not null" json:"procedure_name"`
	ProcedureCode    string     `gorm:"size:50" json:"procedure_code"`
	PriorityTier     string     `gorm:"type:enum('Urgent','Expedited','Routine','Planned');default:'Routine';index" json:"priority_tier"`
	SurgeonID        uint       `gorm:"index" json:"surgeon_id"`
	SurgeonName      string     `gorm:"size:100" json:"surgeon_name"`
	SpecialtyName    string     `gorm:"size:100;not null;index" json:"specialty_name"`
	SubspecialtyName string     `gorm:"size:100" json:"subspecialty_name,omitempty"`
	ReferralDate     *time.Time `json:"referral_date,omitempty"`
	TargetDate       *time.Time `json:"target_date,omitempty"`
	WaitingDays      int        `gorm:"default:0" json:"waiting_days"`
	IsScheduled      bool       `gorm:"default:false;index" json:"is_scheduled"`
	SessionListID    *uint      `gorm:"index" json:"session_list_id,omitempty"`
	CreatedAt        time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for WaitingListEntry model
func (WaitingListEntry) TableName() string {
	return "waiting_list"
}
