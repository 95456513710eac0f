package models

import "time"

// ScheduleRun represents the schedule_runs table
// One row per generation run over a date range
type ScheduleRun struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RunUID      string    `gorm:"size:36;uniqueIndex;not null" json:"run_uid"`
	HospitalID  uint      `gorm:"not null;index" json:"hospital_id"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	TotalLists  int       `gorm:"default:0" json:"total_lists"`
	TotalCases  int       `gorm:"default:0" json:"total_cases"`
	TriggeredBy *uint     `gorm:"index" json:"triggered_by,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for ScheduleRun model
func (ScheduleRun) TableName() string {
	return "schedule_runs"
}

// SessionList represents the session_lists table: one theatre's operating
// list for one day. Written once per generation run, never mutated after
// assembly.
type SessionList struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RunID            uint      `gorm:"index" json:"run_id"`
	Date             time.Time `gorm:"type:date;not null;index" json:"date"`
	TheatreID        uint      `gorm:"not null;index" json:"theatre_id"`
	TheatreName      string    `gorm:"size:100" json:"theatre_name"`
	HospitalID       uint      `gorm:"not null;index" json:"hospital_id"`
	SpecialtyName    string    `gorm:"size:100;not null" json:"specialty_name"`
	SubspecialtyName string    `gorm:"size:100" json:"subspecialty_name,omitempty"`
	SessionType      string    `gorm:"size:50;not null" json:"session_type"`
	SessionStart     string    `gorm:"size:5" json:"session_start"`
	SessionEnd       string    `gorm:"size:5" json:"session_end"`
	DurationMinutes  int       `gorm:"not null" json:"duration_minutes"`

	SurgeonID            uint   `gorm:"index" json:"surgeon_id"`
	SurgeonName          string `gorm:"size:100" json:"surgeon_name"`
	SurgeonInitials      string `gorm:"size:10" json:"surgeon_initials"`
	AnaesthetistID       uint   `json:"anaesthetist_id"`
	AnaesthetistName     string `gorm:"size:100" json:"anaesthetist_name"`
	AnaesthetistInitials string `gorm:"size:10" json:"anaesthetist_initials"`

	// TotalEstimatedMinutes is the packed total including anaesthetic time,
	// while TimeRemainingMinutes is the selector's headroom before packing,
	// so the two figures do not sum to the session duration.
	TotalCases            int     `gorm:"default:0" json:"total_cases"`
	TotalEstimatedMinutes int     `gorm:"default:0" json:"total_estimated_minutes"`
	TotalPCS              float64 `gorm:"default:0" json:"total_pcs"`
	UtilizationPercentage int     `gorm:"default:0" json:"utilization_percentage"`
	TotalEstimatedCost    int     `gorm:"default:0" json:"total_estimated_cost"`
	PotentialRevenueLost  int     `gorm:"default:0" json:"potential_revenue_lost"`
	TimeRemainingMinutes  int     `gorm:"default:0" json:"time_remaining_minutes"`
	CanFitMore            bool    `gorm:"default:false" json:"can_fit_more"`
	Notes                 string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Cases []SurgicalCase `gorm:"foreignKey:SessionListID" json:"cases,omitempty"`
}

// TableName specifies the table name for SessionList model
func (SessionList) TableName() string {
	return "session_lists"
}

// SurgicalCase represents the surgical_cases table: one fully costed, timed
// case within a session list. Immutable once created; Ordinal is dense and
// starts at 1 within its session.
type SurgicalCase struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	SessionListID uint `gorm:"index" json:"session_list_id"`
	Ordinal       int  `gorm:"not null" json:"ordinal"`

	WaitingListEntryID uint   `gorm:"index" json:"waiting_list_entry_id"`
	PatientName        string `gorm:"size:100" json:"patient_name"`
	ProcedureName      string `gorm:"size:255;not null" json:"procedure_name"`
	ProcedureCode      string `gorm:"size:50" json:"procedure_code"`
	PriorityTier       string `gorm:"size:20" json:"priority_tier"`
	SpecialtyName      string `gorm:"size:100" json:"specialty_name"`
	SubspecialtyName   string `gorm:"size:100" json:"subspecialty_name,omitempty"`

	ComplexityScore   float64 `json:"complexity_score"`
	DurationScore     float64 `json:"duration_score"`
	VariabilityScore  float64 `json:"variability_score"`
	SurgeonLevelScore float64 `json:"surgeon_level_score"`
	PCSScore          float64 `json:"pcs_score"`
	ComplexityLabel   string  `gorm:"size:20" json:"complexity_label"`

	EstimatedSurgicalMinutes int    `json:"estimated_surgical_minutes"`
	AnaestheticType          string `gorm:"size:20" json:"anaesthetic_type"`
	AnaestheticMinutes       int    `json:"anaesthetic_minutes"`
	TurnoverMinutes          int    `json:"turnover_minutes"`
	TotalCaseMinutes         int    `json:"total_case_minutes"`
	EstimatedCost            int    `json:"estimated_cost"`

	SurgeonName          string `gorm:"size:100" json:"surgeon_name"`
	SurgeonInitials      string `gorm:"size:10" json:"surgeon_initials"`
	AnaesthetistName     string `gorm:"size:100" json:"anaesthetist_name"`
	AnaesthetistInitials string `gorm:"size:10" json:"anaesthetist_initials"`
}

// TableName specifies the table name for SurgicalCase model
func (SurgicalCase) TableName() string {
	return "surgical_cases"
}
