package scheduler

import (
	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/scoring"
)

// Config holds the engine's tunable constants. The defaults carry the
// behaviour of the original scheduling rules; every value can be overridden
// through the service configuration.
type Config struct {
	// TimeBudgetRatio caps packed case minutes at this fraction of the
	// session duration.
	TimeBudgetRatio float64
	// MaxPCS caps the summed Procedure Complexity Score per session.
	MaxPCS float64
	// MinRemainingMinutes is the threshold below which a session is
	// considered full. A remainder exactly equal to the threshold counts
	// as full.
	MinRemainingMinutes int
	// MaxCasesPerSession bounds worst-case list size.
	MaxCasesPerSession int
	// SetupMinutes seeds the selection walk before the first case.
	SetupMinutes int
	// FallbackProcedureMinutes is the flat duration estimate used when a
	// procedure cannot be scored.
	FallbackProcedureMinutes int
	// MaxRecommendations caps the non-binding "could also fit" list.
	MaxRecommendations int
	// MinutesPerDurationPoint converts the scorer's duration sub-score
	// into estimated surgical minutes.
	MinutesPerDurationPoint int
}

// DefaultConfig returns the standard engine constants.
func DefaultConfig() Config {
	return Config{
		TimeBudgetRatio:          0.95,
		MaxPCS:                   32,
		MinRemainingMinutes:      30,
		MaxCasesPerSession:       8,
		SetupMinutes:             30,
		FallbackProcedureMinutes: 90,
		MaxRecommendations:       3,
		MinutesPerDurationPoint:  18,
	}
}

// ScoredProcedure is a waiting list entry annotated with its score and time
// estimates, the unit the selector and packer operate on. TotalMinutes is
// estimated surgical time plus turnover; anaesthetic minutes are added later
// when the packer builds the full case.
type ScoredProcedure struct {
	Entry            models.WaitingListEntry
	Score            scoring.ProcedureScore
	EstimatedMinutes int
	TurnoverMinutes  int
	TotalMinutes     int
}

// ConfigSource loads the theatre configuration for a hospital.
type ConfigSource interface {
	TheatreConfigurations(hospitalID uint) ([]models.TheatreConfiguration, error)
	Theatres(hospitalID uint) ([]models.Theatre, error)
	TheatreUnits(hospitalID uint) ([]models.TheatreUnit, error)
}

// StaffSource loads surgical and anaesthetic staff.
type StaffSource interface {
	Consultants(hospitalID uint, specialty string) ([]models.Surgeon, error)
	Anaesthetists(hospitalID uint) ([]models.Anaesthetist, error)
}

// WaitingListSource loads unscheduled procedures for a specialty, pre-sorted
// by priority tier then descending waiting days.
type WaitingListSource interface {
	PendingProcedures(hospitalID uint, specialty string) ([]models.WaitingListEntry, error)
}

// SelectionPolicy ranks surgeon candidates for a session. The engine books
// the first ranked candidate the conflict ledger accepts.
type SelectionPolicy interface {
	Rank(candidates []models.Surgeon, preferredID uint) []models.Surgeon
}

// AffinityPolicy prefers the surgeon who owns the session's first selected
// procedure and keeps the remaining candidates in stable input order, so a
// run is reproducible.
type AffinityPolicy struct{}

// Rank implements the SelectionPolicy interface.
func (AffinityPolicy) Rank(candidates []models.Surgeon, preferredID uint) []models.Surgeon {
	if preferredID == 0 {
		return candidates
	}
	ranked := make([]models.Surgeon, 0, len(candidates))
	for _, s := range candidates {
		if s.ID == preferredID {
			ranked = append(ranked, s)
			break
		}
	}
	for _, s := range candidates {
		if s.ID != preferredID {
			ranked = append(ranked, s)
		}
	}
	return ranked
}
