package scheduler

import (
	"testing"

	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packProc(name string, estMinutes int, complexity, pcs float64) ScoredProcedure {
	return ScoredProcedure{
		Entry: models.WaitingListEntry{
			ID:            1,
			PatientName:   "Test Patient",
			ProcedureName: name,
			PriorityTier:  models.PriorityRoutine,
			SpecialtyName: "General Surgery",
		},
		Score: scoring.ProcedureScore{
			ComplexityScore: complexity,
			AverageScore:    pcs,
			ComplexityLabel: scoring.LabelForScore(pcs),
		},
		EstimatedMinutes: estMinutes,
		TurnoverMinutes:  TurnoverMinutes(complexity),
		TotalMinutes:     estMinutes + TurnoverMinutes(complexity),
	}
}

var (
	testSurgeon      = models.Surgeon{ID: 1, FullName: "Alice Morgan", Initials: "AM", SpecialtyName: "General Surgery"}
	testAnaesthetist = models.Anaesthetist{ID: 1, FullName: "Ben Okoro", Initials: "BO"}
)

func TestPackCasesEnforcesTimeBudget(t *testing.T) {
	cfg := DefaultConfig()
	session, _ := NewSessionCatalog().Get(SessionStandard)

	// Each large case costs 200 surgical + 30 GA + 20 turnover = 250
	// minutes against a 570-minute budget (0.95 x 600). Two fit; the
	// third is rejected but the small case after it is still packed.
	procs := []ScoredProcedure{
		packProc("Open abdominal procedure", 200, 5, 5),
		packProc("Open abdominal procedure", 200, 5, 5),
		packProc("Open abdominal procedure", 200, 5, 5),
		packProc("Minor procedure", 10, 2, 2),
	}

	res := PackCases(cfg, session, procs, testSurgeon, testAnaesthetist)

	require.Len(t, res.Cases, 3)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 250+250+55, res.TimeUsed)
	assert.LessOrEqual(t, float64(res.TimeUsed), cfg.TimeBudgetRatio*float64(session.DurationMinutes))

	// Ordinals stay dense across the rejection
	for i, c := range res.Cases {
		assert.Equal(t, i+1, c.Ordinal)
	}
}

func TestPackCasesEnforcesComplexityBudget(t *testing.T) {
	cfg := DefaultConfig()
	session, _ := NewSessionCatalog().Get(SessionStandard)

	// Three PCS-9 cases reach 27; a fourth would hit 36 and is rejected,
	// but a PCS-4 case still fits under the cap of 32.
	procs := []ScoredProcedure{
		packProc("Complex case", 30, 2, 9),
		packProc("Complex case", 30, 2, 9),
		packProc("Complex case", 30, 2, 9),
		packProc("Complex case", 30, 2, 9),
		packProc("Moderate case", 30, 2, 4),
	}

	res := PackCases(cfg, session, procs, testSurgeon, testAnaesthetist)

	require.Len(t, res.Cases, 4)
	assert.Equal(t, 1, res.Rejected)
	assert.InDelta(t, 31.0, res.PCSUsed, 0.001)
	assert.LessOrEqual(t, res.PCSUsed, cfg.MaxPCS)
}

func TestPackCasesCapsCaseCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCasesPerSession = 2
	session, _ := NewSessionCatalog().Get(SessionStandard)

	procs := []ScoredProcedure{
		packProc("Minor procedure", 10, 2, 2),
		packProc("Minor procedure", 10, 2, 2),
		packProc("Minor procedure", 10, 2, 2),
	}

	res := PackCases(cfg, session, procs, testSurgeon, testAnaesthetist)

	assert.Len(t, res.Cases, 2)
}

func TestPackCasesFillsStaffDetails(t *testing.T) {
	cfg := DefaultConfig()
	session, _ := NewSessionCatalog().Get(SessionStandard)

	owned := packProc("Open abdominal procedure", 60, 5, 5)
	owned.Entry.SurgeonName = "Jane A Smith"
	unowned := packProc("Minor procedure", 10, 2, 2)

	res := PackCases(cfg, session, []ScoredProcedure{owned, unowned}, testSurgeon, testAnaesthetist)

	require.Len(t, res.Cases, 2)
	assert.Equal(t, "Jane A Smith", res.Cases[0].SurgeonName)
	assert.Equal(t, "JAS", res.Cases[0].SurgeonInitials)
	assert.Equal(t, "Alice Morgan", res.Cases[1].SurgeonName)
	assert.Equal(t, "AM", res.Cases[1].SurgeonInitials)
	assert.Equal(t, "Ben Okoro", res.Cases[0].AnaesthetistName)
	assert.Equal(t, "BO", res.Cases[0].AnaesthetistInitials)
}

func TestPackCasesBreaksDownCaseMinutes(t *testing.T) {
	cfg := DefaultConfig()
	session, _ := NewSessionCatalog().Get(SessionStandard)

	res := PackCases(cfg, session, []ScoredProcedure{packProc("Open abdominal procedure", 120, 5, 5)}, testSurgeon, testAnaesthetist)

	require.Len(t, res.Cases, 1)
	c := res.Cases[0]
	assert.Equal(t, 120, c.EstimatedSurgicalMinutes)
	assert.Equal(t, AnaestheticGA, c.AnaestheticType)
	assert.Equal(t, 30, c.AnaestheticMinutes)
	assert.Equal(t, 20, c.TurnoverMinutes)
	assert.Equal(t, 170, c.TotalCaseMinutes)
	assert.Equal(t, EstimateCaseCost(5, "General Surgery"), c.EstimatedCost)
}
