package scheduler

import (
	"context"
	"testing"

	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSources backs all three engine data sources with in-memory fixtures.
type stubSources struct {
	configs  []models.TheatreConfiguration
	theatres []models.Theatre
	surgeons []models.Surgeon
	anaes    []models.Anaesthetist
	pending  map[string][]models.WaitingListEntry
}

func (s *stubSources) TheatreConfigurations(uint) ([]models.TheatreConfiguration, error) {
	return s.configs, nil
}

func (s *stubSources) Theatres(uint) ([]models.Theatre, error) {
	return s.theatres, nil
}

func (s *stubSources) TheatreUnits(uint) ([]models.TheatreUnit, error) {
	return []models.TheatreUnit{{ID: 1, HospitalID: 1, UnitCode: "MAIN", UnitName: "Main Theatres"}}, nil
}

func (s *stubSources) Consultants(_ uint, specialty string) ([]models.Surgeon, error) {
	var out []models.Surgeon
	for _, surgeon := range s.surgeons {
		if surgeon.SpecialtyName == specialty {
			out = append(out, surgeon)
		}
	}
	return out, nil
}

func (s *stubSources) Anaesthetists(uint) ([]models.Anaesthetist, error) {
	return s.anaes, nil
}

func (s *stubSources) PendingProcedures(_ uint, specialty string) ([]models.WaitingListEntry, error) {
	return s.pending[specialty], nil
}

func theatreConfig(theatreID uint, specialty string) models.TheatreConfiguration {
	return models.TheatreConfiguration{
		TheatreID:   theatreID,
		TheatreName: "Theatre " + string(rune('0'+theatreID)),
		Assignments: []models.SpecialtyAssignment{
			{SpecialtyName: specialty, Priority: 1},
		},
	}
}

func waitingEntry(id uint, procedure, tier string, waitingDays int) models.WaitingListEntry {
	return models.WaitingListEntry{
		ID:            id,
		HospitalID:    1,
		PatientName:   "Patient",
		ProcedureName: procedure,
		PriorityTier:  tier,
		SpecialtyName: "General Surgery",
		WaitingDays:   waitingDays,
	}
}

func newTestEngine(src *stubSources) *Engine {
	return NewEngine(DefaultConfig(), NewSessionCatalog(), scoring.NewKeywordScorer(), src, src, src, nil)
}

func generalSurgerySources() *stubSources {
	return &stubSources{
		configs: []models.TheatreConfiguration{theatreConfig(1, "General Surgery")},
		theatres: []models.Theatre{
			{ID: 1, HospitalID: 1, TheatreName: "Theatre 1", Status: models.TheatreAvailable},
		},
		surgeons: []models.Surgeon{
			{ID: 1, FullName: "Alice Morgan", Initials: "AM", SpecialtyName: "General Surgery"},
		},
		anaes: []models.Anaesthetist{
			{ID: 1, FullName: "Ben Okoro", Initials: "BO"},
		},
		pending: map[string][]models.WaitingListEntry{
			"General Surgery": {
				waitingEntry(1, "Inguinal hernia repair", models.PriorityRoutine, 120),
				waitingEntry(2, "Laparoscopic cholecystectomy", models.PriorityRoutine, 90),
				waitingEntry(3, "Haemorrhoidectomy", models.PriorityRoutine, 60),
			},
		},
	}
}

func TestGenerateBuildsSessionList(t *testing.T) {
	src := generalSurgerySources()
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	list := lists[0]
	assert.Equal(t, "General Surgery", list.SpecialtyName)
	assert.Equal(t, uint(1), list.TheatreID)
	assert.Equal(t, "Alice Morgan", list.SurgeonName)
	assert.Equal(t, "Ben Okoro", list.AnaesthetistName)
	assert.Equal(t, 3, list.TotalCases)
	assert.Equal(t, list.TotalCases, len(list.Cases))
	assert.NotZero(t, list.TotalEstimatedCost)

	for i, c := range list.Cases {
		assert.Equal(t, i+1, c.Ordinal)
		assert.NotZero(t, c.WaitingListEntryID)
	}
}

func TestGenerateOrdersUrgentFirst(t *testing.T) {
	src := generalSurgerySources()
	src.pending["General Surgery"] = []models.WaitingListEntry{
		waitingEntry(1, "Laparoscopic cholecystectomy", models.PriorityRoutine, 400),
		waitingEntry(2, "Inguinal hernia repair", models.PriorityUrgent, 15),
	}
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.NotEmpty(t, lists[0].Cases)

	assert.Equal(t, models.PriorityUrgent, lists[0].Cases[0].PriorityTier)
}

func TestGenerateNeverDoubleBooksSurgeon(t *testing.T) {
	// Two theatres both assigned to a specialty with a single consultant:
	// only one theatre can run, the other day is skipped.
	src := generalSurgerySources()
	src.configs = []models.TheatreConfiguration{
		theatreConfig(1, "General Surgery"),
		theatreConfig(2, "General Surgery"),
	}
	src.theatres = append(src.theatres,
		models.Theatre{ID: 2, HospitalID: 1, TheatreName: "Theatre 2", Status: models.TheatreAvailable})
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, uint(1), lists[0].TheatreID)
}

func TestGenerateEntriesConsumedOncePerRun(t *testing.T) {
	// Over a two-day range the waiting list is drained on day one; day two
	// still produces a provisional list from the fallback catalog.
	src := generalSurgerySources()
	engine := newTestEngine(src)

	lists, err := engine.Generate(context.Background(), NewSurgeonLedger(), 1, monday, tuesday)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	seen := make(map[uint]int)
	for _, list := range lists {
		for _, c := range list.Cases {
			if c.WaitingListEntryID != 0 {
				seen[c.WaitingListEntryID]++
			}
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "entry %d packed more than once", id)
	}

	assert.Contains(t, lists[1].Notes, "fallback")
	for _, c := range lists[1].Cases {
		assert.Zero(t, c.WaitingListEntryID)
	}
}

func TestGenerateFallbackWhenWaitingListEmpty(t *testing.T) {
	src := generalSurgerySources()
	src.pending = map[string][]models.WaitingListEntry{}
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	assert.Contains(t, lists[0].Notes, "fallback")
	require.NotEmpty(t, lists[0].Cases)
	for _, c := range lists[0].Cases {
		assert.Zero(t, c.WaitingListEntryID)
		assert.Equal(t, "To be confirmed", c.PatientName)
	}
}

func TestGenerateSkipsUnavailableTheatre(t *testing.T) {
	src := generalSurgerySources()
	src.theatres[0].Status = models.TheatreMaintenance
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestGenerateSkipsWeekdayWithoutAssignment(t *testing.T) {
	src := generalSurgerySources()
	src.configs[0].Assignments[0].DaysOfWeek = "Friday"
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestGenerateSkipsWhenNoConsultants(t *testing.T) {
	src := generalSurgerySources()
	src.surgeons = nil
	engine := newTestEngine(src)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestGenerateNoConfigurations(t *testing.T) {
	engine := newTestEngine(&stubSources{})

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

type noUnitSources struct{ *stubSources }

func (noUnitSources) TheatreUnits(uint) ([]models.TheatreUnit, error) {
	return nil, nil
}

func TestGenerateNoTheatreUnits(t *testing.T) {
	src := generalSurgerySources()
	engine := NewEngine(DefaultConfig(), NewSessionCatalog(), scoring.NewKeywordScorer(), noUnitSources{src}, src, src, nil)

	lists, err := engine.GenerateForDate(context.Background(), NewSurgeonLedger(), 1, monday)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestGenerateInvalidDateRange(t *testing.T) {
	engine := newTestEngine(generalSurgerySources())

	_, err := engine.Generate(context.Background(), NewSurgeonLedger(), 1, tuesday, monday)
	assert.Error(t, err)
}

func TestGenerateStopsOnCancelledContext(t *testing.T) {
	engine := newTestEngine(generalSurgerySources())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Generate(ctx, NewSurgeonLedger(), 1, monday, tuesday)
	assert.ErrorIs(t, err, context.Canceled)
}
