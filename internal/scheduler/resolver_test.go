package scheduler

import (
	"testing"
	"time"

	"theatre-scheduling-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday  = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
)

func TestResolveAssignmentFiltersByWeekday(t *testing.T) {
	cfg := models.TheatreConfiguration{
		Assignments: []models.SpecialtyAssignment{
			{SpecialtyName: "General Surgery", Priority: 1, DaysOfWeek: "Monday,Wednesday"},
			{SpecialtyName: "Urology", Priority: 1, DaysOfWeek: "Tuesday,Thursday"},
		},
	}

	a, ok := ResolveAssignment(cfg, monday)
	require.True(t, ok)
	assert.Equal(t, "General Surgery", a.SpecialtyName)

	a, ok = ResolveAssignment(cfg, tuesday)
	require.True(t, ok)
	assert.Equal(t, "Urology", a.SpecialtyName)
}

func TestResolveAssignmentPicksLowestPriority(t *testing.T) {
	cfg := models.TheatreConfiguration{
		Assignments: []models.SpecialtyAssignment{
			{SpecialtyName: "Urology", Priority: 2},
			{SpecialtyName: "General Surgery", Priority: 1},
		},
	}

	a, ok := ResolveAssignment(cfg, monday)
	require.True(t, ok)
	assert.Equal(t, "General Surgery", a.SpecialtyName)
}

func TestResolveAssignmentTieKeepsInputOrder(t *testing.T) {
	cfg := models.TheatreConfiguration{
		Assignments: []models.SpecialtyAssignment{
			{SpecialtyName: "Urology", Priority: 1},
			{SpecialtyName: "General Surgery", Priority: 1},
		},
	}

	a, ok := ResolveAssignment(cfg, monday)
	require.True(t, ok)
	assert.Equal(t, "Urology", a.SpecialtyName)
}

func TestResolveAssignmentEmptyDaysMeansEveryDay(t *testing.T) {
	cfg := models.TheatreConfiguration{
		Assignments: []models.SpecialtyAssignment{
			{SpecialtyName: "General Surgery", Priority: 1},
		},
	}

	for d := 0; d < 7; d++ {
		_, ok := ResolveAssignment(cfg, monday.AddDate(0, 0, d))
		assert.True(t, ok)
	}
}

func TestResolveAssignmentNoEligibleSpecialty(t *testing.T) {
	cfg := models.TheatreConfiguration{
		Assignments: []models.SpecialtyAssignment{
			{SpecialtyName: "General Surgery", Priority: 1, DaysOfWeek: "Friday"},
		},
	}

	_, ok := ResolveAssignment(cfg, monday)
	assert.False(t, ok)
}
