package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpecialtyAssignmentActiveOn(t *testing.T) {
	a := SpecialtyAssignment{DaysOfWeek: "Monday, Wednesday,friday"}

	assert.True(t, a.ActiveOn(time.Monday))
	assert.True(t, a.ActiveOn(time.Wednesday))
	assert.True(t, a.ActiveOn(time.Friday), "matching is case-insensitive")
	assert.False(t, a.ActiveOn(time.Tuesday))
	assert.False(t, a.ActiveOn(time.Sunday))
}

func TestSpecialtyAssignmentEmptyDaysMeansEveryDay(t *testing.T) {
	a := SpecialtyAssignment{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, a.ActiveOn(d))
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 0, PriorityRank(PriorityUrgent))
	assert.Equal(t, 1, PriorityRank(PriorityExpedited))
	assert.Equal(t, 2, PriorityRank(PriorityRoutine))
	assert.Equal(t, 3, PriorityRank(PriorityPlanned))
	assert.Equal(t, 4, PriorityRank("Unknown"))
}
