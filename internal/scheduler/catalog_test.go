package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCatalogEscalationChain(t *testing.T) {
	catalog := NewSessionCatalog()

	half, ok := catalog.Get(SessionHalfDay)
	require.True(t, ok)
	assert.Equal(t, 240, half.DurationMinutes)

	standard, ok := catalog.Next(half)
	require.True(t, ok)
	assert.Equal(t, SessionStandard, standard.Code)
	assert.Equal(t, 600, standard.DurationMinutes)

	extended, ok := catalog.Next(standard)
	require.True(t, ok)
	assert.Equal(t, SessionExtended, extended.Code)
	assert.Equal(t, 720, extended.DurationMinutes)

	_, ok = catalog.Next(extended)
	assert.False(t, ok, "extended day is the top of the chain")
}

func TestSessionCatalogNightStandsAlone(t *testing.T) {
	catalog := NewSessionCatalog()

	night, ok := catalog.Get(SessionNight)
	require.True(t, ok)
	assert.Equal(t, 720, night.DurationMinutes)

	_, ok = catalog.Next(night)
	assert.False(t, ok)
}

func TestSessionCatalogStandardDefault(t *testing.T) {
	catalog := NewSessionCatalog()
	assert.Equal(t, SessionStandard, catalog.Standard().Code)

	_, ok := catalog.Get("weekend_special")
	assert.False(t, ok)
}
