package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTryBookIsExclusive(t *testing.T) {
	ledger := NewSurgeonLedger()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, ledger.IsAvailable(1, date, SessionStandard))
	require.True(t, ledger.TryBook(1, "Alice Morgan", date, SessionStandard, 1))

	// Same surgeon, date and session type in another theatre must fail.
	assert.False(t, ledger.TryBook(1, "Alice Morgan", date, SessionStandard, 2))
	assert.False(t, ledger.IsAvailable(1, date, SessionStandard))
}

func TestLedgerScopesBookingsByDateAndSession(t *testing.T) {
	ledger := NewSurgeonLedger()
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	require.True(t, ledger.TryBook(1, "Alice Morgan", monday, SessionStandard, 1))

	// A different session type on the same day and the same session type
	// on the next day are both independent bookings.
	assert.True(t, ledger.TryBook(1, "Alice Morgan", monday, SessionNight, 1))
	assert.True(t, ledger.TryBook(1, "Alice Morgan", tuesday, SessionStandard, 1))

	// Another surgeon is unaffected.
	assert.True(t, ledger.TryBook(2, "Raj Patel", monday, SessionStandard, 2))

	assert.Len(t, ledger.Bookings(), 4)
}

func TestLedgerIgnoresTimeOfDay(t *testing.T) {
	ledger := NewSurgeonLedger()
	morning := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 2, 19, 30, 0, 0, time.UTC)

	require.True(t, ledger.TryBook(1, "Alice Morgan", morning, SessionStandard, 1))
	assert.False(t, ledger.TryBook(1, "Alice Morgan", evening, SessionStandard, 2))
}

func TestLedgerConcurrentTryBook(t *testing.T) {
	ledger := NewSurgeonLedger()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	const attempts = 32
	results := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(theatreID uint) {
			defer wg.Done()
			results <- ledger.TryBook(1, "Alice Morgan", date, SessionStandard, theatreID)
		}(uint(i + 1))
	}
	wg.Wait()
	close(results)

	booked := 0
	for ok := range results {
		if ok {
			booked++
		}
	}
	assert.Equal(t, 1, booked, "exactly one concurrent booking may win")
	assert.Len(t, ledger.Bookings(), 1)
}
