package scheduler

import (
	"sync"
	"time"
)

// Booking is one surgeon commitment recorded for the lifetime of a
// generation run.
type Booking struct {
	SurgeonID   uint   `json:"surgeon_id"`
	SurgeonName string `json:"surgeon_name"`
	Date        string `json:"date"` // YYYY-MM-DD
	SessionType string `json:"session_type"`
	TheatreID   uint   `json:"theatre_id"`
}

type bookingKey struct {
	surgeonID   uint
	date        string
	sessionType string
}

// SurgeonLedger tracks which surgeon is committed to which theatre, date and
// session type within one generation run. It is created per run and injected
// into the engine; the mutex makes the check-and-book step atomic so theatres
// of the same date may be processed concurrently.
type SurgeonLedger struct {
	mu       sync.Mutex
	bookings map[bookingKey]Booking
}

// NewSurgeonLedger creates an empty ledger.
func NewSurgeonLedger() *SurgeonLedger {
	return &SurgeonLedger{bookings: make(map[bookingKey]Booking)}
}

// IsAvailable reports whether no booking matches (surgeon, date, session
// type) exactly.
func (l *SurgeonLedger) IsAvailable(surgeonID uint, date time.Time, sessionType string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, booked := l.bookings[bookingKey{surgeonID, dateKey(date), sessionType}]
	return !booked
}

// Book appends a booking unconditionally. Callers that need the
// no-double-booking guarantee should use TryBook instead.
func (l *SurgeonLedger) Book(surgeonID uint, surgeonName string, date time.Time, sessionType string, theatreID uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record(surgeonID, surgeonName, date, sessionType, theatreID)
}

// TryBook books the surgeon only if they are still free for the date and
// session type, as one atomic step. Returns false when already booked.
func (l *SurgeonLedger) TryBook(surgeonID uint, surgeonName string, date time.Time, sessionType string, theatreID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, booked := l.bookings[bookingKey{surgeonID, dateKey(date), sessionType}]; booked {
		return false
	}
	l.record(surgeonID, surgeonName, date, sessionType, theatreID)
	return true
}

// Bookings returns a snapshot of all bookings in the run.
func (l *SurgeonLedger) Bookings() []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, b)
	}
	return out
}

func (l *SurgeonLedger) record(surgeonID uint, surgeonName string, date time.Time, sessionType string, theatreID uint) {
	key := bookingKey{surgeonID, dateKey(date), sessionType}
	l.bookings[key] = Booking{
		SurgeonID:   surgeonID,
		SurgeonName: surgeonName,
		Date:        key.date,
		SessionType: sessionType,
		TheatreID:   theatreID,
	}
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
