package scheduler

// Session type codes
const (
	SessionHalfDay  = "half_day"
	SessionStandard = "standard_day"
	SessionExtended = "extended_day"
	SessionNight    = "night"
)

// SessionType is one named theatre-time tier from the session catalog
type SessionType struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	NextTier        string `json:"next_tier,omitempty"` // empty when this is the largest tier
}

// SessionCatalog is the static table of session types. Tiers form an
// escalation chain half day -> standard day -> extended day; the night
// session stands alone.
type SessionCatalog struct {
	types map[string]SessionType
}

// NewSessionCatalog builds the fixed catalog.
func NewSessionCatalog() *SessionCatalog {
	c := &SessionCatalog{types: make(map[string]SessionType)}
	for _, t := range []SessionType{
		{Code: SessionHalfDay, Name: "Half Day", StartTime: "08:30", EndTime: "12:30", DurationMinutes: 240, NextTier: SessionStandard},
		{Code: SessionStandard, Name: "Standard Day", StartTime: "08:00", EndTime: "18:00", DurationMinutes: 600, NextTier: SessionExtended},
		{Code: SessionExtended, Name: "Extended Day", StartTime: "08:00", EndTime: "20:00", DurationMinutes: 720},
		{Code: SessionNight, Name: "Night", StartTime: "20:00", EndTime: "08:00", DurationMinutes: 720},
	} {
		c.types[t.Code] = t
	}
	return c
}

// Get returns the session type for a code.
func (c *SessionCatalog) Get(code string) (SessionType, bool) {
	t, ok := c.types[code]
	return t, ok
}

// Standard returns the default tier a session starts in.
func (c *SessionCatalog) Standard() SessionType {
	return c.types[SessionStandard]
}

// Next returns the next tier up from t, if one exists.
func (c *SessionCatalog) Next(t SessionType) (SessionType, bool) {
	if t.NextTier == "" {
		return SessionType{}, false
	}
	next, ok := c.types[t.NextTier]
	return next, ok
}
