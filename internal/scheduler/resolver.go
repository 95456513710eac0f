package scheduler

import (
	"time"

	"theatre-scheduling-backend/internal/models"
)

// ResolveAssignment picks the specialty entitled to run a theatre on the
// given date: the eligible assignment with the numerically lowest priority
// (1 is highest). Ties keep the first assignment in input order. Returns
// false when no assignment's weekday set covers the date, which is a normal
// skip condition, not an error.
func ResolveAssignment(cfg models.TheatreConfiguration, date time.Time) (models.SpecialtyAssignment, bool) {
	var best models.SpecialtyAssignment
	found := false
	weekday := date.Weekday()

	for _, a := range cfg.Assignments {
		if !a.ActiveOn(weekday) {
			continue
		}
		if !found || a.Priority < best.Priority {
			best = a
			found = true
		}
	}
	return best, found
}
