package scheduler

import (
	"cmp"
	"slices"

	"theatre-scheduling-backend/internal/models"
)

// Selection is the outcome of the capacity-aware session-type choice: the
// tier the day will run at, the procedures chosen to fill it, and
// remaining-time telemetry. Recommendations are unselected procedures that
// would individually still fit; they are surfaced only, never added.
type Selection struct {
	SessionType        SessionType
	Selected           []ScoredProcedure
	TotalMinutesNeeded int
	RemainingMinutes   int
	CanFitMore         bool
	Recommendations    []ScoredProcedure
	Escalated          bool
}

// SortQueue orders procedures by priority tier ascending (Urgent first) then
// by waiting days descending, in place. The sort is stable so equal entries
// keep their input order.
func SortQueue(queue []ScoredProcedure) {
	slices.SortStableFunc(queue, func(a, b ScoredProcedure) int {
		if c := cmp.Compare(models.PriorityRank(a.Entry.PriorityTier), models.PriorityRank(b.Entry.PriorityTier)); c != 0 {
			return c
		}
		return cmp.Compare(b.Entry.WaitingDays, a.Entry.WaitingDays)
	})
}

// SelectSession walks the priority-sorted queue greedily, accumulating total
// time from the setup constant. When a procedure would overflow the current
// tier but fits the next one up, the session is permanently upgraded and the
// walk continues against the larger duration. The walk stops at the first
// procedure that overflows the (possibly upgraded) tier; procedures are never
// partially included.
func SelectSession(catalog *SessionCatalog, cfg Config, start SessionType, queue []ScoredProcedure) Selection {
	if len(queue) == 0 {
		// Nothing pending: default to the starting tier with full remaining time.
		return Selection{
			SessionType:      start,
			RemainingMinutes: start.DurationMinutes,
			CanFitMore:       start.DurationMinutes > cfg.MinRemainingMinutes,
		}
	}

	sorted := make([]ScoredProcedure, len(queue))
	copy(sorted, queue)
	SortQueue(sorted)

	tier := start
	total := cfg.SetupMinutes
	escalated := false
	var selected []ScoredProcedure

	for _, p := range sorted {
		if total+p.TotalMinutes <= tier.DurationMinutes {
			selected = append(selected, p)
			total += p.TotalMinutes
			continue
		}
		next, ok := catalog.Next(tier)
		if ok && total+p.TotalMinutes <= next.DurationMinutes {
			tier = next
			escalated = true
			selected = append(selected, p)
			total += p.TotalMinutes
			continue
		}
		break
	}

	// A queue where even the first procedure overflows the starting tier
	// still gets a session: force-include it at whichever tier holds it,
	// or the largest tier when none does.
	if len(selected) == 0 {
		first := sorted[0]
		tier = start
		for cfg.SetupMinutes+first.TotalMinutes > tier.DurationMinutes {
			next, ok := catalog.Next(tier)
			if !ok {
				break
			}
			tier = next
			escalated = true
		}
		selected = append(selected, first)
		total = cfg.SetupMinutes + first.TotalMinutes
	}

	remaining := tier.DurationMinutes - total
	// A remainder exactly at the threshold counts as full.
	canFitMore := remaining > cfg.MinRemainingMinutes

	sel := Selection{
		SessionType:        tier,
		Selected:           selected,
		TotalMinutesNeeded: total,
		RemainingMinutes:   remaining,
		CanFitMore:         canFitMore,
		Escalated:          escalated,
	}

	if canFitMore {
		for _, p := range sorted[len(selected):] {
			if len(sel.Recommendations) >= cfg.MaxRecommendations {
				break
			}
			if p.TotalMinutes <= remaining {
				sel.Recommendations = append(sel.Recommendations, p)
			}
		}
	}

	return sel
}
