package scheduler

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/scoring"
)

// Engine generates day-by-day, theatre-by-theatre operating schedules. It
// performs no I/O of its own: configuration, staff and waiting-list data come
// in through the injected sources, and the produced session lists are handed
// back to the caller for persistence.
type Engine struct {
	cfg     Config
	catalog *SessionCatalog
	scorer  scoring.Scorer
	configs ConfigSource
	staff   StaffSource
	waiting WaitingListSource
	policy  SelectionPolicy
}

// NewEngine wires an engine from its collaborators. A nil policy falls back
// to the affinity policy.
func NewEngine(cfg Config, catalog *SessionCatalog, scorer scoring.Scorer, configs ConfigSource, staff StaffSource, waiting WaitingListSource, policy SelectionPolicy) *Engine {
	if policy == nil {
		policy = AffinityPolicy{}
	}
	return &Engine{
		cfg:     cfg,
		catalog: catalog,
		scorer:  scorer,
		configs: configs,
		staff:   staff,
		waiting: waiting,
		policy:  policy,
	}
}

// GenerateForDate produces the schedule for a single day.
func (e *Engine) GenerateForDate(ctx context.Context, ledger *SurgeonLedger, hospitalID uint, date time.Time) ([]models.SessionList, error) {
	return e.Generate(ctx, ledger, hospitalID, date, date)
}

// Generate produces session lists for every theatre and date in the range.
// The ledger is run-scoped shared state: a fresh ledger per run keeps surgeon
// bookings isolated between runs. Skip conditions (no eligible specialty, no
// free surgeon, theatre under maintenance) drop that theatre/day and carry
// on; only a malformed date range is an error.
func (e *Engine) Generate(ctx context.Context, ledger *SurgeonLedger, hospitalID uint, startDate, endDate time.Time) ([]models.SessionList, error) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	if end.Before(start) {
		return nil, fmt.Errorf("invalid date range: end date %s before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if ledger == nil {
		ledger = NewSurgeonLedger()
	}

	units, err := e.configs.TheatreUnits(hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load theatre units: %w", err)
	}
	if len(units) == 0 {
		log.Printf("Warning: no theatre units for hospital %d, nothing to schedule", hospitalID)
		return []models.SessionList{}, nil
	}

	configs, err := e.configs.TheatreConfigurations(hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load theatre configurations: %w", err)
	}
	if len(configs) == 0 {
		log.Printf("Warning: no theatre configurations for hospital %d, nothing to schedule", hospitalID)
		return []models.SessionList{}, nil
	}

	theatres, err := e.configs.Theatres(hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load theatres: %w", err)
	}
	theatreByID := make(map[uint]models.Theatre, len(theatres))
	for _, t := range theatres {
		theatreByID[t.ID] = t
	}

	anaesthetists, err := e.staff.Anaesthetists(hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load anaesthetists: %w", err)
	}

	run := &runState{
		ledger:        ledger,
		anaesthetists: anaesthetists,
		usedEntries:   make(map[uint]bool),
	}

	var lists []models.SessionList
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		// Cancellation is checked between date iterations, the natural
		// coarse-grained checkpoint of the batch.
		if err := ctx.Err(); err != nil {
			return lists, err
		}
		for _, cfg := range configs {
			list, ok := e.buildTheatreDay(hospitalID, cfg, theatreByID, date, run)
			if ok {
				lists = append(lists, list)
			}
		}
	}
	return lists, nil
}

// runState is the mutable state shared across one generation run.
type runState struct {
	ledger           *SurgeonLedger
	anaesthetists    []models.Anaesthetist
	anaesthetistNext int
	usedEntries      map[uint]bool
}

// buildTheatreDay runs the full pipeline for one (date, theatre) pair:
// resolve specialty, select session type and procedures, book a surgeon,
// pack cases and assemble the list. A false return means the theatre/day is
// skipped, which is a normal outcome.
func (e *Engine) buildTheatreDay(hospitalID uint, cfg models.TheatreConfiguration, theatreByID map[uint]models.Theatre, date time.Time, run *runState) (models.SessionList, bool) {
	day := date.Format("2006-01-02")

	if theatre, ok := theatreByID[cfg.TheatreID]; ok && theatre.Status != models.TheatreAvailable {
		log.Printf("Skipping theatre %s on %s: status %s", cfg.TheatreName, day, theatre.Status)
		return models.SessionList{}, false
	}

	assignment, ok := ResolveAssignment(cfg, date)
	if !ok {
		log.Printf("Skipping theatre %s on %s: no specialty assigned for %s", cfg.TheatreName, day, date.Weekday())
		return models.SessionList{}, false
	}

	consultants, err := e.staff.Consultants(hospitalID, assignment.SpecialtyName)
	if err != nil || len(consultants) == 0 {
		log.Printf("Skipping theatre %s on %s: no consultants for %s", cfg.TheatreName, day, assignment.SpecialtyName)
		return models.SessionList{}, false
	}
	if len(run.anaesthetists) == 0 {
		log.Printf("Skipping theatre %s on %s: no anaesthetists available", cfg.TheatreName, day)
		return models.SessionList{}, false
	}

	queue, fallbackMode := e.loadQueue(hospitalID, assignment.SpecialtyName, run)
	if len(queue) == 0 {
		log.Printf("Skipping theatre %s on %s: no pending procedures for %s", cfg.TheatreName, day, assignment.SpecialtyName)
		return models.SessionList{}, false
	}

	scored := e.scoreQueue(queue)
	if len(scored) == 0 {
		log.Printf("Skipping theatre %s on %s: no scoreable procedures for %s", cfg.TheatreName, day, assignment.SpecialtyName)
		return models.SessionList{}, false
	}

	selection := SelectSession(e.catalog, e.cfg, e.startingTier(assignment), scored)
	if len(selection.Selected) == 0 {
		log.Printf("Skipping theatre %s on %s: nothing selected for %s", cfg.TheatreName, day, assignment.SpecialtyName)
		return models.SessionList{}, false
	}

	surgeon, ok := e.bookSurgeon(consultants, selection, date, cfg.TheatreID, run.ledger)
	if !ok {
		log.Printf("Skipping theatre %s on %s: no available surgeon for %s (%d candidates all booked)",
			cfg.TheatreName, day, assignment.SpecialtyName, len(consultants))
		return models.SessionList{}, false
	}

	anaesthetist := run.anaesthetists[run.anaesthetistNext%len(run.anaesthetists)]
	run.anaesthetistNext++

	packed := PackCases(e.cfg, selection.SessionType, selection.Selected, surgeon, anaesthetist)

	totalCost := 0
	totalPCS := 0.0
	for _, c := range packed.Cases {
		totalCost += c.EstimatedCost
		totalPCS += c.PCSScore
	}
	fin := Financials(totalCost, packed.TimeUsed, selection.SessionType.DurationMinutes)

	for i := range packed.Cases {
		if id := packed.Cases[i].WaitingListEntryID; id != 0 {
			run.usedEntries[id] = true
		}
	}

	list := models.SessionList{
		Date:                  date,
		TheatreID:             cfg.TheatreID,
		TheatreName:           cfg.TheatreName,
		HospitalID:            hospitalID,
		SpecialtyName:         assignment.SpecialtyName,
		SubspecialtyName:      assignment.SubspecialtyName,
		SessionType:           selection.SessionType.Code,
		SessionStart:          selection.SessionType.StartTime,
		SessionEnd:            selection.SessionType.EndTime,
		DurationMinutes:       selection.SessionType.DurationMinutes,
		SurgeonID:             surgeon.ID,
		SurgeonName:           surgeon.FullName,
		SurgeonInitials:       surgeonInitials(surgeon),
		AnaesthetistID:        anaesthetist.ID,
		AnaesthetistName:      anaesthetist.FullName,
		AnaesthetistInitials:  anaesthetist.Initials,
		TotalCases:            len(packed.Cases),
		TotalEstimatedMinutes: packed.TimeUsed,
		TotalPCS:              roundPCS(packed.PCSUsed),
		UtilizationPercentage: fin.UtilizationPercentage,
		TotalEstimatedCost:    fin.TotalRevenue,
		PotentialRevenueLost:  fin.PotentialRevenueLost,
		TimeRemainingMinutes:  selection.RemainingMinutes,
		CanFitMore:            selection.CanFitMore,
		Notes:                 buildNotes(fallbackMode, selection),
		Cases:                 packed.Cases,
	}
	return list, true
}

// loadQueue pulls the pending procedures for a specialty, filtering out
// entries already consumed earlier in this run. An empty waiting list falls
// back to the static procedure catalog.
func (e *Engine) loadQueue(hospitalID uint, specialty string, run *runState) ([]models.WaitingListEntry, bool) {
	entries, err := e.waiting.PendingProcedures(hospitalID, specialty)
	if err != nil {
		log.Printf("Error loading waiting list for %s: %v", specialty, err)
		entries = nil
	}

	pending := make([]models.WaitingListEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsScheduled || run.usedEntries[entry.ID] {
			continue
		}
		pending = append(pending, entry)
	}
	if len(pending) > 0 {
		return pending, false
	}
	return FallbackEntries(hospitalID, specialty), true
}

// scoreQueue scores every entry; an unscoreable procedure is excluded rather
// than aborting the session.
func (e *Engine) scoreQueue(entries []models.WaitingListEntry) []ScoredProcedure {
	scored := make([]ScoredProcedure, 0, len(entries))
	for _, entry := range entries {
		var codes []string
		if entry.ProcedureCode != "" {
			codes = []string{entry.ProcedureCode}
		}
		score, err := e.scorer.Score(entry.ProcedureName, codes, entry.SpecialtyName, entry.SubspecialtyName)
		if err != nil {
			log.Printf("Excluding unscoreable procedure %q: %v", entry.ProcedureName, err)
			continue
		}

		est := int(math.Round(score.DurationScore * float64(e.cfg.MinutesPerDurationPoint)))
		if est <= 0 {
			est = e.cfg.FallbackProcedureMinutes
		}
		turnover := TurnoverMinutes(score.ComplexityScore)

		scored = append(scored, ScoredProcedure{
			Entry:            entry,
			Score:            score,
			EstimatedMinutes: est,
			TurnoverMinutes:  turnover,
			TotalMinutes:     est + turnover,
		})
	}
	return scored
}

// startingTier honours the specialty's session-type preference when it names
// a catalog tier, defaulting to the standard day.
func (e *Engine) startingTier(assignment models.SpecialtyAssignment) SessionType {
	best := SessionType{}
	bestPriority := 0
	for _, pref := range assignment.SessionPreferences {
		t, ok := e.catalog.Get(pref.SessionType)
		if !ok {
			continue
		}
		if best.Code == "" || pref.Priority < bestPriority {
			best = t
			bestPriority = pref.Priority
		}
	}
	if best.Code == "" {
		return e.catalog.Standard()
	}
	return best
}

// bookSurgeon walks the policy-ranked candidates and books the first one the
// ledger accepts. Preference goes to the surgeon who owns the first selected
// procedure.
func (e *Engine) bookSurgeon(candidates []models.Surgeon, selection Selection, date time.Time, theatreID uint, ledger *SurgeonLedger) (models.Surgeon, bool) {
	var preferredID uint
	if len(selection.Selected) > 0 {
		preferredID = selection.Selected[0].Entry.SurgeonID
	}
	for _, s := range e.policy.Rank(candidates, preferredID) {
		if ledger.TryBook(s.ID, s.FullName, date, selection.SessionType.Code, theatreID) {
			return s, true
		}
	}
	return models.Surgeon{}, false
}

func buildNotes(fallbackMode bool, selection Selection) string {
	var notes []string
	if fallbackMode {
		notes = append(notes, "Provisional list from fallback procedure catalog; waiting list was empty.")
	}
	if len(selection.Recommendations) > 0 {
		names := make([]string, 0, len(selection.Recommendations))
		for _, r := range selection.Recommendations {
			names = append(names, r.Entry.ProcedureName)
		}
		notes = append(notes, "Could also fit: "+strings.Join(names, "; "))
	}
	return strings.Join(notes, " ")
}

func surgeonInitials(s models.Surgeon) string {
	if s.Initials != "" {
		return s.Initials
	}
	return initialsOf(s.FullName)
}

func roundPCS(v float64) float64 {
	return math.Round(v*10) / 10
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
