package scheduler

import (
	"strings"

	"theatre-scheduling-backend/internal/models"
)

// PackResult carries the packed cases and the running totals the budgets were
// enforced against.
type PackResult struct {
	Cases    []models.SurgicalCase
	TimeUsed int
	PCSUsed  float64
	Rejected int
}

// PackCases converts the selected procedures into fully costed, timed cases
// and accumulates them into the session. A case is admitted only while both
// the time budget (TimeBudgetRatio x session duration) and the complexity
// budget (MaxPCS) hold; a rejected case is skipped, not aborted on, so a
// smaller case later in the queue can still be packed. The case count is
// capped at MaxCasesPerSession regardless of budgets.
func PackCases(cfg Config, session SessionType, procs []ScoredProcedure, primary models.Surgeon, anaesthetist models.Anaesthetist) PackResult {
	var res PackResult
	timeBudget := cfg.TimeBudgetRatio * float64(session.DurationMinutes)

	for _, p := range procs {
		if len(res.Cases) >= cfg.MaxCasesPerSession {
			break
		}

		anaType := ClassifyAnaesthetic(p.Entry.ProcedureName, p.Entry.SpecialtyName, p.Score.ComplexityScore)
		anaMinutes := AnaestheticMinutes(anaType)
		turnover := TurnoverMinutes(p.Score.ComplexityScore)
		caseMinutes := p.EstimatedMinutes + anaMinutes + turnover
		pcs := p.Score.AverageScore

		if float64(res.TimeUsed+caseMinutes) > timeBudget || res.PCSUsed+pcs > cfg.MaxPCS {
			res.Rejected++
			continue
		}

		surgeonName := p.Entry.SurgeonName
		if surgeonName == "" {
			surgeonName = primary.FullName
		}

		res.Cases = append(res.Cases, models.SurgicalCase{
			Ordinal:                  len(res.Cases) + 1,
			WaitingListEntryID:       p.Entry.ID,
			PatientName:              p.Entry.PatientName,
			ProcedureName:            p.Entry.ProcedureName,
			ProcedureCode:            p.Entry.ProcedureCode,
			PriorityTier:             p.Entry.PriorityTier,
			SpecialtyName:            p.Entry.SpecialtyName,
			SubspecialtyName:         p.Entry.SubspecialtyName,
			ComplexityScore:          p.Score.ComplexityScore,
			DurationScore:            p.Score.DurationScore,
			VariabilityScore:         p.Score.VariabilityScore,
			SurgeonLevelScore:        p.Score.SurgeonLevelScore,
			PCSScore:                 pcs,
			ComplexityLabel:          p.Score.ComplexityLabel,
			EstimatedSurgicalMinutes: p.EstimatedMinutes,
			AnaestheticType:          anaType,
			AnaestheticMinutes:       anaMinutes,
			TurnoverMinutes:          turnover,
			TotalCaseMinutes:         caseMinutes,
			EstimatedCost:            EstimateCaseCost(pcs, p.Entry.SpecialtyName),
			SurgeonName:              surgeonName,
			SurgeonInitials:          initialsOf(surgeonName),
			AnaesthetistName:         anaesthetist.FullName,
			AnaesthetistInitials:     anaesthetist.Initials,
		})
		res.TimeUsed += caseMinutes
		res.PCSUsed += pcs
	}

	return res
}

// initialsOf derives initials from a full name, e.g. "Jane A Smith" -> "JAS".
func initialsOf(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return strings.ToUpper(b.String())
}
