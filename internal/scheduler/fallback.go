package scheduler

import (
	"strings"

	"theatre-scheduling-backend/internal/models"
)

type fallbackProcedure struct {
	Name string
	Code string
}

type fallbackGroup struct {
	keyword string
	procs   []fallbackProcedure
}

// fallbackCatalog is the static per-specialty procedure list used when the
// waiting list for a resolved specialty is empty, so a theatre day can still
// produce a provisional session. Entries carry no waiting-list identity and
// are never marked scheduled. Ordered: the first keyword match wins.
var fallbackCatalog = []fallbackGroup{
	{"cardiac", []fallbackProcedure{
		{"Coronary artery bypass graft", "K40.1"},
		{"Aortic valve replacement", "K26.1"},
	}},
	{"neuro", []fallbackProcedure{
		{"Lumbar laminectomy", "V25.4"},
		{"Craniotomy and excision of lesion", "A02.1"},
	}},
	{"vascular", []fallbackProcedure{
		{"Varicose vein ligation", "L85.1"},
		{"Carotid endarterectomy", "L29.1"},
	}},
	{"orthopaedic", orthopaedicFallback},
	{"orthopedic", orthopaedicFallback},
	{"urology", []fallbackProcedure{
		{"Transurethral resection of prostate", "M65.1"},
		{"Flexible cystoscopy", "M45.1"},
		{"Circumcision", "N30.3"},
	}},
	{"ent", []fallbackProcedure{
		{"Tonsillectomy", "F34.1"},
		{"Septoplasty", "E03.6"},
		{"Grommet insertion", "D15.1"},
	}},
	{"gynaecology", []fallbackProcedure{
		{"Diagnostic hysteroscopy", "Q18.1"},
		{"Laparoscopic salpingectomy", "Q35.1"},
		{"Total abdominal hysterectomy", "Q07.4"},
	}},
	{"ophthalm", []fallbackProcedure{
		{"Phacoemulsification of cataract", "C71.2"},
		{"Trabeculectomy", "C60.1"},
	}},
	{"plastic", []fallbackProcedure{
		{"Excision of skin lesion with flap repair", "S25.1"},
		{"Breast reconstruction", "B30.1"},
	}},
	{"general", []fallbackProcedure{
		{"Laparoscopic cholecystectomy", "J18.3"},
		{"Inguinal hernia repair", "T20.1"},
		{"Excision of skin lesion", "S06.2"},
		{"Haemorrhoidectomy", "H51.1"},
	}},
}

var orthopaedicFallback = []fallbackProcedure{
	{"Total hip replacement", "W37.1"},
	{"Total knee replacement", "W40.1"},
	{"Knee arthroscopy", "W85.1"},
	{"Carpal tunnel release", "A65.1"},
}

// FallbackEntries returns surrogate waiting-list entries for a specialty, or
// nil when the catalog has nothing for it. Matching is case-insensitive by
// substring so "Trauma & Orthopaedics" finds the orthopaedic list.
func FallbackEntries(hospitalID uint, specialty string) []models.WaitingListEntry {
	lower := strings.ToLower(specialty)
	for _, group := range fallbackCatalog {
		if !strings.Contains(lower, group.keyword) {
			continue
		}
		entries := make([]models.WaitingListEntry, 0, len(group.procs))
		for _, p := range group.procs {
			entries = append(entries, models.WaitingListEntry{
				HospitalID:    hospitalID,
				PatientName:   "To be confirmed",
				ProcedureName: p.Name,
				ProcedureCode: p.Code,
				PriorityTier:  models.PriorityRoutine,
				SpecialtyName: specialty,
			})
		}
		return entries
	}
	return nil
}
