package scoring

import "strings"

// ProcedureScore holds the multi-factor complexity assessment for a procedure.
// AverageScore is the Procedure Complexity Score (PCS): the mean of the four
// sub-scores, used both as a packing budget and a cost driver.
type ProcedureScore struct {
	ComplexityScore   float64 `json:"complexity_score"`
	DurationScore     float64 `json:"duration_score"`
	VariabilityScore  float64 `json:"variability_score"`
	SurgeonLevelScore float64 `json:"surgeon_level_score"`
	AverageScore      float64 `json:"average_score"`
	ComplexityLabel   string  `json:"complexity_label"`
	Confidence        string  `json:"confidence"`
}

// Complexity labels
const (
	LabelMinor        = "Minor"
	LabelIntermediate = "Intermediate"
	LabelMajor        = "Major"
	LabelComplex      = "Complex"
)

// Scorer is the procedure complexity scorer contract. Implementations must be
// pure and deterministic: the same procedure identity always yields the same
// score.
type Scorer interface {
	Score(name string, codes []string, specialty, subspecialty string) (ProcedureScore, error)
}

// specialtyBaseline maps a specialty (matched case-insensitively by
// substring) to its baseline complexity score.
var specialtyBaseline = []struct {
	keyword string
	score   float64
}{
	{"cardiac", 8.5},
	{"cardiothoracic", 8.5},
	{"neuro", 8.0},
	{"vascular", 7.0},
	{"hepatobiliary", 7.5},
	{"colorectal", 6.0},
	{"orthopaedic", 5.5},
	{"orthopedic", 5.5},
	{"urology", 5.0},
	{"gynaecology", 5.0},
	{"general", 4.5},
	{"ent", 4.0},
	{"plastic", 4.0},
	{"breast", 4.0},
	{"ophthalm", 3.0},
	{"day surgery", 2.5},
}

// keyword adjustments applied on top of the specialty baseline; first column
// raises complexity, second lowers it
var majorKeywords = []string{
	"radical", "total", "resection", "bypass", "transplant", "replacement",
	"reconstruction", "craniotomy", "aneurysm", "revision", "fusion",
	"oesophagectomy", "whipple", "laminectomy",
}

var minorKeywords = []string{
	"biopsy", "endoscopy", "colonoscopy", "gastroscopy", "cystoscopy",
	"excision of skin lesion", "removal of", "injection", "aspiration",
	"drainage", "diagnostic", "change of",
}

// KeywordScorer is the built-in deterministic scorer. It derives all four
// sub-scores from the specialty baseline and keyword matches on the procedure
// name, so the engine can run when the external scorer is not wired in.
type KeywordScorer struct{}

// NewKeywordScorer returns the default deterministic scorer.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{}
}

// Score implements the Scorer interface.
func (s *KeywordScorer) Score(name string, codes []string, specialty, subspecialty string) (ProcedureScore, error) {
	lowerName := strings.ToLower(name)
	lowerSpecialty := strings.ToLower(specialty)

	complexity := 4.5 // default when no specialty keyword matches
	confidence := "low"
	for _, b := range specialtyBaseline {
		if strings.Contains(lowerSpecialty, b.keyword) {
			complexity = b.score
			confidence = "medium"
			break
		}
	}

	for _, kw := range majorKeywords {
		if strings.Contains(lowerName, kw) {
			complexity += 1.5
			confidence = "high"
			break
		}
	}
	for _, kw := range minorKeywords {
		if strings.Contains(lowerName, kw) {
			complexity -= 2.0
			confidence = "high"
			break
		}
	}
	complexity = clampScore(complexity)

	// Duration tracks complexity but bilateral/staged work runs longer
	duration := complexity
	if strings.Contains(lowerName, "bilateral") || strings.Contains(lowerName, "staged") {
		duration += 1.0
	}
	duration = clampScore(duration)

	// Variability: revisions and emergencies are the least predictable
	variability := complexity * 0.6
	if strings.Contains(lowerName, "revision") || strings.Contains(lowerName, "emergency") {
		variability = complexity * 0.9
	}
	variability = clampScore(variability)

	// Seniority requirement follows complexity
	surgeonLevel := clampScore(complexity*0.8 + 1.0)

	average := (complexity + duration + variability + surgeonLevel) / 4.0

	return ProcedureScore{
		ComplexityScore:   round1(complexity),
		DurationScore:     round1(duration),
		VariabilityScore:  round1(variability),
		SurgeonLevelScore: round1(surgeonLevel),
		AverageScore:      round1(average),
		ComplexityLabel:   LabelForScore(average),
		Confidence:        confidence,
	}, nil
}

// LabelForScore maps a PCS value to its qualitative complexity label.
func LabelForScore(score float64) string {
	switch {
	case score <= 3.0:
		return LabelMinor
	case score <= 6.0:
		return LabelIntermediate
	case score <= 8.0:
		return LabelMajor
	default:
		return LabelComplex
	}
}

func clampScore(v float64) float64 {
	if v < 1.0 {
		return 1.0
	}
	if v > 10.0 {
		return 10.0
	}
	return v
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
