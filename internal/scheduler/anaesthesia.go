package scheduler

import "strings"

// Anaesthetic types
const (
	AnaestheticLocal    = "Local"
	AnaestheticSedation = "Sedation"
	AnaestheticSpinal   = "Spinal"
	AnaestheticRegional = "Regional"
	AnaestheticGA       = "GA"
	AnaestheticCombined = "Combined"
)

var localKeywords = []string{
	"local anaesthetic", "under la", "skin lesion", "carpal tunnel",
	"nail", "cyst", "lipoma", "vasectomy",
}

var sedationKeywords = []string{
	"endoscopy", "colonoscopy", "gastroscopy", "bronchoscopy",
	"cystoscopy", "diagnostic",
}

var lowerLimbKeywords = []string{
	"hip", "knee", "ankle", "femur", "tibia", "foot", "lower limb",
}

var upperLimbKeywords = []string{
	"shoulder", "elbow", "wrist", "hand", "humerus", "upper limb",
}

// ClassifyAnaesthetic maps a procedure to an anaesthetic type using
// case-insensitive keyword precedence: local first, then sedation, then
// specialty and anatomy rules, then complexity, defaulting to a general
// anaesthetic. The classification is fully deterministic; where the original
// rules split probabilistically the majority class is used.
func ClassifyAnaesthetic(procedureName, specialty string, complexity float64) string {
	name := strings.ToLower(procedureName)
	spec := strings.ToLower(specialty)

	if containsAny(name, localKeywords) {
		return AnaestheticLocal
	}
	if containsAny(name, sedationKeywords) {
		return AnaestheticSedation
	}

	isOrtho := strings.Contains(spec, "orthopaedic") || strings.Contains(spec, "orthopedic")
	if isOrtho && containsAny(name, lowerLimbKeywords) {
		return AnaestheticSpinal
	}
	if containsAny(name, upperLimbKeywords) {
		return AnaestheticRegional
	}

	highRisk := strings.Contains(spec, "neuro") || strings.Contains(spec, "cardiac")
	if highRisk || complexity >= 8.0 {
		if complexity >= 9.5 && highRisk {
			return AnaestheticCombined
		}
		return AnaestheticGA
	}

	return AnaestheticGA
}

// AnaestheticMinutes returns the fixed per-case overhead for an anaesthetic
// type.
func AnaestheticMinutes(anaestheticType string) int {
	switch anaestheticType {
	case AnaestheticLocal:
		return 10
	case AnaestheticSedation:
		return 15
	case AnaestheticRegional:
		return 20
	case AnaestheticSpinal:
		return 25
	case AnaestheticCombined:
		return 40
	default: // GA and anything unrecognised
		return 30
	}
}

// TurnoverMinutes returns the cleaning/setup overhead between cases, keyed by
// the case's complexity tier.
func TurnoverMinutes(complexity float64) int {
	switch {
	case complexity <= 3.0:
		return 15
	case complexity <= 6.0:
		return 20
	case complexity <= 8.0:
		return 25
	default:
		return 30
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
