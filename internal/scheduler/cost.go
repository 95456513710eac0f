package scheduler

import (
	"math"
	"strings"
)

// specialtyTariffs maps a specialty (matched case-insensitively by substring)
// to its cost multiplier. Specialties not listed use 1.0.
var specialtyTariffs = []struct {
	keyword    string
	multiplier float64
}{
	{"cardiac", 2.5},
	{"cardiothoracic", 2.5},
	{"neuro", 2.2},
	{"vascular", 1.8},
	{"hepatobiliary", 1.7},
	{"orthopaedic", 1.6},
	{"orthopedic", 1.6},
	{"colorectal", 1.3},
	{"plastic", 1.2},
	{"urology", 1.1},
	{"gynaecology", 1.05},
	{"ent", 0.95},
	{"ophthalm", 0.9},
}

// SpecialtyTariff returns the cost multiplier for a specialty.
func SpecialtyTariff(specialty string) float64 {
	lower := strings.ToLower(specialty)
	for _, t := range specialtyTariffs {
		if strings.Contains(lower, t.keyword) {
			return t.multiplier
		}
	}
	return 1.0
}

// EstimateCaseCost maps a PCS value and specialty to an estimated monetary
// cost. The base cost is a four-tier piecewise-linear function of the score,
// multiplied by the specialty tariff.
func EstimateCaseCost(pcsScore float64, specialty string) int {
	var base float64
	switch {
	case pcsScore <= 5:
		base = 800 + 80*pcsScore
	case pcsScore <= 8:
		base = 2000 + 666*(pcsScore-5)
	case pcsScore <= 12:
		base = 5000 + 750*(pcsScore-8)
	default:
		base = 10000 + 1250*(pcsScore-12)
	}
	return int(math.Round(base * SpecialtyTariff(specialty)))
}

// SessionFinancials aggregates the cost metrics for one assembled session.
type SessionFinancials struct {
	TotalRevenue          int
	UtilizationPercentage int
	PotentialRevenueLost  int
}

// Financials computes session-level aggregates from the packed total cost,
// the minutes actually used and the session duration.
func Financials(totalCost, timeUsed, durationMinutes int) SessionFinancials {
	f := SessionFinancials{TotalRevenue: totalCost}
	if durationMinutes <= 0 {
		return f
	}
	f.UtilizationPercentage = int(math.Round(100 * float64(timeUsed) / float64(durationMinutes)))
	if timeUsed > 0 {
		revenuePerMinute := float64(totalCost) / float64(timeUsed)
		idle := durationMinutes - timeUsed
		if idle > 0 {
			f.PotentialRevenueLost = int(math.Round(revenuePerMinute * float64(idle)))
		}
	}
	return f
}
