package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCaseCostPiecewiseTiers(t *testing.T) {
	assert.Equal(t, 1040, EstimateCaseCost(3, "General Surgery"))
	assert.Equal(t, 2666, EstimateCaseCost(6, "General Surgery"))
	assert.Equal(t, 6500, EstimateCaseCost(10, "General Surgery"))
	assert.Equal(t, 11250, EstimateCaseCost(13, "General Surgery"))
}

func TestEstimateCaseCostScalesWithComplexityAndSpecialty(t *testing.T) {
	assert.Less(t,
		EstimateCaseCost(6, "General Surgery"),
		EstimateCaseCost(10, "General Surgery"))

	assert.Greater(t,
		EstimateCaseCost(6, "Cardiac Surgery"),
		EstimateCaseCost(6, "General Surgery"))
}

func TestSpecialtyTariff(t *testing.T) {
	assert.Equal(t, 2.5, SpecialtyTariff("Cardiac Surgery"))
	assert.Equal(t, 2.5, SpecialtyTariff("Cardiothoracic Surgery"))
	assert.Equal(t, 2.2, SpecialtyTariff("Neurosurgery"))
	assert.Equal(t, 1.8, SpecialtyTariff("VASCULAR SURGERY"))
	assert.Equal(t, 1.6, SpecialtyTariff("Trauma & Orthopaedics"))
	assert.Equal(t, 1.0, SpecialtyTariff("General Surgery"))
	assert.Equal(t, 1.0, SpecialtyTariff(""))
}

func TestFinancials(t *testing.T) {
	f := Financials(1000, 300, 600)
	assert.Equal(t, 1000, f.TotalRevenue)
	assert.Equal(t, 50, f.UtilizationPercentage)
	assert.Equal(t, 1000, f.PotentialRevenueLost)
}

func TestFinancialsEmptySession(t *testing.T) {
	f := Financials(0, 0, 600)
	assert.Equal(t, 0, f.TotalRevenue)
	assert.Equal(t, 0, f.UtilizationPercentage)
	assert.Equal(t, 0, f.PotentialRevenueLost)
}

func TestFinancialsZeroDuration(t *testing.T) {
	f := Financials(500, 100, 0)
	assert.Equal(t, 500, f.TotalRevenue)
	assert.Equal(t, 0, f.UtilizationPercentage)
	assert.Equal(t, 0, f.PotentialRevenueLost)
}
