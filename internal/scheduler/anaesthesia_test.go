package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAnaesthetic(t *testing.T) {
	tests := []struct {
		name       string
		procedure  string
		specialty  string
		complexity float64
		want       string
	}{
		{"local keyword wins", "Carpal tunnel release", "Orthopaedic Surgery", 3.0, AnaestheticLocal},
		{"scope procedure is sedation", "Colonoscopy", "General Surgery", 2.0, AnaestheticSedation},
		{"ortho lower limb is spinal", "Total knee replacement", "Orthopaedic Surgery", 6.5, AnaestheticSpinal},
		{"upper limb is regional", "Shoulder arthroscopy", "Orthopaedic Surgery", 5.0, AnaestheticRegional},
		{"very complex high-risk is combined", "Craniotomy and excision of lesion", "Neurosurgery", 9.7, AnaestheticCombined},
		{"high-risk below threshold is ga", "Coronary artery bypass graft", "Cardiac Surgery", 8.7, AnaestheticGA},
		{"default is ga", "Inguinal hernia repair", "General Surgery", 4.5, AnaestheticGA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAnaesthetic(tt.procedure, tt.specialty, tt.complexity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnaestheticMinutes(t *testing.T) {
	assert.Equal(t, 10, AnaestheticMinutes(AnaestheticLocal))
	assert.Equal(t, 15, AnaestheticMinutes(AnaestheticSedation))
	assert.Equal(t, 20, AnaestheticMinutes(AnaestheticRegional))
	assert.Equal(t, 25, AnaestheticMinutes(AnaestheticSpinal))
	assert.Equal(t, 40, AnaestheticMinutes(AnaestheticCombined))
	assert.Equal(t, 30, AnaestheticMinutes(AnaestheticGA))
	assert.Equal(t, 30, AnaestheticMinutes("unknown"))
}

func TestTurnoverMinutes(t *testing.T) {
	assert.Equal(t, 15, TurnoverMinutes(2.0))
	assert.Equal(t, 15, TurnoverMinutes(3.0))
	assert.Equal(t, 20, TurnoverMinutes(5.0))
	assert.Equal(t, 25, TurnoverMinutes(8.0))
	assert.Equal(t, 30, TurnoverMinutes(9.5))
}
