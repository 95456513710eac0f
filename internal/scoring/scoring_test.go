package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreUsesSpecialtyBaseline(t *testing.T) {
	scorer := NewKeywordScorer()

	cardiac, err := scorer.Score("Valve repair", nil, "Cardiac Surgery", "")
	require.NoError(t, err)
	general, err := scorer.Score("Hernia repair", nil, "General Surgery", "")
	require.NoError(t, err)

	assert.Greater(t, cardiac.ComplexityScore, general.ComplexityScore)
	assert.Equal(t, 8.5, cardiac.ComplexityScore)
	assert.Equal(t, 4.5, general.ComplexityScore)
}

func TestScoreKeywordAdjustments(t *testing.T) {
	scorer := NewKeywordScorer()

	major, err := scorer.Score("Radical prostatectomy", nil, "Urology", "")
	require.NoError(t, err)
	assert.Equal(t, 6.5, major.ComplexityScore)
	assert.Equal(t, "high", major.Confidence)

	minor, err := scorer.Score("Diagnostic cystoscopy", nil, "Urology", "")
	require.NoError(t, err)
	assert.Equal(t, 3.0, minor.ComplexityScore)
}

func TestScoreClampedToRange(t *testing.T) {
	scorer := NewKeywordScorer()

	score, err := scorer.Score("Radical resection with reconstruction", nil, "Cardiac Surgery", "")
	require.NoError(t, err)

	assert.LessOrEqual(t, score.ComplexityScore, 10.0)
	assert.GreaterOrEqual(t, score.ComplexityScore, 1.0)
	assert.LessOrEqual(t, score.AverageScore, 10.0)
}

func TestScoreBilateralRunsLonger(t *testing.T) {
	scorer := NewKeywordScorer()

	plain, err := scorer.Score("Inguinal hernia repair", nil, "General Surgery", "")
	require.NoError(t, err)
	bilateral, err := scorer.Score("Bilateral inguinal hernia repair", nil, "General Surgery", "")
	require.NoError(t, err)

	assert.Greater(t, bilateral.DurationScore, plain.DurationScore)
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewKeywordScorer()

	a, err := scorer.Score("Laparoscopic cholecystectomy", []string{"J18.3"}, "General Surgery", "")
	require.NoError(t, err)
	b, err := scorer.Score("Laparoscopic cholecystectomy", []string{"J18.3"}, "General Surgery", "")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLabelForScore(t *testing.T) {
	assert.Equal(t, LabelMinor, LabelForScore(2.0))
	assert.Equal(t, LabelMinor, LabelForScore(3.0))
	assert.Equal(t, LabelIntermediate, LabelForScore(4.5))
	assert.Equal(t, LabelMajor, LabelForScore(7.0))
	assert.Equal(t, LabelComplex, LabelForScore(9.0))
}
