package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

func controlVariant(sampleSize, conversions int64) domain.Variant {
	return domain.Variant{ID: "control", Name: "Control", IsControl: true, SampleSize: sampleSize, Conversions: conversions}
}

func treatmentVariant(sampleSize, conversions int64) domain.Variant {
	return domain.Variant{ID: "treatment", Name: "Variant B", SampleSize: sampleSize, Conversions: conversions}
}

// expectedPValue recomputes the approximation independently of the implementation
func expectedPValue(c, t domain.Variant) float64 {
	cr := float64(c.Conversions) / float64(c.SampleSize)
	tr := float64(t.Conversions) / float64(t.SampleSize)
	pooled := float64(c.Conversions+t.Conversions) / float64(c.SampleSize+t.SampleSize)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(c.SampleSize) + 1/float64(t.SampleSize)))
	z := math.Abs(tr-cr) / se
	return math.Exp(-0.5 * z * z)
}

func TestComputeSignificance_NotSignificant(t *testing.T) {
	control := controlVariant(1000, 20)
	treatment := treatmentVariant(1000, 30)

	result, err := ComputeSignificance(control, treatment, 0.95)

	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Lift, 1e-9)
	assert.InDelta(t, expectedPValue(control, treatment), result.PValue, 1e-12)
	assert.InDelta(t, 0.35857, result.PValue, 1e-4)
	assert.InDelta(t, 1-result.PValue, result.Confidence, 1e-12)
	assert.False(t, result.IsSignificant)
	assert.Empty(t, result.Winner)
	assert.InDelta(t, 0.4, result.LiftConfidenceInterval[0], 1e-9)
	assert.InDelta(t, 0.6, result.LiftConfidenceInterval[1], 1e-9)
	assert.Equal(t, "Results not statistically significant. Continue collecting data.", result.Recommendation)
}

func TestComputeSignificance_TreatmentWins(t *testing.T) {
	control := controlVariant(1000, 100)
	treatment := treatmentVariant(1000, 150)

	result, err := ComputeSignificance(control, treatment, 0.95)

	require.NoError(t, err)
	assert.True(t, result.IsSignificant)
	assert.InDelta(t, 0.0033, result.PValue, 1e-4)
	assert.InDelta(t, 0.5, result.Lift, 1e-9)
	assert.Equal(t, "treatment", result.Winner)
	assert.Equal(t, "Treatment variant shows 50.0% improvement. Recommend deploying.", result.Recommendation)
}

func TestComputeSignificance_ControlWins(t *testing.T) {
	control := controlVariant(1000, 150)
	treatment := treatmentVariant(1000, 100)

	result, err := ComputeSignificance(control, treatment, 0.95)

	require.NoError(t, err)
	assert.True(t, result.IsSignificant)
	assert.InDelta(t, -1.0/3.0, result.Lift, 1e-9)
	assert.Equal(t, "control", result.Winner)
	assert.Equal(t, "Control variant performs better. Recommend keeping current approach.", result.Recommendation)
}

func TestComputeSignificance_ConfidenceLevelThreshold(t *testing.T) {
	control := controlVariant(1000, 20)
	treatment := treatmentVariant(1000, 30)

	// p ≈ 0.3586 passes only when the threshold 1-level is above it
	result, err := ComputeSignificance(control, treatment, 0.6)

	require.NoError(t, err)
	assert.True(t, result.IsSignificant)
	assert.Equal(t, "treatment", result.Winner)
}

func TestComputeSignificance_ZeroControlRate(t *testing.T) {
	result, err := ComputeSignificance(controlVariant(1000, 0), treatmentVariant(1000, 40), 0.95)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Lift)
	assert.True(t, result.IsSignificant)
	assert.Equal(t, "control", result.Winner)
}

func TestComputeSignificance_EmptySamples(t *testing.T) {
	result, err := ComputeSignificance(controlVariant(0, 0), treatmentVariant(0, 0), 0.95)

	require.NoError(t, err)
	assert.Equal(t, 1.0, result.PValue)
	assert.Equal(t, 0.0, result.Confidence)
	assert.False(t, result.IsSignificant)
	assert.False(t, math.IsNaN(result.Lift))
}

func TestComputeSignificance_OneEmptySample(t *testing.T) {
	result, err := ComputeSignificance(controlVariant(1000, 20), treatmentVariant(0, 0), 0.95)

	require.NoError(t, err)
	assert.Equal(t, 1.0, result.PValue)
	assert.False(t, result.IsSignificant)
	assert.InDelta(t, -1.0, result.Lift, 1e-9)
}

func TestComputeSignificance_NoConversions(t *testing.T) {
	result, err := ComputeSignificance(controlVariant(500, 0), treatmentVariant(500, 0), 0.95)

	require.NoError(t, err)
	assert.Equal(t, 1.0, result.PValue)
	assert.False(t, result.IsSignificant)
}

func TestComputeSignificance_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		control   domain.Variant
		treatment domain.Variant
	}{
		{"both flagged as control", controlVariant(100, 1), domain.Variant{ID: "b", IsControl: true, SampleSize: 100, Conversions: 2}},
		{"neither flagged as control", domain.Variant{ID: "a", SampleSize: 100}, treatmentVariant(100, 2)},
		{"conversions exceed sample", controlVariant(10, 11), treatmentVariant(100, 2)},
		{"negative sample size", controlVariant(100, 1), treatmentVariant(-1, 0)},
		{"negative conversions", controlVariant(100, -1), treatmentVariant(100, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeSignificance(tt.control, tt.treatment, 0.95)

			assert.Nil(t, result)
			var invalid *InvalidInputError
			assert.True(t, errors.As(err, &invalid), "expected InvalidInputError, got %v", err)
		})
	}
}

func TestComputeSignificance_Idempotent(t *testing.T) {
	control := controlVariant(2400, 96)
	treatment := treatmentVariant(2350, 121)

	first, err := ComputeSignificance(control, treatment, 0.9)
	require.NoError(t, err)
	second, err := ComputeSignificance(control, treatment, 0.9)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectVariants(t *testing.T) {
	variants := []domain.Variant{
		treatmentVariant(100, 5),
		controlVariant(100, 3),
		{ID: "third", SampleSize: 100, Conversions: 9},
	}

	control, treatment, err := SelectVariants(variants)

	require.NoError(t, err)
	assert.Equal(t, "control", control.ID)
	assert.Equal(t, "treatment", treatment.ID)
}

func TestSelectVariants_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		variants []domain.Variant
	}{
		{"no variants", nil},
		{"single variant", []domain.Variant{controlVariant(10, 1)}},
		{"two controls", []domain.Variant{controlVariant(10, 1), controlVariant(10, 2)}},
		{"two treatments", []domain.Variant{treatmentVariant(10, 1), treatmentVariant(10, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SelectVariants(tt.variants)

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Contains(t, err.Error(), "invalid input")
		})
	}
}
