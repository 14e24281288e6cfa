package analysis

import (
	"fmt"
	"math"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

// DefaultConfidenceLevel is used when an experiment does not set one
const DefaultConfidenceLevel = 0.95

// liftIntervalHalfWidth is a fixed placeholder, not derived from sample variance
const liftIntervalHalfWidth = 0.1

const (
	recommendDeploy   = "Treatment variant shows %.1f%% improvement. Recommend deploying."
	recommendKeep     = "Control variant performs better. Recommend keeping current approach."
	recommendContinue = "Results not statistically significant. Continue collecting data."
)

// SignificanceResult is the verdict of a control/treatment comparison
type SignificanceResult struct {
	IsSignificant          bool
	Confidence             float64
	PValue                 float64
	Lift                   float64
	LiftConfidenceInterval [2]float64
	Winner                 string
	Recommendation         string
}

// SelectVariants picks the first control and the first non-control variant
func SelectVariants(variants []domain.Variant) (domain.Variant, domain.Variant, error) {
	if len(variants) < 2 {
		return domain.Variant{}, domain.Variant{}, invalidInput("need at least 2 variants for analysis, got %d", len(variants))
	}

	var control, treatment *domain.Variant
	for i := range variants {
		v := &variants[i]
		if v.IsControl && control == nil {
			control = v
		}
		if !v.IsControl && treatment == nil {
			treatment = v
		}
	}

	if control == nil || treatment == nil {
		return domain.Variant{}, domain.Variant{}, invalidInput("must have both a control and a treatment variant")
	}

	return *control, *treatment, nil
}

// ComputeSignificance compares two conversion-rate samples with a
// two-proportion z-test. The p-value is the approximation exp(-z²/2), kept
// as is for compatibility with previously reported results.
func ComputeSignificance(control, treatment domain.Variant, confidenceLevel float64) (*SignificanceResult, error) {
	if err := validatePair(control, treatment); err != nil {
		return nil, err
	}

	controlRate := control.ConversionRate()
	treatmentRate := treatment.ConversionRate()

	lift := 0.0
	if controlRate > 0 {
		lift = (treatmentRate - controlRate) / controlRate
	}

	pooledRate := 0.0
	if total := control.SampleSize + treatment.SampleSize; total > 0 {
		pooledRate = float64(control.Conversions+treatment.Conversions) / float64(total)
	}

	standardError := math.Sqrt(pooledRate * (1 - pooledRate) *
		(1/float64(control.SampleSize) + 1/float64(treatment.SampleSize)))

	// NaN (0 * Inf) and Inf both fall through to z = 0
	z := 0.0
	if standardError > 0 && !math.IsInf(standardError, 1) {
		z = math.Abs(treatmentRate-controlRate) / standardError
	}

	pValue := math.Exp(-0.5 * z * z)
	isSignificant := pValue < (1 - confidenceLevel)

	result := &SignificanceResult{
		IsSignificant:          isSignificant,
		Confidence:             1 - pValue,
		PValue:                 pValue,
		Lift:                   lift,
		LiftConfidenceInterval: [2]float64{lift - liftIntervalHalfWidth, lift + liftIntervalHalfWidth},
	}

	switch {
	case isSignificant && lift > 0:
		result.Winner = treatment.ID
		result.Recommendation = fmt.Sprintf(recommendDeploy, lift*100)
	case isSignificant:
		result.Winner = control.ID
		result.Recommendation = recommendKeep
	default:
		result.Recommendation = recommendContinue
	}

	return result, nil
}

func validatePair(control, treatment domain.Variant) error {
	if !control.IsControl {
		return invalidInput("variant %q is not flagged as control", control.ID)
	}
	if treatment.IsControl {
		return invalidInput("variant %q is flagged as control, expected a treatment", treatment.ID)
	}

	for _, v := range []domain.Variant{control, treatment} {
		if v.SampleSize < 0 || v.Conversions < 0 {
			return invalidInput("variant %q has negative sample size or conversions", v.ID)
		}
		if v.Conversions > v.SampleSize {
			return invalidInput("variant %q has more conversions (%d) than samples (%d)", v.ID, v.Conversions, v.SampleSize)
		}
	}

	return nil
}
