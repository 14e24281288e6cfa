package analysis

const (
	// DefaultMinimumDetectableEffect is the smallest relative lift an
	// experiment is designed to detect when none is given
	DefaultMinimumDetectableEffect = 0.05
	// DefaultTrafficPercentage sends all eligible traffic into the experiment
	DefaultTrafficPercentage = 100.0
)

// ExperimentSettings are the design parameters of an A/B test
type ExperimentSettings struct {
	ConfidenceLevel         float64
	MinimumDetectableEffect float64
	TrafficPercentage       float64
}

// DefaultExperimentSettings returns the settings used for omitted fields
func DefaultExperimentSettings() ExperimentSettings {
	return ExperimentSettings{
		ConfidenceLevel:         DefaultConfidenceLevel,
		MinimumDetectableEffect: DefaultMinimumDetectableEffect,
		TrafficPercentage:       DefaultTrafficPercentage,
	}
}

// Validate rejects settings outside their ranges with *InvalidInputError
func (s ExperimentSettings) Validate() error {
	if s.ConfidenceLevel <= 0 || s.ConfidenceLevel >= 1 {
		return invalidInput("confidence level must be between 0 and 1, got %v", s.ConfidenceLevel)
	}
	if s.MinimumDetectableEffect <= 0 || s.MinimumDetectableEffect >= 1 {
		return invalidInput("minimum detectable effect must be between 0 and 1, got %v", s.MinimumDetectableEffect)
	}
	if s.TrafficPercentage <= 0 || s.TrafficPercentage > 100 {
		return invalidInput("traffic percentage must be in (0, 100], got %v", s.TrafficPercentage)
	}
	return nil
}
