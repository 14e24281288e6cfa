package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExperimentSettings(t *testing.T) {
	settings := DefaultExperimentSettings()

	assert.Equal(t, 0.95, settings.ConfidenceLevel)
	assert.Equal(t, 0.05, settings.MinimumDetectableEffect)
	assert.Equal(t, 100.0, settings.TrafficPercentage)
	assert.NoError(t, settings.Validate())
}

func TestExperimentSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ExperimentSettings)
		wantErr string
	}{
		{"zero confidence", func(s *ExperimentSettings) { s.ConfidenceLevel = 0 }, "confidence level must be between 0 and 1"},
		{"confidence of one", func(s *ExperimentSettings) { s.ConfidenceLevel = 1 }, "confidence level must be between 0 and 1"},
		{"zero effect", func(s *ExperimentSettings) { s.MinimumDetectableEffect = 0 }, "minimum detectable effect"},
		{"zero traffic", func(s *ExperimentSettings) { s.TrafficPercentage = 0 }, "traffic percentage"},
		{"traffic above hundred", func(s *ExperimentSettings) { s.TrafficPercentage = 100.5 }, "traffic percentage"},
		{"partial traffic", func(s *ExperimentSettings) { s.TrafficPercentage = 25 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultExperimentSettings()
			tt.mutate(&settings)

			err := settings.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidInputError
			assert.True(t, errors.As(err, &invalid))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
