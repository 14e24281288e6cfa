package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/analysis"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"
)

type variantInput struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	IsControl   bool   `yaml:"is_control"`
	SampleSize  int64  `yaml:"sample_size"`
	Conversions int64  `yaml:"conversions"`
}

// experimentInput leaves omitted settings nil so an explicit zero is rejected
type experimentInput struct {
	ConfidenceLevel         *float64       `yaml:"confidence_level"`
	MinimumDetectableEffect *float64       `yaml:"minimum_detectable_effect"`
	TrafficPercentage       *float64       `yaml:"traffic_percentage"`
	Variants                []variantInput `yaml:"variants"`
}

// settings applies the file's values over the defaults. A non-nil
// confidenceOverride comes from the command line and wins over the file.
func (e experimentInput) settings(confidenceOverride *float64) analysis.ExperimentSettings {
	settings := analysis.DefaultExperimentSettings()
	if e.ConfidenceLevel != nil {
		settings.ConfidenceLevel = *e.ConfidenceLevel
	}
	if e.MinimumDetectableEffect != nil {
		settings.MinimumDetectableEffect = *e.MinimumDetectableEffect
	}
	if e.TrafficPercentage != nil {
		settings.TrafficPercentage = *e.TrafficPercentage
	}
	if confidenceOverride != nil {
		settings.ConfidenceLevel = *confidenceOverride
	}
	return settings
}

func newSignificanceCommand(root *rootOptions) *cobra.Command {
	var input string
	var confidence float64

	cmd := &cobra.Command{
		Use:   "significance",
		Short: "Test an A/B experiment for statistical significance",
		Example: `  effectivenessctl significance --input experiment.yaml
  effectivenessctl significance --input experiment.json --confidence 0.99`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var experiment experimentInput
			if err := decodeFile(input, &experiment); err != nil {
				return err
			}

			var override *float64
			if cmd.Flags().Changed("confidence") {
				override = &confidence
			}
			settings := experiment.settings(override)
			if err := settings.Validate(); err != nil {
				return err
			}

			variants := make([]domain.Variant, len(experiment.Variants))
			for i, v := range experiment.Variants {
				variants[i] = domain.Variant{
					ID:          v.ID,
					Name:        v.Name,
					IsControl:   v.IsControl,
					SampleSize:  v.SampleSize,
					Conversions: v.Conversions,
				}
			}

			control, treatment, err := analysis.SelectVariants(variants)
			if err != nil {
				return err
			}
			result, err := analysis.ComputeSignificance(control, treatment, settings.ConfidenceLevel)
			if err != nil {
				return err
			}

			root.log.Debug("Significance computed",
				zap.String("control_id", control.ID),
				zap.String("treatment_id", treatment.ID),
				zap.Float64("p_value", result.PValue))

			return writeJSON(cmd.OutOrStdout(), dto.SignificanceResponse{
				ControlID:               control.ID,
				TreatmentID:             treatment.ID,
				ConfidenceLevel:         settings.ConfidenceLevel,
				MinimumDetectableEffect: settings.MinimumDetectableEffect,
				TrafficPercentage:       settings.TrafficPercentage,
				IsSignificant:           result.IsSignificant,
				Confidence:              result.Confidence,
				PValue:                  result.PValue,
				Lift:                    result.Lift,
				LiftConfidenceInterval:  result.LiftConfidenceInterval,
				Winner:                  result.Winner,
				Recommendation:          result.Recommendation,
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML or JSON file with confidence_level and variants")
	cmd.Flags().Float64VarP(&confidence, "confidence", "c", analysis.DefaultConfidenceLevel, "confidence level, overrides the file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
