package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/analysis"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

type touchpointInput struct {
	TouchpointID string `yaml:"touchpoint_id"`
	EventType    string `yaml:"event_type"`
	Timestamp    int64  `yaml:"timestamp"`
	CampaignID   string `yaml:"campaign_id"`
	ContactID    string `yaml:"contact_id"`
}

type attributionOutput struct {
	Model            string             `json:"model"`
	TouchpointCount  int                `json:"touchpoint_count"`
	CampaignSequence []string           `json:"campaign_sequence"`
	Weights          map[string]float64 `json:"weights"`
	TotalWeight      float64            `json:"total_weight"`
}

func newAttributeCommand(root *rootOptions) *cobra.Command {
	var input, model string

	cmd := &cobra.Command{
		Use:   "attribute",
		Short: "Split conversion credit across the campaigns in a touchpoint path",
		Example: `  effectivenessctl attribute --input path.yaml --model position_based
  effectivenessctl attribute --input path.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedModel, err := analysis.ParseModel(model)
			if err != nil {
				return err
			}

			var rows []touchpointInput
			if err := decodeFile(input, &rows); err != nil {
				return err
			}
			if len(rows) == 0 {
				return errors.New("input contains no touchpoints")
			}

			touchpoints := toTouchpoints(rows)
			weights := analysis.ComputeAttribution(touchpoints, parsedModel)

			root.log.Debug("Attribution computed",
				zap.String("model", model),
				zap.Int("touchpoints", len(touchpoints)),
				zap.Int("campaigns", len(weights)))

			return writeJSON(cmd.OutOrStdout(), attributionOutput{
				Model:            string(parsedModel),
				TouchpointCount:  len(touchpoints),
				CampaignSequence: analysis.CampaignSequence(touchpoints),
				Weights:          weights,
				TotalWeight:      weights.Total(),
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML or JSON file holding a list of touchpoints")
	cmd.Flags().StringVarP(&model, "model", "m", string(analysis.Linear), "attribution model")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// toTouchpoints converts file rows to touchpoints in chronological order.
// Rows with equal timestamps keep their file order.
func toTouchpoints(rows []touchpointInput) []domain.Touchpoint {
	touchpoints := make([]domain.Touchpoint, len(rows))
	for i, row := range rows {
		touchpoints[i] = domain.Touchpoint{
			TouchpointID: row.TouchpointID,
			EventType:    row.EventType,
			Timestamp:    row.Timestamp,
			CampaignID:   row.CampaignID,
			ContactID:    row.ContactID,
		}
	}
	sort.SliceStable(touchpoints, func(i, j int) bool {
		return touchpoints[i].Timestamp < touchpoints[j].Timestamp
	})
	return touchpoints
}
