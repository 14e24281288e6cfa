package analysis

import (
	"fmt"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

// Model selects how conversion credit is split across campaigns
type Model string

const (
	FirstTouch    Model = "first_touch"
	LastTouch     Model = "last_touch"
	Linear        Model = "linear"
	TimeDecay     Model = "time_decay"
	PositionBased Model = "position_based"
	DataDriven    Model = "data_driven"
	Custom        Model = "custom"
)

const (
	positionEndpointShare = 0.4
	positionInteriorShare = 0.2
)

var knownModels = map[Model]bool{
	FirstTouch:    true,
	LastTouch:     true,
	Linear:        true,
	TimeDecay:     true,
	PositionBased: true,
	DataDriven:    true,
	Custom:        true,
}

// ParseModel validates a model selector coming from outside the process
func ParseModel(s string) (Model, error) {
	m := Model(s)
	if !knownModels[m] {
		return "", fmt.Errorf("unknown attribution model: %s (supported: first_touch, last_touch, linear, time_decay, position_based, data_driven, custom)", s)
	}
	return m, nil
}

// Attribution maps a campaign ID to its share of conversion credit
type Attribution map[string]float64

// Total returns the sum of all weights
func (a Attribution) Total() float64 {
	total := 0.0
	for _, w := range a {
		total += w
	}
	return total
}

// CampaignSequence returns the campaign IDs referenced by touchpoints in
// first-occurrence order. Touchpoints without a campaign are skipped.
func CampaignSequence(touchpoints []domain.Touchpoint) []string {
	seen := make(map[string]struct{}, len(touchpoints))
	campaigns := make([]string, 0, len(touchpoints))

	for _, tp := range touchpoints {
		if tp.CampaignID == "" {
			continue
		}
		if _, ok := seen[tp.CampaignID]; ok {
			continue
		}
		seen[tp.CampaignID] = struct{}{}
		campaigns = append(campaigns, tp.CampaignID)
	}

	return campaigns
}

// ComputeAttribution distributes credit across the campaigns touched by a
// chronologically ordered touchpoint sequence. It never fails: a sequence
// with no campaigns yields an empty result, and models without a defined
// weighting (time_decay, data_driven, custom, unknown) behave as linear.
//
// position_based gives 0.4 to the first and last campaigns and splits 0.2
// across the interior ones. With exactly two campaigns there is no interior
// and the result sums to 0.8.
func ComputeAttribution(touchpoints []domain.Touchpoint, model Model) Attribution {
	return attributeSequence(CampaignSequence(touchpoints), model)
}

func attributeSequence(campaigns []string, model Model) Attribution {
	attribution := make(Attribution, len(campaigns))

	switch len(campaigns) {
	case 0:
		return attribution
	case 1:
		attribution[campaigns[0]] = 1.0
		return attribution
	}

	last := len(campaigns) - 1

	switch model {
	case FirstTouch:
		attribution[campaigns[0]] = 1.0

	case LastTouch:
		attribution[campaigns[last]] = 1.0

	case PositionBased:
		attribution[campaigns[0]] = positionEndpointShare
		attribution[campaigns[last]] = positionEndpointShare
		if interior := len(campaigns) - 2; interior > 0 {
			share := positionInteriorShare / float64(interior)
			for _, id := range campaigns[1:last] {
				attribution[id] = share
			}
		}

	default:
		share := 1.0 / float64(len(campaigns))
		for _, id := range campaigns {
			attribution[id] = share
		}
	}

	return attribution
}
