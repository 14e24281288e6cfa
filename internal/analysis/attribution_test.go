package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

const weightTolerance = 1e-9

func touchpointsFor(campaignIDs ...string) []domain.Touchpoint {
	touchpoints := make([]domain.Touchpoint, len(campaignIDs))
	for i, id := range campaignIDs {
		touchpoints[i] = domain.Touchpoint{
			TouchpointID: fmt.Sprintf("tp-%d", i),
			EventType:    string(domain.EmailClicked),
			Timestamp:    1723475612 + int64(i),
			CampaignID:   id,
			ContactID:    "contact-1",
		}
	}
	return touchpoints
}

func TestComputeAttribution_Models(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []string
		model     Model
		expected  Attribution
	}{
		{
			name:      "first touch",
			campaigns: []string{"A", "B", "C"},
			model:     FirstTouch,
			expected:  Attribution{"A": 1.0},
		},
		{
			name:      "last touch",
			campaigns: []string{"A", "B", "C"},
			model:     LastTouch,
			expected:  Attribution{"C": 1.0},
		},
		{
			name:      "linear over two",
			campaigns: []string{"A", "B"},
			model:     Linear,
			expected:  Attribution{"A": 0.5, "B": 0.5},
		},
		{
			name:      "position based over four",
			campaigns: []string{"A", "B", "C", "D"},
			model:     PositionBased,
			expected:  Attribution{"A": 0.4, "B": 0.1, "C": 0.1, "D": 0.4},
		},
		{
			name:      "position based over three",
			campaigns: []string{"A", "B", "C"},
			model:     PositionBased,
			expected:  Attribution{"A": 0.4, "B": 0.2, "C": 0.4},
		},
		{
			name:      "position based over two leaves residual",
			campaigns: []string{"A", "B"},
			model:     PositionBased,
			expected:  Attribution{"A": 0.4, "B": 0.4},
		},
		{
			name:      "single campaign gets full credit",
			campaigns: []string{"A"},
			model:     PositionBased,
			expected:  Attribution{"A": 1.0},
		},
		{
			name:      "time decay falls back to linear",
			campaigns: []string{"A", "B", "C", "D"},
			model:     TimeDecay,
			expected:  Attribution{"A": 0.25, "B": 0.25, "C": 0.25, "D": 0.25},
		},
		{
			name:      "data driven falls back to linear",
			campaigns: []string{"A", "B"},
			model:     DataDriven,
			expected:  Attribution{"A": 0.5, "B": 0.5},
		},
		{
			name:      "unknown model falls back to linear",
			campaigns: []string{"A", "B"},
			model:     Model("markov"),
			expected:  Attribution{"A": 0.5, "B": 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeAttribution(touchpointsFor(tt.campaigns...), tt.model)

			require.Len(t, result, len(tt.expected))
			for id, weight := range tt.expected {
				assert.InDelta(t, weight, result[id], weightTolerance, "campaign %s", id)
			}
		})
	}
}

func TestComputeAttribution_NoCampaigns(t *testing.T) {
	result := ComputeAttribution(touchpointsFor("", "", ""), Linear)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestComputeAttribution_EmptyInput(t *testing.T) {
	assert.Empty(t, ComputeAttribution(nil, FirstTouch))
	assert.Empty(t, ComputeAttribution([]domain.Touchpoint{}, PositionBased))
}

func TestComputeAttribution_DeduplicatesInFirstOccurrenceOrder(t *testing.T) {
	touchpoints := touchpointsFor("A", "", "B", "A", "C", "B")

	assert.Equal(t, []string{"A", "B", "C"}, CampaignSequence(touchpoints))

	last := ComputeAttribution(touchpoints, LastTouch)
	assert.Equal(t, Attribution{"C": 1.0}, last)

	positional := ComputeAttribution(touchpoints, PositionBased)
	assert.InDelta(t, 0.4, positional["A"], weightTolerance)
	assert.InDelta(t, 0.2, positional["B"], weightTolerance)
	assert.InDelta(t, 0.4, positional["C"], weightTolerance)
}

func TestComputeAttribution_Idempotent(t *testing.T) {
	touchpoints := touchpointsFor("A", "B", "C", "D", "E")

	for model := range knownModels {
		first := ComputeAttribution(touchpoints, model)
		second := ComputeAttribution(touchpoints, model)
		assert.Equal(t, first, second, "model %s", model)
	}
}

func TestComputeAttribution_DoesNotMutateInput(t *testing.T) {
	touchpoints := touchpointsFor("B", "A", "B")
	snapshot := append([]domain.Touchpoint(nil), touchpoints...)

	ComputeAttribution(touchpoints, PositionBased)

	assert.Equal(t, snapshot, touchpoints)
}

func TestParseModel(t *testing.T) {
	model, err := ParseModel("position_based")
	require.NoError(t, err)
	assert.Equal(t, PositionBased, model)

	_, err = ParseModel("markov")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown attribution model: markov")
}

func TestAttribution_Total(t *testing.T) {
	assert.InDelta(t, 0.0, Attribution{}.Total(), weightTolerance)
	assert.InDelta(t, 1.0, Attribution{"A": 0.25, "B": 0.75}.Total(), weightTolerance)
}
