package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/analysis"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/config"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository"
)

func testAnalysisConfig() config.Analysis {
	return config.Analysis{
		DefaultModel:           "linear",
		DefaultConfidenceLevel: 0.95,
		MaxTouchpoints:         500,
	}
}

func pathTouchpoints(campaigns ...string) []domain.Touchpoint {
	touchpoints := make([]domain.Touchpoint, len(campaigns))
	for i, c := range campaigns {
		touchpoints[i] = domain.Touchpoint{
			TouchpointID: c + "-tp",
			EventType:    string(domain.EmailClicked),
			Timestamp:    testCurrentTime + int64(i),
			CampaignID:   c,
			ContactID:    "contact-1",
		}
	}
	return touchpoints
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestAnalysisService_GetAttribution_PositionBased(t *testing.T) {
	mockRepo := new(MockTouchpointRepository)
	service := NewAnalysisService(mockRepo, testAnalysisConfig(), nil, zap.NewNop())

	mockRepo.On("ListTouchpoints", mock.Anything, repository.TouchpointQuery{
		ContactID: "contact-1",
		From:      100,
		To:        200,
		Limit:     501,
	}).Return(pathTouchpoints("a", "b", "a", "", "c", "d"), nil)

	response, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{
		ContactID: "contact-1",
		From:      100,
		To:        200,
		Model:     "position_based",
	})

	require.NoError(t, err)
	assert.Equal(t, "position_based", response.Model)
	assert.Equal(t, 6, response.TouchpointCount)
	assert.Equal(t, []string{"a", "b", "c", "d"}, response.CampaignSequence)
	assert.InDelta(t, 0.4, response.Weights["a"], 1e-9)
	assert.InDelta(t, 0.1, response.Weights["b"], 1e-9)
	assert.InDelta(t, 0.1, response.Weights["c"], 1e-9)
	assert.InDelta(t, 0.4, response.Weights["d"], 1e-9)
	assert.InDelta(t, 1.0, response.TotalWeight, 1e-9)
	mockRepo.AssertExpectations(t)
}

func TestAnalysisService_GetAttribution_TruncatedKeepsRecentEnd(t *testing.T) {
	cfg := testAnalysisConfig()
	cfg.MaxTouchpoints = 2
	mockRepo := new(MockTouchpointRepository)
	service := NewAnalysisService(mockRepo, cfg, nil, zap.NewNop())

	// the repository hands back the newest Limit rows, oldest first
	mockRepo.On("ListTouchpoints", mock.Anything, repository.TouchpointQuery{
		ContactID: "contact-1",
		From:      100,
		To:        200,
		Limit:     3,
	}).Return(pathTouchpoints("a", "b", "c"), nil)

	response, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{
		ContactID: "contact-1",
		From:      100,
		To:        200,
		Model:     "last_touch",
	})

	require.NoError(t, err)
	assert.True(t, response.Truncated)
	assert.Equal(t, 2, response.TouchpointCount)
	assert.Equal(t, []string{"b", "c"}, response.CampaignSequence)
	assert.Equal(t, map[string]float64{"c": 1.0}, response.Weights)
	mockRepo.AssertExpectations(t)
}

func TestAnalysisService_GetAttribution_PathAtLimitIsComplete(t *testing.T) {
	cfg := testAnalysisConfig()
	cfg.MaxTouchpoints = 2
	mockRepo := new(MockTouchpointRepository)
	service := NewAnalysisService(mockRepo, cfg, nil, zap.NewNop())

	mockRepo.On("ListTouchpoints", mock.Anything, mock.Anything).Return(pathTouchpoints("a", "b"), nil)

	response, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{
		ContactID: "contact-1",
		Model:     "first_touch",
	})

	require.NoError(t, err)
	assert.False(t, response.Truncated)
	assert.Equal(t, map[string]float64{"a": 1.0}, response.Weights)
}

func TestAnalysisService_GetAttribution_DefaultModel(t *testing.T) {
	mockRepo := new(MockTouchpointRepository)
	cfg := testAnalysisConfig()
	cfg.DefaultModel = "last_touch"
	service := NewAnalysisService(mockRepo, cfg, nil, zap.NewNop())

	mockRepo.On("ListTouchpoints", mock.Anything, mock.Anything).Return(pathTouchpoints("a", "b"), nil)

	response, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{
		ContactID: "contact-1", From: 1, To: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "last_touch", response.Model)
	assert.Equal(t, map[string]float64{"b": 1.0}, response.Weights)
}

func TestAnalysisService_GetAttribution_UnknownDefaultFallsBackToLinear(t *testing.T) {
	mockRepo := new(MockTouchpointRepository)
	cfg := testAnalysisConfig()
	cfg.DefaultModel = "markov"
	service := NewAnalysisService(mockRepo, cfg, nil, zap.NewNop())

	mockRepo.On("ListTouchpoints", mock.Anything, mock.Anything).Return(pathTouchpoints("a", "b"), nil)

	response, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{
		ContactID: "contact-1", From: 1, To: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "linear", response.Model)
	assert.InDelta(t, 0.5, response.Weights["a"], 1e-9)
}

func TestAnalysisService_GetAttribution_EmptyPath(t *testing.T) {
	mockRepo := new(MockTouchpointRepository)
	service := NewAnalysisService(mockRepo, testAnalysisConfig(), nil, zap.NewNop())

	mockRepo.On("ListTouchpoints", mock.Anything, mock.Anything).Return([]domain.Touchpoint{}, nil)

	response, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{
		ContactID: "contact-1", From: 1, To: 2,
	})

	require.NoError(t, err)
	assert.Empty(t, response.Weights)
	assert.Equal(t, 0.0, response.TotalWeight)
}

func TestAnalysisService_GetAttribution_Errors(t *testing.T) {
	t.Run("inverted range", func(t *testing.T) {
		mockRepo := new(MockTouchpointRepository)
		service := NewAnalysisService(mockRepo, testAnalysisConfig(), nil, zap.NewNop())

		_, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{ContactID: "c", From: 5, To: 1})

		assert.ErrorIs(t, err, ErrInvalidRequest)
		mockRepo.AssertNotCalled(t, "ListTouchpoints", mock.Anything, mock.Anything)
	})

	t.Run("unknown model", func(t *testing.T) {
		mockRepo := new(MockTouchpointRepository)
		service := NewAnalysisService(mockRepo, testAnalysisConfig(), nil, zap.NewNop())

		_, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{ContactID: "c", From: 1, To: 5, Model: "markov"})

		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), "unknown attribution model: markov")
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := new(MockTouchpointRepository)
		service := NewAnalysisService(mockRepo, testAnalysisConfig(), nil, zap.NewNop())
		mockRepo.On("ListTouchpoints", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := service.GetAttribution(context.Background(), &dto.GetAttributionRequest{ContactID: "c", From: 1, To: 5})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), "failed to load touchpoints")
	})
}

func TestAnalysisService_ComputeSignificance_NotSignificant(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	response, err := service.ComputeSignificance(&dto.ComputeSignificanceRequest{
		Variants: []dto.VariantRequest{
			{ID: "control", IsControl: true, SampleSize: 1000, Conversions: 20},
			{ID: "treatment", SampleSize: 1000, Conversions: 30},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "control", response.ControlID)
	assert.Equal(t, "treatment", response.TreatmentID)
	assert.Equal(t, 0.95, response.ConfidenceLevel)
	assert.False(t, response.IsSignificant)
	assert.InDelta(t, 0.3585665, response.PValue, 1e-6)
	assert.InDelta(t, 0.5, response.Lift, 1e-9)
	assert.Empty(t, response.Winner)
	assert.Equal(t, "Results not statistically significant. Continue collecting data.", response.Recommendation)
}

func TestAnalysisService_ComputeSignificance_Significant(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	response, err := service.ComputeSignificance(&dto.ComputeSignificanceRequest{
		ConfidenceLevel: floatPtr(0.99),
		Variants: []dto.VariantRequest{
			{ID: "b", SampleSize: 1000, Conversions: 150},
			{ID: "a", IsControl: true, SampleSize: 1000, Conversions: 100},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 0.99, response.ConfidenceLevel)
	assert.True(t, response.IsSignificant)
	assert.InDelta(t, 0.0032985, response.PValue, 1e-6)
	assert.Equal(t, "b", response.Winner)
	assert.Equal(t, "Treatment variant shows 50.0% improvement. Recommend deploying.", response.Recommendation)
}

func TestAnalysisService_ComputeSignificance_ExperimentSettings(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())
	variants := []dto.VariantRequest{
		{ID: "a", IsControl: true, SampleSize: 1000, Conversions: 20},
		{ID: "b", SampleSize: 1000, Conversions: 30},
	}

	t.Run("defaults", func(t *testing.T) {
		response, err := service.ComputeSignificance(&dto.ComputeSignificanceRequest{Variants: variants})

		require.NoError(t, err)
		assert.Equal(t, 0.95, response.ConfidenceLevel)
		assert.Equal(t, analysis.DefaultMinimumDetectableEffect, response.MinimumDetectableEffect)
		assert.Equal(t, analysis.DefaultTrafficPercentage, response.TrafficPercentage)
	})

	t.Run("overrides", func(t *testing.T) {
		response, err := service.ComputeSignificance(&dto.ComputeSignificanceRequest{
			MinimumDetectableEffect: floatPtr(0.02),
			TrafficPercentage:       floatPtr(20),
			Variants:                variants,
		})

		require.NoError(t, err)
		assert.Equal(t, 0.02, response.MinimumDetectableEffect)
		assert.Equal(t, 20.0, response.TrafficPercentage)
	})

	t.Run("explicit zero confidence", func(t *testing.T) {
		_, err := service.ComputeSignificance(&dto.ComputeSignificanceRequest{
			ConfidenceLevel: floatPtr(0),
			Variants:        variants,
		})

		var invalid *analysis.InvalidInputError
		assert.True(t, errors.As(err, &invalid))
	})
}

func TestAnalysisService_ComputeSignificance_InvalidInput(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	tests := []struct {
		name     string
		variants []dto.VariantRequest
	}{
		{"single variant", []dto.VariantRequest{{ID: "a", IsControl: true, SampleSize: 10}}},
		{"no control", []dto.VariantRequest{{ID: "a", SampleSize: 10}, {ID: "b", SampleSize: 10}}},
		{"conversions exceed sample", []dto.VariantRequest{
			{ID: "a", IsControl: true, SampleSize: 10, Conversions: 11},
			{ID: "b", SampleSize: 10},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := service.ComputeSignificance(&dto.ComputeSignificanceRequest{Variants: tt.variants})

			assert.Nil(t, response)
			var invalid *analysis.InvalidInputError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestAnalysisService_ScoreCreative(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	withoutMetrics := service.ScoreCreative(&dto.ScoreCreativeRequest{
		CreativeID:      "crv-1",
		AIQualityScore:  80,
		BrandVoiceScore: 90,
	})
	assert.Equal(t, "crv-1", withoutMetrics.CreativeID)
	assert.InDelta(t, 75.0, withoutMetrics.Score, 1e-9)
	assert.Equal(t, "highly_effective", withoutMetrics.Tier)
	assert.Equal(t, 0.6, withoutMetrics.Confidence)

	withMetrics := service.ScoreCreative(&dto.ScoreCreativeRequest{
		AIQualityScore:  80,
		BrandVoiceScore: 90,
		Metrics:         &dto.CampaignMetricsRequest{OpenRate: 0.3, ClickRate: 0.1, ConversionRate: 0.05},
	})
	assert.InDelta(t, 80.5, withMetrics.Score, 1e-9)
	assert.Equal(t, "exceptional", withMetrics.Tier)
	assert.Equal(t, 0.9, withMetrics.Confidence)
}

func completeCreative(id string) dto.CreativeRequest {
	return dto.CreativeRequest{
		CreativeID:      id,
		Format:          "html_email",
		SubjectLine:     "Spring sale starts today",
		BodyHTML:        "<p>Save 20%</p>",
		CTAText:         "Shop now",
		AIQualityScore:  80,
		BrandVoiceScore: 90,
	}
}

func TestAnalysisService_AnalyzeCampaign(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	response, err := service.AnalyzeCampaign(context.Background(), &dto.AnalyzeCampaignRequest{
		CampaignID: "cmp-1",
		Creatives: []dto.CreativeRequest{
			completeCreative("crv-a"),
			{CreativeID: "crv-b", Format: "html_email"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "cmp-1", response.CampaignID)
	assert.Equal(t, "pre_launch", response.AnalysisType)
	// (75 + 50) / 2
	assert.InDelta(t, 62.5, response.AverageScore, 1e-9)
	assert.Equal(t, "effective", response.Tier)
	assert.InDelta(t, 0.6, response.Confidence, 1e-9)
	assert.Equal(t, 1, response.InvalidCreatives)
	assert.Equal(t, []string{"Fix validation issues in 1 creative(s)"}, response.Recommendations)

	require.Len(t, response.Creatives, 2)
	first, second := response.Creatives[0], response.Creatives[1]
	assert.Equal(t, "crv-a", first.CreativeID)
	assert.True(t, first.Valid)
	assert.Equal(t, 100.0, first.ValidationScore)
	assert.Empty(t, first.Issues)
	assert.InDelta(t, 75.0, first.CES.Score, 1e-9)

	assert.Equal(t, "crv-b", second.CreativeID)
	assert.False(t, second.Valid)
	assert.Equal(t, 30.0, second.ValidationScore)
	assert.Len(t, second.Issues, 3)
	assert.Equal(t, "needs_improvement", second.CES.Tier)
}

func TestAnalysisService_AnalyzeCampaign_WithMetrics(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	response, err := service.AnalyzeCampaign(context.Background(), &dto.AnalyzeCampaignRequest{
		CampaignID: "cmp-1",
		Creatives:  []dto.CreativeRequest{completeCreative("crv-a")},
		Metrics:    &dto.CampaignMetricsRequest{OpenRate: 0.3, ClickRate: 0.1, ConversionRate: 0.05},
	})

	require.NoError(t, err)
	assert.Equal(t, "in_flight", response.AnalysisType)
	assert.InDelta(t, 80.5, response.AverageScore, 1e-9)
	assert.Equal(t, "exceptional", response.Tier)
	assert.InDelta(t, 0.9, response.Confidence, 1e-9)
}

func TestAnalysisService_AnalyzeCampaign_PreservesCreativeOrder(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	creatives := make([]dto.CreativeRequest, 40)
	for i := range creatives {
		creatives[i] = completeCreative(fmt.Sprintf("crv-%02d", i))
	}

	response, err := service.AnalyzeCampaign(context.Background(), &dto.AnalyzeCampaignRequest{
		CampaignID: "cmp-1",
		Creatives:  creatives,
	})

	require.NoError(t, err)
	require.Len(t, response.Creatives, len(creatives))
	for i, c := range response.Creatives {
		assert.Equal(t, creatives[i].CreativeID, c.CreativeID)
	}
}

func TestAnalysisService_AnalyzeCampaign_Errors(t *testing.T) {
	service := NewAnalysisService(new(MockTouchpointRepository), testAnalysisConfig(), nil, zap.NewNop())

	t.Run("no creatives", func(t *testing.T) {
		_, err := service.AnalyzeCampaign(context.Background(), &dto.AnalyzeCampaignRequest{CampaignID: "cmp-1"})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.AnalyzeCampaign(ctx, &dto.AnalyzeCampaignRequest{
			CampaignID: "cmp-1",
			Creatives:  []dto.CreativeRequest{completeCreative("crv-a")},
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
