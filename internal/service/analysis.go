package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/analysis"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/config"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/instrumentation"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository"
)

const (
	campaignAnalysisWorkers = 8

	analysisPreLaunch = "pre_launch"
	analysisInFlight  = "in_flight"
)

// AnalysisService runs attribution over stored touchpoints and computes
// experiment significance and creative scores
type AnalysisService struct {
	repository             repository.TouchpointRepository
	defaultModel           analysis.Model
	defaultConfidenceLevel float64
	maxTouchpoints         int
	metrics                *instrumentation.Metrics
	log                    *zap.Logger
}

// NewAnalysisService creates a new analysis service. An unknown default
// model falls back to linear.
func NewAnalysisService(repo repository.TouchpointRepository, cfg config.Analysis, metrics *instrumentation.Metrics, log *zap.Logger) *AnalysisService {
	model, err := analysis.ParseModel(cfg.DefaultModel)
	if err != nil {
		log.Warn("Falling back to linear attribution", zap.Error(err))
		model = analysis.Linear
	}

	confidenceLevel := cfg.DefaultConfidenceLevel
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		confidenceLevel = analysis.DefaultConfidenceLevel
	}

	return &AnalysisService{
		repository:             repo,
		defaultModel:           model,
		defaultConfidenceLevel: confidenceLevel,
		maxTouchpoints:         cfg.MaxTouchpoints,
		metrics:                metrics,
		log:                    log,
	}
}

// GetAttribution loads a contact's touchpoints in the requested window and
// splits conversion credit across the campaigns they reference
func (s *AnalysisService) GetAttribution(ctx context.Context, req *dto.GetAttributionRequest) (*dto.GetAttributionResponse, error) {
	if req.From > req.To {
		return nil, invalidRequest("from timestamp must be less than or equal to to timestamp")
	}

	model := s.defaultModel
	if req.Model != "" {
		parsed, err := analysis.ParseModel(req.Model)
		if err != nil {
			return nil, invalidRequest("%s", err.Error())
		}
		model = parsed
	}

	// one extra row tells a full path apart from a truncated one
	query := repository.TouchpointQuery{ContactID: req.ContactID, From: req.From, To: req.To}
	if s.maxTouchpoints > 0 {
		query.Limit = s.maxTouchpoints + 1
	}

	touchpoints, err := s.repository.ListTouchpoints(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load touchpoints: %w", err)
	}

	truncated := s.maxTouchpoints > 0 && len(touchpoints) > s.maxTouchpoints
	if truncated {
		touchpoints = touchpoints[len(touchpoints)-s.maxTouchpoints:]
		s.log.Warn("Touchpoint path truncated to most recent touchpoints",
			zap.String("contact_id", req.ContactID),
			zap.Int("limit", s.maxTouchpoints))
	}

	weights := analysis.ComputeAttribution(touchpoints, model)
	s.metrics.AttributionRun(string(model))

	return &dto.GetAttributionResponse{
		ContactID:        req.ContactID,
		Model:            string(model),
		From:             req.From,
		To:               req.To,
		TouchpointCount:  len(touchpoints),
		CampaignSequence: analysis.CampaignSequence(touchpoints),
		Weights:          weights,
		TotalWeight:      weights.Total(),
		Truncated:        truncated,
	}, nil
}

// ComputeSignificance compares the first control against the first
// treatment in the request. Malformed variants yield *analysis.InvalidInputError.
func (s *AnalysisService) ComputeSignificance(req *dto.ComputeSignificanceRequest) (*dto.SignificanceResponse, error) {
	settings := analysis.DefaultExperimentSettings()
	settings.ConfidenceLevel = s.defaultConfidenceLevel
	if req.ConfidenceLevel != nil {
		settings.ConfidenceLevel = *req.ConfidenceLevel
	}
	if req.MinimumDetectableEffect != nil {
		settings.MinimumDetectableEffect = *req.MinimumDetectableEffect
	}
	if req.TrafficPercentage != nil {
		settings.TrafficPercentage = *req.TrafficPercentage
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	variants := make([]domain.Variant, len(req.Variants))
	for i, v := range req.Variants {
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
		return nil, err
	}

	result, err := analysis.ComputeSignificance(control, treatment, settings.ConfidenceLevel)
	if err != nil {
		return nil, err
	}
	s.metrics.SignificanceVerdict(result.IsSignificant)

	s.log.Debug("Significance computed",
		zap.String("control_id", control.ID),
		zap.String("treatment_id", treatment.ID),
		zap.Float64("p_value", result.PValue),
		zap.Bool("is_significant", result.IsSignificant))

	return &dto.SignificanceResponse{
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
	}, nil
}

// ScoreCreative computes the creative effectiveness score for the request
func (s *AnalysisService) ScoreCreative(req *dto.ScoreCreativeRequest) *dto.ScoreCreativeResponse {
	score := analysis.ScoreCreative(creativeSignals(req.AIQualityScore, req.BrandVoiceScore, req.Metrics))
	return scoreResponse(req.CreativeID, score)
}

// AnalyzeCampaign validates and scores each creative concurrently, then
// averages the scores across the campaign
func (s *AnalysisService) AnalyzeCampaign(ctx context.Context, req *dto.AnalyzeCampaignRequest) (*dto.AnalyzeCampaignResponse, error) {
	if len(req.Creatives) == 0 {
		return nil, invalidRequest("campaign %s has no creatives", req.CampaignID)
	}

	assessments := make([]analysis.CreativeAssessment, len(req.Creatives))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(campaignAnalysisWorkers)
	for i := range req.Creatives {
		i := i
		creative := &req.Creatives[i]
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			assessments[i] = analysis.CreativeAssessment{
				CreativeID: creative.CreativeID,
				Validation: analysis.ValidateTemplate(analysis.Template{
					Format:      creative.Format,
					SubjectLine: creative.SubjectLine,
					BodyHTML:    creative.BodyHTML,
					BodyPlain:   creative.BodyPlain,
					CTAText:     creative.CTAText,
				}),
				CES: analysis.ScoreCreative(creativeSignals(creative.AIQualityScore, creative.BrandVoiceScore, req.Metrics)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("campaign analysis interrupted: %w", err)
	}

	summary := analysis.SummarizeCampaign(assessments)

	analysisType := analysisPreLaunch
	if req.Metrics != nil {
		analysisType = analysisInFlight
	}

	creatives := make([]dto.CreativeAnalysisResponse, len(assessments))
	for i, a := range assessments {
		issues := make([]dto.ValidationIssueResponse, len(a.Validation.Issues))
		for j, issue := range a.Validation.Issues {
			issues[j] = dto.ValidationIssueResponse{
				Severity: string(issue.Severity),
				Field:    issue.Field,
				Message:  issue.Message,
			}
		}
		creatives[i] = dto.CreativeAnalysisResponse{
			CreativeID:      a.CreativeID,
			Valid:           a.Validation.Valid,
			ValidationScore: a.Validation.Score,
			Issues:          issues,
			CES:             *scoreResponse(a.CreativeID, a.CES),
		}
	}

	s.log.Debug("Campaign analyzed",
		zap.String("campaign_id", req.CampaignID),
		zap.Int("creatives", len(creatives)),
		zap.Float64("average_score", summary.AverageScore),
		zap.Int("invalid_creatives", summary.InvalidCreatives))

	return &dto.AnalyzeCampaignResponse{
		CampaignID:       req.CampaignID,
		AnalysisType:     analysisType,
		AverageScore:     summary.AverageScore,
		Tier:             string(summary.Tier),
		Confidence:       summary.AverageConfidence,
		InvalidCreatives: summary.InvalidCreatives,
		Creatives:        creatives,
		Recommendations:  summary.Recommendations,
	}, nil
}

func creativeSignals(aiQuality, brandVoice float64, metrics *dto.CampaignMetricsRequest) analysis.CreativeSignals {
	signals := analysis.CreativeSignals{
		AIQualityScore:  aiQuality,
		BrandVoiceScore: brandVoice,
	}
	if metrics != nil {
		signals.HasMetrics = true
		signals.OpenRate = metrics.OpenRate
		signals.ClickRate = metrics.ClickRate
		signals.ConversionRate = metrics.ConversionRate
	}
	return signals
}

func scoreResponse(creativeID string, score analysis.CESScore) *dto.ScoreCreativeResponse {
	return &dto.ScoreCreativeResponse{
		CreativeID: creativeID,
		Score:      score.Score,
		Tier:       string(score.Tier),
		Confidence: score.Confidence,
	}
}
