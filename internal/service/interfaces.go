package service

import (
	"context"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"
)

// TouchpointServicer defines the interface for touchpoint ingestion and metrics
type TouchpointServicer interface {
	ProcessTouchpoint(ctx context.Context, req *dto.PublishTouchpointRequest) (string, error)
	ProcessBulkTouchpoints(ctx context.Context, reqs []dto.PublishTouchpointRequest) ([]string, []string, error)
	GetMetrics(ctx context.Context, req *dto.GetMetricsRequest) (*dto.GetMetricsResponse, error)
	CheckHealth(ctx context.Context) error
}

// AnalysisServicer defines the interface for attribution, significance and
// creative scoring
type AnalysisServicer interface {
	GetAttribution(ctx context.Context, req *dto.GetAttributionRequest) (*dto.GetAttributionResponse, error)
	ComputeSignificance(req *dto.ComputeSignificanceRequest) (*dto.SignificanceResponse, error)
	ScoreCreative(req *dto.ScoreCreativeRequest) *dto.ScoreCreativeResponse
	AnalyzeCampaign(ctx context.Context, req *dto.AnalyzeCampaignRequest) (*dto.AnalyzeCampaignResponse, error)
}
