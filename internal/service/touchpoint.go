package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/instrumentation"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/queue"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository"
)

const (
	futureTimestampTolerance = 1
	maxHourlyRangeSeconds    = 90 * 24 * 3600
)

var validGroupBy = map[string]bool{
	repository.GroupByCampaign:  true,
	repository.GroupByEventType: true,
	repository.GroupByHour:      true,
	repository.GroupByDay:       true,
}

// TouchpointService ingests touchpoints and answers metrics queries
type TouchpointService struct {
	publisher  queue.QueuePublisher
	repository repository.TouchpointRepository
	metrics    *instrumentation.Metrics
	now        func() time.Time
	log        *zap.Logger
}

// NewTouchpointService creates a new touchpoint service. metrics may be nil.
func NewTouchpointService(publisher queue.QueuePublisher, repo repository.TouchpointRepository, metrics *instrumentation.Metrics, log *zap.Logger) *TouchpointService {
	return &TouchpointService{
		publisher:  publisher,
		repository: repo,
		metrics:    metrics,
		now:        time.Now,
		log:        log,
	}
}

// computeTouchpointID derives a deterministic ID so that a resubmitted
// touchpoint collapses onto the same row
func computeTouchpointID(req *dto.PublishTouchpointRequest) string {
	data := fmt.Sprintf("%s|%s|%d|%s|%s|%s",
		req.ContactID,
		req.EventType,
		req.Timestamp,
		req.CampaignID,
		req.CreativeID,
		req.JourneyStepID,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// ProcessTouchpoint validates a touchpoint and publishes it to the queue
func (s *TouchpointService) ProcessTouchpoint(ctx context.Context, req *dto.PublishTouchpointRequest) (string, error) {
	if !domain.EventType(req.EventType).IsValid() {
		s.metrics.TouchpointPublished(instrumentation.PublishRejected)
		return "", invalidRequest("unknown event_type %q", req.EventType)
	}

	currentTime := s.now().Unix()
	if req.Timestamp > currentTime+futureTimestampTolerance {
		s.log.Warn("Timestamp validation failed: future timestamp",
			zap.Int64("touchpoint_timestamp", req.Timestamp),
			zap.Int64("current_time", currentTime),
			zap.String("event_type", req.EventType))
		s.metrics.TouchpointPublished(instrumentation.PublishRejected)
		return "", invalidRequest("timestamp cannot be in the future: %d > %d", req.Timestamp, currentTime)
	}

	touchpointID := computeTouchpointID(req)

	if err := s.publisher.PublishTouchpoint(ctx, queue.NewTouchpointMessage(req, touchpointID)); err != nil {
		s.metrics.TouchpointPublished(instrumentation.PublishFailed)
		return "", fmt.Errorf("failed to publish touchpoint to queue: %w", err)
	}

	s.metrics.TouchpointPublished(instrumentation.PublishAccepted)
	return touchpointID, nil
}

// ProcessBulkTouchpoints processes each touchpoint independently and reports
// the accepted IDs and the rejection reasons
func (s *TouchpointService) ProcessBulkTouchpoints(ctx context.Context, reqs []dto.PublishTouchpointRequest) ([]string, []string, error) {
	var touchpointIDs []string
	var rejections []string

	for i := range reqs {
		touchpointID, err := s.ProcessTouchpoint(ctx, &reqs[i])
		if err != nil {
			rejections = append(rejections, fmt.Sprintf("touchpoint %d: %s", i, err.Error()))
			s.log.Warn("Failed to process touchpoint in bulk",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("event_type", reqs[i].EventType))
			continue
		}
		touchpointIDs = append(touchpointIDs, touchpointID)
	}

	return touchpointIDs, rejections, nil
}

// GetMetrics retrieves aggregated touchpoint metrics from the repository
func (s *TouchpointService) GetMetrics(ctx context.Context, req *dto.GetMetricsRequest) (*dto.GetMetricsResponse, error) {
	if req.From > req.To {
		s.log.Warn("Invalid time range for metrics",
			zap.Int64("from", req.From),
			zap.Int64("to", req.To),
			zap.String("event_type", req.EventType))
		return nil, invalidRequest("from timestamp must be less than or equal to to timestamp")
	}

	if req.GroupBy != "" {
		if !validGroupBy[req.GroupBy] {
			s.log.Warn("Invalid group_by value", zap.String("group_by", req.GroupBy))
			return nil, invalidRequest("invalid group_by value: %s (supported: campaign, event_type, hour, day)", req.GroupBy)
		}

		rangeSeconds := req.To - req.From
		if req.GroupBy == repository.GroupByHour && rangeSeconds > maxHourlyRangeSeconds {
			return nil, invalidRequest("time range too large for hourly grouping (max 90 days, got %d days)", rangeSeconds/(24*3600))
		}
	}

	query := repository.MetricsQuery{
		EventType: req.EventType,
		From:      req.From,
		To:        req.To,
		GroupBy:   req.GroupBy,
	}

	s.log.Debug("Querying metrics",
		zap.String("event_type", req.EventType),
		zap.Int64("from", req.From),
		zap.Int64("to", req.To),
		zap.String("group_by", req.GroupBy))

	result, err := s.repository.GetMetrics(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics from repository: %w", err)
	}

	response := &dto.GetMetricsResponse{
		EventType:     req.EventType,
		EventCategory: string(domain.EventType(req.EventType).Category()),
		From:          req.From,
		To:            req.To,
		TotalCount:    result.TotalCount,
		UniqueCount:   result.UniqueCount,
		GroupBy:       req.GroupBy,
		Groups:        make([]dto.MetricsGroupData, 0, len(result.Groups)),
	}

	for _, group := range result.Groups {
		response.Groups = append(response.Groups, dto.MetricsGroupData{
			GroupValue:  group.GroupValue,
			TotalCount:  group.TotalCount,
			UniqueCount: group.UniqueCount,
		})
	}

	return response, nil
}

// CheckHealth reports whether the touchpoint store is reachable
func (s *TouchpointService) CheckHealth(ctx context.Context) error {
	if err := s.repository.Ping(ctx); err != nil {
		return fmt.Errorf("touchpoint store unreachable: %w", err)
	}
	return nil
}
