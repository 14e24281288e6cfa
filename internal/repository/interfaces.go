package repository

import (
	"context"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

// Supported metrics grouping keys
const (
	GroupByCampaign  = "campaign"
	GroupByEventType = "event_type"
	GroupByHour      = "hour"
	GroupByDay       = "day"
)

// MetricsQuery represents a metrics query parameters. An empty EventType
// aggregates across all event types.
type MetricsQuery struct {
	EventType string
	From      int64
	To        int64
	GroupBy   string
}

// MetricsGroupResult represents aggregated metrics for a specific group
type MetricsGroupResult struct {
	GroupValue  string
	TotalCount  uint64
	UniqueCount uint64
}

// MetricsResult represents the result of a metrics query
type MetricsResult struct {
	TotalCount  uint64
	UniqueCount uint64
	Groups      []MetricsGroupResult
}

// TouchpointQuery selects one contact's touchpoints in a time range
type TouchpointQuery struct {
	ContactID string
	From      int64
	To        int64
	Limit     int
}

// TouchpointRepository defines the interface for touchpoint storage operations
type TouchpointRepository interface {
	// InsertBatch inserts a batch of touchpoints into the storage
	InsertBatch(ctx context.Context, touchpoints []*domain.Touchpoint) (int, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error

	// GetMetrics retrieves aggregated metrics based on the query
	GetMetrics(ctx context.Context, query MetricsQuery) (*MetricsResult, error)

	// ListTouchpoints returns a contact's touchpoints ordered by timestamp.
	// With a Limit it keeps the most recent Limit rows.
	ListTouchpoints(ctx context.Context, query TouchpointQuery) ([]domain.Touchpoint, error)
}
