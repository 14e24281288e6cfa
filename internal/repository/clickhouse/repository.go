package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository"
)

// Repository implements TouchpointRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the touchpoints table. Re-delivered queue messages share
// a touchpoint_id, so ReplacingMergeTree collapses them by version.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS touchpoints (
		touchpoint_id String,
		event_type LowCardinality(String),
		timestamp Int64,
		campaign_id String,
		creative_id String,
		journey_id String,
		journey_step_id String,
		contact_id String,
		utm_source LowCardinality(String),
		utm_medium LowCardinality(String),
		utm_campaign String,
		utm_content String,
		payload String,
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (touchpoint_id)
	ORDER BY (touchpoint_id, timestamp)
	PARTITION BY toYYYYMM(toDateTime(timestamp))
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create touchpoints table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of touchpoints into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, touchpoints []*domain.Touchpoint) (int, error) {
	if len(touchpoints) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO touchpoints")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, tp := range touchpoints {
		if tp.Version == 0 {
			tp.Version = uint64(time.Now().UnixNano())
		}

		payload := tp.Payload
		if payload == "" {
			payload = "{}"
		}

		err := batch.Append(
			tp.TouchpointID,
			tp.EventType,
			tp.Timestamp,
			tp.CampaignID,
			tp.CreativeID,
			tp.JourneyID,
			tp.JourneyStepID,
			tp.ContactID,
			tp.UTMSource,
			tp.UTMMedium,
			tp.UTMCampaign,
			tp.UTMContent,
			payload,
			tp.ProcessedAt,
			tp.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to append touchpoint to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// GetMetrics retrieves aggregated touchpoint metrics from ClickHouse
func (r *Repository) GetMetrics(ctx context.Context, query repository.MetricsQuery) (*repository.MetricsResult, error) {
	result := &repository.MetricsResult{
		Groups: []repository.MetricsGroupResult{},
	}

	whereClause, args := metricsFilter(query)

	overallQuery := fmt.Sprintf(`
		SELECT
			count() as total_count,
			uniq(contact_id) as unique_count
		FROM touchpoints FINAL
		%s
	`, whereClause)

	row := r.client.Conn().QueryRow(ctx, overallQuery, args...)
	if err := row.Scan(&result.TotalCount, &result.UniqueCount); err != nil {
		return nil, fmt.Errorf("failed to query overall metrics: %w", err)
	}

	if query.GroupBy == "" {
		return result, nil
	}

	selectField, groupByClause, orderBy, err := groupingClauses(query.GroupBy)
	if err != nil {
		return nil, err
	}

	groupedQuery := fmt.Sprintf(`
		SELECT
			%s as group_value,
			count() as total_count,
			uniq(contact_id) as unique_count
		FROM touchpoints FINAL
		%s
		%s
		%s
	`, selectField, whereClause, groupByClause, orderBy)

	rows, err := r.client.Conn().Query(ctx, groupedQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped metrics: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close grouped metrics rows", zap.Error(err))
		}
	}(rows)

	for rows.Next() {
		var group repository.MetricsGroupResult
		if err := rows.Scan(&group.GroupValue, &group.TotalCount, &group.UniqueCount); err != nil {
			return nil, fmt.Errorf("failed to scan grouped metrics row: %w", err)
		}
		result.Groups = append(result.Groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grouped metrics rows: %w", err)
	}

	return result, nil
}

// ListTouchpoints returns a contact's touchpoints in chronological order.
// A limited query keeps the newest end of the path.
func (r *Repository) ListTouchpoints(ctx context.Context, query repository.TouchpointQuery) ([]domain.Touchpoint, error) {
	sql, args := touchpointsQuery(query)

	var touchpoints []domain.Touchpoint
	if err := r.client.Conn().Select(ctx, &touchpoints, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to list touchpoints: %w", err)
	}

	if query.Limit > 0 {
		reverseTouchpoints(touchpoints)
	}
	return touchpoints, nil
}

// touchpointsQuery reads newest first when limited so LIMIT drops the oldest rows
func touchpointsQuery(query repository.TouchpointQuery) (string, []interface{}) {
	sql := `
		SELECT
			touchpoint_id, event_type, timestamp, campaign_id, creative_id,
			journey_id, journey_step_id, contact_id, utm_source, utm_medium,
			utm_campaign, utm_content, payload, processed_at, version
		FROM touchpoints FINAL
		WHERE contact_id = ? AND timestamp >= ? AND timestamp <= ?
	`
	args := []interface{}{query.ContactID, query.From, query.To}
	if query.Limit <= 0 {
		return sql + " ORDER BY timestamp ASC, touchpoint_id ASC", args
	}
	return sql + " ORDER BY timestamp DESC, touchpoint_id DESC LIMIT ?", append(args, query.Limit)
}

func reverseTouchpoints(touchpoints []domain.Touchpoint) {
	for i, j := 0, len(touchpoints)-1; i < j; i, j = i+1, j-1 {
		touchpoints[i], touchpoints[j] = touchpoints[j], touchpoints[i]
	}
}

func metricsFilter(query repository.MetricsQuery) (string, []interface{}) {
	if query.EventType == "" {
		return "WHERE timestamp >= ? AND timestamp <= ?", []interface{}{query.From, query.To}
	}
	return "WHERE event_type = ? AND timestamp >= ? AND timestamp <= ?",
		[]interface{}{query.EventType, query.From, query.To}
}

func groupingClauses(groupBy string) (selectField, groupByClause, orderBy string, err error) {
	switch groupBy {
	case repository.GroupByCampaign:
		return "campaign_id", "GROUP BY campaign_id", "ORDER BY total_count DESC", nil
	case repository.GroupByEventType:
		return "event_type", "GROUP BY event_type", "ORDER BY total_count DESC", nil
	case repository.GroupByHour:
		return "formatDateTime(toStartOfHour(toDateTime(timestamp)), '%Y-%m-%d %H:00:00')",
			"GROUP BY toStartOfHour(toDateTime(timestamp))",
			"ORDER BY group_value ASC", nil
	case repository.GroupByDay:
		return "formatDateTime(toStartOfDay(toDateTime(timestamp)), '%Y-%m-%d')",
			"GROUP BY toStartOfDay(toDateTime(timestamp))",
			"ORDER BY group_value ASC", nil
	default:
		return "", "", "", fmt.Errorf("unsupported group_by value: %s (supported: campaign, event_type, hour, day)", groupBy)
	}
}
