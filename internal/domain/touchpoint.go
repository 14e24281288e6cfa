package domain

import "time"

// Touchpoint represents a marketing interaction stored in ClickHouse.
// Touchpoints are immutable once written.
type Touchpoint struct {
	TouchpointID  string    `ch:"touchpoint_id"`
	EventType     string    `ch:"event_type"`
	Timestamp     int64     `ch:"timestamp"`
	CampaignID    string    `ch:"campaign_id"`
	CreativeID    string    `ch:"creative_id"`
	JourneyID     string    `ch:"journey_id"`
	JourneyStepID string    `ch:"journey_step_id"`
	ContactID     string    `ch:"contact_id"`
	UTMSource     string    `ch:"utm_source"`
	UTMMedium     string    `ch:"utm_medium"`
	UTMCampaign   string    `ch:"utm_campaign"`
	UTMContent    string    `ch:"utm_content"`
	Payload       string    `ch:"payload"`
	ProcessedAt   time.Time `ch:"processed_at"`
	Version       uint64    `ch:"version"`
}
