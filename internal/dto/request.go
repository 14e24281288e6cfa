package dto

// PublishTouchpointRequest represents a single touchpoint to ingest
type PublishTouchpointRequest struct {
	EventType     string                 `json:"event_type" binding:"required,event_type" example:"email_clicked"`
	Timestamp     int64                  `json:"timestamp" binding:"required" example:"1723475612"`
	CampaignID    string                 `json:"campaign_id" example:"cmp_987"`
	CreativeID    string                 `json:"creative_id" example:"crv_12"`
	JourneyID     string                 `json:"journey_id" example:"jrn_4"`
	JourneyStepID string                 `json:"journey_step_id" example:"jrn_4_step_2"`
	ContactID     string                 `json:"contact_id" example:"contact_123"`
	UTMSource     string                 `json:"utm_source" example:"newsletter"`
	UTMMedium     string                 `json:"utm_medium" example:"email"`
	UTMCampaign   string                 `json:"utm_campaign" example:"spring_sale"`
	UTMContent    string                 `json:"utm_content" example:"hero_cta"`
	Payload       map[string]interface{} `json:"payload" swaggertype:"object,string" example:"link:https://example.com/sale"`
}

// PublishTouchpointsBulkRequest represents a bulk touchpoint ingestion request
type PublishTouchpointsBulkRequest struct {
	Touchpoints []PublishTouchpointRequest `json:"touchpoints" binding:"required,min=1,max=1000,dive"`
}

// GetMetricsRequest represents a touchpoint metrics query. An empty
// EventType aggregates across all event types.
type GetMetricsRequest struct {
	EventType string `form:"event_type" binding:"omitempty,event_type" example:"email_clicked"`
	From      int64  `form:"from" binding:"required" example:"1723475612"`
	To        int64  `form:"to" binding:"required" example:"1723562012"`
	GroupBy   string `form:"group_by" example:"campaign"`
}

// GetAttributionRequest represents an attribution query for one contact's path
type GetAttributionRequest struct {
	ContactID string `form:"contact_id" binding:"required" example:"contact_123"`
	From      int64  `form:"from" binding:"required" example:"1723475612"`
	To        int64  `form:"to" binding:"required" example:"1723562012"`
	Model     string `form:"model" binding:"omitempty,attribution_model" example:"position_based"`
}

// VariantRequest is one measured experiment arm
type VariantRequest struct {
	ID          string `json:"id" binding:"required" example:"var_control"`
	Name        string `json:"name" example:"Control"`
	IsControl   bool   `json:"is_control" example:"true"`
	SampleSize  int64  `json:"sample_size" example:"1000"`
	Conversions int64  `json:"conversions" example:"20"`
}

// ComputeSignificanceRequest represents an A/B significance computation.
// Omitted settings fall back to the service defaults.
type ComputeSignificanceRequest struct {
	ConfidenceLevel         *float64         `json:"confidence_level" binding:"omitempty,gt=0,lt=1" example:"0.95"`
	MinimumDetectableEffect *float64         `json:"minimum_detectable_effect" binding:"omitempty,gt=0,lt=1" example:"0.05"`
	TrafficPercentage       *float64         `json:"traffic_percentage" binding:"omitempty,gt=0,lte=100" example:"100"`
	Variants                []VariantRequest `json:"variants" binding:"required,dive"`
}

// CampaignMetricsRequest carries observed engagement rates, each in [0,1]
type CampaignMetricsRequest struct {
	OpenRate       float64 `json:"open_rate" binding:"gte=0,lte=1" example:"0.32"`
	ClickRate      float64 `json:"click_rate" binding:"gte=0,lte=1" example:"0.08"`
	ConversionRate float64 `json:"conversion_rate" binding:"gte=0,lte=1" example:"0.02"`
}

// ScoreCreativeRequest represents a creative effectiveness scoring request
type ScoreCreativeRequest struct {
	CreativeID      string                  `json:"creative_id" example:"crv_12"`
	AIQualityScore  float64                 `json:"ai_quality_score" binding:"gte=0,lte=100" example:"82"`
	BrandVoiceScore float64                 `json:"brand_voice_score" binding:"gte=0,lte=100" example:"90"`
	Metrics         *CampaignMetricsRequest `json:"metrics"`
}

// CreativeRequest is one creative submitted for campaign analysis
type CreativeRequest struct {
	CreativeID      string  `json:"creative_id" binding:"required" example:"crv_12"`
	Name            string  `json:"name" example:"Spring hero"`
	Format          string  `json:"format" example:"html_email"`
	SubjectLine     string  `json:"subject_line" example:"Spring sale starts today"`
	BodyHTML        string  `json:"body_html" example:"<p>Save 20%</p>"`
	BodyPlain       string  `json:"body_plain" example:"Save 20%"`
	CTAText         string  `json:"cta_text" example:"Shop now"`
	AIQualityScore  float64 `json:"ai_quality_score" binding:"gte=0,lte=100" example:"82"`
	BrandVoiceScore float64 `json:"brand_voice_score" binding:"gte=0,lte=100" example:"90"`
}

// AnalyzeCampaignRequest validates and scores every creative of a campaign.
// Metrics, when present, apply to all creatives.
type AnalyzeCampaignRequest struct {
	CampaignID string                  `json:"campaign_id" binding:"required" example:"cmp_987"`
	Creatives  []CreativeRequest       `json:"creatives" binding:"required,min=1,max=100,dive"`
	Metrics    *CampaignMetricsRequest `json:"metrics"`
}
