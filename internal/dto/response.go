package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"event_type is required"`
}

// PublishTouchpointResponse represents a successful touchpoint ingestion response
type PublishTouchpointResponse struct {
	TouchpointID string `json:"touchpoint_id" example:"9f2c...e1"`
	Status       string `json:"status" example:"accepted"`
}

// PublishBulkTouchpointsResponse represents a bulk ingestion response
type PublishBulkTouchpointsResponse struct {
	Accepted      int      `json:"accepted" example:"5"`
	Rejected      int      `json:"rejected" example:"0"`
	TouchpointIDs []string `json:"touchpoint_ids,omitempty"`
	Errors        []string `json:"errors,omitempty" example:"timestamp cannot be in the future"`
}

// MetricsGroupData represents aggregated metrics for a specific group
type MetricsGroupData struct {
	GroupValue  string `json:"group_value" example:"cmp_987"`
	TotalCount  uint64 `json:"total_count" example:"1500"`
	UniqueCount uint64 `json:"unique_count" example:"900"`
}

// GetMetricsResponse represents the metrics query response
type GetMetricsResponse struct {
	EventType     string             `json:"event_type,omitempty" example:"email_clicked"`
	EventCategory string             `json:"event_category,omitempty" example:"email"`
	From          int64              `json:"from" example:"1723475612"`
	To            int64              `json:"to" example:"1723562012"`
	TotalCount    uint64             `json:"total_count" example:"5000"`
	UniqueCount   uint64             `json:"unique_count" example:"2500"`
	GroupBy       string             `json:"group_by,omitempty" example:"campaign"`
	Groups        []MetricsGroupData `json:"groups,omitempty"`
}

// GetAttributionResponse represents the credit split over one contact's path
type GetAttributionResponse struct {
	ContactID        string             `json:"contact_id" example:"contact_123"`
	Model            string             `json:"model" example:"position_based"`
	From             int64              `json:"from" example:"1723475612"`
	To               int64              `json:"to" example:"1723562012"`
	TouchpointCount  int                `json:"touchpoint_count" example:"7"`
	CampaignSequence []string           `json:"campaign_sequence" example:"cmp_1,cmp_2,cmp_3"`
	Weights          map[string]float64 `json:"weights"`
	TotalWeight      float64            `json:"total_weight" example:"1"`
	// Truncated is set when only the most recent touchpoints were attributed
	Truncated        bool               `json:"truncated" example:"false"`
}

// SignificanceResponse represents the outcome of an A/B comparison
type SignificanceResponse struct {
	ControlID               string     `json:"control_id" example:"var_control"`
	TreatmentID             string     `json:"treatment_id" example:"var_b"`
	ConfidenceLevel         float64    `json:"confidence_level" example:"0.95"`
	MinimumDetectableEffect float64    `json:"minimum_detectable_effect" example:"0.05"`
	TrafficPercentage       float64    `json:"traffic_percentage" example:"100"`
	IsSignificant           bool       `json:"is_significant" example:"false"`
	Confidence              float64    `json:"confidence" example:"0.64"`
	PValue                  float64    `json:"p_value" example:"0.36"`
	Lift                    float64    `json:"lift" example:"0.5"`
	LiftConfidenceInterval  [2]float64 `json:"lift_confidence_interval"`
	Winner                  string     `json:"winner,omitempty" example:"var_b"`
	Recommendation          string     `json:"recommendation" example:"Results not statistically significant. Continue collecting data."`
}

// ScoreCreativeResponse represents a creative effectiveness score
type ScoreCreativeResponse struct {
	CreativeID string  `json:"creative_id,omitempty" example:"crv_12"`
	Score      float64 `json:"score" example:"75"`
	Tier       string  `json:"tier" example:"highly_effective"`
	Confidence float64 `json:"confidence" example:"0.6"`
}

// ValidationIssueResponse is one template validation finding
type ValidationIssueResponse struct {
	Severity string `json:"severity" example:"warning"`
	Field    string `json:"field" example:"cta_text"`
	Message  string `json:"message" example:"Missing call-to-action"`
}

// CreativeAnalysisResponse is the validation and score of one creative
type CreativeAnalysisResponse struct {
	CreativeID      string                    `json:"creative_id" example:"crv_12"`
	Valid           bool                      `json:"valid" example:"true"`
	ValidationScore float64                   `json:"validation_score" example:"90"`
	Issues          []ValidationIssueResponse `json:"issues"`
	CES             ScoreCreativeResponse     `json:"ces"`
}

// AnalyzeCampaignResponse aggregates creative analyses for a campaign
type AnalyzeCampaignResponse struct {
	CampaignID       string                     `json:"campaign_id" example:"cmp_987"`
	AnalysisType     string                     `json:"analysis_type" example:"pre_launch"`
	AverageScore     float64                    `json:"average_score" example:"72.5"`
	Tier             string                     `json:"tier" example:"highly_effective"`
	Confidence       float64                    `json:"confidence" example:"0.6"`
	InvalidCreatives int                        `json:"invalid_creatives" example:"0"`
	Creatives        []CreativeAnalysisResponse `json:"creatives"`
	Recommendations  []string                   `json:"recommendations"`
}
