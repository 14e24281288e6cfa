package queue

import "github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"

// TouchpointMessage is the JSON body carried on the touchpoint queue.
// The API publishes it and the consumer parses it back.
type TouchpointMessage struct {
	TouchpointID  string                 `json:"touchpoint_id"`
	EventType     string                 `json:"event_type"`
	Timestamp     int64                  `json:"timestamp"`
	CampaignID    string                 `json:"campaign_id,omitempty"`
	CreativeID    string                 `json:"creative_id,omitempty"`
	JourneyID     string                 `json:"journey_id,omitempty"`
	JourneyStepID string                 `json:"journey_step_id,omitempty"`
	ContactID     string                 `json:"contact_id,omitempty"`
	UTMSource     string                 `json:"utm_source,omitempty"`
	UTMMedium     string                 `json:"utm_medium,omitempty"`
	UTMCampaign   string                 `json:"utm_campaign,omitempty"`
	UTMContent    string                 `json:"utm_content,omitempty"`
	Payload       map[string]interface{} `json:"payload,omitempty"`
}

// NewTouchpointMessage builds the queue message for an accepted request
func NewTouchpointMessage(req *dto.PublishTouchpointRequest, touchpointID string) *TouchpointMessage {
	return &TouchpointMessage{
		TouchpointID:  touchpointID,
		EventType:     req.EventType,
		Timestamp:     req.Timestamp,
		CampaignID:    req.CampaignID,
		CreativeID:    req.CreativeID,
		JourneyID:     req.JourneyID,
		JourneyStepID: req.JourneyStepID,
		ContactID:     req.ContactID,
		UTMSource:     req.UTMSource,
		UTMMedium:     req.UTMMedium,
		UTMCampaign:   req.UTMCampaign,
		UTMContent:    req.UTMContent,
		Payload:       req.Payload,
	}
}
