package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/queue"
)

// JSONTouchpointParser implements MessageParser for queue.TouchpointMessage bodies
type JSONTouchpointParser struct {
	now func() time.Time
}

// NewJSONTouchpointParser creates a new JSON touchpoint parser
func NewJSONTouchpointParser() *JSONTouchpointParser {
	return &JSONTouchpointParser{now: time.Now}
}

// Parse decodes a message body and validates the fields the store relies on
func (p *JSONTouchpointParser) Parse(body []byte) (*domain.Touchpoint, error) {
	var msg queue.TouchpointMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if msg.TouchpointID == "" {
		return nil, errors.New("touchpoint_id is missing")
	}
	if !domain.EventType(msg.EventType).IsValid() {
		return nil, fmt.Errorf("unknown event_type %q", msg.EventType)
	}
	if msg.Timestamp <= 0 {
		return nil, fmt.Errorf("invalid timestamp %d", msg.Timestamp)
	}

	payload := "{}"
	if len(msg.Payload) > 0 {
		payloadBytes, err := json.Marshal(msg.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		payload = string(payloadBytes)
	}

	now := p.now()
	return &domain.Touchpoint{
		TouchpointID:  msg.TouchpointID,
		EventType:     msg.EventType,
		Timestamp:     msg.Timestamp,
		CampaignID:    msg.CampaignID,
		CreativeID:    msg.CreativeID,
		JourneyID:     msg.JourneyID,
		JourneyStepID: msg.JourneyStepID,
		ContactID:     msg.ContactID,
		UTMSource:     msg.UTMSource,
		UTMMedium:     msg.UTMMedium,
		UTMCampaign:   msg.UTMCampaign,
		UTMContent:    msg.UTMContent,
		Payload:       payload,
		ProcessedAt:   now,
		Version:       uint64(now.UnixNano()),
	}, nil
}
