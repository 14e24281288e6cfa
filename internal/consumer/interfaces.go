package consumer

import (
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

// MessageParser turns a raw queue message body into a touchpoint
type MessageParser interface {
	Parse(body []byte) (*domain.Touchpoint, error)
}
