package consumer

import (
	"context"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

// Envelope carries a parsed touchpoint together with the callbacks that
// settle its source message
type Envelope struct {
	Touchpoint *domain.Touchpoint
	ack        func(context.Context) error
	nack       func(context.Context) error
}

// NewEnvelope creates a new message envelope
func NewEnvelope(touchpoint *domain.Touchpoint, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Touchpoint: touchpoint,
		ack:        ack,
		nack:       nack,
	}
}

// Ack acknowledges successful processing
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack leaves the source message for redelivery
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}
