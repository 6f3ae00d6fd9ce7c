package consumer

import (
	"context"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

// Envelope wraps a performance snapshot with acknowledgment callbacks
type Envelope struct {
	Snapshot *domain.PerformanceSnapshot
	ack      func(context.Context) error
	nack     func(context.Context) error
}

// NewEnvelope creates a new message envelope
func NewEnvelope(snapshot *domain.PerformanceSnapshot, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Snapshot: snapshot,
		ack:      ack,
		nack:     nack,
	}
}

// Ack acknowledges successful processing
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack negatively acknowledges processing
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}
