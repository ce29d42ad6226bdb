package events

import (
	"context"
	"medipos-service/internal/app/contracts"
)

type noopPublisher struct{}

// NewNoopPublisher is wired in demo/offline mode where no broker runs.
func NewNoopPublisher() contracts.EventPublisher {
	return &noopPublisher{}
}

func (p *noopPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	return nil
}
