package contracts

import "context"

// EventPublisher emits workflow events for downstream consumers (receipt
// printing, audit trail). Publishing is best-effort: callers log failures
// and never fail the triggering operation.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}
