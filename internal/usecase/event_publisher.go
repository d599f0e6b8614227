package usecase

import (
	"context"

	"linktrack/internal/domain/event"
)

// EventPublisher is the outbound port for domain events. Satisfied by the
// watermill event bus; nil-checked by callers so the services also run
// without one (tests, degraded mode).
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
