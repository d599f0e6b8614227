package usecase

import (
	"context"
	"encoding/json"

	"linktrack/internal/domain/event"
	"linktrack/internal/eventbus"

	"go.uber.org/zap"
)

// Compile-time interface check
var _ eventbus.EventHandler = (*LoggingEventHandler)(nil)

// LoggingEventHandler logs every domain event that crosses the bus.
type LoggingEventHandler struct {
	logger *zap.Logger
}

// NewLoggingEventHandler creates a new logging event handler.
func NewLoggingEventHandler(logger *zap.Logger) *LoggingEventHandler {
	return &LoggingEventHandler{logger: logger}
}

func (h *LoggingEventHandler) HandlerName() string {
	return "logging_handler"
}

// EventName returns "" to subscribe to all events.
func (h *LoggingEventHandler) EventName() string {
	return ""
}

// Handle logs the event details.
func (h *LoggingEventHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	switch envelope.EventName {
	case "campaign.created":
		var evt event.CampaignCreated
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.logger.Info("campaign created",
			zap.String("owner_id", evt.OwnerID),
			zap.String("original_url", evt.OriginalURL),
			zap.Strings("short_codes", evt.ShortCodes),
		)
	case "link.clicked":
		var evt event.LinkClicked
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.logger.Info("link clicked",
			zap.String("short_code", evt.ShortCode),
			zap.String("platform", evt.Platform),
			zap.String("ip", evt.IPAddress),
		)
	case "link.deleted":
		var evt event.LinkDeleted
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			return err
		}
		h.logger.Info("link deleted",
			zap.String("short_code", evt.ShortCode),
			zap.String("owner_id", evt.OwnerID),
		)
	default:
		h.logger.Info("event",
			zap.String("event_name", envelope.EventName),
			zap.String("aggregate_id", envelope.AggregateID),
		)
	}
	return nil
}
