// Package analytics records enriched click events and aggregates them for
// the owner-facing stats endpoint.
package analytics

import (
	"context"
	"encoding/json"

	"linktrack/internal/analytics/enrichment"
	"linktrack/internal/analytics/usecase"
	"linktrack/internal/domain/event"
	"linktrack/internal/eventbus"

	"go.uber.org/zap"
)

// Compile-time interface check
var _ eventbus.EventHandler = (*ClickRecorder)(nil)

// ClickRecorder consumes link.clicked events off the bus, enriches them
// with device and traffic-source classification, and persists one row per
// click. It runs strictly off the redirect path; a failure here never
// affects the visitor or the authoritative click counter.
type ClickRecorder struct {
	clicks usecase.ClickRepository
	logger *zap.Logger
}

// NewClickRecorder creates a new click recorder.
func NewClickRecorder(clicks usecase.ClickRepository, logger *zap.Logger) *ClickRecorder {
	return &ClickRecorder{clicks: clicks, logger: logger}
}

func (r *ClickRecorder) HandlerName() string {
	return "click_recorder"
}

func (r *ClickRecorder) EventName() string {
	return "link.clicked"
}

// Handle enriches and stores one click event.
func (r *ClickRecorder) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var evt event.LinkClicked
	if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
		return err
	}

	click := usecase.Click{
		ShortCode:     evt.ShortCode,
		LinkID:        evt.LinkID,
		OwnerID:       evt.OwnerID,
		Platform:      evt.Platform,
		ClickedAt:     evt.OccurredAtT.UnixMilli(),
		DeviceType:    enrichment.DetectDevice(evt.UserAgent),
		TrafficSource: enrichment.ClassifySource(evt.Referer),
	}

	if err := r.clicks.Insert(ctx, click); err != nil {
		r.logger.Warn("failed to record click",
			zap.String("short_code", evt.ShortCode),
			zap.Error(err),
		)
		return err
	}
	return nil
}
