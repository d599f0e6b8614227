package usecase

import (
	"context"
)

// LinkStats is the aggregated click breakdown for one link.
type LinkStats struct {
	ShortCode   string       `json:"shortCode"`
	TotalClicks int64        `json:"totalClicks"`
	ByDevice    []GroupCount `json:"byDevice"`
	BySource    []GroupCount `json:"bySource"`
}

// StatsService aggregates click records for the owner-facing stats
// endpoint. The authoritative click counter lives on the link itself;
// these breakdowns come from the enriched per-click records.
type StatsService struct {
	clicks ClickRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(clicks ClickRepository) *StatsService {
	return &StatsService{clicks: clicks}
}

// LinkStats returns the click breakdown for a short code.
func (s *StatsService) LinkStats(ctx context.Context, shortCode string) (*LinkStats, error) {
	total, err := s.clicks.CountByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	byDevice, err := s.clicks.CountByDevice(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	bySource, err := s.clicks.CountBySource(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	return &LinkStats{
		ShortCode:   shortCode,
		TotalClicks: total,
		ByDevice:    byDevice,
		BySource:    bySource,
	}, nil
}
