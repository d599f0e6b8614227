package usecase

//go:generate mockery --name=ClickRepository --output=../../testutil/mocks --outpkg=mocks

import "context"

// Click is one recorded, enriched click.
type Click struct {
	ShortCode     string
	LinkID        string
	OwnerID       string
	Platform      string
	ClickedAt     int64 // unix milliseconds
	DeviceType    string
	TrafficSource string
}

// GroupCount is a click count for one value of a grouping dimension.
type GroupCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// ClickRepository is the persistence port for enriched click records.
type ClickRepository interface {
	// Insert stores one click.
	Insert(ctx context.Context, click Click) error

	// CountByShortCode returns the total recorded clicks for a short code.
	CountByShortCode(ctx context.Context, shortCode string) (int64, error)

	// CountByDevice returns click counts grouped by device type.
	CountByDevice(ctx context.Context, shortCode string) ([]GroupCount, error)

	// CountBySource returns click counts grouped by traffic source.
	CountBySource(ctx context.Context, shortCode string) ([]GroupCount, error)
}
