package sqlite

import (
	"context"
	"database/sql"

	"linktrack/internal/analytics/usecase"
)

// ClickRepository implements the usecase.ClickRepository interface on SQLite.
type ClickRepository struct {
	db *sql.DB
}

// NewClickRepository creates a new SQLite-backed click repository.
func NewClickRepository(db *sql.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Ensure ClickRepository implements usecase.ClickRepository at compile time
var _ usecase.ClickRepository = (*ClickRepository)(nil)

// Insert stores a click event with enrichment data.
func (r *ClickRepository) Insert(ctx context.Context, click usecase.Click) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO clicks (short_code, link_id, owner_id, platform, clicked_at, device_type, traffic_source) VALUES (?, ?, ?, ?, ?, ?, ?)",
		click.ShortCode,
		click.LinkID,
		click.OwnerID,
		click.Platform,
		click.ClickedAt,
		click.DeviceType,
		click.TrafficSource,
	)
	return err
}

// CountByShortCode returns the total number of recorded clicks for a short code.
func (r *ClickRepository) CountByShortCode(ctx context.Context, shortCode string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clicks WHERE short_code = ?", shortCode).Scan(&count)
	return count, err
}

// CountByDevice returns click counts grouped by device type.
func (r *ClickRepository) CountByDevice(ctx context.Context, shortCode string) ([]usecase.GroupCount, error) {
	return r.groupCount(ctx,
		"SELECT device_type, COUNT(*) FROM clicks WHERE short_code = ? GROUP BY device_type ORDER BY COUNT(*) DESC",
		shortCode)
}

// CountBySource returns click counts grouped by traffic source.
func (r *ClickRepository) CountBySource(ctx context.Context, shortCode string) ([]usecase.GroupCount, error) {
	return r.groupCount(ctx,
		"SELECT traffic_source, COUNT(*) FROM clicks WHERE short_code = ? GROUP BY traffic_source ORDER BY COUNT(*) DESC",
		shortCode)
}

func (r *ClickRepository) groupCount(ctx context.Context, query, shortCode string) ([]usecase.GroupCount, error) {
	rows, err := r.db.QueryContext(ctx, query, shortCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []usecase.GroupCount
	for rows.Next() {
		var gc usecase.GroupCount
		if err := rows.Scan(&gc.Value, &gc.Count); err != nil {
			return nil, err
		}
		result = append(result, gc)
	}
	return result, rows.Err()
}
