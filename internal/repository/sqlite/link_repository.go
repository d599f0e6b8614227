package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"linktrack/internal/domain"
	"linktrack/internal/usecase"
)

// LinkRepository implements usecase.LinkRepository on SQLite.
//
// One row per link. The unique index on short_code is the global
// resolution index; the (owner_id, created_at) index serves the owner
// listing. Timestamps are stored as unix milliseconds to keep the driver's
// type mapping trivial.
type LinkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new SQLite-backed link repository.
func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Ensure LinkRepository implements usecase.LinkRepository at compile time
var _ usecase.LinkRepository = (*LinkRepository)(nil)

const linkColumns = "id, short_code, original_url, platform, owner_id, click_count, created_at, last_click_at"

// CreateBatch inserts a campaign's links inside one transaction. Any
// failure, including a short code collision, rolls the whole batch back so
// no partial campaign is ever visible.
func (r *LinkRepository) CreateBatch(ctx context.Context, links []*domain.TrackingLink) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO links (id, short_code, original_url, platform, owner_id, click_count, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare batch insert: %w", err)
	}
	defer stmt.Close()

	for _, link := range links {
		if _, err := stmt.ExecContext(ctx,
			link.ID,
			link.ShortCode,
			link.OriginalURL,
			string(link.Platform),
			link.OwnerID,
			link.ClickCount,
			link.CreatedAt.UnixMilli(),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindByShortCode resolves a link globally by its short code.
func (r *LinkRepository) FindByShortCode(ctx context.Context, shortCode string) (*domain.TrackingLink, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE short_code = ?", shortCode)
	return scanLink(row)
}

// FindByID retrieves a link from the owner's namespace.
func (r *LinkRepository) FindByID(ctx context.Context, ownerID, linkID string) (*domain.TrackingLink, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE id = ? AND owner_id = ?", linkID, ownerID)
	return scanLink(row)
}

// ListByOwner returns the owner's links, newest first. Links created in
// the same millisecond (one campaign batch) keep a stable id order.
func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TrackingLink, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE owner_id = ? ORDER BY created_at DESC, id ASC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*domain.TrackingLink
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// IncrementClicks adds 1 to the click counter server-side. The UPDATE is
// atomic; concurrent callers never lose an increment.
func (r *LinkRepository) IncrementClicks(ctx context.Context, shortCode string, clickedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE links SET click_count = click_count + 1, last_click_at = ? WHERE short_code = ?",
		clickedAt.UnixMilli(), shortCode)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// Delete removes the link row, which removes it from the owner listing and
// the global resolution index together.
func (r *LinkRepository) Delete(ctx context.Context, ownerID, linkID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM links WHERE id = ? AND owner_id = ?", linkID, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// CodeExists checks whether a short code is already taken.
func (r *LinkRepository) CodeExists(ctx context.Context, shortCode string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM links WHERE short_code = ?", shortCode).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanLink.
type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*domain.TrackingLink, error) {
	var (
		link        domain.TrackingLink
		platform    string
		createdAt   int64
		lastClickAt sql.NullInt64
	)

	err := s.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&platform,
		&link.OwnerID,
		&link.ClickCount,
		&createdAt,
		&lastClickAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	link.Platform = domain.Platform(platform)
	link.CreatedAt = time.UnixMilli(createdAt).UTC()
	if lastClickAt.Valid {
		t := time.UnixMilli(lastClickAt.Int64).UTC()
		link.LastClickAt = &t
	}
	return &link, nil
}
