package repository

import (
	"context"
	"time"

	"linktrack/internal/cache"
	"linktrack/internal/domain"
	"linktrack/internal/usecase"
)

// Compile-time interface check
var _ usecase.LinkRepository = (*CachedLinkRepository)(nil)

// CachedLinkRepository wraps a LinkRepository with caching capabilities.
// It implements the decorator pattern to add caching without modifying the
// underlying repository. Only the global resolution lookup is cached; the
// owner-facing reads always hit the store.
type CachedLinkRepository struct {
	repo  usecase.LinkRepository
	cache cache.LinkCache
}

// NewCachedLinkRepository creates a new cached repository wrapper.
func NewCachedLinkRepository(repo usecase.LinkRepository, c cache.LinkCache) *CachedLinkRepository {
	return &CachedLinkRepository{repo: repo, cache: c}
}

// CreateBatch persists the campaign and warms the cache for each new link.
func (r *CachedLinkRepository) CreateBatch(ctx context.Context, links []*domain.TrackingLink) error {
	if err := r.repo.CreateBatch(ctx, links); err != nil {
		return err
	}

	for _, link := range links {
		_ = r.cache.Set(ctx, link)
	}
	return nil
}

// FindByShortCode retrieves a link, checking cache first.
func (r *CachedLinkRepository) FindByShortCode(ctx context.Context, shortCode string) (*domain.TrackingLink, error) {
	if cached, err := r.cache.Get(ctx, shortCode); err == nil && cached != nil {
		return cached, nil
	}

	link, err := r.repo.FindByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, link)
	return link, nil
}

// FindByID is not cached; management reads need current counters.
func (r *CachedLinkRepository) FindByID(ctx context.Context, ownerID, linkID string) (*domain.TrackingLink, error) {
	return r.repo.FindByID(ctx, ownerID, linkID)
}

// ListByOwner is not cached; listings need current counters.
func (r *CachedLinkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TrackingLink, error) {
	return r.repo.ListByOwner(ctx, ownerID)
}

// IncrementClicks atomically increments the click count and invalidates
// the cached copy, whose counter is now stale.
func (r *CachedLinkRepository) IncrementClicks(ctx context.Context, shortCode string, clickedAt time.Time) error {
	if err := r.repo.IncrementClicks(ctx, shortCode, clickedAt); err != nil {
		return err
	}

	_ = r.cache.Invalidate(ctx, shortCode)
	return nil
}

// Delete removes the link and drops it from the cache so the short code
// stops resolving immediately.
func (r *CachedLinkRepository) Delete(ctx context.Context, ownerID, linkID string) error {
	link, err := r.repo.FindByID(ctx, ownerID, linkID)
	if err != nil {
		return err
	}

	if err := r.repo.Delete(ctx, ownerID, linkID); err != nil {
		return err
	}

	_ = r.cache.Invalidate(ctx, link.ShortCode)
	return nil
}

// CodeExists is not cached to ensure accurate existence checks.
func (r *CachedLinkRepository) CodeExists(ctx context.Context, shortCode string) (bool, error) {
	return r.repo.CodeExists(ctx, shortCode)
}
