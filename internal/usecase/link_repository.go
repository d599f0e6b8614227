package usecase

//go:generate mockery --name=LinkRepository --output=../testutil/mocks --outpkg=mocks

import (
	"context"
	"time"

	"linktrack/internal/domain"
)

// LinkRepository is the persistence port for tracking links. It is defined
// here and implemented in the repository layer, following the Dependency
// Inversion Principle.
//
// A single stored row backs both the global short-code index and the
// owner-scoped listing, so CreateBatch and Delete are atomic across the two
// views by construction.
type LinkRepository interface {
	// CreateBatch persists a campaign's links in one transaction.
	// Either all rows become visible or none do.
	CreateBatch(ctx context.Context, links []*domain.TrackingLink) error

	// FindByShortCode resolves a link globally, without knowing the owner.
	// Returns domain.ErrLinkNotFound if the code is unknown.
	FindByShortCode(ctx context.Context, shortCode string) (*domain.TrackingLink, error)

	// FindByID retrieves a link from the owner's namespace.
	// Returns domain.ErrLinkNotFound if absent or owned by someone else.
	FindByID(ctx context.Context, ownerID, linkID string) (*domain.TrackingLink, error)

	// ListByOwner returns the owner's links ordered by creation time,
	// newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.TrackingLink, error)

	// IncrementClicks atomically adds 1 to the click counter and stamps
	// the last click time. Safe under arbitrary concurrent callers; the
	// increment happens server-side, never read-modify-write.
	IncrementClicks(ctx context.Context, shortCode string, clickedAt time.Time) error

	// Delete removes the link, and with it both the owner-scoped record
	// and the global resolution entry.
	Delete(ctx context.Context, ownerID, linkID string) error

	// CodeExists checks whether a short code is already taken.
	CodeExists(ctx context.Context, shortCode string) (bool, error)
}
