package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"linktrack/internal/domain"
	"linktrack/internal/domain/event"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	maxRetries   = 5
	maxURLLength = 2048
)

// LinkService implements the owner-facing link management operations:
// campaign fan-out, listing and deletion.
type LinkService struct {
	repo    LinkRepository
	bus     EventPublisher // may be nil
	logger  *zap.Logger
	baseURL string
}

// NewLinkService creates a new link management service.
func NewLinkService(repo LinkRepository, bus EventPublisher, logger *zap.Logger, baseURL string) *LinkService {
	return &LinkService{
		repo:    repo,
		bus:     bus,
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// TrackingURL returns the public redirect URL for a short code.
func (s *LinkService) TrackingURL(shortCode string) string {
	return s.baseURL + "/r/" + shortCode
}

// CreateCampaignLinks normalizes and validates rawURL, then creates one
// tracking link per campaign platform in a single all-or-nothing batch.
// Returns the 4 created links in platform order.
func (s *LinkService) CreateCampaignLinks(ctx context.Context, ownerID, rawURL string) ([]*domain.TrackingLink, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		// Check for context cancellation between retries
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		links := make([]*domain.TrackingLink, 0, len(domain.CampaignPlatforms))
		for _, platform := range domain.CampaignPlatforms {
			code, err := s.generateUniqueCode(ctx)
			if err != nil {
				return nil, err
			}
			links = append(links, domain.NewTrackingLink(code, normalized, ownerID, platform))
		}

		if err := s.repo.CreateBatch(ctx, links); err != nil {
			// A code generated above can still collide with a concurrent
			// insert; the unique index reports it and the whole batch is
			// rolled back, so retry with fresh codes.
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}

		s.publishCampaignCreated(ctx, ownerID, normalized, links)
		return links, nil
	}

	return nil, domain.ErrCodeConflict
}

// ListLinks returns the owner's links, newest first.
func (s *LinkService) ListLinks(ctx context.Context, ownerID string) ([]*domain.TrackingLink, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetLink retrieves one of the owner's links by id.
func (s *LinkService) GetLink(ctx context.Context, ownerID, linkID string) (*domain.TrackingLink, error) {
	return s.repo.FindByID(ctx, ownerID, linkID)
}

// DeleteLink removes a link from both the owner's listing and the global
// resolution index.
func (s *LinkService) DeleteLink(ctx context.Context, ownerID, linkID string) error {
	link, err := s.repo.FindByID(ctx, ownerID, linkID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, ownerID, linkID); err != nil {
		return err
	}

	// Fire-and-forget: deletion already succeeded.
	if s.bus != nil {
		go s.publishLinkDeleted(link)
	}
	return nil
}

// generateUniqueCode generates a short code and pre-checks it against the
// store, retrying on collision.
func (s *LinkService) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		code, err := domain.GenerateShortCode()
		if err != nil {
			return "", err
		}

		taken, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", domain.ErrCodeConflict
}

func (s *LinkService) publishCampaignCreated(ctx context.Context, ownerID, originalURL string, links []*domain.TrackingLink) {
	if s.bus == nil {
		return
	}

	codes := lo.Map(links, func(l *domain.TrackingLink, _ int) string {
		return l.ShortCode
	})
	if err := s.bus.Publish(ctx, event.NewCampaignCreated(ownerID, originalURL, codes)); err != nil {
		s.logger.Warn("failed to publish campaign created event",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
	}
}

func (s *LinkService) publishLinkDeleted(link *domain.TrackingLink) {
	evt := event.NewLinkDeleted(link.ShortCode, link.ID, link.OwnerID)
	if err := s.bus.Publish(context.Background(), evt); err != nil {
		s.logger.Warn("failed to publish link deleted event",
			zap.String("short_code", link.ShortCode),
			zap.Error(err),
		)
	}
}

// NormalizeURL prepares owner input for storage: bare domains get an
// https:// scheme, then the result must parse as an absolute http(s) URL
// with a host. Normalizing an already-normalized URL is a no-op.
func NormalizeURL(rawURL string) (string, error) {
	cleaned := strings.TrimSpace(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("%w: url is empty", domain.ErrMalformedURL)
	}
	if len(cleaned) > maxURLLength {
		return "", fmt.Errorf("%w: url exceeds maximum length of %d characters", domain.ErrMalformedURL, maxURLLength)
	}

	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		cleaned = "https://" + cleaned
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: url scheme must be http or https, got: %s", domain.ErrMalformedURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: url must have a host", domain.ErrMalformedURL)
	}

	return cleaned, nil
}

// isUniqueViolation reports whether err is a unique constraint failure.
// SQLite reports these in the error message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
