package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"linktrack/internal/domain"
	"linktrack/internal/domain/event"
	"linktrack/internal/metrics"

	"go.uber.org/zap"
)

// DefaultSideEffectTimeout caps how long the click side effects may run
// after the redirect has been served.
const DefaultSideEffectTimeout = 2 * time.Second

// ClickMeta carries the request context of a resolved click, extracted by
// the handler before the redirect is written.
type ClickMeta struct {
	UserAgent string
	IPAddress string
	Referer   string
}

// Resolver turns short codes into redirect destinations and records clicks.
//
// The click counter increment and the analytics event are best-effort: they
// start before the redirect is issued but run detached from the request, so
// a slow or failing store never converts a successful resolution into a
// user-visible failure.
type Resolver struct {
	repo    LinkRepository
	bus     EventPublisher // may be nil
	logger  *zap.Logger
	timeout time.Duration

	wg sync.WaitGroup
}

// NewResolver creates a redirect resolver.
func NewResolver(repo LinkRepository, bus EventPublisher, logger *zap.Logger) *Resolver {
	return &Resolver{
		repo:    repo,
		bus:     bus,
		logger:  logger,
		timeout: DefaultSideEffectTimeout,
	}
}

// Resolve looks up shortCode and returns the destination URL to redirect
// to. Unknown codes and corrupted records yield domain.ErrLinkNotFound and
// domain.ErrInvalidLink respectively, with no side effects.
func (r *Resolver) Resolve(ctx context.Context, shortCode string, meta ClickMeta) (string, error) {
	if !domain.ValidShortCode(shortCode) {
		return "", domain.ErrLinkNotFound
	}

	link, err := r.repo.FindByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			metrics.Get().RedirectsTotal.WithLabelValues("not_found").Inc()
		}
		return "", err
	}
	if !link.Resolvable() {
		metrics.Get().RedirectsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidLink
	}

	r.recordClick(link, meta)
	metrics.Get().RedirectsTotal.WithLabelValues("ok").Inc()
	return link.OriginalURL, nil
}

// recordClick starts the best-effort side effects: the atomic counter
// increment and the link.clicked event. Runs on a detached context so the
// caller can answer immediately.
func (r *Resolver) recordClick(link *domain.TrackingLink, meta ClickMeta) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.repo.IncrementClicks(ctx, link.ShortCode, time.Now().UTC()); err != nil {
			metrics.Get().ClickIncrementFailures.Inc()
			r.logger.Warn("failed to increment click count",
				zap.String("short_code", link.ShortCode),
				zap.Error(err),
			)
			// The visitor was redirected regardless; accounting is
			// secondary to the redirect itself.
		}

		if r.bus == nil {
			return
		}
		evt := event.NewLinkClicked(
			link.ShortCode,
			link.ID,
			link.OwnerID,
			link.Platform.String(),
			meta.UserAgent,
			meta.IPAddress,
			meta.Referer,
		)
		if err := r.bus.Publish(ctx, evt); err != nil {
			r.logger.Warn("failed to publish link clicked event",
				zap.String("short_code", link.ShortCode),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until all in-flight click side effects have finished. Called
// on shutdown so recorded clicks are not lost, and by tests.
func (r *Resolver) Wait() {
	r.wg.Wait()
}
