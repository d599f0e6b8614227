package cache

import (
	"context"
	"encoding/json"
	"time"

	"linktrack/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	linkCachePrefix = "link:"
	linkCacheTTL    = 10 * time.Minute
)

// LinkCache defines the interface for link caching operations.
// Implementations should handle cache misses gracefully by returning nil, nil.
type LinkCache interface {
	// Get retrieves a link from cache by its short code.
	// Returns nil, nil if the link is not in cache (cache miss).
	Get(ctx context.Context, shortCode string) (*domain.TrackingLink, error)

	// Set stores a link in the cache.
	Set(ctx context.Context, link *domain.TrackingLink) error

	// Invalidate removes a link from the cache.
	Invalidate(ctx context.Context, shortCode string) error
}

// Compile-time interface checks
var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache using Redis.
type RedisLinkCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewRedisLinkCache creates a new Redis-based link cache.
// Returns a no-op cache if the Redis client is nil.
func NewRedisLinkCache(rdb *redis.Client, logger *zap.Logger) LinkCache {
	if rdb == nil {
		return &noopLinkCache{}
	}
	return &RedisLinkCache{rdb: rdb, logger: logger}
}

// cachedLink is the serialization format for cached links.
type cachedLink struct {
	ID          string     `json:"id"`
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	Platform    string     `json:"platform"`
	OwnerID     string     `json:"owner_id"`
	ClickCount  int64      `json:"click_count"`
	CreatedAt   time.Time  `json:"created_at"`
	LastClickAt *time.Time `json:"last_click_at,omitempty"`
}

func (c *RedisLinkCache) cacheKey(shortCode string) string {
	return linkCachePrefix + shortCode
}

// Get retrieves a link from Redis. Redis errors are logged and treated as
// cache misses so the store remains the source of truth.
func (c *RedisLinkCache) Get(ctx context.Context, shortCode string) (*domain.TrackingLink, error) {
	data, err := c.rdb.Get(ctx, c.cacheKey(shortCode)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("failed to get link from cache", zap.Error(err))
		}
		return nil, nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("failed to unmarshal cached link", zap.Error(err))
		return nil, nil
	}

	return &domain.TrackingLink{
		ID:          cached.ID,
		ShortCode:   cached.ShortCode,
		OriginalURL: cached.OriginalURL,
		Platform:    domain.Platform(cached.Platform),
		OwnerID:     cached.OwnerID,
		ClickCount:  cached.ClickCount,
		CreatedAt:   cached.CreatedAt,
		LastClickAt: cached.LastClickAt,
	}, nil
}

// Set stores a link in Redis with a TTL.
func (c *RedisLinkCache) Set(ctx context.Context, link *domain.TrackingLink) error {
	cached := cachedLink{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		Platform:    string(link.Platform),
		OwnerID:     link.OwnerID,
		ClickCount:  link.ClickCount,
		CreatedAt:   link.CreatedAt,
		LastClickAt: link.LastClickAt,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	if err := c.rdb.Set(ctx, c.cacheKey(link.ShortCode), data, linkCacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache link", zap.String("short_code", link.ShortCode), zap.Error(err))
		return err
	}
	return nil
}

// Invalidate removes a link from Redis.
func (c *RedisLinkCache) Invalidate(ctx context.Context, shortCode string) error {
	if err := c.rdb.Del(ctx, c.cacheKey(shortCode)).Err(); err != nil {
		c.logger.Warn("failed to invalidate link cache", zap.String("short_code", shortCode), zap.Error(err))
		return err
	}
	return nil
}

// noopLinkCache is used when no Redis client is configured.
type noopLinkCache struct{}

func (noopLinkCache) Get(context.Context, string) (*domain.TrackingLink, error) { return nil, nil }
func (noopLinkCache) Set(context.Context, *domain.TrackingLink) error           { return nil }
func (noopLinkCache) Invalidate(context.Context, string) error                  { return nil }
