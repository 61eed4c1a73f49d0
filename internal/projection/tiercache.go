package projection

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/velvetpath/narrative-engine/internal/engine"
	"github.com/velvetpath/narrative-engine/internal/fragment"
)

// #region tier-cache

// CachedTierSource memoizes an upstream subscription lookup for a TTL.
// Tier changes propagate within one TTL; lookups on the hot path stay
// off the upstream service.
type CachedTierSource struct {
	source engine.TierSource
	cache  *gocache.Cache
}

// NewCachedTierSource wraps source with a TTL cache.
func NewCachedTierSource(source engine.TierSource, ttl time.Duration) *CachedTierSource {
	return &CachedTierSource{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// TierOf returns the cached tier when fresh, otherwise asks upstream.
// Upstream errors are returned and never cached.
func (c *CachedTierSource) TierOf(ctx context.Context, userID string) (fragment.Tier, error) {
	if v, ok := c.cache.Get(userID); ok {
		return v.(fragment.Tier), nil
	}
	tier, err := c.source.TierOf(ctx, userID)
	if err != nil {
		return "", err
	}
	c.cache.Set(userID, tier, gocache.DefaultExpiration)
	return tier, nil
}

// Invalidate drops one user's cached tier, forcing the next lookup
// upstream. Used when a subscription-change signal arrives.
func (c *CachedTierSource) Invalidate(userID string) {
	c.cache.Delete(userID)
}

// #endregion tier-cache
