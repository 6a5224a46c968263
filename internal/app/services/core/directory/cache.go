package directory

import (
	"context"
	"sync"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
)

// requestCache memoizes resolved profiles for the lifetime of one
// request. It is injected into the request context by the
// authentication middleware and never shared across requests, so
// role or tenant changes are observed on the very next request.
type requestCache struct {
	mu       sync.Mutex
	profiles map[string]*models.EnrichedProfile
}

func newRequestCache() *requestCache {
	return &requestCache{profiles: make(map[string]*models.EnrichedProfile)}
}

func (c *requestCache) get(principalID string) (*models.EnrichedProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	profile, ok := c.profiles[principalID]
	return profile, ok
}

func (c *requestCache) put(principalID string, profile *models.EnrichedProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[principalID] = profile
}

// WithRequestCache returns a context carrying a fresh per-request
// memoization scope.
func WithRequestCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_PROFILE_CACHE_KEY, newRequestCache())
}

func cacheFromContext(ctx context.Context) *requestCache {
	cache, _ := ctx.Value(constvars.CONTEXT_PROFILE_CACHE_KEY).(*requestCache)
	return cache
}
