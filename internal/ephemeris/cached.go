package ephemeris

import (
	"context"
	"time"

	"Starluck/internal/astro"
	"Starluck/pkg/cache"
)

// CachedProvider memoizes longitude lookups through a cache layer. The
// memoization is pure: keys carry the backend name and the exact second, so
// observable results never change. Cache failures fall through to the
// wrapped backend silently.
type CachedProvider struct {
	inner Provider
	cache cache.Service
	ttl   time.Duration
}

// NewCached wraps a provider with position memoization.
func NewCached(inner Provider, c cache.Service, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: c, ttl: ttl}
}

func (p *CachedProvider) Name() string         { return p.inner.Name() }
func (p *CachedProvider) Bodies() []astro.Body { return p.inner.Bodies() }

func (p *CachedProvider) Longitudes(t time.Time) (map[astro.Body]float64, error) {
	ctx := context.Background()
	key := cache.Key("lons", p.inner.Name(), t.UTC().Unix())

	var cached map[astro.Body]float64
	if err := p.cache.Get(ctx, key, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	lons, err := p.inner.Longitudes(t)
	if err != nil {
		return nil, err
	}
	_ = p.cache.Set(ctx, key, lons, p.ttl)
	return lons, nil
}

// AnglesHouses is location-dependent and cheap next to the position series;
// it passes straight through.
func (p *CachedProvider) AnglesHouses(t time.Time, loc astro.GeoLocation, sys astro.HouseSystem) (float64, float64, []float64, error) {
	return p.inner.AnglesHouses(t, loc, sys)
}
