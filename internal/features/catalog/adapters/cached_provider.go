package adapters

import (
	"context"
	"encoding/json"
	"time"

	"chirostore/internal/core/cache"
	"chirostore/internal/core/logger"
	"chirostore/internal/features/catalog/domain"
	"chirostore/internal/features/catalog/ports"

	"go.uber.org/zap"
)

const catalogCacheKey = "catalog_services"

// CachedProvider decorates a ServiceProvider with a short-lived cache for the
// service catalog. Pricing previews and order data are never cached; only the
// catalog, which changes rarely and is fetched on every storefront visit.
type CachedProvider struct {
	provider ports.ServiceProvider
	cache    cache.Cache
	ttl      time.Duration
}

// NewCachedProvider creates a CachedProvider around the given provider.
func NewCachedProvider(provider ports.ServiceProvider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    c,
		ttl:      ttl,
	}
}

// ListServices returns the cached catalog when fresh, falling back to the
// wrapped provider. Cache failures degrade to a direct fetch, never an error.
func (p *CachedProvider) ListServices(ctx context.Context) ([]domain.Service, error) {
	if data, err := p.cache.Get(ctx, catalogCacheKey); err == nil {
		var services []domain.Service
		if err := json.Unmarshal(data, &services); err == nil {
			return services, nil
		}
		logger.Get().Warn("Discarding unreadable catalog cache entry", zap.Error(err))
	}

	services, err := p.provider.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(services); err == nil {
		if err := p.cache.Set(ctx, catalogCacheKey, data, p.ttl); err != nil {
			logger.Get().Warn("Failed to cache catalog", zap.Error(err))
		}
	}

	return services, nil
}

// PricingPreview always goes to the wrapped provider.
func (p *CachedProvider) PricingPreview(ctx context.Context, originalPrice int64) (domain.Pricing, error) {
	return p.provider.PricingPreview(ctx, originalPrice)
}
