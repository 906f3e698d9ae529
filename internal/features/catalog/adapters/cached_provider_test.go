package adapters

import (
	"context"
	"testing"
	"time"

	"chirostore/internal/core/cache"
	"chirostore/internal/features/catalog/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider is a scriptable ServiceProvider for cache tests.
type countingProvider struct {
	services []domain.Service
	err      error
	calls    int
}

func (p *countingProvider) ListServices(ctx context.Context) ([]domain.Service, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.services, nil
}

func (p *countingProvider) PricingPreview(ctx context.Context, originalPrice int64) (domain.Pricing, error) {
	return domain.Pricing{OriginalPrice: originalPrice}, nil
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, cache.Cache) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return mr, adapter
}

func TestCachedProviderServesFromCache(t *testing.T) {
	_, c := newTestCache(t)
	provider := &countingProvider{services: []domain.Service{{ID: "123", Name: "WhatsApp"}}}
	cached := NewCachedProvider(provider, c, time.Minute)

	first, err := cached.ListServices(context.Background())
	require.NoError(t, err)

	second, err := cached.ListServices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

func TestCachedProviderRefetchesAfterExpiry(t *testing.T) {
	mr, c := newTestCache(t)
	provider := &countingProvider{services: []domain.Service{{ID: "123", Name: "WhatsApp"}}}
	cached := NewCachedProvider(provider, c, time.Minute)

	_, err := cached.ListServices(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cached.ListServices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, provider.calls)
}

func TestCachedProviderDiscardsUnreadableEntry(t *testing.T) {
	mr, c := newTestCache(t)
	require.NoError(t, mr.Set("catalog_services", "not json"))

	provider := &countingProvider{services: []domain.Service{{ID: "123", Name: "WhatsApp"}}}
	cached := NewCachedProvider(provider, c, time.Minute)

	services, err := cached.ListServices(context.Background())

	require.NoError(t, err)
	assert.Len(t, services, 1)
	assert.Equal(t, 1, provider.calls)
}

func TestCachedProviderPropagatesProviderError(t *testing.T) {
	_, c := newTestCache(t)
	provider := &countingProvider{err: assert.AnError}
	cached := NewCachedProvider(provider, c, time.Minute)

	_, err := cached.ListServices(context.Background())

	assert.Error(t, err)
}

func TestCachedProviderPricingPreviewBypassesCache(t *testing.T) {
	_, c := newTestCache(t)
	provider := &countingProvider{}
	cached := NewCachedProvider(provider, c, time.Minute)

	pricing, err := cached.PricingPreview(context.Background(), 1000)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), pricing.OriginalPrice)
}
