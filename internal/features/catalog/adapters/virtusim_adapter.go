package adapters

import (
	"context"
	"fmt"

	"chirostore/internal/features/catalog/domain"
	"chirostore/pkg/virtusim"
)

// VirtuSimAdapter implements the ServiceProvider interface on top of the
// store API client.
type VirtuSimAdapter struct {
	client *virtusim.Client
}

// NewVirtuSimAdapter creates a new VirtuSimAdapter.
func NewVirtuSimAdapter(client *virtusim.Client) *VirtuSimAdapter {
	return &VirtuSimAdapter{client: client}
}

// ListServices fetches the catalog and maps it to domain services.
func (a *VirtuSimAdapter) ListServices(ctx context.Context) ([]domain.Service, error) {
	raw, err := a.client.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]domain.Service, 0, len(raw))
	for _, svc := range raw {
		services = append(services, mapService(svc))
	}
	return services, nil
}

// PricingPreview fetches the markup breakdown for a wholesale price.
func (a *VirtuSimAdapter) PricingPreview(ctx context.Context, originalPrice int64) (domain.Pricing, error) {
	raw, err := a.client.PricingPreview(ctx, originalPrice)
	if err != nil {
		return domain.Pricing{}, fmt.Errorf("failed to compute pricing preview: %w", err)
	}
	return mapPricing(raw), nil
}

// mapService converts a raw store API service into the domain entity.
func mapService(raw virtusim.Service) domain.Service {
	svc := domain.Service{
		ID:           raw.ID,
		Name:         raw.Name,
		Price:        raw.Price,
		DisplayPrice: raw.DisplayPrice,
	}
	if raw.Pricing != nil {
		pricing := mapPricing(*raw.Pricing)
		svc.Pricing = &pricing
	}
	return svc
}

// mapPricing converts a raw pricing breakdown into the domain entity.
func mapPricing(raw virtusim.Pricing) domain.Pricing {
	return domain.Pricing{
		OriginalPrice:    raw.OriginalPrice,
		MarkupPercentage: raw.MarkupPercentage,
		FixedMarkup:      raw.FixedMarkup,
		SellingPrice:     raw.SellingPrice,
		Profit:           raw.Profit,
	}
}
