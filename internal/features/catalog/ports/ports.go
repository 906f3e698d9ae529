package ports

import (
	"context"

	"chirostore/internal/features/catalog/domain"
)

// ServiceProvider defines the interface for fetching the purchasable service
// catalog and pricing previews from the upstream store.
type ServiceProvider interface {
	// ListServices retrieves the full service catalog.
	ListServices(ctx context.Context) ([]domain.Service, error)
	// PricingPreview computes the markup breakdown for a wholesale price.
	PricingPreview(ctx context.Context, originalPrice int64) (domain.Pricing, error)
}
