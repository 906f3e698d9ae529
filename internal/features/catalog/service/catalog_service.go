package service

import (
	"context"
	"errors"
	"fmt"

	"chirostore/internal/features/catalog/domain"
	"chirostore/internal/features/catalog/ports"
)

// ErrInvalidPrice is returned when a pricing preview is requested for a
// non-positive wholesale price.
var ErrInvalidPrice = errors.New("original price must be positive")

// CatalogService handles the business logic for the purchasable service catalog.
type CatalogService struct {
	provider ports.ServiceProvider
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(provider ports.ServiceProvider) *CatalogService {
	return &CatalogService{provider: provider}
}

// ListServices retrieves the full service catalog.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.provider.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return services, nil
}

// PricingPreview computes the markup breakdown for a wholesale price.
func (s *CatalogService) PricingPreview(ctx context.Context, originalPrice int64) (domain.Pricing, error) {
	if originalPrice <= 0 {
		return domain.Pricing{}, ErrInvalidPrice
	}

	pricing, err := s.provider.PricingPreview(ctx, originalPrice)
	if err != nil {
		return domain.Pricing{}, fmt.Errorf("catalog: %w", err)
	}
	return pricing, nil
}
