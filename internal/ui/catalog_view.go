package ui

import (
	"context"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
)

// CatalogView holds the state of the service catalog: the fetched services,
// a loading flag, an error message and the per-service operator selection.
// It raises the onOrder event when the user orders a service card.
type CatalogView struct {
	catalog Catalog
	onOrder func(catalogdomain.Service, ordersdomain.Operator)

	// Services is the fetched catalog, in upstream order.
	Services []catalogdomain.Service
	// Loading reports whether a fetch is in progress. It starts true and is
	// cleared on every terminal outcome, success or failure.
	Loading bool
	// Err is the current error message, empty when the last fetch succeeded.
	Err string

	loaded   bool
	selected map[string]ordersdomain.Operator
}

// NewCatalogView creates a CatalogView in its initial loading state.
func NewCatalogView(catalog Catalog, onOrder func(catalogdomain.Service, ordersdomain.Operator)) *CatalogView {
	return &CatalogView{
		catalog:  catalog,
		onOrder:  onOrder,
		Loading:  true,
		selected: make(map[string]ordersdomain.Operator),
	}
}

// EnsureLoaded fetches the catalog the first time the view is rendered.
func (v *CatalogView) EnsureLoaded(ctx context.Context) {
	if !v.loaded {
		v.Load(ctx)
	}
}

// Load fetches the catalog. On success the service list is replaced and the
// error cleared; on failure the error message is set. The loading flag is
// cleared either way.
func (v *CatalogView) Load(ctx context.Context) {
	v.Loading = true
	v.loaded = true
	defer func() { v.Loading = false }()

	services, err := v.catalog.ListServices(ctx)
	if err != nil {
		v.Err = messageOrDefault(err, "Failed to load services")
		return
	}

	v.Services = services
	v.Err = ""
}

// SelectOperator records the operator choice for one service card. Other
// cards keep their own selection.
func (v *CatalogView) SelectOperator(serviceID string, operator ordersdomain.Operator) {
	v.selected[serviceID] = operator
}

// OperatorFor returns the effective operator selection for a service,
// defaulting to "any" when none was made.
func (v *CatalogView) OperatorFor(serviceID string) ordersdomain.Operator {
	if op, ok := v.selected[serviceID]; ok {
		return op
	}
	return ordersdomain.OperatorAny
}

// Order raises the request-to-order event for a service card, carrying the
// service and its effective operator. It reports false for an unknown id.
func (v *CatalogView) Order(serviceID string) bool {
	for _, svc := range v.Services {
		if svc.ID == serviceID {
			if v.onOrder != nil {
				v.onOrder(svc, v.OperatorFor(serviceID))
			}
			return true
		}
	}
	return false
}
