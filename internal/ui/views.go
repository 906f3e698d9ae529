// Package ui implements the storefront presentation layer: pure formatting
// helpers, the view state machines for the catalog, order form and order
// list, and the page shell that composes them into a server-rendered page.
package ui

import (
	"context"
	"errors"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
	"chirostore/pkg/virtusim"
)

// Catalog lists purchasable services for the storefront.
type Catalog interface {
	ListServices(ctx context.Context) ([]catalogdomain.Service, error)
}

// Orders places and tracks orders for the storefront.
type Orders interface {
	CreateOrder(ctx context.Context, serviceID string, operator ordersdomain.Operator) (ordersdomain.Order, error)
	ActiveOrders(ctx context.Context) ([]ordersdomain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status ordersdomain.Status) error
}

// messageOrDefault picks the user-facing message for a failed call: the store
// API envelope message when present, otherwise the view's own default.
func messageOrDefault(err error, fallback string) string {
	var apiErr *virtusim.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
