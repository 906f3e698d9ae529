package ports

import (
	"context"

	"chirostore/internal/features/orders/domain"
)

// OrderProvider defines the interface for placing and tracking orders against
// the upstream store.
type OrderProvider interface {
	// CreateOrder places an order for a service/operator pair.
	CreateOrder(ctx context.Context, serviceID string, operator domain.Operator) (domain.Order, error)
	// ActiveOrders retrieves all orders still in flight.
	ActiveOrders(ctx context.Context) ([]domain.Order, error)
	// OrderStatus retrieves the current state of a single order.
	OrderStatus(ctx context.Context, orderID string) (domain.Order, error)
	// UpdateStatus requests a status change for an order.
	UpdateStatus(ctx context.Context, orderID string, status domain.Status) error
}
