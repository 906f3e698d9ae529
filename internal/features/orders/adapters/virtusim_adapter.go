package adapters

import (
	"context"
	"fmt"

	"chirostore/internal/features/orders/domain"
	"chirostore/pkg/virtusim"
)

// VirtuSimAdapter implements the OrderProvider interface on top of the store
// API client.
type VirtuSimAdapter struct {
	client *virtusim.Client
}

// NewVirtuSimAdapter creates a new VirtuSimAdapter.
func NewVirtuSimAdapter(client *virtusim.Client) *VirtuSimAdapter {
	return &VirtuSimAdapter{client: client}
}

// CreateOrder places an order and normalizes the response.
func (a *VirtuSimAdapter) CreateOrder(ctx context.Context, serviceID string, operator domain.Operator) (domain.Order, error) {
	raw, err := a.client.CreateOrder(ctx, virtusim.OrderRequest{
		Service:  serviceID,
		Operator: string(operator),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return mapOrder(raw), nil
}

// ActiveOrders fetches and normalizes all in-flight orders.
func (a *VirtuSimAdapter) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	raw, err := a.client.ActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, mapOrder(o))
	}
	return orders, nil
}

// OrderStatus fetches and normalizes a single order.
func (a *VirtuSimAdapter) OrderStatus(ctx context.Context, orderID string) (domain.Order, error) {
	raw, err := a.client.OrderStatus(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to fetch order status: %w", err)
	}
	return mapOrder(raw), nil
}

// UpdateStatus requests a status change for an order.
func (a *VirtuSimAdapter) UpdateStatus(ctx context.Context, orderID string, status domain.Status) error {
	err := a.client.UpdateStatus(ctx, virtusim.SetStatusRequest{
		OrderID: orderID,
		Status:  int(status),
	})
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// mapOrder converts a raw store API order into the domain entity. The
// identifier arrives under either "id" or "order_id" depending on the
// endpoint; it is resolved to the single canonical ID field here, once,
// so the rest of the code never deals with the fallback chain.
func mapOrder(raw virtusim.Order) domain.Order {
	id := raw.ID
	if id == "" {
		id = raw.OrderID
	}

	// Known operators are normalized to their canonical lowercase form;
	// anything else is kept verbatim so the UI can still show it (the style
	// helpers fall back to a neutral badge).
	operator, ok := domain.ParseOperator(raw.Operator)
	if !ok && raw.Operator != "" {
		operator = domain.Operator(raw.Operator)
	}

	return domain.Order{
		ID:        id,
		Service:   raw.Service,
		Operator:  operator,
		Phone:     raw.Phone,
		Status:    domain.Status(raw.Status),
		SMS:       raw.SMS,
		CreatedAt: raw.CreatedAt,
	}
}
