package ui

import (
	"context"

	ordersdomain "chirostore/internal/features/orders/domain"
)

// OrdersView holds the state of the active orders list: the fetched orders,
// a loading flag, an error message and the id of the order whose status
// change is in flight.
type OrdersView struct {
	orders Orders

	// Orders is the fetched list of in-flight orders.
	Orders []ordersdomain.Order
	// Loading reports whether a list fetch is in progress.
	Loading bool
	// Err is the current error message, empty when the last action succeeded.
	Err string
	// UpdatingID is the id of the order whose status change is in flight,
	// empty when none is.
	UpdatingID string

	loaded bool
}

// NewOrdersView creates an OrdersView in its initial loading state.
func NewOrdersView(orders Orders) *OrdersView {
	return &OrdersView{orders: orders, Loading: true}
}

// EnsureLoaded fetches the order list the first time the view is rendered.
func (v *OrdersView) EnsureLoaded(ctx context.Context) {
	if !v.loaded {
		v.Load(ctx)
	}
}

// Load fetches the active orders. On failure the list is emptied and the
// error message set, so stale orders are never shown as current.
func (v *OrdersView) Load(ctx context.Context) {
	v.Loading = true
	v.loaded = true
	defer func() { v.Loading = false }()

	orders, err := v.orders.ActiveOrders(ctx)
	if err != nil {
		v.Orders = nil
		v.Err = messageOrDefault(err, "Failed to load orders")
		return
	}

	v.Orders = orders
	v.Err = ""
}

// UpdateStatus requests a status change for one order. On success the list
// is refetched; on failure the error message is set and the current list is
// kept as-is.
func (v *OrdersView) UpdateStatus(ctx context.Context, orderID string, status ordersdomain.Status) {
	v.UpdatingID = orderID
	defer func() { v.UpdatingID = "" }()

	if err := v.orders.UpdateStatus(ctx, orderID, status); err != nil {
		v.Err = messageOrDefault(err, "Failed to update order status")
		return
	}

	v.Load(ctx)
}
