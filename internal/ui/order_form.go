package ui

import (
	"context"
	"time"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
)

// OrderForm holds the state of the order confirmation step for one selected
// service. After a successful submit it shows the confirmation briefly and
// then raises onComplete; cancelling before submit raises onCancel.
type OrderForm struct {
	orders       Orders
	confirmDelay time.Duration
	onComplete   func()
	onCancel     func()

	// Service is the service being ordered.
	Service catalogdomain.Service
	// Operator is the operator selected on the catalog card.
	Operator ordersdomain.Operator
	// Submitting reports whether a submit is in flight.
	Submitting bool
	// Success reports whether the order was placed and the confirmation is
	// being shown.
	Success bool
	// Err is the current error message, empty unless the last submit failed.
	Err string
}

// NewOrderForm creates an OrderForm for one service/operator pair.
func NewOrderForm(orders Orders, svc catalogdomain.Service, operator ordersdomain.Operator, confirmDelay time.Duration, onComplete, onCancel func()) *OrderForm {
	return &OrderForm{
		orders:       orders,
		confirmDelay: confirmDelay,
		onComplete:   onComplete,
		onCancel:     onCancel,
		Service:      svc,
		Operator:     operator,
	}
}

// Submit places the order. Repeated submits while one is in flight, or after
// success, are ignored. On success the confirmation is shown and onComplete
// fires after the configured delay; on failure the form stays open with the
// error message set.
func (f *OrderForm) Submit(ctx context.Context) {
	if f.Submitting || f.Success {
		return
	}

	f.Submitting = true
	f.Err = ""

	_, err := f.orders.CreateOrder(ctx, f.Service.ID, f.Operator)
	f.Submitting = false
	if err != nil {
		f.Err = messageOrDefault(err, "Failed to create order")
		return
	}

	f.Success = true
	if f.onComplete != nil {
		time.AfterFunc(f.confirmDelay, f.onComplete)
	}
}

// Cancel abandons the form without placing an order. It is ignored while a
// submit is in flight or after the order succeeded.
func (f *OrderForm) Cancel() {
	if f.Submitting || f.Success {
		return
	}
	if f.onCancel != nil {
		f.onCancel()
	}
}
