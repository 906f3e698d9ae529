package ui

import (
	"context"

	catalogdomain "chirostore/internal/features/catalog/domain"
	ordersdomain "chirostore/internal/features/orders/domain"
)

// fakeCatalog is a scriptable Catalog for view tests.
type fakeCatalog struct {
	services []catalogdomain.Service
	err      error
	calls    int
}

func (f *fakeCatalog) ListServices(ctx context.Context) ([]catalogdomain.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

// fakeOrders is a scriptable Orders for view tests.
type fakeOrders struct {
	orders []ordersdomain.Order

	createErr error
	listErr   error
	updateErr error

	createCalls int
	listCalls   int

	lastService  string
	lastOperator ordersdomain.Operator
	lastOrderID  string
	lastStatus   ordersdomain.Status
}

func (f *fakeOrders) CreateOrder(ctx context.Context, serviceID string, operator ordersdomain.Operator) (ordersdomain.Order, error) {
	f.createCalls++
	f.lastService = serviceID
	f.lastOperator = operator
	if f.createErr != nil {
		return ordersdomain.Order{}, f.createErr
	}
	return ordersdomain.Order{ID: "ord-1", Service: serviceID, Operator: operator, Status: ordersdomain.StatusReady}, nil
}

func (f *fakeOrders) ActiveOrders(ctx context.Context) ([]ordersdomain.Order, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, orderID string, status ordersdomain.Status) error {
	f.lastOrderID = orderID
	f.lastStatus = status
	return f.updateErr
}
