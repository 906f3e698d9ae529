package service

import (
	"context"
	"errors"
	"fmt"

	"chirostore/internal/features/orders/domain"
	"chirostore/internal/features/orders/ports"
)

var (
	// ErrEmptyService is returned when an order is placed without a service id.
	ErrEmptyService = errors.New("service id is required")
	// ErrEmptyOrderID is returned when an order operation lacks an identifier.
	ErrEmptyOrderID = errors.New("order id is required")
	// ErrInvalidStatus is returned when a status code outside 1..4 is requested.
	ErrInvalidStatus = errors.New("invalid order status")
)

// OrderService handles the business logic for placing and tracking orders.
type OrderService struct {
	provider ports.OrderProvider
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{provider: provider}
}

// CreateOrder places an order for a service/operator pair.
func (s *OrderService) CreateOrder(ctx context.Context, serviceID string, operator domain.Operator) (domain.Order, error) {
	if serviceID == "" {
		return domain.Order{}, ErrEmptyService
	}

	order, err := s.provider.CreateOrder(ctx, serviceID, operator)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: %w", err)
	}
	return order, nil
}

// ActiveOrders retrieves all orders still in flight.
func (s *OrderService) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.provider.ActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	return orders, nil
}

// OrderStatus retrieves the current state of a single order.
func (s *OrderService) OrderStatus(ctx context.Context, orderID string) (domain.Order, error) {
	if orderID == "" {
		return domain.Order{}, ErrEmptyOrderID
	}

	order, err := s.provider.OrderStatus(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: %w", err)
	}
	return order, nil
}

// UpdateStatus requests a status change for an order. Any of the four defined
// statuses may be requested regardless of the current one; the backend is
// trusted to validate transitions.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.Status) error {
	if orderID == "" {
		return ErrEmptyOrderID
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.provider.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("orders: %w", err)
	}
	return nil
}
